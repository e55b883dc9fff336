// Service descriptor and client for the Solver service.

package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const solveMethod = "/groundstate.Solver/Solve"

// SolverServer is implemented by the solver daemon.
type SolverServer interface {
	Solve(ctx context.Context, req *SolveRequest) (*SolveReply, error)
}

func RegisterSolverServer(s grpc.ServiceRegistrar, srv SolverServer) {
	s.RegisterService(&solverServiceDesc, srv)
}

func solveHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SolveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SolverServer).Solve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: solveMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SolverServer).Solve(ctx, req.(*SolveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var solverServiceDesc = grpc.ServiceDesc{
	ServiceName: "groundstate.Solver",
	HandlerType: (*SolverServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Solve", Handler: solveHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "solver.proto",
}

// SolverClient calls a remote solver daemon.
type SolverClient interface {
	Solve(ctx context.Context, req *SolveRequest, opts ...grpc.CallOption) (*SolveReply, error)
}

type solverClient struct {
	cc grpc.ClientConnInterface
}

func NewSolverClient(cc grpc.ClientConnInterface) SolverClient {
	return &solverClient{cc: cc}
}

func (c *solverClient) Solve(ctx context.Context, req *SolveRequest, opts ...grpc.CallOption) (*SolveReply, error) {
	out := new(SolveReply)
	if err := c.cc.Invoke(ctx, solveMethod, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
