// Remote execution against a solver daemon.

package sweep

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/perclft/groundstate/internal/config"
	"github.com/perclft/groundstate/internal/rpc"
)

type RemoteExecutor struct {
	conn   *grpc.ClientConn
	client rpc.SolverClient
}

// NewRemoteExecutor dials a solver daemon. Close releases the connection.
func NewRemoteExecutor(addr string) (*RemoteExecutor, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dialing solver daemon %s: %w", addr, err)
	}
	return &RemoteExecutor{conn: conn, client: rpc.NewSolverClient(conn)}, nil
}

func (e *RemoteExecutor) Close() error { return e.conn.Close() }

func (e *RemoteExecutor) Solve(ctx context.Context, cfg config.Config, algorithm string, distance float64) (*Point, error) {
	reply, err := e.client.Solve(ctx, &rpc.SolveRequest{
		Preset:       cfg.Molecule.Preset,
		Basis:        cfg.Molecule.Basis,
		Mapping:      cfg.Transform.Mapping,
		InitialState: cfg.Transform.InitialState,
		Algorithm:    algorithm,
		Distance:     distance,
		Iterations:   int32(cfg.IQPE.Iterations),
		Slices:       int32(cfg.IQPE.Slices),
		Shots:        int32(cfg.IQPE.Shots),
		Seed:         cfg.IQPE.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("remote solve: %w", err)
	}
	return &Point{
		Algorithm:        algorithm,
		Distance:         distance,
		Energy:           reply.Energy,
		Electronic:       reply.Electronic,
		NuclearRepulsion: reply.NuclearRepulsion,
		HartreeFock:      reply.HartreeFock,
		Phase:            reply.Phase,
		NumQubits:        int(reply.NumQubits),
		NumTerms:         int(reply.NumTerms),
	}, nil
}
