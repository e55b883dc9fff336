// Solver daemon: serves single sweep points over gRPC so a sweep can fan out
// across machines instead of in-process workers.

package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/perclft/groundstate/internal/config"
	"github.com/perclft/groundstate/internal/rpc"
	"github.com/perclft/groundstate/internal/sweep"
)

type server struct {
	exec *sweep.LocalExecutor
	log  *zap.Logger
}

func (s *server) Solve(ctx context.Context, req *rpc.SolveRequest) (*rpc.SolveReply, error) {
	if req.Preset == "" || req.Algorithm == "" {
		return nil, status.Error(codes.InvalidArgument, "preset and algorithm are required")
	}
	if req.Distance <= 0 {
		return nil, status.Errorf(codes.InvalidArgument, "distance must be positive, got %g", req.Distance)
	}

	cfg := config.Default()
	cfg.Molecule.Preset = req.Preset
	if req.Basis != "" {
		cfg.Molecule.Basis = req.Basis
	}
	if req.Mapping != "" {
		cfg.Transform.Mapping = req.Mapping
	}
	if req.InitialState != "" {
		cfg.Transform.InitialState = req.InitialState
	}
	cfg.IQPE.Iterations = int(req.Iterations)
	cfg.IQPE.Slices = int(req.Slices)
	cfg.IQPE.Shots = int(req.Shots)
	cfg.IQPE.Seed = req.Seed

	point, err := s.exec.Solve(ctx, cfg, req.Algorithm, req.Distance)
	if err != nil {
		s.log.Warn("solve failed",
			zap.String("algorithm", req.Algorithm),
			zap.Float64("distance", req.Distance),
			zap.Error(err))
		return nil, status.Errorf(codes.Internal, "solve failed: %v", err)
	}

	s.log.Info("point solved",
		zap.String("algorithm", point.Algorithm),
		zap.Float64("distance", point.Distance),
		zap.Float64("energy", point.Energy))

	return &rpc.SolveReply{
		Energy:           point.Energy,
		Electronic:       point.Electronic,
		HartreeFock:      point.HartreeFock,
		NuclearRepulsion: point.NuclearRepulsion,
		Phase:            point.Phase,
		NumQubits:        int32(point.NumQubits),
		NumTerms:         int32(point.NumTerms),
	}, nil
}

func main() {
	port := flag.Int("port", 50060, "gRPC port")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	zcfg := zap.NewProductionConfig()
	if *verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", *port))
	if err != nil {
		logger.Fatal("failed to listen", zap.Int("port", *port), zap.Error(err))
	}

	grpcServer := grpc.NewServer()
	rpc.RegisterSolverServer(grpcServer, &server{
		exec: sweep.NewLocalExecutor(nil, logger),
		log:  logger,
	})

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		logger.Info("shutting down")
		grpcServer.GracefulStop()
	}()

	logger.Info("solver daemon listening", zap.Int("port", *port))
	if err := grpcServer.Serve(lis); err != nil {
		logger.Fatal("serve failed", zap.Error(err))
	}
}
