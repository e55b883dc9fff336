// In-process execution of one sweep point: electronic structure, qubit
// mapping, then a single solver invocation.

package sweep

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/perclft/groundstate/internal/chem"
	"github.com/perclft/groundstate/internal/config"
	"github.com/perclft/groundstate/internal/qubit"
	"github.com/perclft/groundstate/internal/solver"
)

type LocalExecutor struct {
	registry *solver.Registry
	log      *zap.Logger
}

func NewLocalExecutor(registry *solver.Registry, log *zap.Logger) *LocalExecutor {
	if registry == nil {
		registry = solver.DefaultRegistry()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &LocalExecutor{registry: registry, log: log}
}

func (e *LocalExecutor) Solve(ctx context.Context, cfg config.Config, algorithm string, distance float64) (*Point, error) {
	preset, err := chem.LookupPreset(cfg.Molecule.Preset)
	if err != nil {
		return nil, err
	}
	mol, err := preset.Molecule.WithBondLength(distance)
	if err != nil {
		return nil, err
	}

	scf, err := chem.RunSCF(mol, chem.SCFOptions{Basis: cfg.Molecule.Basis})
	if err != nil {
		return nil, fmt.Errorf("scf: %w", err)
	}
	e.log.Debug("scf converged",
		zap.Float64("distance", distance),
		zap.Int("iterations", scf.Iterations),
		zap.Float64("hf_energy", scf.Energy))

	problem, err := qubit.BuildProblem(scf, cfg.Transform.Mapping, cfg.Transform.InitialState)
	if err != nil {
		return nil, fmt.Errorf("qubit mapping: %w", err)
	}

	solv, err := e.registry.New(algorithm, cfg.SolverOptions())
	if err != nil {
		return nil, err
	}
	result, err := solv.Solve(ctx, problem)
	if err != nil {
		return nil, fmt.Errorf("%s solver: %w", algorithm, err)
	}

	return &Point{
		Algorithm:        algorithm,
		Distance:         distance,
		Energy:           result.Energy,
		Electronic:       result.Electronic,
		NuclearRepulsion: problem.NuclearRepulsion,
		HartreeFock:      scf.Energy,
		Phase:            result.Phase,
		NumQubits:        problem.NumQubits,
		NumTerms:         len(problem.Operator.Terms),
	}, nil
}
