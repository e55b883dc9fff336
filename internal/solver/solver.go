// Solver strategies for the qubit ground-state problem.

package solver

import (
	"context"
	"fmt"
	"sort"

	"github.com/perclft/groundstate/internal/qubit"
)

const (
	AlgorithmIQPE  = "iqpe"
	AlgorithmExact = "exact"
)

// Result is the output of a single solver invocation.
type Result struct {
	Energy      float64 `json:"energy"`       // total energy, Hartree
	Electronic  float64 `json:"electronic"`   // without nuclear repulsion
	Phase       float64 `json:"phase"`        // estimated eigenphase (IQPE only)
	Iterations  int     `json:"iterations"`   // phase bits measured (IQPE only)
	HartreeFock float64 `json:"hartree_fock"` // reference baseline carried through
}

type Solver interface {
	Name() string
	Solve(ctx context.Context, p *qubit.Problem) (*Result, error)
}

// Options covers the tunables of every registered solver. Solvers ignore
// fields that do not apply to them.
type Options struct {
	Iterations int   // IQPE phase bits
	Slices     int   // Trotter slices per unit evolution
	Shots      int   // ancilla samples per bit; 0 means deterministic readout
	Seed       int64 // RNG seed for sampled measurement
}

// Factory builds a solver from options.
type Factory func(Options) Solver

// Registry maps algorithm names to solver factories.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

func (r *Registry) New(name string, opts Options) (Solver, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm %q (available: %v)", name, r.List())
	}
	return f(opts), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry with the two built-in strategies.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(AlgorithmExact, func(Options) Solver { return &Exact{} })
	r.Register(AlgorithmIQPE, func(o Options) Solver { return NewIQPE(o) })
	return r
}
