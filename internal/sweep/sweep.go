// Sweep engine: fans (algorithm, distance) pairs out to a bounded worker
// pool and aggregates the scalar results into pre-allocated arrays keyed by
// step and algorithm index.

package sweep

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/perclft/groundstate/internal/config"
)

// Point is the outcome of one solver invocation.
type Point struct {
	Algorithm        string  `json:"algorithm"`
	Distance         float64 `json:"distance"` // Angstrom
	Energy           float64 `json:"energy"`   // total ground-state energy, Hartree
	Electronic       float64 `json:"electronic"`
	NuclearRepulsion float64 `json:"nuclear_repulsion"`
	HartreeFock      float64 `json:"hartree_fock"`
	Phase            float64 `json:"phase,omitempty"`
	NumQubits        int     `json:"num_qubits"`
	NumTerms         int     `json:"num_terms"`
	Cached           bool    `json:"cached,omitempty"`
}

// Executor runs one sweep point. Implementations solve in-process or on a
// remote solver daemon.
type Executor interface {
	Solve(ctx context.Context, cfg config.Config, algorithm string, distance float64) (*Point, error)
}

// Results are the aggregated sweep arrays. Energies is indexed
// [algorithm][step], completion order never affects placement.
type Results struct {
	RunID       string      `json:"run_id"`
	Molecule    string      `json:"molecule"`
	Basis       string      `json:"basis"`
	Algorithms  []string    `json:"algorithms"`
	Distances   []float64   `json:"distances"`
	Energies    [][]float64 `json:"energies"`
	HartreeFock []float64   `json:"hartree_fock"`
	Elapsed     string      `json:"elapsed"`
}

// AlgorithmIndex returns the row of the named algorithm, or -1.
func (r *Results) AlgorithmIndex(name string) int {
	for i, a := range r.Algorithms {
		if a == name {
			return i
		}
	}
	return -1
}

// WriteJSON stores the aggregated arrays next to the plots.
func (r *Results) WriteJSON(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}
	path := filepath.Join(dir, "results.json")
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing results: %w", err)
	}
	return path, nil
}

type Engine struct {
	cfg   config.Config
	exec  Executor
	cache *Cache
	log   *zap.Logger
}

func NewEngine(cfg config.Config, exec Executor, cache *Cache, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{cfg: cfg, exec: exec, cache: cache, log: log}
}

// Run executes the full sweep.
func (e *Engine) Run(ctx context.Context) (*Results, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.New().String()[:8]
	algs := e.cfg.Run.Algorithms
	points := e.cfg.Run.Points

	res := &Results{
		RunID:       runID,
		Molecule:    e.cfg.Molecule.Preset,
		Basis:       e.cfg.Molecule.Basis,
		Algorithms:  algs,
		Distances:   make([]float64, points),
		Energies:    make([][]float64, len(algs)),
		HartreeFock: make([]float64, points),
	}
	for i := range res.Distances {
		res.Distances[i] = e.cfg.Distance(i)
	}
	for a := range res.Energies {
		res.Energies[a] = make([]float64, points)
	}

	e.log.Info("starting sweep",
		zap.String("run_id", runID),
		zap.String("molecule", e.cfg.Molecule.Preset),
		zap.Strings("algorithms", algs),
		zap.Int("points", points),
		zap.Int("workers", e.cfg.Run.Workers))

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Run.Workers)
	var mu sync.Mutex

	for ai, alg := range algs {
		ai, alg := ai, alg
		for i := 0; i < points; i++ {
			i := i
			taskCfg := e.cfg.Clone()
			distance := e.cfg.Distance(i)
			g.Go(func() error {
				point, err := e.solveOne(gctx, taskCfg, alg, distance)
				if err != nil {
					return fmt.Errorf("%s at %.4f A: %w", alg, distance, err)
				}
				mu.Lock()
				res.Energies[ai][i] = point.Energy
				res.HartreeFock[i] = point.HartreeFock
				mu.Unlock()
				e.log.Info("point done",
					zap.String("algorithm", alg),
					zap.Int("step", i),
					zap.Float64("distance", distance),
					zap.Float64("energy", point.Energy),
					zap.Bool("cached", point.Cached))
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	res.Elapsed = time.Since(start).String()

	e.log.Info("sweep finished",
		zap.String("run_id", runID),
		zap.String("elapsed", res.Elapsed))
	return res, nil
}

// solveOne consults the cache before invoking the executor.
func (e *Engine) solveOne(ctx context.Context, cfg config.Config, alg string, distance float64) (*Point, error) {
	key := Key(cfg, alg, distance)
	if e.cache != nil {
		if point, ok := e.cache.Get(ctx, key); ok {
			point.Cached = true
			return point, nil
		}
	}
	point, err := e.exec.Solve(ctx, cfg, alg, distance)
	if err != nil {
		return nil, err
	}
	if e.cache != nil {
		e.cache.Put(ctx, key, point)
	}
	return point, nil
}
