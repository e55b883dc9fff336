package sweep

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perclft/groundstate/internal/config"
)

// stubExecutor returns a synthetic energy encoding algorithm and distance, so
// the test can verify that completion order never affects array placement.
type stubExecutor struct {
	mu    sync.Mutex
	calls int
	fail  string // algorithm that should error, empty for none
}

func (s *stubExecutor) Solve(ctx context.Context, cfg config.Config, algorithm string, distance float64) (*Point, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if algorithm == s.fail {
		return nil, fmt.Errorf("stub failure")
	}
	offset := 0.0
	if algorithm == "beta" {
		offset = 100
	}
	return &Point{
		Algorithm:   algorithm,
		Distance:    distance,
		Energy:      offset + distance,
		HartreeFock: -distance,
	}, nil
}

func sweepConfig() config.Config {
	cfg := config.Default()
	cfg.Run.Algorithms = []string{"alpha", "beta"}
	cfg.Run.Start = 1.0
	cfg.Run.Step = 0.5
	cfg.Run.Points = 5
	cfg.Run.Workers = 3
	return cfg
}

func TestEngineRunAggregation(t *testing.T) {
	cfg := sweepConfig()
	exec := &stubExecutor{}
	res, err := NewEngine(cfg, exec, nil, nil).Run(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, []string{"alpha", "beta"}, res.Algorithms)
	assert.Equal(t, 10, exec.calls)
	require.Len(t, res.Distances, 5)
	require.Len(t, res.Energies, 2)

	for i := 0; i < 5; i++ {
		d := 1.0 + 0.5*float64(i)
		assert.InDelta(t, d, res.Distances[i], 1e-12)
		assert.InDelta(t, d, res.Energies[0][i], 1e-12, "alpha row, step %d", i)
		assert.InDelta(t, 100+d, res.Energies[1][i], 1e-12, "beta row, step %d", i)
		assert.InDelta(t, -d, res.HartreeFock[i], 1e-12)
	}
}

func TestEngineRunPropagatesErrors(t *testing.T) {
	cfg := sweepConfig()
	_, err := NewEngine(cfg, &stubExecutor{fail: "beta"}, nil, nil).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "beta")
}

func TestEngineRunRejectsInvalidConfig(t *testing.T) {
	cfg := sweepConfig()
	cfg.Run.Points = 0
	_, err := NewEngine(cfg, &stubExecutor{}, nil, nil).Run(context.Background())
	assert.Error(t, err)
}

func TestAlgorithmIndex(t *testing.T) {
	res := &Results{Algorithms: []string{"iqpe", "exact"}}
	assert.Equal(t, 0, res.AlgorithmIndex("iqpe"))
	assert.Equal(t, 1, res.AlgorithmIndex("exact"))
	assert.Equal(t, -1, res.AlgorithmIndex("vqe"))
}

func TestResultsWriteJSON(t *testing.T) {
	res := &Results{
		RunID:       "abc123",
		Molecule:    "H2",
		Basis:       "sto-3g",
		Algorithms:  []string{"exact"},
		Distances:   []float64{0.5, 0.75},
		Energies:    [][]float64{{-1.0, -1.1}},
		HartreeFock: []float64{-0.9, -1.0},
	}
	dir := t.TempDir()
	path, err := res.WriteJSON(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "results.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded Results
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, res.RunID, decoded.RunID)
	assert.Equal(t, res.Energies, decoded.Energies)
}

func TestCacheKey(t *testing.T) {
	cfg := config.Default()

	k1 := Key(cfg, "iqpe", 0.735)
	assert.Equal(t, k1, Key(cfg, "iqpe", 0.735))
	assert.NotEqual(t, k1, Key(cfg, "exact", 0.735))
	assert.NotEqual(t, k1, Key(cfg, "iqpe", 0.736))

	// Solver-irrelevant knobs do not change the key.
	tweaked := cfg.Clone()
	tweaked.Run.Workers = 99
	tweaked.Output.Dir = "elsewhere"
	assert.Equal(t, k1, Key(tweaked, "iqpe", 0.735))

	// Solver tunables do.
	tweaked.IQPE.Iterations = 24
	assert.NotEqual(t, k1, Key(tweaked, "iqpe", 0.735))

	// Exact points do not depend on IQPE tunables, so retuning them must
	// not invalidate cached exact entries.
	assert.Equal(t, Key(cfg, "exact", 0.735), Key(tweaked, "exact", 0.735))
}

func TestNewCacheDisabled(t *testing.T) {
	c, err := NewCache(context.Background(), config.Cache{})
	require.NoError(t, err)
	assert.Nil(t, c)
}
