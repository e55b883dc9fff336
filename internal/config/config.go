// Run configuration, shared across all sweep tasks. Each task works on a
// deep copy with its own geometry and algorithm injected.

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/perclft/groundstate/internal/qubit"
	"github.com/perclft/groundstate/internal/solver"
)

type Config struct {
	Run       Run       `yaml:"run" json:"run"`
	Molecule  Molecule  `yaml:"molecule" json:"molecule"`
	Transform Transform `yaml:"transform" json:"transform"`
	IQPE      IQPE      `yaml:"iqpe" json:"iqpe"`
	Cache     Cache     `yaml:"cache" json:"cache"`
	Output    Output    `yaml:"output" json:"output"`
}

type Run struct {
	Algorithms []string `yaml:"algorithms" json:"algorithms"`
	Start      float64  `yaml:"start" json:"start"` // first bond length, Angstrom
	Step       float64  `yaml:"step" json:"step"`
	Points     int      `yaml:"points" json:"points"`
	Workers    int      `yaml:"workers" json:"workers"`
}

type Molecule struct {
	Preset string `yaml:"preset" json:"preset"`
	Basis  string `yaml:"basis" json:"basis"`
}

type Transform struct {
	Mapping      string `yaml:"mapping" json:"mapping"`
	InitialState string `yaml:"initial_state" json:"initial_state"`
}

type IQPE struct {
	Iterations int   `yaml:"iterations" json:"iterations"`
	Slices     int   `yaml:"slices" json:"slices"`
	Shots      int   `yaml:"shots" json:"shots"`
	Seed       int64 `yaml:"seed" json:"seed"`
}

type Cache struct {
	Addr       string `yaml:"addr" json:"addr"` // empty disables the cache
	TTLSeconds int    `yaml:"ttl_seconds" json:"ttl_seconds"`
}

type Output struct {
	Dir string `yaml:"dir" json:"dir"`
}

// Default mirrors the original experiment: two algorithms over 21 bond
// lengths from 0.5 A in 0.025 A steps.
func Default() Config {
	return Config{
		Run: Run{
			Algorithms: []string{solver.AlgorithmIQPE, solver.AlgorithmExact},
			Start:      0.5,
			Step:       0.025,
			Points:     21,
			Workers:    4,
		},
		Molecule: Molecule{
			Preset: "H2",
			Basis:  "sto-3g",
		},
		Transform: Transform{
			Mapping:      qubit.MappingJordanWigner,
			InitialState: qubit.InitialHartreeFock,
		},
		IQPE: IQPE{
			Iterations: 16,
			Slices:     4,
		},
		Cache: Cache{
			TTLSeconds: 24 * 60 * 60,
		},
		Output: Output{
			Dir: "out",
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if len(c.Run.Algorithms) == 0 {
		return fmt.Errorf("run.algorithms must not be empty")
	}
	seen := make(map[string]bool)
	for _, a := range c.Run.Algorithms {
		if seen[a] {
			return fmt.Errorf("duplicate algorithm %q", a)
		}
		seen[a] = true
	}
	if c.Run.Points <= 0 {
		return fmt.Errorf("run.points must be positive, got %d", c.Run.Points)
	}
	if c.Run.Start <= 0 {
		return fmt.Errorf("run.start must be a positive bond length, got %g", c.Run.Start)
	}
	if c.Run.Step <= 0 {
		return fmt.Errorf("run.step must be positive, got %g", c.Run.Step)
	}
	if c.Run.Workers <= 0 {
		return fmt.Errorf("run.workers must be positive, got %d", c.Run.Workers)
	}
	if c.Molecule.Preset == "" {
		return fmt.Errorf("molecule.preset is required")
	}
	if c.Transform.Mapping != qubit.MappingJordanWigner {
		return fmt.Errorf("transform.mapping %q is not supported", c.Transform.Mapping)
	}
	if c.Transform.InitialState != qubit.InitialHartreeFock {
		return fmt.Errorf("transform.initial_state %q is not supported", c.Transform.InitialState)
	}
	return nil
}

// Clone returns a deep copy; mutating one task's copy never affects another.
func (c Config) Clone() Config {
	out := c
	out.Run.Algorithms = make([]string, len(c.Run.Algorithms))
	copy(out.Run.Algorithms, c.Run.Algorithms)
	return out
}

// Distance returns the bond length of sweep step i.
func (c Config) Distance(i int) float64 {
	return c.Run.Start + float64(i)*c.Run.Step
}

// SolverOptions translates the IQPE block for the solver registry.
func (c Config) SolverOptions() solver.Options {
	return solver.Options{
		Iterations: c.IQPE.Iterations,
		Slices:     c.IQPE.Slices,
		Shots:      c.IQPE.Shots,
		Seed:       c.IQPE.Seed,
	}
}
