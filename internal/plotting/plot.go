// Rendering of the two sweep figures: dissociation curves per algorithm with
// the Hartree-Fock reference, and the energy difference against the exact
// diagonalization baseline.

package plotting

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/perclft/groundstate/internal/solver"
	"github.com/perclft/groundstate/internal/sweep"
)

func curve(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

// WriteCurves renders energies.png and, when the exact baseline was part of
// the sweep, delta.png. It returns the paths written.
func WriteCurves(res *sweep.Results, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}
	var paths []string

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s ground-state energy (%s)", res.Molecule, res.Basis)
	p.X.Label.Text = "Interatomic distance (Å)"
	p.Y.Label.Text = "Energy (Hartree)"
	p.Legend.Top = true

	args := make([]interface{}, 0, 2*(len(res.Algorithms)+1))
	for i, alg := range res.Algorithms {
		args = append(args, alg, curve(res.Distances, res.Energies[i]))
	}
	args = append(args, "hartree-fock", curve(res.Distances, res.HartreeFock))
	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return nil, fmt.Errorf("building energy plot: %w", err)
	}
	energyPath := filepath.Join(dir, "energies.png")
	if err := p.Save(7*vg.Inch, 5*vg.Inch, energyPath); err != nil {
		return nil, fmt.Errorf("saving energy plot: %w", err)
	}
	paths = append(paths, energyPath)

	exact := res.AlgorithmIndex(solver.AlgorithmExact)
	if exact < 0 {
		return paths, nil
	}

	d := plot.New()
	d.Title.Text = fmt.Sprintf("%s energy difference from exact diagonalization", res.Molecule)
	d.X.Label.Text = "Interatomic distance (Å)"
	d.Y.Label.Text = "|ΔE| (Hartree)"
	d.Legend.Top = true

	var deltaArgs []interface{}
	for i, alg := range res.Algorithms {
		if i == exact {
			continue
		}
		deltas := make([]float64, len(res.Distances))
		for j := range deltas {
			deltas[j] = math.Abs(res.Energies[i][j] - res.Energies[exact][j])
		}
		deltaArgs = append(deltaArgs, alg, curve(res.Distances, deltas))
	}
	if len(deltaArgs) == 0 {
		return paths, nil
	}
	if err := plotutil.AddLinePoints(d, deltaArgs...); err != nil {
		return nil, fmt.Errorf("building delta plot: %w", err)
	}
	deltaPath := filepath.Join(dir, "delta.png")
	if err := d.Save(7*vg.Inch, 5*vg.Inch, deltaPath); err != nil {
		return nil, fmt.Errorf("saving delta plot: %w", err)
	}
	paths = append(paths, deltaPath)
	return paths, nil
}
