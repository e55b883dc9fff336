// Contracted s-type Gaussian basis sets.
//
// Only H and He are tabulated, which covers the two-electron diatomics the
// sweep targets. Exponents are in Bohr^-2, so basis functions are built on
// coordinates already converted to atomic units.

package chem

import (
	"fmt"
	"math"
	"strings"
)

// Primitive is a single normalized s-type Gaussian.
type Primitive struct {
	Alpha  float64    // exponent
	Coeff  float64    // contraction coefficient
	Center [3]float64 // Bohr
}

// Norm is the normalization constant of an s primitive.
func (p Primitive) Norm() float64 {
	return math.Pow(2*p.Alpha/math.Pi, 0.75)
}

// BasisFunc is a contracted Gaussian, a fixed linear combination of primitives
// sharing one center.
type BasisFunc struct {
	Prims []Primitive
}

type shell struct {
	alphas []float64
	coeffs []float64
}

// Tabulated from the EMSL basis set exchange.
var basisTables = map[string]map[string][]shell{
	"sto-3g": {
		"H": {
			{alphas: []float64{3.42525091, 0.62391373, 0.16885540},
				coeffs: []float64{0.15432897, 0.53532814, 0.44463454}},
		},
		"He": {
			{alphas: []float64{6.36242139, 1.15892300, 0.31364979},
				coeffs: []float64{0.15432897, 0.53532814, 0.44463454}},
		},
	},
	"6-31g": {
		"H": {
			{alphas: []float64{18.73113696, 2.82539437, 0.64012169},
				coeffs: []float64{0.03349460, 0.23472695, 0.81375733}},
			{alphas: []float64{0.16127776}, coeffs: []float64{1.0}},
		},
		"He": {
			{alphas: []float64{38.42163400, 5.77803000, 1.24177400},
				coeffs: []float64{0.02376600, 0.15467900, 0.46963000}},
			{alphas: []float64{0.29796400}, coeffs: []float64{1.0}},
		},
	},
}

// BuildBasis expands a molecule into its contracted basis functions.
func BuildBasis(m Molecule, basis string) ([]BasisFunc, error) {
	table, ok := basisTables[strings.ToLower(basis)]
	if !ok {
		return nil, fmt.Errorf("unsupported basis set %q", basis)
	}
	var funcs []BasisFunc
	for _, atom := range m.Atoms {
		shells, ok := table[atom.Element]
		if !ok {
			return nil, fmt.Errorf("basis %s has no entry for element %q", basis, atom.Element)
		}
		center := [3]float64{
			atom.X * AngstromToBohr,
			atom.Y * AngstromToBohr,
			atom.Z * AngstromToBohr,
		}
		for _, sh := range shells {
			bf := BasisFunc{Prims: make([]Primitive, len(sh.alphas))}
			for i := range sh.alphas {
				bf.Prims[i] = Primitive{Alpha: sh.alphas[i], Coeff: sh.coeffs[i], Center: center}
			}
			funcs = append(funcs, bf)
		}
	}
	return funcs, nil
}
