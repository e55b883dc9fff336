// Restricted Hartree-Fock.

package chem

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSCFNotConverged is returned when the SCF loop runs out of iterations.
var ErrSCFNotConverged = fmt.Errorf("SCF did not converge")

type SCFOptions struct {
	Basis         string
	MaxIterations int
	Tolerance     float64
}

func (o SCFOptions) withDefaults() SCFOptions {
	if o.Basis == "" {
		o.Basis = "sto-3g"
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = 200
	}
	if o.Tolerance <= 0 {
		o.Tolerance = 1e-10
	}
	return o
}

// SCFResult carries the converged mean-field solution plus everything the
// qubit-Hamiltonian construction needs downstream.
type SCFResult struct {
	Molecule         Molecule
	Basis            string
	Energy           float64 // total HF energy (electronic + nuclear), Hartree
	Electronic       float64
	NuclearRepulsion float64
	OrbitalEnergies  []float64
	C                *mat.Dense // MO coefficients, one column per orbital
	Hcore            *mat.SymDense
	ERI              *ERI
	NOcc             int // doubly occupied spatial orbitals
	Iterations       int
}

// RunSCF solves the restricted Hartree-Fock equations with symmetric
// orthogonalization.
func RunSCF(m Molecule, opts SCFOptions) (*SCFResult, error) {
	opts = opts.withDefaults()

	nelec, err := m.NumElectrons()
	if err != nil {
		return nil, err
	}
	if m.Multiplicity != 1 || nelec%2 != 0 {
		return nil, fmt.Errorf("restricted HF needs a closed shell, %s has %d electrons with multiplicity %d",
			m.Name, nelec, m.Multiplicity)
	}
	nocc := nelec / 2

	bs, err := BuildBasis(m, opts.Basis)
	if err != nil {
		return nil, err
	}
	n := len(bs)
	if nocc > n {
		return nil, fmt.Errorf("basis %s too small for %d electrons", opts.Basis, nelec)
	}

	s := Overlap(bs)
	t := Kinetic(bs)
	v, err := NuclearAttraction(bs, m)
	if err != nil {
		return nil, err
	}
	eri := Repulsion(bs)
	enn, err := m.NuclearRepulsion()
	if err != nil {
		return nil, err
	}

	hcore := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			hcore.SetSym(i, j, t.At(i, j)+v.At(i, j))
		}
	}

	x, err := invSqrt(s)
	if err != nil {
		return nil, fmt.Errorf("orthogonalizing overlap matrix: %w", err)
	}

	density := mat.NewDense(n, n, nil)
	coeffs := mat.NewDense(n, n, nil)
	var orbitalEnergies []float64
	energy := 0.0
	iterations := 0

	for iter := 1; iter <= opts.MaxIterations; iter++ {
		prev := energy

		// Two-electron part of the Fock matrix.
		g := mat.NewDense(n, n, nil)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				sum := 0.0
				for k := 0; k < n; k++ {
					for l := 0; l < n; l++ {
						sum += density.At(k, l) * (eri.At(i, j, k, l) - 0.5*eri.At(i, l, k, j))
					}
				}
				g.Set(i, j, sum)
			}
		}

		f := mat.NewDense(n, n, nil)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				f.Set(i, j, hcore.At(i, j)+g.At(i, j))
			}
		}

		// F' = X^T F X, diagonalize, back-transform C = X C'.
		var fp mat.Dense
		fp.Mul(f, x)
		fp.Mul(x.T(), &fp)
		fpSym := mat.NewSymDense(n, nil)
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				fpSym.SetSym(i, j, 0.5*(fp.At(i, j)+fp.At(j, i)))
			}
		}
		var eig mat.EigenSym
		if !eig.Factorize(fpSym, true) {
			return nil, fmt.Errorf("Fock matrix diagonalization failed at iteration %d", iter)
		}
		orbitalEnergies = eig.Values(nil)
		var cp mat.Dense
		eig.VectorsTo(&cp)
		coeffs.Mul(x, &cp)

		// New density from the doubly occupied orbitals.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				sum := 0.0
				for o := 0; o < nocc; o++ {
					sum += 2.0 * coeffs.At(i, o) * coeffs.At(j, o)
				}
				density.Set(i, j, sum)
			}
		}

		energy = 0.0
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				energy += density.At(i, j) * (hcore.At(i, j) + 0.5*g.At(i, j))
			}
		}

		iterations = iter
		if iter > 1 && math.Abs(energy-prev) < opts.Tolerance {
			return &SCFResult{
				Molecule:         m,
				Basis:            opts.Basis,
				Energy:           energy + enn,
				Electronic:       energy,
				NuclearRepulsion: enn,
				OrbitalEnergies:  orbitalEnergies,
				C:                coeffs,
				Hcore:            hcore,
				ERI:              eri,
				NOcc:             nocc,
				Iterations:       iterations,
			}, nil
		}
	}
	return nil, fmt.Errorf("%w after %d iterations (molecule %s)", ErrSCFNotConverged, opts.MaxIterations, m.Name)
}

// invSqrt returns S^{-1/2} for a symmetric positive definite matrix.
func invSqrt(s *mat.SymDense) (*mat.Dense, error) {
	n := s.SymmetricDim()
	var eig mat.EigenSym
	if !eig.Factorize(s, true) {
		return nil, fmt.Errorf("eigendecomposition failed")
	}
	vals := eig.Values(nil)
	var u mat.Dense
	eig.VectorsTo(&u)

	x := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				if vals[k] < 1e-10 {
					return nil, fmt.Errorf("overlap matrix is near singular (eigenvalue %g)", vals[k])
				}
				sum += u.At(i, k) * u.At(j, k) / math.Sqrt(vals[k])
			}
			x.Set(i, j, sum)
		}
	}
	return x, nil
}

// MOIntegrals transforms the core Hamiltonian and the two-electron integrals
// into the molecular orbital basis.
func (r *SCFResult) MOIntegrals() (*mat.Dense, *ERI) {
	n := r.ERI.N()

	hmo := mat.NewDense(n, n, nil)
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			sum := 0.0
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					sum += r.C.At(i, p) * r.C.At(j, q) * r.Hcore.At(i, j)
				}
			}
			hmo.Set(p, q, sum)
		}
	}

	// Naive four-index transform. n is at most 4 here, so no staging.
	gmo := &ERI{n: n, v: make([]float64, n*n*n*n)}
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			for s := 0; s < n; s++ {
				for t := 0; t < n; t++ {
					sum := 0.0
					for i := 0; i < n; i++ {
						for j := 0; j < n; j++ {
							for k := 0; k < n; k++ {
								for l := 0; l < n; l++ {
									sum += r.C.At(i, p) * r.C.At(j, q) * r.C.At(k, s) * r.C.At(l, t) *
										r.ERI.At(i, j, k, l)
								}
							}
						}
					}
					gmo.set(p, q, s, t, sum)
				}
			}
		}
	}
	return hmo, gmo
}
