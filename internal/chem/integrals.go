// One- and two-electron integrals over s-type Gaussians.
//
// Closed forms for s-s products follow Szabo & Ostlund appendix A. Everything
// here works in atomic units.

package chem

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/mathext"
)

func dist2(a, b [3]float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return dx*dx + dy*dy + dz*dz
}

// gaussianProduct returns the combined exponent p, the reduced exponent q and
// the product center of two primitives.
func gaussianProduct(a, b Primitive) (p, q float64, center [3]float64) {
	p = a.Alpha + b.Alpha
	q = a.Alpha * b.Alpha / p
	for i := 0; i < 3; i++ {
		center[i] = (a.Alpha*a.Center[i] + b.Alpha*b.Center[i]) / p
	}
	return p, q, center
}

// boys is the Boys function F_n(x).
func boys(x float64, n int) float64 {
	nf := float64(n)
	if x < 1e-12 {
		return 1.0 / (2.0*nf + 1.0)
	}
	return mathext.GammaIncReg(nf+0.5, x) * math.Gamma(nf+0.5) / (2.0 * math.Pow(x, nf+0.5))
}

// Overlap builds the overlap matrix S.
func Overlap(bs []BasisFunc) *mat.SymDense {
	n := len(bs)
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sum := 0.0
			for _, pa := range bs[i].Prims {
				for _, pb := range bs[j].Prims {
					p, q, _ := gaussianProduct(pa, pb)
					r2 := dist2(pa.Center, pb.Center)
					norm := pa.Norm() * pb.Norm() * pa.Coeff * pb.Coeff
					sum += norm * math.Exp(-q*r2) * math.Pow(math.Pi/p, 1.5)
				}
			}
			s.SetSym(i, j, sum)
		}
	}
	return s
}

// Kinetic builds the kinetic energy matrix T.
func Kinetic(bs []BasisFunc) *mat.SymDense {
	n := len(bs)
	t := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sum := 0.0
			for _, pa := range bs[i].Prims {
				for _, pb := range bs[j].Prims {
					p, q, _ := gaussianProduct(pa, pb)
					r2 := dist2(pa.Center, pb.Center)
					norm := pa.Norm() * pb.Norm() * pa.Coeff * pb.Coeff
					s := norm * math.Exp(-q*r2) * math.Pow(math.Pi/p, 1.5)
					sum += q * (3.0 - 2.0*q*r2) * s
				}
			}
			t.SetSym(i, j, sum)
		}
	}
	return t
}

// NuclearAttraction builds the electron-nucleus attraction matrix V.
func NuclearAttraction(bs []BasisFunc, m Molecule) (*mat.SymDense, error) {
	type nucleus struct {
		z      float64
		center [3]float64
	}
	nuclei := make([]nucleus, len(m.Atoms))
	for i, atom := range m.Atoms {
		z, err := atom.AtomicNumber()
		if err != nil {
			return nil, err
		}
		nuclei[i] = nucleus{
			z: float64(z),
			center: [3]float64{
				atom.X * AngstromToBohr,
				atom.Y * AngstromToBohr,
				atom.Z * AngstromToBohr,
			},
		}
	}

	n := len(bs)
	v := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sum := 0.0
			for _, pa := range bs[i].Prims {
				for _, pb := range bs[j].Prims {
					p, q, center := gaussianProduct(pa, pb)
					r2 := dist2(pa.Center, pb.Center)
					norm := pa.Norm() * pb.Norm() * pa.Coeff * pb.Coeff
					for _, nuc := range nuclei {
						pc2 := dist2(center, nuc.center)
						sum += -nuc.z * norm * math.Exp(-q*r2) * (2.0 * math.Pi / p) * boys(p*pc2, 0)
					}
				}
			}
			v.SetSym(i, j, sum)
		}
	}
	return v, nil
}

// ERI holds the two-electron repulsion integrals (ij|kl) in chemists'
// notation as a flat rank-4 array.
type ERI struct {
	n int
	v []float64
}

// N returns the basis dimension.
func (e *ERI) N() int { return e.n }

// At returns (ij|kl).
func (e *ERI) At(i, j, k, l int) float64 {
	return e.v[((i*e.n+j)*e.n+k)*e.n+l]
}

func (e *ERI) set(i, j, k, l int, val float64) {
	e.v[((i*e.n+j)*e.n+k)*e.n+l] = val
}

// Repulsion computes all two-electron integrals. The basis sets in play are
// tiny, so the full n^4 loop without permutational symmetry is fine.
func Repulsion(bs []BasisFunc) *ERI {
	n := len(bs)
	eri := &ERI{n: n, v: make([]float64, n*n*n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				for l := 0; l < n; l++ {
					sum := 0.0
					for _, pa := range bs[i].Prims {
						for _, pb := range bs[j].Prims {
							pij, qij, pcij := gaussianProduct(pa, pb)
							r2ij := dist2(pa.Center, pb.Center)
							for _, pc := range bs[k].Prims {
								for _, pd := range bs[l].Prims {
									pkl, qkl, pckl := gaussianProduct(pc, pd)
									r2kl := dist2(pc.Center, pd.Center)

									norm := pa.Norm() * pb.Norm() * pc.Norm() * pd.Norm() *
										pa.Coeff * pb.Coeff * pc.Coeff * pd.Coeff
									pre := 2.0 * math.Pow(math.Pi, 2.5) /
										(pij * pkl * math.Sqrt(pij+pkl))
									arg := dist2(pcij, pckl) * pij * pkl / (pij + pkl)
									sum += norm * pre *
										math.Exp(-qij*r2ij) * math.Exp(-qkl*r2kl) *
										boys(arg, 0)
								}
							}
						}
					}
					eri.set(i, j, k, l, sum)
				}
			}
		}
	}
	return eri
}
