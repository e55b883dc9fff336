// Jordan-Wigner mapping of the second-quantized molecular Hamiltonian.

package qubit

import (
	"fmt"
	"math/bits"

	"github.com/perclft/groundstate/internal/chem"
)

const (
	MappingJordanWigner = "jordan-wigner"
	InitialHartreeFock  = "hartree-fock"
)

// Problem is a qubit-space ground-state problem, everything a solver needs.
type Problem struct {
	Molecule         chem.Molecule
	NumQubits        int
	Operator         *Operator // electronic Hamiltonian, qubit representation
	NuclearRepulsion float64   // added classically to solver output
	HartreeFock      float64   // total mean-field energy, the reference baseline
	InitialState     uint64    // HF determinant as a computational basis index
}

// annihilate returns the JW image of a_p: Z_0..Z_{p-1} (X_p + iY_p)/2.
func annihilate(p int) [2]Term {
	zs := uint64(1)<<p - 1
	bit := uint64(1) << p
	return [2]Term{
		{Coeff: 0.5, X: bit, Z: zs},
		{Coeff: -0.5, X: bit, Z: zs | bit},
	}
}

// create returns the JW image of a†_p.
func create(p int) [2]Term {
	zs := uint64(1)<<p - 1
	bit := uint64(1) << p
	return [2]Term{
		{Coeff: 0.5, X: bit, Z: zs},
		{Coeff: 0.5, X: bit, Z: zs | bit},
	}
}

// BuildProblem maps a converged SCF solution onto qubits. Spin orbitals are
// blocked: spatial orbital i spin-up is qubit i, spin-down is qubit i+n.
func BuildProblem(scf *chem.SCFResult, mapping, initialState string) (*Problem, error) {
	if mapping != MappingJordanWigner {
		return nil, fmt.Errorf("unsupported qubit mapping %q (supported: %s)", mapping, MappingJordanWigner)
	}
	if initialState != InitialHartreeFock {
		return nil, fmt.Errorf("unsupported initial state %q (supported: %s)", initialState, InitialHartreeFock)
	}

	hmo, gmo := scf.MOIntegrals()
	n := gmo.N()
	nso := 2 * n
	if nso > 62 {
		return nil, fmt.Errorf("basis too large: %d spin orbitals", nso)
	}

	b := NewBuilder(nso)

	// One-electron terms: sum_ij h_ij a†_iσ a_jσ.
	const eps = 1e-12
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			h := hmo.At(i, j)
			if abs(h) < eps {
				continue
			}
			for spin := 0; spin < 2; spin++ {
				p := i + spin*n
				q := j + spin*n
				for _, tc := range create(p) {
					for _, ta := range annihilate(q) {
						t := tc.Mul(ta)
						t.Coeff *= complex(h, 0)
						b.Add(t)
					}
				}
			}
		}
	}

	// Two-electron terms, chemists' (ij|kl):
	// 1/2 sum_ijkl (ij|kl) a†_iσ a†_kτ a_lτ a_jσ.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				for l := 0; l < n; l++ {
					g := gmo.At(i, j, k, l)
					if abs(g) < eps {
						continue
					}
					for sigma := 0; sigma < 2; sigma++ {
						for tau := 0; tau < 2; tau++ {
							p := i + sigma*n
							q := j + sigma*n
							r := k + tau*n
							s := l + tau*n
							if p == r || q == s {
								// a†a† or aa on the same mode vanishes.
								continue
							}
							for _, t1 := range create(p) {
								for _, t2 := range create(r) {
									for _, t3 := range annihilate(s) {
										for _, t4 := range annihilate(q) {
											t := t1.Mul(t2).Mul(t3).Mul(t4)
											t.Coeff *= complex(0.5*g, 0)
											b.Add(t)
										}
									}
								}
							}
						}
					}
				}
			}
		}
	}

	op := b.Operator()
	if im := op.MaxImag(); im > 1e-8 {
		return nil, fmt.Errorf("qubit Hamiltonian not Hermitian: residual imaginary coefficient %g", im)
	}

	// HF determinant: the lowest nocc spatial orbitals doubly occupied.
	var hf uint64
	for o := 0; o < scf.NOcc; o++ {
		hf |= 1 << o
		hf |= 1 << (o + n)
	}

	return &Problem{
		Molecule:         scf.Molecule,
		NumQubits:        nso,
		Operator:         op,
		NuclearRepulsion: scf.NuclearRepulsion,
		HartreeFock:      scf.Energy,
		InitialState:     hf,
	}, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// OccupationCount returns the number of set bits in the initial determinant,
// which must equal the electron count.
func (p *Problem) OccupationCount() int {
	return bits.OnesCount64(p.InitialState)
}
