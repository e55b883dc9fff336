// Dense statevector with Pauli-term rotations.

package solver

import (
	"math"
	"math/bits"
	"math/cmplx"

	"github.com/perclft/groundstate/internal/qubit"
)

// State is a normalized wavefunction over a qubit register, amplitude of
// basis state |j> at Amps[j] with qubit q on bit q of j.
type State struct {
	NumQubits int
	Amps      []complex128
}

// NewBasisState prepares |index>.
func NewBasisState(numQubits int, index uint64) *State {
	s := &State{NumQubits: numQubits, Amps: make([]complex128, 1<<numQubits)}
	s.Amps[index] = 1
	return s
}

func (s *State) Clone() *State {
	amps := make([]complex128, len(s.Amps))
	copy(amps, s.Amps)
	return &State{NumQubits: s.NumQubits, Amps: amps}
}

// Norm2 returns <psi|psi>.
func (s *State) Norm2() float64 {
	sum := 0.0
	for _, a := range s.Amps {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}
	return sum
}

func (s *State) Normalize() {
	n := math.Sqrt(s.Norm2())
	if n == 0 {
		return
	}
	inv := complex(1/n, 0)
	for i := range s.Amps {
		s.Amps[i] *= inv
	}
}

// Phase multiplies the whole vector by e^{i*theta}.
func (s *State) Phase(theta float64) {
	ph := cmplx.Exp(complex(0, theta))
	for i := range s.Amps {
		s.Amps[i] *= ph
	}
}

// pauliPhase is the diagonal phase of the Hermitian Pauli string on basis
// state j: i^{|x&z|} * (-1)^{|j&z|}.
func pauliPhase(t qubit.Term, j int) complex128 {
	yc := bits.OnesCount64(t.X & t.Z)
	var ph complex128
	switch yc % 4 {
	case 0:
		ph = 1
	case 1:
		ph = complex(0, 1)
	case 2:
		ph = -1
	default:
		ph = complex(0, -1)
	}
	if bits.OnesCount64(uint64(j)&t.Z)%2 == 1 {
		ph = -ph
	}
	return ph
}

// Rotate applies exp(i*theta*P) in place, where P is the Hermitian Pauli
// string of the term's masks (the term's own coefficient is ignored; fold it
// into theta). P is an involution, so the rotation closes over amplitude
// pairs (j, j^x).
func (s *State) Rotate(t qubit.Term, theta float64) {
	c := complex(math.Cos(theta), 0)
	is := complex(0, math.Sin(theta))

	if t.X == 0 {
		// Diagonal string: pure phase per basis state.
		for j := range s.Amps {
			s.Amps[j] *= c + is*pauliPhase(t, j)
		}
		return
	}

	x := int(t.X)
	for j := range s.Amps {
		k := j ^ x
		if k < j {
			continue // pair already handled
		}
		aj, ak := s.Amps[j], s.Amps[k]
		// P|j> = phase(j) |k>, P|k> = phase(k) |j>.
		s.Amps[j] = c*aj + is*pauliPhase(t, k)*ak
		s.Amps[k] = c*ak + is*pauliPhase(t, j)*aj
	}
}
