package qubit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermMul(t *testing.T) {
	x := Term{Coeff: 1, X: 1}
	z := Term{Coeff: 1, Z: 1}

	xz := x.Mul(z)
	zx := z.Mul(x)
	// X and Z on the same qubit anticommute.
	assert.Equal(t, xz.X, zx.X)
	assert.Equal(t, xz.Z, zx.Z)
	assert.Equal(t, xz.Coeff, -zx.Coeff)

	// Y = i XZ squares to the identity.
	y := Term{Coeff: complex(0, 1), X: 1, Z: 1}
	yy := y.Mul(y)
	assert.Equal(t, uint64(0), yy.X)
	assert.Equal(t, uint64(0), yy.Z)
	assert.Equal(t, complex128(1), yy.Coeff)

	// Operators on disjoint qubits commute.
	x0 := Term{Coeff: 1, X: 1}
	z1 := Term{Coeff: 1, Z: 2}
	assert.Equal(t, x0.Mul(z1), Term{Coeff: 1, X: 1, Z: 2})
	assert.Equal(t, z1.Mul(x0), Term{Coeff: 1, X: 1, Z: 2})
}

func TestPauliCoeff(t *testing.T) {
	// A Y stored as i*XZ has Pauli coefficient 1.
	y := Term{Coeff: complex(0, 1), X: 1, Z: 1}
	assert.InDelta(t, 1.0, real(y.PauliCoeff()), 1e-14)
	assert.InDelta(t, 0.0, imag(y.PauliCoeff()), 1e-14)

	// Two Y factors: (i)^2 XZ x XZ stored with coeff -1 is +Y0Y1.
	yy := Term{Coeff: -1, X: 3, Z: 3}
	assert.InDelta(t, 1.0, real(yy.PauliCoeff()), 1e-14)

	// X and Z alone are unchanged.
	assert.Equal(t, complex128(0.5), Term{Coeff: 0.5, X: 1}.PauliCoeff())
	assert.Equal(t, complex128(0.5), Term{Coeff: 0.5, Z: 1}.PauliCoeff())
}

func TestTermLabel(t *testing.T) {
	assert.Equal(t, "I", Term{Coeff: 1}.Label(4))
	assert.Equal(t, "Z0 Z2", Term{Coeff: 1, Z: 5}.Label(4))
	assert.Equal(t, "X0 Y1 Y2 X3", Term{Coeff: 1, X: 15, Z: 6}.Label(4))
}

func TestBuilderMergesAndDrops(t *testing.T) {
	b := NewBuilder(2)
	b.Add(Term{Coeff: 0.5, Z: 1})
	b.Add(Term{Coeff: 0.25, Z: 1})
	b.Add(Term{Coeff: 1, X: 2})
	b.Add(Term{Coeff: -1, X: 2}) // cancels to zero
	b.Add(Term{Coeff: 1e-15, Z: 2})

	op := b.Operator()
	require.Len(t, op.Terms, 1)
	assert.Equal(t, Term{Coeff: 0.75, Z: 1}, op.Terms[0])
	assert.Equal(t, 2, op.NumQubits)
}

func TestOperatorSplitAndBound(t *testing.T) {
	b := NewBuilder(2)
	b.Add(Term{Coeff: -1.5})
	b.Add(Term{Coeff: 0.5, Z: 1})
	b.Add(Term{Coeff: -0.25, X: 2})
	op := b.Operator()

	identity, rest := op.Split()
	assert.InDelta(t, -1.5, identity, 1e-14)
	assert.Len(t, rest, 2)
	assert.InDelta(t, 0.75, op.Bound(), 1e-14)
	assert.InDelta(t, 0.0, op.MaxImag(), 1e-14)
}

func TestOperatorMatrix(t *testing.T) {
	// Z0 on one qubit.
	z := &Operator{NumQubits: 1, Terms: []Term{{Coeff: 1, Z: 1}}}
	mz := z.Matrix()
	assert.Equal(t, []complex128{1, 0, 0, -1}, mz)

	// Y0 stored as i*XZ: [[0, -i], [i, 0]].
	y := &Operator{NumQubits: 1, Terms: []Term{{Coeff: complex(0, 1), X: 1, Z: 1}}}
	my := y.Matrix()
	assert.Equal(t, []complex128{0, complex(0, -1), complex(0, 1), 0}, my)

	// Number operator a†a built from the ladder terms is diag(0, 1).
	b := NewBuilder(1)
	for _, tc := range create(0) {
		for _, ta := range annihilate(0) {
			b.Add(tc.Mul(ta))
		}
	}
	mn := b.Operator().Matrix()
	assert.Equal(t, []complex128{0, 0, 0, 1}, mn)
}
