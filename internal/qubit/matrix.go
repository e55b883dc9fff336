package qubit

import (
	"math/bits"
)

// Matrix expands the operator into a dense row-major complex matrix of
// dimension 2^n. Only used by the classical baseline and tests, where the
// register is small.
func (o *Operator) Matrix() []complex128 {
	dim := 1 << o.NumQubits
	m := make([]complex128, dim*dim)
	for _, t := range o.Terms {
		for col := 0; col < dim; col++ {
			amp := t.Coeff
			if bits.OnesCount64(uint64(col)&t.Z)%2 == 1 {
				amp = -amp
			}
			row := col ^ int(t.X)
			m[row*dim+col] += amp
		}
	}
	return m
}
