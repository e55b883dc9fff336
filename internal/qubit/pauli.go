// Pauli-string algebra on bitmasks.
//
// A term is coeff * X^x Z^z where x and z are qubit bitmasks and the Z factors
// act first. The conventional Pauli string (with Y on qubits set in both
// masks) is i^{|x&z|} X^x Z^z, so the Pauli coefficient of a term differs from
// Coeff by a power of i; PauliCoeff accounts for that.

package qubit

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"
	"sort"
	"strings"
)

type Term struct {
	Coeff complex128
	X, Z  uint64
}

// iPow returns i^n for n >= 0.
func iPow(n int) complex128 {
	switch n % 4 {
	case 0:
		return 1
	case 1:
		return complex(0, 1)
	case 2:
		return -1
	default:
		return complex(0, -1)
	}
}

// Mul composes two terms, t acting after u is not implied: the product is
// t*u as operators (t on the left).
func (t Term) Mul(u Term) Term {
	sign := complex128(1)
	if bits.OnesCount64(t.Z&u.X)%2 == 1 {
		sign = -1
	}
	return Term{
		Coeff: t.Coeff * u.Coeff * sign,
		X:     t.X ^ u.X,
		Z:     t.Z ^ u.Z,
	}
}

// PauliCoeff returns the coefficient of the term when written against the
// conventional Pauli string with Y operators. The string is P = i^yc X^x Z^z
// with yc the number of Y positions, so the coefficient picks up i^{-yc}.
// Real for Hermitian operators.
func (t Term) PauliCoeff() complex128 {
	yc := bits.OnesCount64(t.X & t.Z)
	return t.Coeff * cmplx.Conj(iPow(yc))
}

// ApplyTo accumulates t*src into dst. Both vectors must have length 2^n with
// n covering every qubit in the masks.
func (t Term) ApplyTo(dst, src []complex128) {
	for j := range src {
		if src[j] == 0 {
			continue
		}
		amp := t.Coeff * src[j]
		if bits.OnesCount64(uint64(j)&t.Z)%2 == 1 {
			amp = -amp
		}
		dst[j^int(t.X)] += amp
	}
}

// Label renders the term's Pauli string, e.g. "X0 Y1 Y2 X3" or "I".
func (t Term) Label(numQubits int) string {
	if t.X == 0 && t.Z == 0 {
		return "I"
	}
	var parts []string
	for q := 0; q < numQubits; q++ {
		bit := uint64(1) << q
		switch {
		case t.X&bit != 0 && t.Z&bit != 0:
			parts = append(parts, fmt.Sprintf("Y%d", q))
		case t.X&bit != 0:
			parts = append(parts, fmt.Sprintf("X%d", q))
		case t.Z&bit != 0:
			parts = append(parts, fmt.Sprintf("Z%d", q))
		}
	}
	return strings.Join(parts, " ")
}

// Operator is a sum of Pauli terms over a fixed qubit register.
type Operator struct {
	NumQubits int
	Terms     []Term
}

// Builder accumulates terms, merging duplicates.
type Builder struct {
	n     int
	terms map[[2]uint64]complex128
}

func NewBuilder(numQubits int) *Builder {
	return &Builder{n: numQubits, terms: make(map[[2]uint64]complex128)}
}

func (b *Builder) Add(t Term) {
	key := [2]uint64{t.X, t.Z}
	b.terms[key] += t.Coeff
}

// Operator freezes the builder, dropping negligible terms and ordering the
// rest deterministically.
func (b *Builder) Operator() *Operator {
	const eps = 1e-12
	op := &Operator{NumQubits: b.n}
	for key, c := range b.terms {
		if cmplx.Abs(c) < eps {
			continue
		}
		op.Terms = append(op.Terms, Term{Coeff: c, X: key[0], Z: key[1]})
	}
	sort.Slice(op.Terms, func(i, j int) bool {
		if op.Terms[i].X != op.Terms[j].X {
			return op.Terms[i].X < op.Terms[j].X
		}
		return op.Terms[i].Z < op.Terms[j].Z
	})
	return op
}

// Split separates the identity coefficient from the remaining terms.
func (o *Operator) Split() (identity float64, rest []Term) {
	for _, t := range o.Terms {
		if t.X == 0 && t.Z == 0 {
			identity += real(t.Coeff)
			continue
		}
		rest = append(rest, t)
	}
	return identity, rest
}

// Bound returns a spectral bound on the non-identity part: every eigenvalue
// of the operator minus its identity coefficient lies in [-Bound, Bound].
func (o *Operator) Bound() float64 {
	sum := 0.0
	for _, t := range o.Terms {
		if t.X == 0 && t.Z == 0 {
			continue
		}
		sum += cmplx.Abs(t.Coeff)
	}
	return sum
}

// MaxImag reports the largest imaginary part over the Pauli coefficients, a
// hermiticity check for operators that should be real sums of Pauli strings.
func (o *Operator) MaxImag() float64 {
	max := 0.0
	for _, t := range o.Terms {
		if im := math.Abs(imag(t.PauliCoeff())); im > max {
			max = im
		}
	}
	return max
}
