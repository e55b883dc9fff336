package qubit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perclft/groundstate/internal/chem"
)

func h2Problem(t *testing.T, distance float64) (*chem.SCFResult, *Problem) {
	t.Helper()
	p, err := chem.LookupPreset("H2")
	require.NoError(t, err)
	mol, err := p.Molecule.WithBondLength(distance)
	require.NoError(t, err)
	scf, err := chem.RunSCF(mol, chem.SCFOptions{Basis: "sto-3g"})
	require.NoError(t, err)
	prob, err := BuildProblem(scf, MappingJordanWigner, InitialHartreeFock)
	require.NoError(t, err)
	return scf, prob
}

func TestLadderAlgebra(t *testing.T) {
	// {a_p, a†_p} = 1, expressed through the JW images.
	b := NewBuilder(2)
	for _, ta := range annihilate(1) {
		for _, tc := range create(1) {
			b.Add(ta.Mul(tc))
		}
	}
	for _, tc := range create(1) {
		for _, ta := range annihilate(1) {
			b.Add(tc.Mul(ta))
		}
	}
	op := b.Operator()
	require.Len(t, op.Terms, 1)
	assert.Equal(t, Term{Coeff: 1}, op.Terms[0])

	// a_p a_p = 0.
	b = NewBuilder(2)
	for _, t1 := range annihilate(0) {
		for _, t2 := range annihilate(0) {
			b.Add(t1.Mul(t2))
		}
	}
	assert.Empty(t, b.Operator().Terms)
}

func TestBuildProblemH2(t *testing.T) {
	scf, prob := h2Problem(t, 0.735)

	assert.Equal(t, 4, prob.NumQubits)
	assert.Equal(t, 2, prob.OccupationCount())
	// Blocked ordering: spatial orbital 0 occupied for both spins, so bits
	// 0 and 2 are set.
	assert.Equal(t, uint64(0b0101), prob.InitialState)
	assert.Equal(t, scf.Energy, prob.HartreeFock)
	assert.InDelta(t, scf.NuclearRepulsion, prob.NuclearRepulsion, 1e-12)

	// The H2/STO-3G Hamiltonian has the textbook 15 Pauli strings.
	assert.Len(t, prob.Operator.Terms, 15)
	assert.Less(t, prob.Operator.MaxImag(), 1e-10)
}

func TestBuildProblemHFExpectation(t *testing.T) {
	// <HF|H|HF> must reproduce the SCF electronic energy exactly; the
	// determinant is a computational basis state, so it is a diagonal entry
	// of the qubit Hamiltonian.
	scf, prob := h2Problem(t, 0.9)

	dim := 1 << prob.NumQubits
	m := prob.Operator.Matrix()
	idx := int(prob.InitialState)
	diag := m[idx*dim+idx]
	assert.InDelta(t, scf.Electronic, real(diag), 1e-8)
	assert.InDelta(t, 0.0, imag(diag), 1e-10)
}

func TestBuildProblemRejectsUnknownOptions(t *testing.T) {
	scf, _ := h2Problem(t, 0.735)

	_, err := BuildProblem(scf, "bravyi-kitaev", InitialHartreeFock)
	assert.Error(t, err)
	_, err = BuildProblem(scf, MappingJordanWigner, "random")
	assert.Error(t, err)
}
