package solver

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perclft/groundstate/internal/chem"
	"github.com/perclft/groundstate/internal/qubit"
)

func diagonalProblem(terms []qubit.Term, numQubits int, initial uint64) *qubit.Problem {
	b := qubit.NewBuilder(numQubits)
	for _, t := range terms {
		b.Add(t)
	}
	return &qubit.Problem{
		NumQubits:    numQubits,
		Operator:     b.Operator(),
		InitialState: initial,
	}
}

func h2ProblemAt(t *testing.T, distance float64) *qubit.Problem {
	t.Helper()
	p, err := chem.LookupPreset("H2")
	require.NoError(t, err)
	mol, err := p.Molecule.WithBondLength(distance)
	require.NoError(t, err)
	scf, err := chem.RunSCF(mol, chem.SCFOptions{Basis: "sto-3g"})
	require.NoError(t, err)
	prob, err := qubit.BuildProblem(scf, qubit.MappingJordanWigner, qubit.InitialHartreeFock)
	require.NoError(t, err)
	return prob
}

func TestExactSingleQubit(t *testing.T) {
	// H = 2I - 3 Z0 has eigenvalues -1 and 5.
	prob := diagonalProblem([]qubit.Term{
		{Coeff: 2},
		{Coeff: -3, Z: 1},
	}, 1, 0)
	prob.NuclearRepulsion = 0.5

	res, err := (&Exact{}).Solve(context.Background(), prob)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, res.Electronic, 1e-12)
	assert.InDelta(t, -0.5, res.Energy, 1e-12)
}

func TestExactCoupledQubits(t *testing.T) {
	// H = Z0 + Z1 + 0.5 X0X1: the |00>,|11> block gives the ground
	// eigenvalue -sqrt(4.25).
	prob := diagonalProblem([]qubit.Term{
		{Coeff: 1, Z: 1},
		{Coeff: 1, Z: 2},
		{Coeff: 0.5, X: 3},
	}, 2, 0)

	res, err := (&Exact{}).Solve(context.Background(), prob)
	require.NoError(t, err)
	assert.InDelta(t, -math.Sqrt(4.25), res.Electronic, 1e-12)
}

func TestExactH2GroundState(t *testing.T) {
	prob := h2ProblemAt(t, 0.735)
	res, err := (&Exact{}).Solve(context.Background(), prob)
	require.NoError(t, err)

	// FCI reference for H2/STO-3G at the equilibrium bond length.
	assert.InDelta(t, -1.1373, res.Energy, 2e-3)
	// Correlation: the exact ground state sits below mean field.
	assert.Less(t, res.Energy, prob.HartreeFock)
}

func TestExactCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := (&Exact{}).Solve(ctx, h2ProblemAt(t, 0.735))
	assert.Error(t, err)
}
