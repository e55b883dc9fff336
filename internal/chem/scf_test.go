package chem

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSCFH2(t *testing.T) {
	// Szabo & Ostlund: H2/STO-3G at R = 1.4 Bohr has E_HF = -1.1167 Hartree.
	res, err := RunSCF(h2At(1.4), SCFOptions{Basis: "sto-3g"})
	require.NoError(t, err)

	assert.InDelta(t, -1.1167, res.Energy, 2e-3)
	assert.InDelta(t, 1.0/1.4, res.NuclearRepulsion, 1e-10)
	assert.InDelta(t, res.Energy, res.Electronic+res.NuclearRepulsion, 1e-12)
	assert.Equal(t, 1, res.NOcc)
	assert.Greater(t, res.Iterations, 1)
	require.Len(t, res.OrbitalEnergies, 2)
	assert.Less(t, res.OrbitalEnergies[0], res.OrbitalEnergies[1])
	// Bonding orbital occupied, antibonding above zero.
	assert.Less(t, res.OrbitalEnergies[0], 0.0)
	assert.Greater(t, res.OrbitalEnergies[1], 0.0)
}

func TestRunSCFVariational(t *testing.T) {
	small, err := RunSCF(h2At(1.4), SCFOptions{Basis: "sto-3g"})
	require.NoError(t, err)
	large, err := RunSCF(h2At(1.4), SCFOptions{Basis: "6-31g"})
	require.NoError(t, err)
	// A bigger basis can only lower the variational HF energy.
	assert.Less(t, large.Energy, small.Energy)
}

func TestRunSCFHeHPlus(t *testing.T) {
	p, err := LookupPreset("HeH+")
	require.NoError(t, err)
	res, err := RunSCF(p.Molecule, SCFOptions{Basis: "sto-3g"})
	require.NoError(t, err)
	// Two electrons like H2; mean field lands near the preset reference.
	assert.InDelta(t, p.ReferenceEnergy, res.Energy, 0.1)
	assert.Equal(t, 1, res.NOcc)
}

func TestRunSCFRejectsOpenShell(t *testing.T) {
	m := Molecule{Name: "H", Atoms: []Atom{{Element: "H"}}, Multiplicity: 2}
	_, err := RunSCF(m, SCFOptions{})
	assert.Error(t, err)
}

func TestRunSCFUnknownBasis(t *testing.T) {
	_, err := RunSCF(h2At(1.4), SCFOptions{Basis: "cc-pvtz"})
	assert.Error(t, err)
}

func TestRunSCFNotConverged(t *testing.T) {
	_, err := RunSCF(h2At(1.4), SCFOptions{Basis: "sto-3g", MaxIterations: 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSCFNotConverged))
}

func TestMOIntegrals(t *testing.T) {
	res, err := RunSCF(h2At(1.4), SCFOptions{Basis: "sto-3g"})
	require.NoError(t, err)
	hmo, gmo := res.MOIntegrals()

	// The closed-shell energy expression in the MO basis must reproduce the
	// converged electronic energy: E = 2 h_00 + (00|00) for one occupied MO.
	e := 2*hmo.At(0, 0) + gmo.At(0, 0, 0, 0)
	assert.InDelta(t, res.Electronic, e, 1e-8)

	// MO integrals keep the chemists'-notation symmetry.
	assert.InDelta(t, gmo.At(0, 1, 0, 1), gmo.At(1, 0, 1, 0), 1e-10)
	assert.InDelta(t, hmo.At(0, 1), hmo.At(1, 0), 1e-10)
}
