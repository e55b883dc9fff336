// Molecular geometry and preset library.
// Energies are in Hartree, geometry at the API surface is in Angstrom.

package chem

import (
	"fmt"
	"math"
)

// AngstromToBohr converts lengths to atomic units.
const AngstromToBohr = 1.8897259886

// atomicNumbers covers the elements the s-orbital basis sets support.
var atomicNumbers = map[string]int{
	"H":  1,
	"He": 2,
}

type Atom struct {
	Element string  `json:"element" yaml:"element"`
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	Z       float64 `json:"z" yaml:"z"`
}

// AtomicNumber returns the nuclear charge of the atom's element.
func (a Atom) AtomicNumber() (int, error) {
	z, ok := atomicNumbers[a.Element]
	if !ok {
		return 0, fmt.Errorf("unsupported element %q", a.Element)
	}
	return z, nil
}

type Molecule struct {
	Name         string `json:"name" yaml:"name"`
	Atoms        []Atom `json:"atoms" yaml:"atoms"`
	Charge       int    `json:"charge" yaml:"charge"`
	Multiplicity int    `json:"multiplicity" yaml:"multiplicity"`
}

// NumElectrons counts electrons after applying the molecular charge.
func (m Molecule) NumElectrons() (int, error) {
	n := 0
	for _, a := range m.Atoms {
		z, err := a.AtomicNumber()
		if err != nil {
			return 0, err
		}
		n += z
	}
	return n - m.Charge, nil
}

// WithBondLength returns a copy of a diatomic molecule with the second atom
// placed at (0, 0, d), d in Angstrom. Sweep tasks use this to inject their
// geometry into a cloned configuration.
func (m Molecule) WithBondLength(d float64) (Molecule, error) {
	if len(m.Atoms) != 2 {
		return Molecule{}, fmt.Errorf("bond length sweep needs a diatomic, %s has %d atoms", m.Name, len(m.Atoms))
	}
	out := m
	out.Atoms = make([]Atom, 2)
	out.Atoms[0] = Atom{Element: m.Atoms[0].Element}
	out.Atoms[1] = Atom{Element: m.Atoms[1].Element, Z: d}
	return out, nil
}

// NuclearRepulsion returns the internuclear Coulomb energy in Hartree.
func (m Molecule) NuclearRepulsion() (float64, error) {
	e := 0.0
	for i := range m.Atoms {
		zi, err := m.Atoms[i].AtomicNumber()
		if err != nil {
			return 0, err
		}
		for j := 0; j < i; j++ {
			zj, err := m.Atoms[j].AtomicNumber()
			if err != nil {
				return 0, err
			}
			dx := (m.Atoms[i].X - m.Atoms[j].X) * AngstromToBohr
			dy := (m.Atoms[i].Y - m.Atoms[j].Y) * AngstromToBohr
			dz := (m.Atoms[i].Z - m.Atoms[j].Z) * AngstromToBohr
			r := math.Sqrt(dx*dx + dy*dy + dz*dz)
			if r == 0 {
				return 0, fmt.Errorf("atoms %d and %d coincide", i, j)
			}
			e += float64(zi) * float64(zj) / r
		}
	}
	return e, nil
}

// ------------------------------------------------------------------
// Preset library
// ------------------------------------------------------------------

type Preset struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Formula         string   `json:"formula"`
	Molecule        Molecule `json:"molecule"`
	EquilibriumBond float64  `json:"equilibrium_bond"` // Angstrom
	ReferenceEnergy float64  `json:"reference_energy"` // exact FCI energy, Hartree
	Description     string   `json:"description"`
}

var presets = map[string]Preset{
	"H2": {
		ID:      "H2",
		Name:    "Hydrogen Molecule",
		Formula: "H2",
		Molecule: Molecule{
			Name: "H2",
			Atoms: []Atom{
				{Element: "H"},
				{Element: "H", Z: 0.735},
			},
			Charge:       0,
			Multiplicity: 1,
		},
		EquilibriumBond: 0.735,
		ReferenceEnergy: -1.1372838, // FCI in STO-3G at 0.735 A
		Description:     "Hydrogen molecule, the standard dissociation-curve benchmark",
	},
	"HeH+": {
		ID:      "HeH+",
		Name:    "Helium Hydride Cation",
		Formula: "HeH+",
		Molecule: Molecule{
			Name: "HeH+",
			Atoms: []Atom{
				{Element: "He"},
				{Element: "H", Z: 0.772},
			},
			Charge:       1,
			Multiplicity: 1,
		},
		EquilibriumBond: 0.772,
		ReferenceEnergy: -2.8552,
		Description:     "Simplest heteronuclear molecule, two electrons like H2",
	},
}

// LookupPreset returns a molecule preset by ID.
func LookupPreset(id string) (Preset, error) {
	p, ok := presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("unknown molecule preset %q", id)
	}
	return p, nil
}

// Presets lists the available preset IDs.
func Presets() []string {
	ids := make([]string, 0, len(presets))
	for id := range presets {
		ids = append(ids, id)
	}
	return ids
}
