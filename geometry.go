package main

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// from https://physics.nist.gov/cgi-bin/cuu/Value?bohrrada0
const auToAngstrom = 0.529177

// Atom is one center of a computational geometry, coordinates in au.
// Dummy (X) and ghost (GH) centers appear here too.
type Atom struct {
	Symbol       string    `json:"Z-matrix Symbol"`
	AtomicNumber int       `json:"Atomic Number"`
	Coordinates  []float64 `json:"Coordinates"`
}

type Geometry struct {
	Atoms []Atom `json:"geometry a.u."`
	Lines string `json:"output lines"`
}

// Geometries returns one geometry per QCOMP listing, in document order.
// A single job can list several, e.g. the steps of an optimization.
func Geometries(doc Document) []Geometry {
	var ret []Geometry
	for _, xjoda := range doc.Programs("xjoda") {
		var status int
		if dataField(xjoda.Data, "exit status", &status) && status != 0 {
			fmt.Fprintf(diag,
				"Warning: xjoda finished with exit code %d\n", status)
		}
		for _, sec := range AllSections(xjoda.Sections, "qcomp") {
			var atoms []Atom
			dataField(sec.Data, "geometry a.u.", &atoms)
			start, end := sec.Span()
			ret = append(ret, Geometry{
				Atoms: atoms,
				Lines: fmt.Sprintf("%d – %d", start, end),
			})
		}
	}
	return ret
}

// ToAngstrom returns a copy of g with the coordinates in Å.
func (g Geometry) ToAngstrom() Geometry {
	atoms := make([]Atom, len(g.Atoms))
	for i, atom := range g.Atoms {
		coords := make([]float64, len(atom.Coordinates))
		copy(coords, atom.Coordinates)
		floats.Scale(auToAngstrom, coords)
		atom.Coordinates = coords
		atoms[i] = atom
	}
	return Geometry{Atoms: atoms, Lines: g.Lines}
}

// TrimNonAtoms returns a copy of g without dummy and ghost centers.
func (g Geometry) TrimNonAtoms() Geometry {
	atoms := make([]Atom, 0, len(g.Atoms))
	for _, atom := range g.Atoms {
		if atom.Symbol == "X" || atom.Symbol == "GH" {
			continue
		}
		atoms = append(atoms, atom)
	}
	return Geometry{Atoms: atoms, Lines: g.Lines}
}
