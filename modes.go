package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// ModeAtom is one atom's displacement in a normal coordinate,
// dimensionless.
type ModeAtom struct {
	Symbol string  `json:"atomic symbol"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
}

// Mode is one normal coordinate: its symmetry, harmonic frequency, and
// per-atom displacements.
type Mode struct {
	Symmetry   string     `json:"symmetry"`
	Frequency  float64    `json:"frequency, cm-1"`
	Kind       string     `json:"kind"`
	Coordinate []ModeAtom `json:"coordinate"`
}

// PointGroup extracts the computational point group from the first
// xjoda run.
func PointGroup(doc Document) string {
	xjoda, ok := doc.Program("xjoda")
	if !ok {
		fmt.Fprintln(diag,
			"Error: xjoda section is missing. Cannot get point group.")
		return ""
	}
	var pg string
	for _, sec := range AllSections(xjoda.Sections, "point group") {
		if !sec.Metadata.OK {
			fmt.Fprintln(diag, "Error: Point group section of xjoda is"+
				" corrupted. Point group might be invalid.")
		}
		dataField(sec.Data, "computational point group", &pg)
	}
	if pg == "" {
		fmt.Fprintln(diag,
			"Error: Cannot collect the point group from xjoda.")
	}
	return pg
}

// NormalCoordinates extracts the normal coordinates from the last xjoda
// run; the last run is the one following the frequency calculation.
func NormalCoordinates(doc Document) []Mode {
	xjoda, ok := doc.LastProgram("xjoda")
	if !ok {
		fmt.Fprintln(diag, "Warning: xjoda section is missing.")
		return nil
	}
	var modes []Mode
	for _, sec := range AllSections(xjoda.Sections, "normal coordinates") {
		if !dataField(sec.Data, "normal coordinates", &modes) {
			fmt.Fprintln(diag,
				"Error: Normal coordinates of xjoda is missing data.")
			return nil
		}
	}
	if modes == nil {
		fmt.Fprintln(diag, "Warning: Normal coordinates missing in xjoda.")
	}
	return modes
}

// SortMulliken orders the modes by the Mulliken convention: by symmetry
// label, then descending frequency. Only defined for the D2h point
// group; anything else is left in listing order.
func SortMulliken(pointGroup string, modes []Mode) {
	if !strings.EqualFold(pointGroup, "d2h") {
		return
	}
	sort.SliceStable(modes, func(i, j int) bool {
		if modes[i].Symmetry != modes[j].Symmetry {
			return modes[i].Symmetry < modes[j].Symmetry
		}
		return modes[i].Frequency > modes[j].Frequency
	})
}

// LowerSymmetries rewrites the symmetry labels in lower case, the form
// the Mulliken numbering is usually quoted in.
func LowerSymmetries(modes []Mode) {
	for i := range modes {
		modes[i].Symmetry = strings.ToLower(modes[i].Symmetry)
	}
}

// XsimMode is a normal coordinate in the form the xsim input expects:
// displacements as bare [x y z] triples.
type XsimMode struct {
	Symmetry   string      `json:"symmetry"`
	Frequency  float64     `json:"frequency, cm-1"`
	Kind       string      `json:"kind"`
	Coordinate [][]float64 `json:"coordinate"`
}

func XsimModes(modes []Mode) []XsimMode {
	ret := make([]XsimMode, 0, len(modes))
	for _, mode := range modes {
		coordinate := make([][]float64, 0, len(mode.Coordinate))
		for _, atom := range mode.Coordinate {
			coordinate = append(coordinate,
				[]float64{atom.X, atom.Y, atom.Z})
		}
		ret = append(ret, XsimMode{
			Symmetry:   mode.Symmetry,
			Frequency:  mode.Frequency,
			Kind:       mode.Kind,
			Coordinate: coordinate,
		})
	}
	return ret
}

// WriteModeTable writes the mode summary, one line per mode, adding the
// per-atom displacements at the second verbosity level. Mulliken
// numbering is 1-based.
func WriteModeTable(w io.Writer, pointGroup string, modes []Mode,
	verbose int, mulliken bool) {
	fmt.Fprintf(w, "Computational point group: %s\n", pointGroup)
	fmt.Fprintln(w, "Normal Coordinates:")
	for id, mode := range modes {
		if mulliken {
			id++
		}
		fmt.Fprintf(w, "%3d: %-3s %s,%8.2f\n",
			id, mode.Symmetry, title(mode.Kind), mode.Frequency)
		if verbose > 1 {
			for _, atom := range mode.Coordinate {
				fmt.Fprintf(w, "%3s  %7.4f %7.4f %7.4f\n",
					atom.Symbol, atom.X, atom.Y, atom.Z)
			}
		}
	}
}

// WriteModesXYZ writes every mode as an xyz-format frame (jmol can
// display it): geometry in Å zipped with the dimensionless
// displacements.
func WriteModesXYZ(w io.Writer, geo Geometry, modes []Mode, mulliken bool) {
	for id, mode := range modes {
		if mulliken {
			id++
		}
		fmt.Fprintf(w, "%d\n", len(geo.Atoms))
		fmt.Fprintf(w, "%3s. %s mode, %v cm-1, %s\n",
			strconv.Itoa(id), title(mode.Kind), mode.Frequency,
			mode.Symmetry)
		for i, atom := range geo.Atoms {
			if i >= len(mode.Coordinate) {
				break
			}
			vib := mode.Coordinate[i]
			if atom.Symbol != vib.Symbol {
				fmt.Fprintf(diag, "Warning: Mismatch between the geometry"+
					" atom order and the vibrational atom order in %s"+
					" and %s.\n", atom.Symbol, vib.Symbol)
			}
			fmt.Fprintf(w, "%-2s", atom.Symbol)
			for _, pos := range atom.Coordinates {
				fmt.Fprintf(w, " %9.6f", pos)
			}
			fmt.Fprintf(w, " %8.5f %8.5f %8.5f\n", vib.X, vib.Y, vib.Z)
		}
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
