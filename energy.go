package main

import (
	"fmt"
	"strings"
)

// from https://physics.nist.gov/cgi-bin/cuu/Value?hrev
const auToEV = 27.211386245988

// EnergyValue is a single energy in atomic units.
type EnergyValue struct {
	AU float64 `json:"au"`
}

type Excitation struct {
	AU float64 `json:"au"`
	EV float64 `json:"eV"`
}

// Energy holds a state's total energy and, once known, its excitation
// energy. Atomic units are the stored form; eV is always derived from
// au, never taken from the listing.
type Energy struct {
	Total      EnergyValue `json:"total"`
	Excitation *Excitation `json:"excitation,omitempty"`
}

// Basis extracts the basis-set label from the control parameter
// listing: the first whitespace-delimited token of the BASIS value.
func Basis(doc Document) string {
	xjoda, ok := doc.Program("xjoda")
	if !ok {
		fmt.Fprintln(diag, "Warning: xjoda section missing.")
		return ""
	}
	cp := FirstSection(xjoda.Sections, "control parameters")
	if cp == nil {
		fmt.Fprintln(diag, "Warning: control parameters section missing.")
		return ""
	}
	var basis struct {
		Value string `json:"value"`
	}
	if !dataField(cp.Data, "BASIS", &basis) {
		return ""
	}
	fields := strings.Fields(basis.Value)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// SCFEnergy extracts the SCF energy in au from the first SCF program.
func SCFEnergy(doc Document) (float64, bool) {
	scf, ok := doc.Program("xvscf", "xdqcscf")
	if !ok {
		fmt.Fprintln(diag,
			"Warning: SCF program missing. Cannot extract SCF energy.")
		return 0, false
	}
	var energy EnergyValue
	if !dataField(scf.Data, "energy", &energy) {
		return 0, false
	}
	return energy.AU, true
}

// CC holds the ground-state coupled-cluster result of an xncc run.
type CC struct {
	CalcLevel string  // CCSD|CCSDT|CCSDTQ
	Energy    float64 // total CC energy in au
}

// CCEnergy extracts the CC level and total energy from the cc
// subsection of xncc.
func CCEnergy(doc Document) (CC, bool) {
	var ret CC
	xncc, ok := doc.Program("xncc")
	if !ok {
		fmt.Fprintln(diag, "Warning: xncc section was not found.")
		return ret, false
	}
	cc := FirstSection(xncc.Sections, "cc")
	if cc == nil {
		fmt.Fprintln(diag, "Warning: cc subsection of xncc was not found.")
		return ret, false
	}
	dataField(cc.Data, "CC level", &ret.CalcLevel)
	var energy Energy
	dataField(cc.Data, "energy", &energy)
	ret.Energy = energy.Total.AU
	return ret, true
}
