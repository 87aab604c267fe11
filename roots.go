package main

import (
	"fmt"
)

// Irrep is a state's symmetry assignment. No is CFOUR's irrep number;
// Name and EnergyNo are filled in by enrichment.
type Irrep struct {
	No       int    `json:"#"`
	Name     string `json:"name,omitempty"`
	EnergyNo int    `json:"energy #"`
}

// IDs are bookkeeping numbers assigned to each root: No is the
// insertion order, EnergyNo the rank after sorting by total energy.
type IDs struct {
	No       int `json:"#"`
	EnergyNo int `json:"energy #"`
}

// Single is one single-excitation amplitude: occupied orbital I to
// virtual orbital A.
type Single struct {
	I         int     `json:"I"`
	A         int     `json:"A"`
	Amplitude float64 `json:"amplitude"`
}

// Double is one double-excitation amplitude: I,J to A,B.
type Double struct {
	I         int     `json:"I"`
	J         int     `json:"J"`
	A         int     `json:"A"`
	B         int     `json:"B"`
	Amplitude float64 `json:"amplitude"`
}

func (s Single) amp() float64 { return s.Amplitude }
func (d Double) amp() float64 { return d.Amplitude }

// Converged is the amplitude decomposition of a converged root.
type Converged struct {
	Singles []Single `json:"singles"`
	Doubles []Double `json:"doubles"`
}

// Root describes one excited electronic state. Converged is nil for
// solvers that do not report the amplitude decomposition (xvee).
type Root struct {
	Model     string     `json:"model"`
	Irrep     Irrep      `json:"irrep"`
	Converged *Converged `json:"converged root,omitempty"`
	Energy    Energy     `json:"energy"`
	IDs       IDs        `json:"ids"`
}

// Collector extracts EOM roots from one of CFOUR's EOM solvers.
type Collector interface {
	Collect(doc Document) []Root
}

// NCCCollector reads the eom sections of xncc, where roots are grouped
// by irrep and each converged state is a nested "eom root" block.
type NCCCollector struct{}

func (NCCCollector) Collect(doc Document) []Root {
	var roots []Root
	xncc, ok := doc.Program("xncc")
	if ok {
		for ei := range xncc.Sections {
			eom := &xncc.Sections[ei]
			if eom.Name != "eom" {
				continue
			}
			for ii := range eom.Sections {
				irrep := &eom.Sections[ii]
				if irrep.Name != "irrep" {
					continue
				}
				var irrepNo int
				dataField(irrep.Data, "#", &irrepNo)
				for ri := range irrep.Sections {
					sec := &irrep.Sections[ri]
					if sec.Name != "eom root" {
						continue
					}
					if root, ok := nccRoot(sec, irrepNo); ok {
						roots = append(roots, root)
					}
				}
			}
		}
	}
	if len(roots) == 0 {
		fmt.Fprintln(diag, "Info: No xncc EOM roots found.")
	}
	return roots
}

// nccRoot reads one "eom root" block. A fully-formed root has both a
// converged-amplitudes child and an energy child; anything less is
// skipped.
func nccRoot(sec *Section, irrepNo int) (Root, bool) {
	if !sec.Metadata.OK {
		start, end := sec.Span()
		fmt.Fprintf(diag, "Warning: eom root section (lines %d-%d)"+
			" contains errors. Extracting anyway.\n", start, end)
	}
	convSec := FirstSection(sec.Sections, "converged root")
	energySec := FirstSection(sec.Sections, "EOM energy")
	if convSec == nil || energySec == nil {
		return Root{}, false
	}
	var conv Converged
	dataField(convSec.Data, "singles", &conv.Singles)
	dataField(convSec.Data, "doubles", &conv.Doubles)
	var energy Energy
	dataField(energySec.Data, "total", &energy.Total)
	var exc Excitation
	if dataField(energySec.Data, "excitation", &exc) {
		// recompute eV from au rather than trusting the listing
		exc.EV = exc.AU * auToEV
		energy.Excitation = &exc
	}
	var model string
	dataField(sec.Data, "model", &model)
	return Root{
		Model:     model,
		Irrep:     Irrep{No: irrepNo},
		Converged: &conv,
		Energy:    energy,
	}, true
}

// VEECollector reads the flat "eom solution" list of xvee. Solutions
// marked not-ok are dropped with a diagnostic; an invalid solution must
// never surface as a valid one. xvee reports total energies only, so
// excitation energies are computed later against a CC reference energy.
type VEECollector struct{}

func (VEECollector) Collect(doc Document) []Root {
	var roots []Root
	xvee, ok := doc.Program("xvee")
	if ok {
		for i := range xvee.Sections {
			sec := &xvee.Sections[i]
			if sec.Name != "eom solution" {
				continue
			}
			if !sec.Metadata.OK {
				start, end := sec.Span()
				fmt.Fprintf(diag, "Warning: Cannot read from an invalid"+
					" section %s (lines %d-%d).\n", sec.Name, start, end)
				continue
			}
			var (
				model  string
				irrep  Irrep
				energy Energy
			)
			dataField(sec.Data, "model", &model)
			dataField(sec.Data, "irrep", &irrep)
			dataField(sec.Data, "energy", &energy)
			roots = append(roots, Root{
				Model:  model,
				Irrep:  Irrep{No: irrep.No},
				Energy: Energy{Total: energy.Total},
			})
		}
	}
	if len(roots) == 0 {
		fmt.Fprintln(diag, "Info: No xvee EOM roots found.")
	}
	return roots
}

// CollectCC extracts the total CC energy from every xvcc run, in
// document order. The first one is the ground-state reference for xvee
// excitation energies.
func CollectCC(doc Document) []float64 {
	var energies []float64
	for _, xvcc := range doc.Programs("xvcc") {
		for i := range xvcc.Sections {
			sec := &xvcc.Sections[i]
			if sec.Name != "A miracle" {
				continue
			}
			if !sec.Metadata.OK {
				start, end := sec.Span()
				fmt.Fprintf(diag, "Warning: Cannot read from an invalid"+
					" section %s (lines %d-%d).\n", sec.Name, start, end)
				continue
			}
			var energy Energy
			if dataField(sec.Data, "energy", &energy) {
				energies = append(energies, energy.Total.AU)
			}
		}
	}
	if len(energies) == 0 {
		fmt.Fprintln(diag, "Info: No CC total energies found in xvcc.")
	}
	return energies
}
