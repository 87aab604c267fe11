package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// CBSPayload is the input record for a complete-basis-set
// extrapolation: one entry per root plus the reference energies the fit
// needs. The JSON keys follow the fitting tool's expectations.
type CBSPayload struct {
	Basis     string    `json:"basis"`
	SCF       float64   `json:"scf"`
	CalcLevel string    `json:"calclevel"`
	CCEnergy  float64   `json:"cc_energy"`
	EOM       []CBSRoot `json:"EOM"`
}

type CBSRoot struct {
	Irrep  CBSIrrep `json:"irrep"`
	Energy float64  `json:"energy"`
	Model  string   `json:"model"`
}

type CBSIrrep struct {
	Name     string `json:"name"`
	EnergyNo int    `json:"energy #"`
}

func NewCBSPayload(doc Document, roots []Root) CBSPayload {
	scf, _ := SCFEnergy(doc)
	cc, _ := CCEnergy(doc)
	payload := CBSPayload{
		Basis:     Basis(doc),
		SCF:       scf,
		CalcLevel: cc.CalcLevel,
		CCEnergy:  cc.Energy,
		EOM:       make([]CBSRoot, 0, len(roots)),
	}
	for _, root := range roots {
		payload.EOM = append(payload.EOM, CBSRoot{
			Irrep: CBSIrrep{
				Name:     root.Irrep.Name,
				EnergyNo: root.Irrep.EnergyNo,
			},
			Energy: root.Energy.Total.AU,
			Model:  root.Model,
		})
	}
	return payload
}

func writeJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

// WriteExcite writes the roots as a %excite* input section for a
// follow-up calculation targeting the same states: per energy-sorted
// root, the count of thresholded singles and one fixed-width line per
// single.
func WriteExcite(w io.Writer, roots []Root, threshold float64) {
	SortByEnergy(roots)
	fmt.Fprintf(w, "%%excite*\n")
	fmt.Fprintf(w, "%d\n", len(roots))
	for i := range roots {
		var singles []Single
		if roots[i].Converged != nil {
			singles = Strong(roots[i].Converged.Singles, threshold)
		}
		fmt.Fprintf(w, "%d\n", len(singles))
		for _, s := range singles {
			fmt.Fprintf(w, "1 %d 0 %d 0 %.3f\n", s.I, s.A, s.Amplitude)
		}
	}
}

// WriteSummary writes a human-readable view of the roots, one line per
// root, adding thresholded singles at level 2 and doubles at level 3.
// Roots without an amplitude decomposition (xvee) get the total energy
// appended instead.
func WriteSummary(w io.Writer, roots []Root, level int, conf Config) {
	SortByEnergy(roots)
	n := len(roots)
	for i := range roots {
		root := &roots[i]
		fmt.Fprintf(w, "%2d: Root %2d/%d: %d %-3s (irrep #%d):",
			root.IDs.No, root.IDs.EnergyNo+1, n,
			root.Irrep.EnergyNo, root.Irrep.Name, root.Irrep.No)
		if exc := root.Energy.Excitation; exc != nil {
			fmt.Fprintf(w, " %6.3f eV", exc.EV)
		}
		if root.Converged == nil {
			fmt.Fprintf(w, " (%6.3f Ha).\n", root.Energy.Total.AU)
			continue
		}
		fmt.Fprintln(w)
		if level < 2 {
			continue
		}
		singles := Strong(root.Converged.Singles, conf.SingleThreshold)
		fmt.Fprintln(w, "Singles:")
		fmt.Fprintf(w, "%d\n", len(singles))
		for _, s := range singles {
			fmt.Fprintf(w, "1 %d 0 %d 0 %.3f\n", s.I, s.A, s.Amplitude)
		}
		if level < 3 {
			continue
		}
		doubles := Strong(root.Converged.Doubles, conf.DoubleThreshold)
		fmt.Fprintln(w, "Doubles:")
		fmt.Fprintf(w, "%d\n", len(doubles))
		for _, d := range doubles {
			fmt.Fprintf(w, "%d %d %d %d %.3f\n",
				d.I, d.J, d.A, d.B, d.Amplitude)
		}
		fmt.Fprint(w, "\n\n")
	}
}
