package main

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
)

// GradientComponent is the energy gradient along one normal mode at the
// geometry the gradient calculation ran on.
type GradientComponent struct {
	Mode      int     `json:"mode #"`
	Frequency float64 `json:"frequency, cm-1"`
	Gradient  float64 `json:"gradient, cm-1"`
}

// GradientReport pairs the normal-coordinate gradient with the EOM
// states the gradient calculation targeted.
type GradientReport struct {
	Gradient []GradientComponent `json:"gradient"`
	States   []Root              `json:"EOM states"`
}

// Gradient extracts the normal-coordinate gradient from the last xjoda
// run.
func Gradient(doc Document) []GradientComponent {
	xjoda, ok := doc.LastProgram("xjoda")
	if !ok {
		fmt.Fprintln(diag, "Warning: xjoda section is missing.")
		return nil
	}
	var ret []GradientComponent
	for _, sec := range AllSections(xjoda.Sections,
		"normal coordinate gradient") {
		var components []struct {
			Mode  int     `json:"mode #"`
			Omega float64 `json:"omega"`
			DEdQ  float64 `json:"dE/dQ, cm-1"`
		}
		if !dataField(sec.Data, "Normal Coordinate Gradient", &components) {
			fmt.Fprintln(diag,
				"Error: Normal coordinate gradient missing in xjoda.")
			return nil
		}
		for _, c := range components {
			ret = append(ret, GradientComponent{
				Mode:      c.Mode,
				Frequency: c.Omega,
				Gradient:  c.DEdQ,
			})
		}
	}
	return ret
}

// GradientNorm is the 2-norm of the gradient vector in cm-1.
func GradientNorm(gradient []GradientComponent) float64 {
	if len(gradient) == 0 {
		return 0
	}
	data := make([]float64, len(gradient))
	for i, c := range gradient {
		data[i] = c.Gradient
	}
	return mat.Norm(mat.NewVecDense(len(data), data), 2)
}

// WriteGradientReport writes a human-readable view of the combined
// gradient payload.
func WriteGradientReport(w io.Writer, report GradientReport) {
	fmt.Fprintln(w, "EOM root(s) related to the gradient:")
	for i := range report.States {
		writeJSON(w, report.States[i])
	}
	fmt.Fprintln(w, "The normal coordinate gradient components:")
	for _, c := range report.Gradient {
		fmt.Fprintf(w, "mode %3d: %10.2f cm-1, dE/dQ %10.2f cm-1\n",
			c.Mode, c.Frequency, c.Gradient)
	}
	fmt.Fprintf(w, "|dE/dQ| = %.2f cm-1\n", GradientNorm(report.Gradient))
}
