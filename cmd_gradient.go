package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	gradientJSON    bool
	gradientVerbose int
)

var gradientCmd = &cobra.Command{
	Use:   "gradient <parsed.json>",
	Short: "Extract the normal-coordinate gradient",
	Long: `Extract the energy gradient along the normal coordinates from the
last xjoda run, together with the EOM states the gradient calculation
targeted.`,
	Args: cobra.ExactArgs(1),
	RunE: runGradient,
}

func init() {
	rootCmd.AddCommand(gradientCmd)
	f := gradientCmd.Flags()
	f.BoolVarP(&gradientJSON, "json", "j", false,
		"print the normal coordinate gradient as json")
	f.CountVarP(&gradientVerbose, "verbose", "v",
		"print a summary")
}

func runGradient(cmd *cobra.Command, args []string) error {
	doc, err := LoadDocument(args[0])
	if err != nil {
		return err
	}
	var states []Root
	for _, collector := range []Collector{NCCCollector{}, VEECollector{}} {
		states = append(states, collector.Collect(doc)...)
	}
	if len(states) == 0 {
		fmt.Fprintln(diag,
			"Warning: No EOM roots detected in the gradient calculation")
	}
	report := GradientReport{
		Gradient: Gradient(doc),
		States:   states,
	}
	out := cmd.OutOrStdout()
	if gradientJSON {
		if err := writeJSON(out, report); err != nil {
			return err
		}
	}
	if gradientVerbose > 0 {
		WriteGradientReport(out, report)
	}
	return nil
}
