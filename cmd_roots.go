package main

import (
	"github.com/spf13/cobra"
)

var (
	rootsCBS     bool
	rootsExcite  bool
	rootsJSON    bool
	rootsSummary int
)

var rootsCmd = &cobra.Command{
	Use:   "roots <parsed.json>",
	Short: "Extract EOM roots from the xncc program",
	Long: `Extract the converged EOM roots of xncc, enrich them with ids,
symmetry names, and per-irrep energy numbers, and print them in one or
more of the selected formats.`,
	Args: cobra.ExactArgs(1),
	RunE: runRoots,
}

func init() {
	rootCmd.AddCommand(rootsCmd)
	f := rootsCmd.Flags()
	f.BoolVarP(&rootsCBS, "cbs", "c", false,
		"print EOM roots as an input for a CBS fitting")
	f.BoolVarP(&rootsExcite, "excite", "e", false,
		"print EOM roots as in the extra excite section")
	f.BoolVarP(&rootsJSON, "json", "j", false,
		"print EOM roots as json")
	f.CountVarP(&rootsSummary, "summary", "s",
		"print a summary of EOM roots; repeat for singles and doubles")
}

func runRoots(cmd *cobra.Command, args []string) error {
	doc, err := LoadDocument(args[0])
	if err != nil {
		return err
	}
	roots := NCCCollector{}.Collect(doc)
	AssignIDs(roots)
	if err := ResolveIrreps(roots, BuildIrrepTable(doc)); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if rootsCBS {
		if err := writeJSON(out, NewCBSPayload(doc, roots)); err != nil {
			return err
		}
	}
	if rootsExcite {
		WriteExcite(out, roots, conf.SingleThreshold)
	}
	if rootsJSON {
		if err := writeJSON(out, roots); err != nil {
			return err
		}
	}
	if rootsSummary > 0 {
		WriteSummary(out, roots, rootsSummary, conf)
	}
	return nil
}
