package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	xveeJSON    bool
	xveeSummary int
)

var xveeCmd = &cobra.Command{
	Use:   "xvee <parsed.json>",
	Short: "Extract EOM roots from the xvee program",
	Long: `Extract the EOM solutions of xvee. xvee lists total energies only,
so the excitation energies are computed against the first CC total
energy found in xvcc. Solutions the parser flagged as invalid are
dropped with a diagnostic.`,
	Args: cobra.ExactArgs(1),
	RunE: runXVEE,
}

func init() {
	rootCmd.AddCommand(xveeCmd)
	f := xveeCmd.Flags()
	f.BoolVarP(&xveeJSON, "json", "j", false,
		"print EOM roots as json")
	f.CountVarP(&xveeSummary, "summary", "s",
		"print a summary of EOM roots")
}

func runXVEE(cmd *cobra.Command, args []string) error {
	doc, err := LoadDocument(args[0])
	if err != nil {
		return err
	}
	roots := VEECollector{}.Collect(doc)
	AssignIDs(roots)
	if err := ResolveIrreps(roots, BuildIrrepTable(doc)); err != nil {
		return err
	}
	if ccs := CollectCC(doc); len(ccs) > 0 {
		AddExcitation(roots, ccs[0])
	} else {
		fmt.Fprintln(diag, "Warning: No CC reference energy."+
			" Excitation energies are unavailable.")
	}
	out := cmd.OutOrStdout()
	if xveeJSON {
		if err := writeJSON(out, roots); err != nil {
			return err
		}
	}
	if xveeSummary > 0 {
		WriteSummary(out, roots, xveeSummary, conf)
	}
	return nil
}
