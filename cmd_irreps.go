package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var irrepsCmd = &cobra.Command{
	Use:   "irreps <parsed.json>",
	Short: "Print the irrep number to name table",
	Long: `Print the translation from the irrep numbers CFOUR uses to the
symmetry names (e.g. Ag, or B3u), built from the SCF MO listings.`,
	Args: cobra.ExactArgs(1),
	RunE: runIrreps,
}

func init() {
	rootCmd.AddCommand(irrepsCmd)
}

func runIrreps(cmd *cobra.Command, args []string) error {
	doc, err := LoadDocument(args[0])
	if err != nil {
		return err
	}
	table := BuildIrrepTable(doc)
	nos := make([]int, 0, len(table))
	for no := range table {
		nos = append(nos, no)
	}
	sort.Ints(nos)
	out := cmd.OutOrStdout()
	for _, no := range nos {
		fmt.Fprintf(out, "%2d: %s\n", no, table[no])
	}
	return nil
}
