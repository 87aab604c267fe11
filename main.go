package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	conf    Config
)

var rootCmd = &cobra.Command{
	Use:   "cfour",
	Short: "Post-process parsed CFOUR output",
	Long: `cfour works over the JSON document produced by the CFOUR output
parser: it extracts EOM roots, normal coordinates, and gradients,
resolves irrep numbers to symmetry names, and reprints the results in
the formats the follow-up tools expect. Data goes to stdout,
diagnostics to stderr.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		conf, err = LoadConfig(cfgFile)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"TOML config file overriding the amplitude thresholds")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
