package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	modesJSON     bool
	modesMulliken bool
	modesVerbose  int
	modesXYZ      bool
)

var modesCmd = &cobra.Command{
	Use:   "modes <parsed.json>",
	Short: "Extract normal coordinates",
	Long: `Extract the normal coordinates listed by the last xjoda run,
optionally in the Mulliken numbering (D2h only) or as xyz frames that
jmol can display: geometry in Å, modes in dimensionless normal
coordinates.`,
	Args: cobra.ExactArgs(1),
	RunE: runModes,
}

func init() {
	rootCmd.AddCommand(modesCmd)
	f := modesCmd.Flags()
	f.BoolVarP(&modesJSON, "json", "j", false,
		"print normal coordinates as json for an xsim input")
	f.BoolVarP(&modesMulliken, "mulliken", "M", false,
		"number the modes using the Mulliken convention (D2h only)")
	f.CountVarP(&modesVerbose, "verbose", "v",
		"print a summary; repeat for the displacements")
	f.BoolVarP(&modesXYZ, "xyz", "x", false,
		"print normal coordinates in the xyz format")
}

func runModes(cmd *cobra.Command, args []string) error {
	doc, err := LoadDocument(args[0])
	if err != nil {
		return err
	}
	pointGroup := PointGroup(doc)
	modes := NormalCoordinates(doc)
	if modesMulliken {
		SortMulliken(pointGroup, modes)
		LowerSymmetries(modes)
	}
	out := cmd.OutOrStdout()
	if modesJSON {
		if err := writeJSON(out, XsimModes(modes)); err != nil {
			return err
		}
	}
	if modesVerbose > 0 {
		WriteModeTable(out, pointGroup, modes, modesVerbose, modesMulliken)
	}
	if modesXYZ {
		geos := Geometries(doc)
		if len(geos) == 0 {
			return errors.New("no geometries detected in the output file")
		}
		geo := geos[0].ToAngstrom().TrimNonAtoms()
		WriteModesXYZ(out, geo, modes, modesMulliken)
	}
	return nil
}
