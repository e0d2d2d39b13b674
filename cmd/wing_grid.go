package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/golift/internal/diagram"
	"github.com/spf13/cobra"
)

var wingGridSegment string

var wingGridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Show the spanwise discretization of a segment",
	Long: `Print the spanwise node and control-point fractions of a segment,
with the 3D quarter-chord location and local chord, twist and dihedral
at each control point.

Examples:
  golift wing grid -f trainer.json --segment main_right`,
	RunE: runWingGrid,
}

func init() {
	wingCmd.AddCommand(wingGridCmd)

	wingGridCmd.Flags().StringVar(&wingGridSegment, "segment", "", "Segment name [required]")
	wingGridCmd.MarkFlagRequired("segment")
}

func runWingGrid(cmd *cobra.Command, args []string) error {
	ac, err := loadAircraft(cmd)
	if err != nil {
		return err
	}
	seg, err := ac.Segment(wingGridSegment)
	if err != nil {
		return err
	}
	unit := lengthUnit(ac.Units)

	cps, err := seg.ControlPoints()
	if err != nil {
		return err
	}
	fractions := seg.ControlPointSpanLocations()
	nodes := seg.NodeSpanLocations()

	spacing := "uniform"
	if seg.Grid().Clustered() {
		spacing = "cosine clustered"
	}

	printHeader("SPANWISE GRID - " + seg.Name())
	fmt.Print(diagram.DrawSummaryBox("GRID", []string{
		fmt.Sprintf("Control points: %d", seg.Grid().N()),
		fmt.Sprintf("Spacing:        %s", spacing),
		fmt.Sprintf("Span:           %.3f %s", seg.Span(), unit),
	}))
	fmt.Println()

	printSection("NODES")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  i\ts\n")
	fmt.Fprintf(w, "  ─\t─\n")
	for i, s := range nodes {
		fmt.Fprintf(w, "  %d\t%.6f\n", i, s)
	}
	w.Flush()
	fmt.Println()

	printSection("CONTROL POINTS")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  i\ts\tx (%s)\ty (%s)\tz (%s)\tChord (%s)\tTwist (°)\tDihedral (°)\n", unit, unit, unit, unit)
	fmt.Fprintf(w, "  ─\t─\t──────\t──────\t──────\t──────────\t─────────\t────────────\n")
	for i, s := range fractions {
		p := cps[i]
		fmt.Fprintf(w, "  %d\t%.6f\t%.4f\t%.4f\t%.4f\t%.4f\t%.3f\t%.3f\n",
			i, s, p.X, p.Y, p.Z, seg.Chord(s), seg.Twist(s), seg.Dihedral(s))
	}
	w.Flush()
	fmt.Println()
	return nil
}
