package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/golift/internal/diagram"
	"github.com/alexiusacademia/golift/internal/logging"
	"github.com/alexiusacademia/golift/internal/wing"
	"github.com/spf13/cobra"
)

var (
	wingGeometrySegment    string
	wingGeometryExportFile string
	wingGeometryStations   int
)

var wingGeometryCmd = &cobra.Command{
	Use:   "geometry",
	Short: "Show root and tip locations of the wing segments",
	Long: `Resolve the quarter-chord line of every wing segment and print its
root and tip locations in body-fixed coordinates (x forward, y right,
z down).

Examples:
  golift wing geometry -f trainer.json
  golift wing geometry -f trainer.json --segment main_right
  golift wing geometry -f trainer.json -o planform.png`,
	RunE: runWingGeometry,
}

func init() {
	wingCmd.AddCommand(wingGeometryCmd)

	wingGeometryCmd.Flags().StringVar(&wingGeometrySegment, "segment", "", "Only show this segment")
	wingGeometryCmd.Flags().StringVarP(&wingGeometryExportFile, "output", "o", "", "Export planform to file (png, svg, pdf)")
	wingGeometryCmd.Flags().IntVar(&wingGeometryStations, "stations", 20, "Spanwise stations per segment in the planform plot")
}

func runWingGeometry(cmd *cobra.Command, args []string) error {
	ac, err := loadAircraft(cmd)
	if err != nil {
		return err
	}
	unit := lengthUnit(ac.Units)

	segments := ac.Tree.Segments()
	if wingGeometrySegment != "" {
		seg, err := ac.Segment(wingGeometrySegment)
		if err != nil {
			return err
		}
		segments = []*wing.Segment{seg}
	}

	printHeader("WING GEOMETRY - " + strings.ToUpper(ac.Name))

	printSection("SEGMENTS")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Name\tID\tSide\tParent\tSpan (%s)\tAirfoils\n", unit)
	fmt.Fprintf(w, "  ────\t──\t────\t──────\t─────────\t────────\n")
	for _, seg := range segments {
		parent := seg.Parent().Name()
		tag := ""
		if seg.IsMain() {
			tag = " (main)"
		}
		fmt.Fprintf(w, "  %s%s\t%d\t%s\t%s\t%.3f\t%s\n",
			seg.Name(), tag, seg.ID(), seg.Side(), parent, seg.Span(), strings.Join(seg.Airfoils(), ", "))
	}
	w.Flush()
	fmt.Println()

	printSection("QUARTER-CHORD LOCATIONS (" + unit + ")")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Name\tRoot x\tRoot y\tRoot z\tTip x\tTip y\tTip z\n")
	fmt.Fprintf(w, "  ────\t──────\t──────\t──────\t─────\t─────\t─────\n")
	for _, seg := range segments {
		root := seg.RootLocation()
		tip, err := seg.TipLocation()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			seg.Name(), root.X, root.Y, root.Z, tip.X, tip.Y, tip.Z)
	}
	w.Flush()
	fmt.Println()

	if wingGeometryExportFile != "" {
		data, err := diagram.PlanformFromTree(ac.Name+" planform", unit, ac.Tree, wingGeometryStations)
		if err != nil {
			return err
		}
		if err := diagram.ExportPlanform(data, wingGeometryExportFile); err != nil {
			return fmt.Errorf("exporting planform: %w", err)
		}
		logging.FromContext(cmd.Context()).Info(cmd.Context(), "planform exported", logging.String("path", wingGeometryExportFile))
		fmt.Printf("  Planform exported to: %s\n\n", wingGeometryExportFile)
	}
	return nil
}
