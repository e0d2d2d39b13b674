package cmd

import (
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	wingSectionSegment string
	wingSectionSpan    float64
	wingSectionAlpha   float64
)

var wingSectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Section coefficients at a span station",
	Long: `Evaluate the section lift, drag and moment coefficients of a segment
at a span fraction (0 = root, 1 = tip) and angle of attack.

Where the segment blends airfoils, coefficients are interpolated linearly
between the bounding airfoils.

Examples:
  golift wing section -f trainer.json --segment main_right --span 0.5 --alpha 4
  golift wing section -f trainer.json --segment tip_left --span 1 --alpha -2`,
	RunE: runWingSection,
}

func init() {
	wingCmd.AddCommand(wingSectionCmd)

	wingSectionCmd.Flags().StringVar(&wingSectionSegment, "segment", "", "Segment name [required]")
	wingSectionCmd.Flags().Float64Var(&wingSectionSpan, "span", 0.5, "Span fraction, 0 (root) to 1 (tip)")
	wingSectionCmd.Flags().Float64Var(&wingSectionAlpha, "alpha", 0, "Angle of attack (degrees)")
	wingSectionCmd.MarkFlagRequired("segment")
}

func runWingSection(cmd *cobra.Command, args []string) error {
	ac, err := loadAircraft(cmd)
	if err != nil {
		return err
	}
	seg, err := ac.Segment(wingSectionSegment)
	if err != nil {
		return err
	}

	alpha := wingSectionAlpha * math.Pi / 180
	c, err := ac.SectionCoefficients(seg.Name(), wingSectionSpan, alpha)
	if err != nil {
		return err
	}

	printHeader("SECTION COEFFICIENTS - " + seg.Name())

	printSection("STATION")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span fraction:\t%.4f\n", wingSectionSpan)
	fmt.Fprintf(w, "  Angle of attack:\t%.3f° (%.5f rad)\n", wingSectionAlpha, alpha)
	fmt.Fprintf(w, "  Local chord:\t%.4f %s\n", seg.Chord(wingSectionSpan), lengthUnit(ac.Units))
	fmt.Fprintf(w, "  Local twist:\t%.3f°\n", seg.Twist(wingSectionSpan))
	fmt.Fprintf(w, "  Airfoils:\t%s\n", strings.Join(seg.Airfoils(), ", "))
	w.Flush()
	fmt.Println()

	printSection("COEFFICIENTS")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  CL:\t%.6f\n", c.CL)
	fmt.Fprintf(w, "  CD:\t%.6f\n", c.CD)
	fmt.Fprintf(w, "  Cm (c/4):\t%.6f\n", c.Cm)
	if c.CD != 0 {
		fmt.Fprintf(w, "  L/D:\t%.2f\n", c.CL/c.CD)
	}
	w.Flush()
	fmt.Println()
	return nil
}
