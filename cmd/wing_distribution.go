package cmd

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/golift/internal/diagram"
	"github.com/alexiusacademia/golift/internal/wing"
	"github.com/spf13/cobra"
)

var (
	wingDistSegment    string
	wingDistQuantity   string
	wingDistStations   int
	wingDistHeight     int
	wingDistExportFile string
)

var wingDistributionCmd = &cobra.Command{
	Use:   "distribution",
	Short: "Plot a spanwise distribution of a segment",
	Long: `Plot twist, dihedral, sweep or chord along the span of a segment as a
terminal graph, and optionally export it as an image.

Examples:
  golift wing distribution -f trainer.json --segment main_right --quantity chord
  golift wing distribution -f trainer.json --segment main_right --quantity dihedral -o dihedral.svg`,
	RunE: runWingDistribution,
}

func init() {
	wingCmd.AddCommand(wingDistributionCmd)

	wingDistributionCmd.Flags().StringVar(&wingDistSegment, "segment", "", "Segment name [required]")
	wingDistributionCmd.Flags().StringVarP(&wingDistQuantity, "quantity", "q", "chord", "Quantity: twist, dihedral, sweep or chord")
	wingDistributionCmd.Flags().IntVar(&wingDistStations, "stations", 50, "Number of spanwise intervals")
	wingDistributionCmd.Flags().IntVar(&wingDistHeight, "height", 12, "Graph height in lines")
	wingDistributionCmd.Flags().StringVarP(&wingDistExportFile, "output", "o", "", "Export plot to file (png, svg, pdf)")
	wingDistributionCmd.MarkFlagRequired("segment")
}

func runWingDistribution(cmd *cobra.Command, args []string) error {
	ac, err := loadAircraft(cmd)
	if err != nil {
		return err
	}
	seg, err := ac.Segment(wingDistSegment)
	if err != nil {
		return err
	}

	f, label, err := distributionOf(seg, wingDistQuantity, lengthUnit(ac.Units))
	if err != nil {
		return err
	}
	title := fmt.Sprintf("%s %s", seg.Name(), strings.ToLower(wingDistQuantity))
	d := diagram.SampleDistribution(title, label, wingDistStations, f)

	printHeader("SPANWISE DISTRIBUTION - " + seg.Name())
	fmt.Print(diagram.DrawDistribution(d, wingDistHeight))
	fmt.Println()

	if wingDistExportFile != "" {
		if err := diagram.ExportDistribution(d, wingDistExportFile); err != nil {
			return fmt.Errorf("exporting distribution: %w", err)
		}
		fmt.Printf("  Plot exported to: %s\n\n", wingDistExportFile)
	}
	return nil
}

func distributionOf(seg *wing.Segment, quantity, unit string) (func(float64) float64, string, error) {
	switch strings.ToLower(quantity) {
	case "twist":
		return seg.Twist, "twist (deg)", nil
	case "dihedral":
		return seg.Dihedral, "dihedral (deg)", nil
	case "sweep":
		return seg.Sweep, "sweep (deg)", nil
	case "chord":
		return seg.Chord, fmt.Sprintf("chord (%s)", unit), nil
	default:
		return nil, "", fmt.Errorf("unknown quantity %q: use twist, dihedral, sweep or chord", quantity)
	}
}
