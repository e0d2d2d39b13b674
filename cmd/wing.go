package cmd

import (
	"fmt"

	"github.com/alexiusacademia/golift/internal/aircraft"
	"github.com/alexiusacademia/golift/internal/logging"
	"github.com/alexiusacademia/golift/internal/units"
	"github.com/spf13/cobra"
)

var wingCmd = &cobra.Command{
	Use:   "wing",
	Short: "Wing-segment geometry and section properties",
	Long: `Build the wing-segment tree of an aircraft defined in a JSON file
and inspect its geometry, discretization and section coefficients.

Each wing attaches to the root or tip of the wing whose ID it names in
connect_to (ID 0 is the aircraft origin). A wing with side "both" is
mirrored and becomes <name>_left and <name>_right; a one-sided wing
becomes <name>_left or <name>_right.

Subcommands:
  geometry      - Root and tip locations of every segment
  grid          - Spanwise nodes and control points of a segment
  section       - Section CL, CD and Cm at a span station
  distribution  - Spanwise twist, dihedral, sweep or chord

Example JSON file structure:
{
  "name": "trainer",
  "units": "English",
  "default_airfoil": "NACA_2412",
  "airfoils": {
    "NACA_2412": {"aL0": -0.0367, "CLa": 6.16, "CmL0": -0.0537,
                  "Cma": 0.0, "CD0": 0.0055, "CD1": -0.0045, "CD2": 0.0086},
    "NACA_0012": "airfoils/naca0012.json"
  },
  "wings": {
    "main": {
      "ID": 1, "side": "both", "is_main": true,
      "connect_to": {"ID": 0, "dz": -0.5, "y_offset": 0.25},
      "semispan": 16.0,
      "dihedral": [[0.0, 0.0], [0.6, 2.0], [1.0, 5.0]],
      "chord": [[0.0, 5.5], [1.0, 3.5]],
      "airfoil": [[0.0, "NACA_2412"], [0.5, "NACA_2412"], [1.0, "NACA_0012"]],
      "grid": 40
    },
    "tip": {
      "ID": 2, "side": "both", "connect_to": {"ID": 1, "location": "tip"},
      "span": [18, "in"], "dihedral": 30, "sweep": 20
    }
  }
}`,
}

var wingFile string

func init() {
	rootCmd.AddCommand(wingCmd)

	wingCmd.PersistentFlags().StringVarP(&wingFile, "file", "f", "", "Path to aircraft JSON file [required]")
	wingCmd.MarkPersistentFlagRequired("file")
}

// loadAircraft reads and assembles the aircraft named by --file.
func loadAircraft(cmd *cobra.Command) (*aircraft.Aircraft, error) {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	log.Info(ctx, "loading aircraft", logging.String("file", wingFile))
	spec, err := aircraft.LoadFromFile(wingFile)
	if err != nil {
		return nil, fmt.Errorf("loading aircraft: %w", err)
	}

	ac, err := aircraft.Build(ctx, spec, log, metrics)
	if err != nil {
		return nil, fmt.Errorf("building wings: %w", err)
	}
	return ac, nil
}

// lengthUnit is the abbreviation of the internal length unit.
func lengthUnit(sys units.System) string {
	if sys == units.SI {
		return "m"
	}
	return "ft"
}

func printHeader(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

func printSection(title string) {
	fmt.Printf("%s:\n", title)
	fmt.Println("───────────────────────────────────────────────────────────────")
}
