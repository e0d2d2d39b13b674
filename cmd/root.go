package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/alexiusacademia/golift/internal/logging"
	"github.com/alexiusacademia/golift/internal/observability"
	"github.com/alexiusacademia/golift/internal/version"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var (
	logLevel    string
	logFormat   string
	metricsFile string

	logger  logging.Logger = logging.Noop()
	metrics *observability.Collector
)

var rootCmd = &cobra.Command{
	Use:   "golift",
	Short: "Wing geometry and section model for lifting-line analysis",
	Long: `golift - Go Lifting-Line Wing Geometry

A CLI tool that assembles an aircraft's lifting surfaces from a JSON
definition and reports what a lifting-line solver needs from them:

  - Quarter-chord geometry resolved from sweep and dihedral distributions
  - Cosine-clustered or uniform spanwise grids with control points
  - Section lift, drag and moment coefficients, including airfoil blends
  - Planform and spanwise distribution plots

Wings are attached to each other by ID, parents first, and may be
mirrored onto both sides of the aircraft.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("log-level") {
			if v := os.Getenv("GOLIFT_LOG_LEVEL"); v != "" {
				logLevel = v
			}
		}
		if !cmd.Flags().Changed("log-format") {
			if v := os.Getenv("GOLIFT_LOG_FORMAT"); v != "" {
				logFormat = v
			}
		}
		logger = logging.New(logging.Config{Level: logLevel, Format: logFormat})

		ctx, runLogger := logging.WithRunLogger(cmd.Context(), logger)
		logger = runLogger
		cmd.SetContext(logging.ContextWithLogger(ctx, logger))

		if metricsFile != "" {
			c, err := observability.NewCollector(prometheus.NewRegistry())
			if err != nil {
				return err
			}
			metrics = c
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   golift v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Lifting-Line Wing Geometry                           ║")
		fmt.Printf("  ║   %-56s║\n", version.Author+" ©  "+version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Assembles wing-segment trees from JSON aircraft definitions")
		fmt.Println("  and resolves their geometry and section properties.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Quarter-chord lines from spanwise sweep and dihedral")
		fmt.Println("    • Cosine-clustered spanwise discretization")
		fmt.Println("    • Blended airfoil section coefficients")
		fmt.Println("    • Planform and distribution plots")
		fmt.Println()
		fmt.Println("  Use 'golift --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run executes the command tree and then writes the metrics textfile,
// whether or not the command succeeded.
func run(ctx context.Context, args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if werr := writeMetrics(ctx); werr != nil && err == nil {
		err = werr
	}
	return err
}

func writeMetrics(ctx context.Context) error {
	if metrics == nil || metricsFile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(metricsFile); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	logger.Debug(ctx, "metrics written", logging.String("path", metricsFile))
	return nil
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error (env GOLIFT_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json (env GOLIFT_LOG_FORMAT)")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the command runs")
}
