package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tanishpoddar/logitrack/config"
	"github.com/tanishpoddar/logitrack/core/cost"
	"github.com/tanishpoddar/logitrack/core/inventory"
	"github.com/tanishpoddar/logitrack/core/optimize"
	"github.com/tanishpoddar/logitrack/infra/logger"
	"github.com/tanishpoddar/logitrack/pkg/export"
)

var outputFormat string

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Run one allocation pass over the demo dataset and print the plan",
	RunE:  runOnce,
}

func init() {
	optimizeCmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format: json or csv")
	rootCmd.AddCommand(optimizeCmd)
}

func runOnce(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		// The one-shot command works without a config file.
		defaults := config.SolverConfig{}
		defaults.SetDefaults()
		cfg = &config.Config{Solver: defaults}
	}

	store := inventory.NewSampleStore()
	costModel := cost.HaversineModel{
		PerKmRate:          cfg.Solver.PerKmRate,
		FallbackDistanceKm: cfg.Solver.FallbackDistanceKm,
	}
	engine := optimize.NewEngine(costModel, logger.New("optimizer"), nil, nil)

	res, err := engine.Optimize(store.Warehouses(), store.PendingOrders(time.Now()), optimize.Options{
		TimeLimit:      cfg.Solver.TimeLimit(),
		PriorityWeight: cfg.Solver.Weight(),
	})
	if err != nil {
		return fmt.Errorf("optimize: %w", err)
	}

	switch outputFormat {
	case "json":
		return export.WriteJSON(os.Stdout, res)
	case "csv":
		return export.WriteCSV(os.Stdout, res)
	default:
		return fmt.Errorf("unknown format %q", outputFormat)
	}
}
