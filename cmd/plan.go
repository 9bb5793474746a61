package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridshed/gridshed/config"
	"github.com/gridshed/gridshed/core/engine"
	"github.com/gridshed/gridshed/core/grid"
	"github.com/gridshed/gridshed/core/maintenance"
	"github.com/gridshed/gridshed/infra/logger"
	"github.com/gridshed/gridshed/pkg/export"
)

var (
	snapshotPath string
	planFormat   string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute a one-shot daily plan from a grid snapshot file",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&snapshotPath, "snapshot", "s", "", "grid snapshot JSON file")
	planCmd.Flags().StringVarP(&planFormat, "format", "f", "json", "output format: json or csv")
	_ = planCmd.MarkFlagRequired("snapshot")
	rootCmd.AddCommand(planCmd)
}

// snapshot is the offline input format: feeders, areas and one budget.
type snapshot struct {
	Feeders []struct {
		Name       string  `json:"name"`
		CapacityKW float64 `json:"capacity_kw"`
	} `json:"feeders"`
	Areas          []grid.AreaInput `json:"areas"`
	DailyEnergyKWh float64          `json:"daily_energy_kwh"`
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	raw, err := os.ReadFile(snapshotPath)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return fmt.Errorf("parse snapshot: %w", err)
	}

	eng := engine.New(engine.Config{
		Scheduler:   cfg.Scheduler,
		Maintenance: maintenance.Mode(cfg.Maintenance.Mode),
	}, logger.New("plan-command"), nil, nil)

	for _, f := range snap.Feeders {
		if _, err := eng.CreateFeeder(f.Name, f.CapacityKW); err != nil {
			return fmt.Errorf("feeder %q: %w", f.Name, err)
		}
	}
	for _, a := range snap.Areas {
		if _, err := eng.CreateArea(a); err != nil {
			return fmt.Errorf("area %q: %w", a.Name, err)
		}
	}
	dp, err := eng.GenerateDailySchedule(snap.DailyEnergyKWh)
	if err != nil {
		return err
	}
	switch planFormat {
	case "csv":
		return export.WriteCSV(cmd.OutOrStdout(), dp)
	case "json":
		return export.WriteJSON(cmd.OutOrStdout(), dp)
	default:
		return fmt.Errorf("unsupported format: %s", planFormat)
	}
}
