package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"PointDrift/internal/scheduler"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	watchScenario string
	watchCron     string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the analysis whenever a scenario file changes",
	Long: `Poll a scenario file on a cron schedule and print a fresh report each time
its content changes. Runs until interrupted.

Examples:
  pointdrift watch --scenario scenarios/euro-rally.yaml
  pointdrift watch --scenario s.yaml --cron "*/5 * * * * *"`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchScenario, "scenario", "", "Scenario YAML file to watch (default from config)")
	watchCmd.Flags().StringVar(&watchCron, "cron", "", "Poll schedule with seconds field or @every (default from config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	scenario := state.cfg.Watch.Scenario
	if watchScenario != "" {
		scenario = watchScenario
	}
	if scenario == "" {
		return fmt.Errorf("a scenario file is required (--scenario or watch.scenario)")
	}
	spec := state.cfg.Watch.Cron
	if watchCron != "" {
		spec = watchCron
	}

	w := scheduler.NewWatcher(state.reg, state.rec, cmd.OutOrStdout(), scenario, state.cfg.Output.Format)
	if err := w.Register(spec); err != nil {
		return err
	}
	w.RunNow()
	w.Start()
	defer w.Stop()

	log.Info().Str("cron", spec).Msg("watching, press Ctrl+C to stop")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping...")
	return nil
}
