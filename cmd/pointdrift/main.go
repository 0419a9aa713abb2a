package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"PointDrift/internal/config"
	"PointDrift/internal/recorder"
	"PointDrift/internal/registry"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const version = "v0.3.0"

// app carries what every subcommand needs once the root command has loaded it.
type app struct {
	cfg *config.Config
	reg *registry.Registry
	rec recorder.Recorder
}

var (
	configPath   string
	registryPath string
	logLevel     string
	metricsFile  string

	state app
)

var rootCmd = &cobra.Command{
	Use:     "pointdrift",
	Short:   "Show how FX drift distorts loyalty point value across partners",
	Version: version,
	Long: `PointDrift converts the base-currency cost of a point redemption into every
partner's local currency, applies a uniform FX drift to non-anchor currencies and
reports each partner's drift, a severity tier and who wins or loses.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if state.rec == nil {
			return nil
		}
		return state.rec.Close()
	},
}

func init() {
	defaultConfig := "configs/pointdrift.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultConfig = v
	}
	rootCmd.SetGlobalNormalizationFunc(dashedFlags)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfig, "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&registryPath, "registry", "", "Path to region/partner registry (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile")
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// dashedFlags accepts --metrics_file as --metrics-file.
func dashedFlags(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if registryPath != "" {
		cfg.Registry.Path = registryPath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if metricsFile != "" {
		cfg.Metrics.File = metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	level, _ := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level))
	zerolog.SetGlobalLevel(level)

	reg, err := registry.Load(cfg.Registry.Path)
	if err != nil {
		return fmt.Errorf("load registry: %w", err)
	}

	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.Metrics.File != "" {
		pr, err := recorder.NewPromRecorder(cfg.Metrics.File)
		if err != nil {
			return fmt.Errorf("init metrics: %w", err)
		}
		rec = pr
	}

	state = app{cfg: cfg, reg: reg, rec: rec}
	log.Debug().
		Str("registry", cfg.Registry.Path).
		Int("partners", len(reg.Partners())).
		Str("metrics_file", cfg.Metrics.File).
		Msg("PointDrift ready")
	return nil
}
