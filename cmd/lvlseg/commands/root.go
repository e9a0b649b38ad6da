// Package commands implements the lvlseg command tree.
package commands

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvlseg/config"
	"github.com/katalvlaran/lvlseg/internal/logging"
	"github.com/katalvlaran/lvlseg/internal/metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries the state shared by every subcommand of one root command.
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config
	log     *zap.Logger
	metrics *metrics.Collector
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"log-level":    "log_level",
	"environment":  "environment",
	"db":           "db",
	"strategy":     "strategy",
	"input-format": "input_format",
	"format":       "format",
	"output":       "output",
	"conn":         "conn",
	"base-weight":  "base_weight",
	"metrics-file": "metrics_file",
}

// NewRootCmd builds the lvlseg command tree.
func NewRootCmd() *cobra.Command {
	a := &app{metrics: metrics.NewCollector("lvlseg")}

	root := &cobra.Command{
		Use:   "lvlseg",
		Short: "Confidence-bounded graph segmentation",
		Long: `lvlseg partitions weighted undirected graphs into segments.

Edges are visited by ascending weight and two segments merge when the edge
weight is below the confidence of both. Problems can be segmented directly
from a file or stored in a SQLite database together with their runs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			defer a.log.Sync()
			if a.cfg.MetricsFile == "" {
				return nil
			}
			if err := a.metrics.WriteTextfile(a.cfg.MetricsFile); err != nil {
				return fmt.Errorf("writing metrics: %w", err)
			}
			a.log.Debug("metrics written", zap.String("path", a.cfg.MetricsFile))

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("environment", "development", "logging environment: development or production")
	pf.String("db", "lvlseg.db", "SQLite database path")
	pf.String("metrics-file", "", "write Prometheus metrics to this textfile after the command")

	root.AddCommand(
		newSegmentCmd(a),
		newImportCmd(a),
		newRunCmd(a),
		newRunsCmd(a),
		newGenerateCmd(a),
	)

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// init merges config sources, validates them and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	v, err := config.New(a.cfgFile)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		return err
	}

	a.v, a.cfg, a.log = v, cfg, log.With(zap.String("command", cmd.Name()))
	a.log.Debug("configuration loaded",
		zap.String("config", v.ConfigFileUsed()),
		zap.String("strategy", cfg.Strategy),
		zap.String("db", cfg.DBPath))

	return nil
}

// bindFlags binds the flags present on fs to their config keys.
// The constant is set only when given explicitly so that an absent flag
// leaves the problem's own constant in effect.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	if f := fs.Lookup("constant"); f != nil && f.Changed {
		c, err := fs.GetInt64("constant")
		if err != nil {
			return err
		}
		v.Set("constant", c)
	}

	return nil
}

// addSegmentFlags registers the flags shared by segment and run.
func addSegmentFlags(fs *pflag.FlagSet) {
	fs.Int64("constant", 0, "confidence constant; overrides the problem's constant")
	fs.String("strategy", "sorted", "edge visiting strategy: sorted or buckets")
	fs.StringP("format", "f", "text", "output format: text, json or yaml")
	fs.StringP("output", "o", "", "output file (default stdout)")
}

// addInputFlags registers the flags shared by commands that read problems.
func addInputFlags(fs *pflag.FlagSet) {
	fs.StringP("input-format", "i", "text", "input format: text, yaml or grid")
	fs.Int("conn", 4, "grid connectivity: 4 or 8")
	fs.Int64("base-weight", 1, "grid weight added to every intensity difference")
}
