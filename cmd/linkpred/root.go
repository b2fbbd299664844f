// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkpred/config"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	logLevel   string
	metricsOut string

	cfg config.Config
	log *slog.Logger
}

// newRootCmd builds a fresh command tree, so tests can run commands
// side by side.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "linkpred",
		Short: "Link prediction scoring",
		Long: `linkpred scores node pairs of a graph with structural heuristics or
calibrated embedding similarities, and measures them with AUC-ROC.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.flushMetrics,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config")
	root.PersistentFlags().StringVar(&a.metricsOut, "metrics-out", "", "Write Prometheus metrics in text format to this file after the run")

	root.AddCommand(
		newListCmd(a),
		newScoreCmd(a),
		newCalibrateCmd(a),
		newEvaluateCmd(a),
	)

	return root
}

// setup loads the config and installs the run logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})).
		With("run", uuid.NewString())
	slog.SetDefault(a.log)
	a.log.Debug("config loaded", "path", a.configPath, "command", cmd.Name())

	return nil
}

// flushMetrics writes the default registry in text exposition format.
func (a *app) flushMetrics(_ *cobra.Command, _ []string) error {
	if a.metricsOut == "" {
		return nil
	}

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	f, err := os.Create(a.metricsOut)
	if err != nil {
		return fmt.Errorf("metrics-out: %w", err)
	}
	defer f.Close()
	if err = writeMetrics(f, families); err != nil {
		return fmt.Errorf("metrics-out: %w", err)
	}
	a.log.Debug("metrics written", "path", a.metricsOut, "families", len(families))

	return nil
}

func writeMetrics(w io.Writer, families []*dto.MetricFamily) error {
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
