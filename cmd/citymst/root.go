// SPDX-License-Identifier: MIT
package main

import (
	"os"

	"github.com/katalvlaran/citymst/config"
	"github.com/katalvlaran/citymst/core"
	"github.com/katalvlaran/citymst/logutil"
	"github.com/katalvlaran/citymst/metrics"
	"github.com/katalvlaran/citymst/session"
	"github.com/pingcap/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	fs      afero.Fs
	cfgFile string

	cfg     config.Config
	logger  *zap.Logger
	reg     *prometheus.Registry
	session *session.Session
}

func newApp() *app {
	return &app{v: viper.New(), fs: afero.NewOsFs()}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "citymst",
		Short: "Connect cities at minimum total road length",
		Long: "citymst loads roads in the src#dest#km format and computes a minimum " +
			"spanning tree with Prim's algorithm (min-heap) or Kruskal's algorithm (union-find).",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.teardown()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default .citymst.yaml)")
	pf.StringP("data-file", "f", "", "road network file (default cities.txt)")
	pf.StringP("start", "s", "", "start city for Prim's algorithm")
	pf.StringP("output", "o", "", "output format: text or json")
	pf.Int("max-cities", 0, "maximum number of cities, 0 for unbounded")
	pf.Int("max-edges", 0, "maximum number of roads, 0 for unbounded")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-encoding", "", "log encoding: console or json")
	pf.String("metrics-file", "", "write Prometheus metrics to this file on exit")

	bind := map[string]string{
		config.KeyDataFile:    "data-file",
		config.KeyStartCity:   "start",
		config.KeyOutput:      "output",
		config.KeyMaxCities:   "max-cities",
		config.KeyMaxEdges:    "max-edges",
		config.KeyLogLevel:    "log-level",
		config.KeyLogEncoding: "log-encoding",
		config.KeyMetricsFile: "metrics-file",
	}
	for key, flag := range bind {
		// Only errors on a nil flag.
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(
		newLoadCmd(a),
		newPrimCmd(a),
		newKruskalCmd(a),
		newCompareCmd(a),
		newGenerateCmd(a),
		newWatchCmd(a),
	)

	return root
}

// setup resolves configuration and builds the logger, metrics and session.
func (a *app) setup(*cobra.Command, []string) error {
	home, _ := os.UserHomeDir()
	if err := config.Init(a.v, a.cfgFile, home); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger, err = logutil.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return err
	}
	a.reg = prometheus.NewRegistry()
	a.session = session.New(
		session.WithFs(a.fs),
		session.WithLogger(a.logger),
		session.WithRecorder(metrics.NewRecorder(a.reg)),
		session.WithGraphOptions(core.WithMaxCities(cfg.MaxCities), core.WithMaxEdges(cfg.MaxEdges)),
	)
	a.logger.Debug("config resolved",
		zap.String("config_file", a.v.ConfigFileUsed()),
		zap.String("data_file", cfg.DataFile),
		zap.String("output", cfg.Output))

	return nil
}

func (a *app) teardown() error {
	if a.logger == nil {
		return nil
	}
	defer func() { _ = a.logger.Sync() }()

	if a.cfg.MetricsFile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(a.cfg.MetricsFile, a.reg); err != nil {
		return err
	}
	a.logger.Debug("metrics written", zap.String("path", a.cfg.MetricsFile))

	return nil
}

// startCity prefers a positional argument over the configured start_city.
func (a *app) startCity(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if a.cfg.StartCity != "" {
		return a.cfg.StartCity, nil
	}

	return "", errors.New("start city required: pass it as an argument or set --start")
}
