// SPDX-License-Identifier: MIT
package main

import (
	"context"

	"github.com/katalvlaran/citymst/report"
	"github.com/katalvlaran/citymst/watch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newLoadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Load the road network and print its size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sum, err := a.session.Load(a.cfg.DataFile)
			if err != nil {
				return err
			}
			return report.Loaded(cmd.OutOrStdout(), sum)
		},
	}
}

func newPrimCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prim [start-city]",
		Short: "Run Prim's algorithm from a start city",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := a.startCity(args)
			if err != nil {
				return err
			}
			if _, err := a.session.Load(a.cfg.DataFile); err != nil {
				return err
			}
			res, err := a.session.RunPrim(start)
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), a.cfg.Output, res)
		},
	}
}

func newKruskalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kruskal",
		Short: "Run Kruskal's algorithm over every road",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.session.Load(a.cfg.DataFile); err != nil {
				return err
			}
			res, err := a.session.RunKruskal()
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), a.cfg.Output, res)
		},
	}
}

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [start-city]",
		Short: "Run both algorithms and compare cost and time",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := a.startCity(args)
			if err != nil {
				return err
			}
			if _, err := a.session.Load(a.cfg.DataFile); err != nil {
				return err
			}
			return a.compare(cmd, start)
		},
	}
}

func (a *app) compare(cmd *cobra.Command, start string) error {
	cmp, err := a.session.Compare(start)
	if err != nil {
		return err
	}
	return report.Comparison(cmd.OutOrStdout(), a.cfg.Output, cmp)
}

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [start-city]",
		Short: "Recompute whenever the road network file changes",
		Long: "watch loads the network, prints a comparison (or Kruskal's tree when no start " +
			"city is configured) and repeats after every change to the file until interrupted.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, _ := a.startCity(args)

			rerun := func(context.Context) error {
				sum, err := a.session.Load(a.cfg.DataFile)
				if err != nil {
					return err
				}
				if err := report.Loaded(cmd.OutOrStdout(), sum); err != nil {
					return err
				}
				if start != "" {
					return a.compare(cmd, start)
				}
				res, err := a.session.RunKruskal()
				if err != nil {
					return err
				}
				return report.Write(cmd.OutOrStdout(), a.cfg.Output, res)
			}

			w, err := watch.New(a.cfg.DataFile, a.cfg.Watch.Debounce, a.logger)
			if err != nil {
				return err
			}
			if err := rerun(cmd.Context()); err != nil {
				a.logger.Error("initial run failed", zap.Error(err))
			}
			a.logger.Info("watching", zap.String("path", w.Path()), zap.Duration("debounce", a.cfg.Watch.Debounce))

			return w.Run(cmd.Context(), rerun)
		},
	}
}
