// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"time"

	"github.com/katalvlaran/citymst/core"
	"github.com/katalvlaran/citymst/gen"
	"github.com/katalvlaran/citymst/loader"
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Network shapes understood by generate.
const (
	shapePath      = "path"
	shapeCycle     = "cycle"
	shapeStar      = "star"
	shapeComplete  = "complete"
	shapeGrid      = "grid"
	shapeRandom    = "random"
	shapeConnected = "connected"
)

type generateFlags struct {
	shape      string
	cities     int
	rows, cols int
	prob       float64
	extra      int
	seed       int64
	minWeight  int64
	maxWeight  int64
	out        string
}

func newGenerateCmd(a *app) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic road network in the src#dest#km format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				f.seed = time.Now().UnixNano()
			}
			g, err := f.build()
			if err != nil {
				return err
			}
			a.logger.Info("network generated",
				zap.String("shape", f.shape),
				zap.Int64("seed", f.seed),
				zap.Int("cities", g.CityCount()),
				zap.Int("edges", g.EdgeCount()))

			if f.out == "" || f.out == "-" {
				return loader.Write(cmd.OutOrStdout(), g)
			}
			return loader.WriteFile(a.fs, f.out, g)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.shape, "shape", shapeConnected, "path, cycle, star, complete, grid, random or connected")
	fl.IntVarP(&f.cities, "cities", "n", 10, "number of cities")
	fl.IntVar(&f.rows, "rows", 3, "grid rows")
	fl.IntVar(&f.cols, "cols", 3, "grid columns")
	fl.Float64Var(&f.prob, "prob", 0.3, "road probability for the random shape")
	fl.IntVar(&f.extra, "extra", 10, "extra random roads for the connected shape")
	fl.Int64Var(&f.seed, "seed", 0, "random seed (default: time based)")
	fl.Int64Var(&f.minWeight, "min-km", gen.DefaultMinWeight, "shortest road length")
	fl.Int64Var(&f.maxWeight, "max-km", gen.DefaultMaxWeight, "longest road length")
	fl.StringVar(&f.out, "out", "", "output file, - or empty for stdout")

	return cmd
}

func (f generateFlags) build() (*core.Graph, error) {
	if f.minWeight < 0 || f.maxWeight < f.minWeight {
		return nil, errors.Errorf("road length range [%d, %d] is invalid", f.minWeight, f.maxWeight)
	}

	var cons gen.Constructor
	switch f.shape {
	case shapePath:
		cons = gen.Path(f.cities)
	case shapeCycle:
		cons = gen.Cycle(f.cities)
	case shapeStar:
		cons = gen.Star(f.cities)
	case shapeComplete:
		cons = gen.Complete(f.cities)
	case shapeGrid:
		cons = gen.Grid(f.rows, f.cols)
	case shapeRandom:
		cons = gen.RandomSparse(f.cities, f.prob)
	case shapeConnected:
		cons = gen.Connected(f.cities, f.extra)
	default:
		return nil, fmt.Errorf("unknown shape %q", f.shape)
	}

	g, err := gen.Build(nil, []gen.Option{
		gen.WithSeed(f.seed),
		gen.WithWeightRange(f.minWeight, f.maxWeight),
	}, cons)

	return g, errors.Annotatef(err, "generate %s network", f.shape)
}
