// SPDX-License-Identifier: MIT

// Package session ties the Graph Store to the loader and both MST engines:
// it is the surface the command drives, one action at a time.
package session

import (
	"errors"
	"sync"

	"github.com/katalvlaran/citymst/core"
	"github.com/katalvlaran/citymst/loader"
	"github.com/katalvlaran/citymst/metrics"
	"github.com/katalvlaran/citymst/prim_kruskal"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ErrEmptyGraph is returned by the run actions before any city is loaded.
var ErrEmptyGraph = prim_kruskal.ErrEmptyGraph

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRecorder records loads and runs on rec.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(s *Session) { s.recorder = rec }
}

// WithFs reads data files from fs instead of the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(s *Session) {
		if fs != nil {
			s.fs = fs
		}
	}
}

// WithGraphOptions configures the store created by New, e.g. capacity bounds.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(s *Session) { s.graphOpts = append(s.graphOpts, opts...) }
}

// Session owns one Graph Store. Its actions never run concurrently.
type Session struct {
	mu        sync.Mutex
	graph     *core.Graph
	graphOpts []core.GraphOption
	fs        afero.Fs
	logger    *zap.Logger
	recorder  *metrics.Recorder
}

// New returns a session over an empty store.
func New(opts ...Option) *Session {
	s := &Session{
		fs:     afero.NewOsFs(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.graph = core.NewGraph(s.graphOpts...)

	return s
}

// Graph returns the underlying store.
func (s *Session) Graph() *core.Graph { return s.graph }

// Load replaces the store contents with the network in path.
func (s *Session) Load(path string) (loader.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum, err := loader.Load(s.fs, path, s.graph, loader.WithLogger(s.logger))
	if err != nil {
		s.logger.Error("load failed", zap.String("path", path), zap.Error(err))
		return sum, err
	}
	s.recorder.ObserveLoad(sum)

	return sum, nil
}

// RunPrim runs Prim's algorithm from start.
func (s *Session) RunPrim(start string) (prim_kruskal.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := prim_kruskal.Prim(s.graph, start)
	if err != nil {
		s.logger.Warn("prim not run", zap.String("start", start), zap.Error(err))
		return res, err
	}
	s.observe(res)

	return res, nil
}

// RunKruskal runs Kruskal's algorithm.
func (s *Session) RunKruskal() (prim_kruskal.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := prim_kruskal.Kruskal(s.graph)
	if err != nil {
		s.logger.Warn("kruskal not run", zap.Error(err))
		return res, err
	}
	s.observe(res)

	return res, nil
}

// Compare runs Prim from start and then Kruskal. When start is unknown the
// Kruskal half is still returned along with the error.
func (s *Session) Compare(start string) (prim_kruskal.Comparison, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmp, err := prim_kruskal.Compare(s.graph, start)
	switch {
	case err == nil:
		s.observe(cmp.Prim)
		s.observe(cmp.Kruskal)
	case errors.Is(err, prim_kruskal.ErrCityNotFound):
		s.observe(cmp.Kruskal)
	}
	if err != nil {
		s.logger.Warn("comparison incomplete", zap.String("start", start), zap.Error(err))
		return cmp, err
	}
	s.logger.Info("comparison done",
		zap.Bool("costs_match", cmp.CostsMatch()),
		zap.String("faster", cmp.Faster()))

	return cmp, nil
}

func (s *Session) observe(res prim_kruskal.Result) {
	if res.RunID == "" {
		return
	}
	fields := []zap.Field{
		zap.String("run_id", res.RunID),
		zap.String("algorithm", res.Algorithm),
		zap.Int("cities", res.Cities),
		zap.Int("tree_edges", len(res.Edges)),
		zap.Int64("total_cost", res.TotalCost),
		zap.Duration("elapsed", res.Elapsed),
	}
	if res.Disconnected {
		s.logger.Warn("graph is disconnected", fields...)
	} else {
		s.logger.Info("mst computed", fields...)
	}
	s.recorder.ObserveRun(res)
}
