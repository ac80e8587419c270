// SPDX-License-Identifier: MIT
package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/citymst/core"
	"github.com/pingcap/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Delimiter separates the fields of one input line.
const Delimiter = '#'

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Summary reports the outcome of a load: the loadComplete counts plus the
// lines that were skipped.
type Summary struct {
	// Path is the file that was read; empty for Parse.
	Path string
	// Cities and Edges are the store counts after the load.
	Cities int
	Edges  int
	// Lines is the number of lines read, blank ones included.
	Lines int
	// Skipped lists malformed lines in file order.
	Skipped []*MalformedLineError
	// Dropped counts well-formed lines the store refused (capacity bound).
	Dropped int
}

// Option configures Load and Parse.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger routes per-line diagnostics to l. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts ...Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Load replaces the contents of g with the network in path.
//
// The file is opened before g is touched: if it cannot be opened the error
// wraps ErrFileUnreadable and g keeps its previous contents. If reading fails
// part-way g is left empty.
func Load(fs afero.Fs, path string, g *core.Graph, opts ...Option) (Summary, error) {
	o := newOptions(opts...)

	f, err := fs.Open(path)
	if err != nil {
		return Summary{Path: path}, errors.Trace(fmt.Errorf("%w: %s: %w", ErrFileUnreadable, path, err))
	}
	defer f.Close()

	g.Clear()
	sum, err := parse(f, g, o)
	sum.Path = path
	if err != nil {
		g.Clear()
		sum.Cities, sum.Edges = 0, 0
		return sum, errors.Annotatef(err, "load %s", path)
	}

	o.logger.Info("cities loaded",
		zap.String("path", path),
		zap.Int("cities", sum.Cities),
		zap.Int("edges", sum.Edges),
		zap.Int("skipped", len(sum.Skipped)),
		zap.Int("dropped", sum.Dropped))

	return sum, nil
}

// Parse adds every well-formed line of r to g without clearing it first.
// A read error wraps ErrFileUnreadable.
func Parse(r io.Reader, g *core.Graph, opts ...Option) (Summary, error) {
	return parse(r, g, newOptions(opts...))
}

func parse(r io.Reader, g *core.Graph, o options) (Summary, error) {
	var sum Summary

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for sc.Scan() {
		sum.Lines++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		src, dest, weight, reason := ParseLine(text)
		if reason != "" {
			bad := &MalformedLineError{Line: sum.Lines, Text: text, Reason: reason}
			sum.Skipped = append(sum.Skipped, bad)
			o.logger.Warn("skipping malformed line",
				zap.Int("line", bad.Line),
				zap.String("text", bad.Text),
				zap.String("reason", bad.Reason))
			continue
		}

		g.AddCity(src)
		g.AddCity(dest)
		if !g.AddEdge(src, dest, weight) {
			sum.Dropped++
			o.logger.Debug("edge refused by store",
				zap.Int("line", sum.Lines),
				zap.String("src", src),
				zap.String("dest", dest))
		}
	}
	if err := sc.Err(); err != nil {
		return sum, errors.Trace(fmt.Errorf("%w: %w", ErrFileUnreadable, err))
	}

	sum.Cities = g.CityCount()
	sum.Edges = g.EdgeCount()

	return sum, nil
}

// ParseLine splits one line into its fields. reason is empty on success and
// otherwise says why the line is malformed.
func ParseLine(line string) (src, dest string, weight int64, reason string) {
	fields := strings.FieldsFunc(line, func(r rune) bool { return r == Delimiter })
	tokens := make([]string, 0, 3)
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			tokens = append(tokens, f)
		}
		if len(tokens) == 3 {
			break
		}
	}

	switch len(tokens) {
	case 0, 1:
		return "", "", 0, "missing destination"
	case 2:
		return "", "", 0, "missing weight"
	}

	w, err := strconv.ParseInt(tokens[2], 10, 64)
	if err != nil {
		return "", "", 0, fmt.Sprintf("weight %q is not an integer", tokens[2])
	}
	if w < 0 {
		return "", "", 0, fmt.Sprintf("weight %d is negative", w)
	}

	return tokens[0], tokens[1], w, ""
}

// Write emits the flat edge list of g in the input format, one road per line,
// in insertion order.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%s%c%s%c%d\n", e.Src, Delimiter, e.Dest, Delimiter, e.Weight); err != nil {
			return errors.Trace(err)
		}
	}

	return errors.Trace(bw.Flush())
}

// WriteFile writes g to path on fs.
func WriteFile(fs afero.Fs, path string, g *core.Graph) error {
	f, err := fs.Create(path)
	if err != nil {
		return errors.Annotatef(err, "create %s", path)
	}
	if err := Write(f, g); err != nil {
		_ = f.Close()
		return errors.Annotatef(err, "write %s", path)
	}

	return errors.Trace(f.Close())
}
