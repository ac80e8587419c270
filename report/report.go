// SPDX-License-Identifier: MIT
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/citymst/loader"
	"github.com/katalvlaran/citymst/prim_kruskal"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat indicates an output format other than text or json.
var ErrUnknownFormat = errors.New("report: unknown output format")

// Formats lists the supported output formats.
func Formats() []string { return []string{FormatText, FormatJSON} }

// ValidFormat reports whether f is a supported output format.
func ValidFormat(f string) bool { return f == FormatText || f == FormatJSON }

var headings = map[string]string{
	prim_kruskal.MethodPrim:    " MST Edges (Prim's using Min-Heap):",
	prim_kruskal.MethodKruskal: " MST Edges Kruskal's:",
}

var banners = map[string]string{
	prim_kruskal.MethodPrim:    "--- Prim's Algorithm ---",
	prim_kruskal.MethodKruskal: "--- Kruskal's Algorithm ---",
}

// styles binds lipgloss styles to one writer so colour detection follows it.
type styles struct {
	heading lipgloss.Style
	warning lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		heading: r.NewStyle().Bold(true),
		warning: r.NewStyle().Foreground(lipgloss.Color("214")),
		muted:   r.NewStyle().Faint(true),
	}
}

// Write renders res in format.
func Write(w io.Writer, format string, res prim_kruskal.Result) error {
	switch format {
	case FormatText:
		return Text(w, res)
	case FormatJSON:
		return JSON(w, res)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Text writes the human-readable report of res.
func Text(w io.Writer, res prim_kruskal.Result) error {
	return writeText(w, newStyles(w), res)
}

func writeText(w io.Writer, st styles, res prim_kruskal.Result) error {
	heading, ok := headings[res.Algorithm]
	if !ok {
		heading = fmt.Sprintf(" MST Edges (%s):", res.Algorithm)
	}

	p := &printer{w: w}
	p.printf("\n%s\n", st.heading.Render(heading))
	for _, e := range res.Edges {
		p.printf("%s -- %s (%s km)\n", e.From, e.To, humanize.Comma(e.Weight))
	}
	if res.Disconnected {
		p.printf("%s\n", st.warning.Render("Warning: Graph is disconnected."))
	}
	p.printf("Total Cost: %s km\n", humanize.Comma(res.TotalCost))
	p.printf("Execution Time: %.4f seconds\n\n", res.ElapsedSeconds())

	return p.err
}

// jsonResult adds the derived fields to the encoded Result.
type jsonResult struct {
	prim_kruskal.Result
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	Warning        string  `json:"warning,omitempty"`
}

func toJSON(res prim_kruskal.Result) jsonResult {
	out := jsonResult{Result: res, ElapsedSeconds: res.ElapsedSeconds()}
	if err := res.Warning(); err != nil {
		out.Warning = err.Error()
	}
	if out.Edges == nil {
		out.Edges = []prim_kruskal.TreeEdge{}
	}

	return out
}

// JSON writes res as one indented JSON document.
func JSON(w io.Writer, res prim_kruskal.Result) error {
	return encode(w, toJSON(res))
}

// Comparison renders both runs of cmp followed by a verdict.
func Comparison(w io.Writer, format string, cmp prim_kruskal.Comparison) error {
	switch format {
	case FormatJSON:
		return encode(w, struct {
			Prim       jsonResult `json:"prim"`
			Kruskal    jsonResult `json:"kruskal"`
			CostsMatch bool       `json:"costs_match"`
			Faster     string     `json:"faster,omitempty"`
			Speedup    float64    `json:"speedup"`
		}{toJSON(cmp.Prim), toJSON(cmp.Kruskal), cmp.CostsMatch(), cmp.Faster(), cmp.Speedup()})
	case FormatText:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	st := newStyles(w)
	for _, res := range []prim_kruskal.Result{cmp.Prim, cmp.Kruskal} {
		if _, err := fmt.Fprintf(w, "\n%s\n", st.heading.Render(banners[res.Algorithm])); err != nil {
			return err
		}
		if err := writeText(w, st, res); err != nil {
			return err
		}
	}

	p := &printer{w: w}
	if cmp.CostsMatch() {
		p.printf("Costs match: %s km\n", humanize.Comma(cmp.Prim.TotalCost))
	} else {
		p.printf("%s\n", st.warning.Render(fmt.Sprintf("Costs differ: prim %s km, kruskal %s km",
			humanize.Comma(cmp.Prim.TotalCost), humanize.Comma(cmp.Kruskal.TotalCost))))
	}
	if f := cmp.Faster(); f != "" {
		p.printf("Faster: %s (%sx)\n", f, humanize.FtoaWithDigits(cmp.Speedup(), 2))
	} else {
		p.printf("%s\n", st.muted.Render("Faster: tie"))
	}

	return p.err
}

// Loaded writes the load confirmation for sum.
func Loaded(w io.Writer, sum loader.Summary) error {
	p := &printer{w: w}
	p.printf("Successfully loaded %s cities and %s edges\n",
		humanize.Comma(int64(sum.Cities)), humanize.Comma(int64(sum.Edges)))
	if n := len(sum.Skipped); n > 0 {
		p.printf("Skipped %s malformed %s\n", humanize.Comma(int64(n)), plural(n, "line", "lines"))
	}
	if sum.Dropped > 0 {
		p.printf("Dropped %s %s over capacity\n", humanize.Comma(int64(sum.Dropped)), plural(sum.Dropped, "edge", "edges"))
	}

	return p.err
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}

// printer remembers the first write error so callers can print freely.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
