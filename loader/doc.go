// SPDX-License-Identifier: MIT

// Package loader reads city networks from the `#`-delimited text format into a
// core.Graph and writes them back out.
//
// Each non-empty line encodes one road:
//
//	<source>#<dest>#<weight>
//
// Tokens are split on '#', empty tokens collapse (so "A##B#4" reads as
// A, B, 4), surrounding whitespace is trimmed and tokens after the third are
// ignored. The weight must be a non-negative integer.
//
// For every well-formed line the loader registers both endpoints and then
// adds the edge. Malformed lines are skipped and reported in
// Summary.Skipped; they never abort a load. An unreadable file leaves the
// store untouched.
package loader
