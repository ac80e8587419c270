// SPDX-License-Identifier: MIT
package loader

import (
	"errors"
	"fmt"
)

// ErrFileUnreadable indicates the input file could not be opened or read.
var ErrFileUnreadable = errors.New("loader: file unreadable")

// ErrMalformedLine indicates a line that does not encode source#dest#weight.
var ErrMalformedLine = errors.New("loader: malformed line")

// MalformedLineError describes one skipped line. It matches ErrMalformedLine
// under errors.Is.
type MalformedLineError struct {
	// Line is the 1-based line number.
	Line int
	// Text is the raw line without its terminator.
	Text string
	// Reason explains why the line was rejected.
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("loader: line %d %q: %s", e.Line, e.Text, e.Reason)
}

func (e *MalformedLineError) Unwrap() error { return ErrMalformedLine }
