// Package progress counts processed items and periodically reports the
// running total to an injected writer. A nil *Logger is valid and silent.
package progress

import (
	"fmt"
	"io"
)

const defaultUnit = 100000

// Logger reports "<Verb> <n> <Noun>" to W every Unit items.
type Logger struct {
	W    io.Writer
	Unit int64
	Verb string
	Noun string

	n int64
}

// New returns a Logger writing to w. A unit of 0 selects the default of
// 100000 items.
func New(w io.Writer, unit int64, verb, noun string) *Logger {
	if unit <= 0 {
		unit = defaultUnit
	}
	return &Logger{W: w, Unit: unit, Verb: verb, Noun: noun}
}

// Record counts one item, logging when the count crosses a unit boundary.
func (l *Logger) Record() {
	if l == nil {
		return
	}
	l.n++
	if l.n%l.Unit == 0 {
		_, _ = fmt.Fprintf(l.W, "INFO: %s %d %s\n", l.Verb, l.n, l.Noun)
	}
}

// Count returns the number of items recorded so far.
func (l *Logger) Count() int64 {
	if l == nil {
		return 0
	}
	return l.n
}

// Done logs the final count once the stream is exhausted.
func (l *Logger) Done() {
	if l == nil {
		return
	}
	_, _ = fmt.Fprintf(l.W, "INFO: %s %d %s in total\n", l.Verb, l.n, l.Noun)
}
