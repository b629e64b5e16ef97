// Package pipeline drives alignment records from an input stream through
// the tag transform and on to an output stream, one record at a time.
//
// The only contracts to implement are Reader and Writer; samio provides
// both. This keeps the driver swappable and testable.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/biogo/hts/sam"

	"github.com/clintval/revtag/internal/engine"
	"github.com/clintval/revtag/internal/progress"
)

// Reader is the record source; Read returns io.EOF at end of stream.
type Reader interface {
	Read() (*sam.Record, error)
}

// Writer is the record sink.
type Writer interface {
	Write(*sam.Record) error
}

// Config controls one streaming run.
type Config struct {
	Rev      []sam.Tag        // tags whose array/string values are order-reversed
	Revcomp  []sam.Tag        // tags whose sequence values are reverse-complemented
	Progress *progress.Logger // optional; nil disables progress reporting
}

// Run copies records from r to w in input order, rewriting the configured
// tags on every reverse-strand record. Records are handled strictly one at
// a time; the first read, transform or write error aborts the run.
func Run(ctx context.Context, cfg Config, r Reader, w Writer) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("pipeline: read record: %w", err)
		}

		if rec.Flags&sam.Reverse != 0 {
			if err := engine.Transform(rec, cfg.Rev, cfg.Revcomp); err != nil {
				return err
			}
		}

		if err := w.Write(rec); err != nil {
			return fmt.Errorf("pipeline: write record: %w", err)
		}
		cfg.Progress.Record()
	}
	cfg.Progress.Done()
	return nil
}
