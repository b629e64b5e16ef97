// internal/samio/output.go
package samio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
)

// Writer accepts one alignment record at a time.
type Writer interface {
	Write(*sam.Record) error
}

// Output is an open alignment output stream. Close must be called to flush
// buffered records and finalize BAM output.
type Output struct {
	Writer
	closers []io.Closer
}

// Close flushes and releases the stream; the record writer is closed before
// the underlying file.
func (out *Output) Close() error {
	return closeAll(out.closers)
}

// OpenOutput opens path for writing with header h. A path of "-" or ""
// writes SAM text to stdout; a ".bam" suffix selects BAM with threads
// parallel compression workers; all other paths get SAM text. CRAM output
// is not supported.
func OpenOutput(path string, stdout io.Writer, h *sam.Header, threads int) (*Output, error) {
	if strings.HasSuffix(path, ".cram") {
		return nil, fmt.Errorf("samio: CRAM output is not supported: %s", path)
	}
	var (
		w       io.Writer
		closers []io.Closer
	)
	if path == "" || path == "-" {
		w = stdout
	} else {
		fh, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		w = fh
		closers = append(closers, fh)
	}
	if threads < 1 {
		threads = 1
	}

	if strings.HasSuffix(path, ".bam") {
		bw, err := bam.NewWriter(w, h, threads)
		if err != nil {
			_ = closeAll(closers)
			return nil, fmt.Errorf("samio: open BAM output: %w", err)
		}
		return &Output{Writer: bw, closers: append([]io.Closer{bw}, closers...)}, nil
	}
	buf := bufio.NewWriter(w)
	sw, err := sam.NewWriter(buf, h, sam.FlagDecimal)
	if err != nil {
		_ = closeAll(closers)
		return nil, fmt.Errorf("samio: open SAM output: %w", err)
	}
	return &Output{Writer: sw, closers: append([]io.Closer{flusher{buf}}, closers...)}, nil
}

type flusher struct{ *bufio.Writer }

func (f flusher) Close() error { return f.Flush() }
