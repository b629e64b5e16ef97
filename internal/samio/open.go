// Package samio opens alignment streams for the pipeline, hiding the
// SAM-text vs BAM split behind small Reader/Writer contracts. All format
// parsing, writing and compression is owned by biogo/hts.
package samio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
)

// Reader yields decoded alignment records; Read returns io.EOF at end of
// stream.
type Reader interface {
	Header() *sam.Header
	Read() (*sam.Record, error)
}

// Input is an open alignment input stream.
type Input struct {
	Reader
	closers []io.Closer
}

// Close releases the underlying file handle, if any.
func (in *Input) Close() error {
	return closeAll(in.closers)
}

// OpenInput opens path for reading. A path of "-" or "" reads from stdin.
// BAM input is detected by the BGZF (gzip) magic number; anything else is
// read as SAM text. threads sets the number of parallel BAM decompression
// workers.
func OpenInput(path string, stdin io.Reader, threads int) (*Input, error) {
	var (
		r       io.Reader
		closers []io.Closer
	)
	if path == "" || path == "-" {
		r = stdin
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		r = fh
		closers = append(closers, fh)
	}
	if threads < 1 {
		threads = 1
	}

	br := bufio.NewReader(r)
	sig, err := br.Peek(2)
	if err != nil && err != io.EOF {
		_ = closeAll(closers)
		return nil, fmt.Errorf("samio: sniff input: %w", err)
	}
	if len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b {
		rd, err := bam.NewReader(br, threads)
		if err != nil {
			_ = closeAll(closers)
			return nil, fmt.Errorf("samio: open BAM input: %w", err)
		}
		return &Input{Reader: rd, closers: closers}, nil
	}
	rd, err := sam.NewReader(br)
	if err != nil {
		_ = closeAll(closers)
		return nil, fmt.Errorf("samio: open SAM input: %w", err)
	}
	return &Input{Reader: rd, closers: closers}, nil
}

func closeAll(closers []io.Closer) error {
	var err error
	for _, c := range closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
