// Package app wires the revtag command line to the streaming pipeline.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/clintval/revtag/internal/cli"
	"github.com/clintval/revtag/internal/pipeline"
	"github.com/clintval/revtag/internal/progress"
	"github.com/clintval/revtag/internal/samio"
	"github.com/clintval/revtag/internal/tags"
	"github.com/clintval/revtag/internal/version"
)

// RunContext parses argv, validates the tag selections before any record is
// read, and streams records from stdin/--input to stdout/--output. The
// return value is the process exit code.
func RunContext(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet(version.Name)
	fs.SetOutput(stderr)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "%s version %s\n", version.Name, version.Version)
		return 0
	}

	rev, err := tags.Validate(opts.Rev)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	revcomp, err := tags.Validate(opts.Revcomp)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	in, err := samio.OpenInput(opts.Input, stdin, opts.Threads)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = in.Close() }()

	hdr, err := samio.StampProgram(in.Header(), version.Name, version.Version, argv)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	out, err := samio.OpenOutput(opts.Output, stdout, hdr, opts.Threads)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	var prog *progress.Logger
	if !opts.Quiet {
		prog = progress.New(stderr, 0, "Processed", "alignment records")
	}

	cfg := pipeline.Config{Rev: rev, Revcomp: revcomp, Progress: prog}
	runErr := pipeline.Run(parent, cfg, in, out)
	if cerr := out.Close(); runErr == nil {
		runErr = cerr
	}
	switch {
	case runErr == nil:
		return 0
	case samio.IsBrokenPipe(runErr):
		return 0
	case errors.Is(runErr, context.Canceled):
		// appshell maps a clean cancellation to 130.
		return 0
	default:
		_, _ = fmt.Fprintln(stderr, runErr)
		return 1
	}
}

// Run is RunContext with a background context.
func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}
