// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/clintval/revtag/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Streams
	Input  string
	Output string

	// Tag selection
	Rev     []string
	Revcomp []string

	// Performance
	Threads int

	// Logging
	Quiet bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: reverse and reverse-complement SAM tags on reverse-strand alignments

License: MIT
Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Streams
	fs.StringVar(&opt.Input, "input", "-", "input SAM/BAM file ('-' = stdin) [-]")
	fs.StringVar(&opt.Output, "output", "-", "output file; '.bam' selects BAM, otherwise SAM ('-' = stdout) [-]")

	// Tag selection
	var rev, revcomp stringSlice
	fs.Var(&rev, "rev", "tag to reverse, e.g. a base-quality array (repeatable)")
	fs.Var(&revcomp, "revcomp", "tag to reverse complement, e.g. a sequence string (repeatable)")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 1, "threads for BAM compression/decompression [1]")

	// Logging
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress logging [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Rev = rev
	opt.Revcomp = revcomp

	// Validation
	if opt.Threads < 1 {
		return opt, errors.New("--threads must be ≥ 1")
	}
	if args := fs.Args(); len(args) > 0 {
		return opt, fmt.Errorf("unexpected positional arguments: %s", strings.Join(args, " "))
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
