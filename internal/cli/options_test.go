// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"io"
	"reflect"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t)
	if o.Input != "-" || o.Output != "-" {
		t.Errorf("stream defaults = %q, %q", o.Input, o.Output)
	}
	if o.Threads != 1 {
		t.Errorf("threads default = %d", o.Threads)
	}
	if len(o.Rev) != 0 || len(o.Revcomp) != 0 {
		t.Errorf("tag defaults not empty: %+v", o)
	}
	if o.Quiet || o.Version {
		t.Errorf("bool defaults not false: %+v", o)
	}
}

func TestRepeatableTagsKeepOrder(t *testing.T) {
	o := mustParse(t,
		"--rev", "QT", "--rev", "MN",
		"--revcomp", "BC", "--revcomp", "SQ",
	)
	if !reflect.DeepEqual(o.Rev, []string{"QT", "MN"}) {
		t.Errorf("rev = %v", o.Rev)
	}
	if !reflect.DeepEqual(o.Revcomp, []string{"BC", "SQ"}) {
		t.Errorf("revcomp = %v", o.Revcomp)
	}
}

func TestStreamsAndThreads(t *testing.T) {
	o := mustParse(t, "--input", "in.bam", "--output", "out.bam", "--threads", "4")
	if o.Input != "in.bam" || o.Output != "out.bam" || o.Threads != 4 {
		t.Errorf("bad parse %+v", o)
	}
}

func TestErrorBadThreads(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--threads", "0"}); err == nil {
		t.Fatal("expected error for --threads 0")
	}
}

func TestErrorPositionalArgs(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"stray.bam"}); err == nil {
		t.Fatal("expected error for positional arguments")
	}
}

func TestVersionFlag(t *testing.T) {
	o := mustParse(t, "--version")
	if !o.Version {
		t.Error("version flag not set")
	}
}

func TestHelpReturnsErrHelp(t *testing.T) {
	fs := newFS()
	fs.SetOutput(io.Discard)
	if _, err := ParseArgs(fs, []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err = %v, want flag.ErrHelp", err)
	}
}
