// internal/progress/progress_test.go
package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogsEveryUnit(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, 3, "Processed", "records")
	for i := 0; i < 7; i++ {
		l.Record()
	}
	out := buf.String()
	if want := "INFO: Processed 3 records\n"; !strings.Contains(out, want) {
		t.Errorf("missing %q in %q", want, out)
	}
	if want := "INFO: Processed 6 records\n"; !strings.Contains(out, want) {
		t.Errorf("missing %q in %q", want, out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected 2 lines, got %q", out)
	}
	if l.Count() != 7 {
		t.Errorf("Count = %d, want 7", l.Count())
	}
}

func TestDoneReportsTotal(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, 10, "Processed", "alignment records")
	l.Record()
	l.Record()
	l.Done()
	if want := "INFO: Processed 2 alignment records in total\n"; buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestDefaultUnit(t *testing.T) {
	l := New(nil, 0, "v", "n")
	if l.Unit != defaultUnit {
		t.Errorf("Unit = %d, want %d", l.Unit, defaultUnit)
	}
}

func TestNilLoggerIsSilent(t *testing.T) {
	var l *Logger
	l.Record()
	l.Done()
	if l.Count() != 0 {
		t.Errorf("nil Count = %d", l.Count())
	}
}
