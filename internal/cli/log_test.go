package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoggerRoundTrip(t *testing.T) {
	l := newLogger(&bytes.Buffer{}, log.DebugLevel)
	ctx := withLogger(context.Background(), l)

	if got := loggerFromContext(ctx); got != l {
		t.Error("loggerFromContext() should return the attached logger")
	}
}

func TestLoggerFromContextDefault(t *testing.T) {
	if got := loggerFromContext(context.Background()); got == nil {
		t.Error("loggerFromContext() without attachment should return a usable default")
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.DebugLevel)

	p := newProgress(l)
	p.done("resolved 3 package(s)")

	out := buf.String()
	if !strings.Contains(out, "resolved 3 package(s)") {
		t.Errorf("progress output missing message: %q", out)
	}
	if !strings.Contains(out, "(") || !strings.Contains(out, ")") {
		t.Errorf("progress output missing duration: %q", out)
	}
}

func TestProgressSilentBelowDebug(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)

	newProgress(l).done("hidden")
	if buf.Len() != 0 {
		t.Errorf("progress should log at debug level only, got %q", buf.String())
	}
}
