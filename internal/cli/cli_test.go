package cli

import (
	"io"
	"testing"

	"github.com/aurum-pm/aurum/pkg/engine"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"install", "update", "check", "adopt", "remove", "graph", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestSummarize(t *testing.T) {
	ok := []engine.Outcome{
		{Name: "a", Status: engine.StatusInstalled},
		{Name: "b", Status: engine.StatusSkipped},
	}
	if err := summarize(ok); err != nil {
		t.Errorf("summarize() with no failures should return nil, got %v", err)
	}

	bad := append(ok, engine.Outcome{Name: "c", Status: engine.StatusFailed})
	if err := summarize(bad); err == nil {
		t.Error("summarize() with a failure should return an error")
	}
}

func TestPagerScrolling(t *testing.T) {
	m := newPagerModel("yay", "a\nb\nc\nd\ne\n")
	m.height = 2

	if m.maxOffset() != 3 {
		t.Errorf("maxOffset() = %d, want 3", m.maxOffset())
	}

	m.offset = m.maxOffset()
	if m.percent() != 100 {
		t.Errorf("percent() at bottom = %d, want 100", m.percent())
	}

	m.offset = 0
	if m.percent() != 0 {
		t.Errorf("percent() at top = %d, want 0", m.percent())
	}
}
