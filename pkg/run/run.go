// Package run is the process-execution seam between aurum and the external
// tools it drives (git, pacman, makepkg). Adapters take a Runner so tests
// can substitute a fake instead of spawning processes.
package run

import (
	"context"
	"os"
	"os/exec"
	"strings"
)

// Runner executes external commands.
type Runner interface {
	// Output runs the command in dir (or the working directory when dir is
	// empty) and returns its combined standard output, trimmed.
	Output(ctx context.Context, dir, name string, args ...string) (string, error)

	// Interactive runs the command attached to the user's terminal.
	Interactive(ctx context.Context, dir, name string, args ...string) error
}

// Exec is the Runner backed by os/exec.
type Exec struct{}

// NewExec returns the real process runner.
func NewExec() Runner { return Exec{} }

// Output implements Runner.
func (Exec) Output(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	return strings.TrimSpace(string(out)), err
}

// Interactive implements Runner.
func (Exec) Interactive(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
