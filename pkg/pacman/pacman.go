// Package pacman adapts the system package manager into the oracle the
// engine consults: is a package installed, at what version, and which
// installed packages are foreign (not from the distribution repositories).
package pacman

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	aurerrors "github.com/aurum-pm/aurum/pkg/errors"
	"github.com/aurum-pm/aurum/pkg/run"
)

// Pacman shells out to the pacman binary.
type Pacman struct {
	runner run.Runner
	bin    string
	sudo   string
}

// New creates a pacman adapter. bin and sudo name the binaries to invoke
// (typically "pacman" and "sudo").
func New(runner run.Runner, bin, sudo string) *Pacman {
	return &Pacman{runner: runner, bin: bin, sudo: sudo}
}

// Installed reports whether name is installed and at which version.
// A non-zero pacman exit is "not installed", not an error; only failures
// to launch the process are reported.
func (p *Pacman) Installed(ctx context.Context, name string) (string, bool, error) {
	out, err := p.runner.Output(ctx, "", p.bin, "-Q", name)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", false, nil
		}
		return "", false, aurerrors.Wrap(aurerrors.ErrCodeInternal, err, "run %s -Q %s", p.bin, name)
	}

	// "name version"
	fields := strings.Fields(out)
	if len(fields) < 2 {
		return "", false, aurerrors.New(aurerrors.ErrCodeInternal, "unexpected pacman -Q output: %q", out)
	}
	return fields[1], true, nil
}

// Foreign lists installed packages that did not come from the sync
// databases (pacman -Qm), i.e. candidates for AUR tracking.
func (p *Pacman) Foreign(ctx context.Context) ([]string, error) {
	out, err := p.runner.Output(ctx, "", p.bin, "-Qm")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// pacman -Qm exits 1 when nothing matches
			return nil, nil
		}
		return nil, aurerrors.Wrap(aurerrors.ErrCodeInternal, err, "run %s -Qm", p.bin)
	}

	var names []string
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 1 && fields[0] != "" {
			names = append(names, fields[0])
		}
	}
	return names, nil
}

// Remove uninstalls packages together with their unneeded dependencies
// (pacman -Rns). Runs interactively so pacman can ask for confirmation.
func (p *Pacman) Remove(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return nil
	}
	args := append([]string{p.bin, "-Rns"}, names...)
	if err := p.runner.Interactive(ctx, "", p.sudo, args...); err != nil {
		return aurerrors.Wrap(aurerrors.ErrCodeInternal, err, "remove %s", strings.Join(names, " "))
	}
	return nil
}
