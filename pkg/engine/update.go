package engine

import (
	"context"

	"github.com/aurum-pm/aurum/pkg/errors"
	"github.com/aurum-pm/aurum/pkg/srcinfo"
	"github.com/aurum-pm/aurum/pkg/version"
)

// CheckUpdates pulls the latest source for each named tracked package (all
// tracked packages when names is empty), compares the declared version
// against the installed one, and returns a plan of packages with updates
// available. Per-package failures are diagnostics, not run failures.
//
// A tracked package the oracle reports as not installed is an inconsistency:
// its store entry is removed and it is never planned.
func (e *Engine) CheckUpdates(ctx context.Context, names []string) (*Plan, error) {
	if len(names) == 0 {
		tracked, err := e.store.List()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "list tracked packages")
		}
		names = tracked
	}

	plan := NewPlan()
	log := e.runLog()
	log.Debug("update check started", "packages", len(names))

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !e.store.Exists(name) {
			e.notify.Error("%s is not tracked", name)
			continue
		}
		if _, err := e.store.MetadataFile(name); err != nil {
			e.notify.Error("%s has no %s, cannot compare versions", name, srcinfo.FileName)
			continue
		}

		if err := e.store.Pull(ctx, name); err != nil {
			e.notify.Error("could not refresh %s: %s", name, errors.UserMessage(err))
			continue
		}

		path, err := e.store.MetadataFile(name)
		if err != nil {
			e.notify.Error("%s lost its %s after pull", name, srcinfo.FileName)
			continue
		}
		info, err := srcinfo.ParseFile(path)
		if err != nil {
			e.notify.Error("could not read metadata for %s: %s", name, errors.UserMessage(err))
			continue
		}
		remote := info.FullVersion()

		installed, ok, err := e.oracle.Installed(ctx, name)
		if err != nil {
			e.notify.Error("could not query installed state of %s: %s", name, errors.UserMessage(err))
			continue
		}
		if !ok {
			e.notify.Error("%s is tracked but not installed, removing its entry", name)
			_ = e.store.Delete(name)
			continue
		}

		if version.Newer(remote, installed) {
			e.notify.Info("update available: %s %s -> %s", name, installed, remote)
			plan.Add(name)
		} else {
			e.notify.Info("%s is current (%s)", name, installed)
			log.Debug("no update", "pkg", name, "installed", installed, "remote", remote)
		}
	}

	log.Debug("update check finished", "planned", plan.Len())
	return plan, nil
}
