package engine

import (
	"context"

	"github.com/google/uuid"

	charmlog "github.com/charmbracelet/log"

	"github.com/aurum-pm/aurum/pkg/errors"
)

// visit carries the traversal state down one resolution run. It is a value,
// copied per recursive call, so sibling subtrees cannot influence each
// other.
type visit struct {
	// asDependency marks a package reached through recursion rather than
	// named by the user. Missing dependencies are assumed to come from the
	// base repositories, so the "not found" diagnostic softens.
	asDependency bool

	// migrating disables plan accumulation and dependency recursion:
	// migration only materializes store entries for packages whose
	// dependencies are already satisfied on the system.
	migrating bool
}

// Acquire walks the dependency graph rooted at the given references,
// clones whatever is missing from the store, and returns the resulting
// install plan. Node-level failures (missing packages, failed clones,
// unreachable metadata) are reported through the Notifier and never abort
// the batch; only context cancellation stops a run.
//
// A name passed twice is processed twice: deduplication happens solely
// through the store existence check, which is also what terminates
// dependency cycles.
func (e *Engine) Acquire(ctx context.Context, names []string) (*Plan, error) {
	plan := NewPlan()
	log := e.runLog()
	log.Debug("acquisition started", "targets", names)

	if err := e.acquire(ctx, log, plan, Refs(names), visit{}); err != nil {
		return nil, err
	}

	log.Debug("acquisition finished", "planned", plan.Len())
	return plan, nil
}

func (e *Engine) acquire(ctx context.Context, log *charmlog.Logger, plan *Plan, refs []Ref, v visit) error {
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return err
		}
		name := ref.Name()
		if name == "" {
			continue
		}
		log.Debug("resolving", "pkg", name, "dependency", v.asDependency)

		pkg, err := e.client.Info(ctx, name, e.refresh)
		if err != nil {
			e.reportLookupFailure(name, err, v)
			continue
		}

		if e.store.Exists(name) {
			e.notify.Info("%s is already tracked, skipping", name)
			continue
		}

		if err := e.store.Clone(ctx, name); err != nil {
			e.notify.Error("could not fetch %s: %s", name, errors.UserMessage(err))
			continue
		}
		e.notify.Success("fetched %s %s", name, pkg.Version)

		if v.migrating {
			continue
		}
		plan.Add(name)

		for _, dep := range pkg.AllDepends() {
			depName := Ref(dep).Name()
			if ver, ok, err := e.oracle.Installed(ctx, depName); err == nil && ok {
				e.notify.Info("dependency %s is already installed (%s)", depName, ver)
				continue
			}
			if err := e.acquire(ctx, log, plan, []Ref{Ref(dep)}, visit{asDependency: true}); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Engine) reportLookupFailure(name string, err error, v visit) {
	if errors.Is(err, errors.ErrCodePackageNotFound) {
		switch {
		case v.migrating:
			// Assumed to be satisfied from the base repositories.
		case v.asDependency:
			e.notify.Info("%s is not in the AUR, leaving it to pacman", name)
		default:
			e.notify.Error("package not found: %s", name)
		}
		return
	}
	e.notify.Error("could not query %s: %s", name, errors.UserMessage(err))
}

// runLog tags a logger with a fresh run identifier so interleaved debug
// output from a long-lived process stays attributable.
func (e *Engine) runLog() *charmlog.Logger {
	return e.log.With("run", uuid.NewString()[:8])
}
