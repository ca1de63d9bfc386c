package engine

import (
	"context"

	"github.com/aurum-pm/aurum/pkg/errors"
)

// MigrateAll seeds the store from every foreign package the oracle reports.
// Migration only materializes store entries: dependency recursion and plan
// accumulation stay off, and foreign packages with no AUR record are
// skipped silently (split packages and manually built software are
// expected in the foreign set).
func (e *Engine) MigrateAll(ctx context.Context) error {
	foreign, err := e.oracle.Foreign(ctx)
	if err != nil {
		return err
	}
	if len(foreign) == 0 {
		e.notify.Info("no foreign packages installed")
		return nil
	}

	log := e.runLog()
	log.Debug("migration started", "candidates", len(foreign))
	return e.acquire(ctx, log, NewPlan(), Refs(foreign), visit{migrating: true})
}

// Migrate adopts one named package into the store. Unlike the bulk form,
// preconditions are fatal: the package must not already be tracked, must
// be installed, and must exist in the AUR.
func (e *Engine) Migrate(ctx context.Context, name string) error {
	name = Ref(name).Name()

	if e.store.Exists(name) {
		return errors.New(errors.ErrCodeAlreadyPresent, "%s is already tracked", name)
	}
	if _, ok, err := e.oracle.Installed(ctx, name); err != nil {
		return err
	} else if !ok {
		return errors.New(errors.ErrCodePackageNotFound, "%s is not installed", name)
	}
	if _, err := e.client.Info(ctx, name, e.refresh); err != nil {
		if errors.Is(err, errors.ErrCodePackageNotFound) {
			return errors.New(errors.ErrCodePackageNotFound, "%s is not an AUR package", name)
		}
		return err
	}

	log := e.runLog()
	return e.acquire(ctx, log, NewPlan(), []Ref{Ref(name)}, visit{migrating: true})
}
