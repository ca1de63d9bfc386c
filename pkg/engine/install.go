package engine

import (
	"context"

	charmlog "github.com/charmbracelet/log"

	"github.com/aurum-pm/aurum/pkg/errors"
)

// OutcomeStatus classifies what happened to one planned package.
type OutcomeStatus string

const (
	// StatusInstalled means the builder ran and succeeded.
	StatusInstalled OutcomeStatus = "installed"
	// StatusSkipped means the user declined or abandoned the package.
	StatusSkipped OutcomeStatus = "skipped"
	// StatusFailed means a precondition or the build itself failed.
	StatusFailed OutcomeStatus = "failed"
)

// Outcome is the per-package result of an install run.
type Outcome struct {
	Name   string
	Status OutcomeStatus
	Err    error
}

// Install consumes the plan in dependency-first order (reverse insertion),
// auditing each package before handing it to the builder. A failure never
// rolls back packages already installed in the same batch.
//
// keepOnDecline suppresses store-entry removal when the user declines;
// update flows use it so a declined update stays tracked.
func (e *Engine) Install(ctx context.Context, plan *Plan, keepOnDecline bool) ([]Outcome, error) {
	log := e.runLog()
	order := plan.InstallOrder()
	log.Debug("install started", "packages", len(order))

	outcomes := make([]Outcome, 0, len(order))
	for _, name := range order {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, e.installOne(ctx, log, name, keepOnDecline))
	}
	return outcomes, nil
}

func (e *Engine) installOne(ctx context.Context, log *charmlog.Logger, name string, keepOnDecline bool) Outcome {
	buildFile, err := e.store.BuildFile(name)
	if err != nil {
		err = errors.Wrap(errors.ErrCodeInconsistentState, err, "%s has no build file", name)
		e.notify.Error("%s", errors.UserMessage(err))
		_ = e.store.Delete(name)
		return Outcome{Name: name, Status: StatusFailed, Err: err}
	}

	decision, err := e.auditor.Review(ctx, name, buildFile)
	if err != nil {
		decision = DecisionAbandon
	}

	switch decision {
	case DecisionAccept:
		if err := e.builder.Build(ctx, e.store.Path(name)); err != nil {
			e.notify.Error("build failed for %s: %s", name, errors.UserMessage(err))
			return Outcome{Name: name, Status: StatusFailed, Err: err}
		}
		e.notify.Success("installed %s", name)
		log.Debug("built", "pkg", name)
		return Outcome{Name: name, Status: StatusInstalled}

	case DecisionDecline:
		e.notify.Warn("skipped %s", name)
	default:
		e.notify.Warn("abandoned %s", name)
	}

	if !keepOnDecline {
		_ = e.store.Delete(name)
	}
	return Outcome{
		Name:   name,
		Status: StatusSkipped,
		Err:    errors.New(errors.ErrCodeUserAbandoned, "declined %s", name),
	}
}
