package engine

import (
	"context"

	"github.com/aurum-pm/aurum/pkg/errors"
	"github.com/aurum-pm/aurum/pkg/srcinfo"
)

// DepStatus reports the installation state of one declared dependency.
type DepStatus struct {
	Name      string // constraint-stripped dependency name
	Installed bool
	Version   string // installed version, when Installed
}

// VerifyRemote checks a package's declared dependencies against the oracle
// using the remote metadata record. It never touches the store. A missing
// remote record is returned as a PACKAGE_NOT_FOUND error.
func (e *Engine) VerifyRemote(ctx context.Context, name string) ([]DepStatus, error) {
	pkg, err := e.client.Info(ctx, Ref(name).Name(), e.refresh)
	if err != nil {
		return nil, err
	}
	return e.depStatuses(ctx, pkg.AllDepends())
}

// VerifyLocal checks dependencies declared in a tracked package's build
// file against the oracle. It is read-only: the entry is neither pulled
// nor modified.
//
// An untracked name resolves to guidance: installed-but-untracked suggests
// adoption, a completely unknown name is an error.
func (e *Engine) VerifyLocal(ctx context.Context, name string) ([]DepStatus, error) {
	if !e.store.Exists(name) {
		if _, ok, _ := e.oracle.Installed(ctx, name); ok {
			return nil, errors.New(errors.ErrCodeInconsistentState,
				"%s is installed but not tracked; run 'aurum adopt %s' first", name, name)
		}
		return nil, errors.New(errors.ErrCodePackageNotFound, "%s is neither tracked nor installed", name)
	}

	buildFile, err := e.store.BuildFile(name)
	if err != nil {
		return nil, err
	}
	deps, err := srcinfo.DependsFromPKGBUILD(buildFile)
	if err != nil {
		return nil, err
	}
	return e.depStatuses(ctx, deps)
}

func (e *Engine) depStatuses(ctx context.Context, deps []string) ([]DepStatus, error) {
	statuses := make([]DepStatus, 0, len(deps))
	for _, dep := range deps {
		name := Ref(dep).Name()
		ver, ok, err := e.oracle.Installed(ctx, name)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, DepStatus{Name: name, Installed: ok, Version: ver})
	}
	return statuses, nil
}
