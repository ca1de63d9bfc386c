// Package engine implements aurum's core: recursive dependency acquisition,
// update detection, plan-ordered installation, dependency verification, and
// migration of already-installed packages into the local store.
//
// The engine is deliberately synchronous and single-threaded: every external
// call (RPC query, clone, pull, oracle lookup, build) blocks the run. All
// per-run state lives in values created at the top-level entry points, never
// in package globals, so an Engine can serve many runs over its lifetime.
package engine

import (
	"context"

	charmlog "github.com/charmbracelet/log"

	"github.com/aurum-pm/aurum/pkg/aur"
)

// MetadataClient answers whether a package exists in the remote repository
// and what it declares. Implemented by [aur.Client].
type MetadataClient interface {
	Info(ctx context.Context, name string, refresh bool) (*aur.Package, error)
}

// Oracle reports local installation state via the system package manager.
// Implemented by [pacman.Pacman].
type Oracle interface {
	// Installed returns the installed version of name, if any.
	Installed(ctx context.Context, name string) (version string, ok bool, err error)
	// Foreign lists installed packages not from the base distribution.
	Foreign(ctx context.Context) ([]string, error)
}

// SourceStore is the local mirror of cloned packages. Implemented by
// [store.Store].
type SourceStore interface {
	Exists(name string) bool
	Path(name string) string
	Clone(ctx context.Context, name string) error
	Pull(ctx context.Context, name string) error
	Delete(name string) error
	List() ([]string, error)
	// BuildFile returns the path of the package's PKGBUILD, or an error
	// with code FILE_NOT_FOUND.
	BuildFile(name string) (string, error)
	// MetadataFile returns the path of the package's .SRCINFO, or an error
	// with code FILE_NOT_FOUND.
	MetadataFile(name string) (string, error)
}

// Builder produces and installs a package from its source directory.
type Builder interface {
	Build(ctx context.Context, dir string) error
}

// Decision is the outcome of an audit review.
type Decision int

const (
	// DecisionAccept proceeds with the build.
	DecisionAccept Decision = iota
	// DecisionDecline skips the package deliberately.
	DecisionDecline
	// DecisionAbandon is a decline caused by unusable input.
	DecisionAbandon
)

// Auditor lets the user inspect a package's build file before it runs.
type Auditor interface {
	Review(ctx context.Context, name, buildFile string) (Decision, error)
}

// Engine wires the collaborators together.
type Engine struct {
	client  MetadataClient
	oracle  Oracle
	store   SourceStore
	builder Builder
	auditor Auditor
	notify  Notifier
	log     *charmlog.Logger
	refresh bool
}

// Options configures an Engine. Client, Oracle and Store are required;
// Builder and Auditor only for installation.
type Options struct {
	Client  MetadataClient
	Oracle  Oracle
	Store   SourceStore
	Builder Builder
	Auditor Auditor
	Notify  Notifier         // user-facing diagnostics (default: discard)
	Logger  *charmlog.Logger // debug logging (default: charmlog.Default())
	Refresh bool             // bypass the metadata cache
}

// New creates an Engine.
func New(opts Options) *Engine {
	if opts.Notify == nil {
		opts.Notify = NopNotifier{}
	}
	if opts.Logger == nil {
		opts.Logger = charmlog.Default()
	}
	return &Engine{
		client:  opts.Client,
		oracle:  opts.Oracle,
		store:   opts.Store,
		builder: opts.Builder,
		auditor: opts.Auditor,
		notify:  opts.Notify,
		log:     opts.Logger,
		refresh: opts.Refresh,
	}
}
