package engine_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aurum-pm/aurum/pkg/aur"
	"github.com/aurum-pm/aurum/pkg/engine"
	"github.com/aurum-pm/aurum/pkg/errors"
)

// fakeClient serves canned AUR records. Names without a record return
// PACKAGE_NOT_FOUND, like the real RPC client.
type fakeClient struct {
	pkgs    map[string]*aur.Package
	queried []string
}

func (c *fakeClient) Info(ctx context.Context, name string, refresh bool) (*aur.Package, error) {
	c.queried = append(c.queried, name)
	if pkg, ok := c.pkgs[name]; ok {
		return pkg, nil
	}
	return nil, errors.New(errors.ErrCodePackageNotFound, "package not in AUR: %s", name)
}

// fakeOracle answers installed-state lookups from a map.
type fakeOracle struct {
	installed map[string]string // name -> version
	foreign   []string
	looked    []string
}

func (o *fakeOracle) Installed(ctx context.Context, name string) (string, bool, error) {
	o.looked = append(o.looked, name)
	ver, ok := o.installed[name]
	return ver, ok, nil
}

func (o *fakeOracle) Foreign(ctx context.Context) ([]string, error) {
	return o.foreign, nil
}

// fakeStore is a real directory tree with scriptable clone/pull failures.
type fakeStore struct {
	root     string
	cloneErr map[string]error
	pullErr  map[string]error
	cloned   []string
	pulled   []string
	deleted  []string
}

func newFakeStore(t *testing.T) *fakeStore {
	t.Helper()
	return &fakeStore{
		root:     t.TempDir(),
		cloneErr: map[string]error{},
		pullErr:  map[string]error{},
	}
}

func (s *fakeStore) Path(name string) string { return filepath.Join(s.root, name) }

func (s *fakeStore) Exists(name string) bool {
	info, err := os.Stat(s.Path(name))
	return err == nil && info.IsDir()
}

func (s *fakeStore) Clone(ctx context.Context, name string) error {
	s.cloned = append(s.cloned, name)
	if err := s.cloneErr[name]; err != nil {
		return err
	}
	if err := os.MkdirAll(s.Path(name), 0755); err != nil {
		return err
	}
	// Real clones ship a PKGBUILD.
	return os.WriteFile(filepath.Join(s.Path(name), "PKGBUILD"), []byte("pkgname="+name+"\n"), 0644)
}

func (s *fakeStore) Pull(ctx context.Context, name string) error {
	s.pulled = append(s.pulled, name)
	return s.pullErr[name]
}

func (s *fakeStore) Delete(name string) error {
	s.deleted = append(s.deleted, name)
	return os.RemoveAll(s.Path(name))
}

func (s *fakeStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

func (s *fakeStore) BuildFile(name string) (string, error) {
	return s.file(name, "PKGBUILD")
}

func (s *fakeStore) MetadataFile(name string) (string, error) {
	return s.file(name, ".SRCINFO")
}

func (s *fakeStore) file(pkg, name string) (string, error) {
	path := filepath.Join(s.Path(pkg), name)
	if _, err := os.Stat(path); err != nil {
		return "", errors.New(errors.ErrCodeFileNotFound, "no %s in %s", name, pkg)
	}
	return path, nil
}

// seed creates a tracked entry with the given files.
func (s *fakeStore) seed(t *testing.T, name string, files map[string]string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(s.Path(name), 0755))
	for file, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(s.Path(name), file), []byte(content), 0644))
	}
}

// fakeBuilder records build invocations.
type fakeBuilder struct {
	failFor map[string]bool // keyed by directory base name
	built   []string
}

func (b *fakeBuilder) Build(ctx context.Context, dir string) error {
	name := filepath.Base(dir)
	b.built = append(b.built, name)
	if b.failFor[name] {
		return errors.New(errors.ErrCodeInternal, "makepkg exited 4")
	}
	return nil
}

// fakeAuditor replays scripted decisions, defaulting to accept.
type fakeAuditor struct {
	decisions map[string]engine.Decision
	reviewed  []string
}

func (a *fakeAuditor) Review(ctx context.Context, name, buildFile string) (engine.Decision, error) {
	a.reviewed = append(a.reviewed, name)
	if d, ok := a.decisions[name]; ok {
		return d, nil
	}
	return engine.DecisionAccept, nil
}

// recorder captures diagnostics by severity.
type recorder struct {
	infos     []string
	successes []string
	warns     []string
	errs      []string
}

func (r *recorder) Info(format string, args ...any)    { r.infos = append(r.infos, fmt.Sprintf(format, args...)) }
func (r *recorder) Success(format string, args ...any) { r.successes = append(r.successes, fmt.Sprintf(format, args...)) }
func (r *recorder) Warn(format string, args ...any)    { r.warns = append(r.warns, fmt.Sprintf(format, args...)) }
func (r *recorder) Error(format string, args ...any)   { r.errs = append(r.errs, fmt.Sprintf(format, args...)) }

// harness bundles an engine with all its fakes.
type harness struct {
	engine  *engine.Engine
	client  *fakeClient
	oracle  *fakeOracle
	store   *fakeStore
	builder *fakeBuilder
	auditor *fakeAuditor
	out     *recorder
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		client:  &fakeClient{pkgs: map[string]*aur.Package{}},
		oracle:  &fakeOracle{installed: map[string]string{}},
		store:   newFakeStore(t),
		builder: &fakeBuilder{failFor: map[string]bool{}},
		auditor: &fakeAuditor{decisions: map[string]engine.Decision{}},
		out:     &recorder{},
	}
	h.engine = engine.New(engine.Options{
		Client:  h.client,
		Oracle:  h.oracle,
		Store:   h.store,
		Builder: h.builder,
		Auditor: h.auditor,
		Notify:  h.out,
	})
	return h
}

func (h *harness) addRemote(name, version string, deps ...string) {
	h.client.pkgs[name] = &aur.Package{Name: name, Version: version, Depends: deps}
}
