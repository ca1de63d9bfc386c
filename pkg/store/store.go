// Package store manages the local mirror of cloned package sources.
//
// Each tracked package is a subdirectory of the store root, named after the
// package. Directory existence is the sole tracking signal: a package with
// a directory is tracked, one without is not. Entries are created by Clone,
// refreshed by Pull, and removed by Delete.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/aurum-pm/aurum/pkg/errors"
	"github.com/aurum-pm/aurum/pkg/run"
	"github.com/aurum-pm/aurum/pkg/srcinfo"
)

// Store is the on-disk collection of cloned package repositories.
type Store struct {
	root   string
	runner run.Runner
	git    string
	gitURL string
}

// New opens (creating if needed) a store rooted at dir. Clones come from
// <gitURL>/<name>.git using the named git binary.
func New(dir string, runner run.Runner, gitBin, gitURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create store root %s", dir)
	}
	return &Store{root: dir, runner: runner, git: gitBin, gitURL: gitURL}, nil
}

// Root returns the store root directory.
func (s *Store) Root() string { return s.root }

// Path returns the directory a package occupies (whether or not it exists).
func (s *Store) Path(name string) string {
	return filepath.Join(s.root, name)
}

// Exists reports whether a package is tracked.
func (s *Store) Exists(name string) bool {
	info, err := os.Stat(s.Path(name))
	return err == nil && info.IsDir()
}

// Clone fetches a package's source repository into the store. A clone that
// exits zero but leaves no directory behind is still a failure.
func (s *Store) Clone(ctx context.Context, name string) error {
	url := fmt.Sprintf("%s/%s.git", s.gitURL, name)
	if _, err := s.runner.Output(ctx, s.root, s.git, "clone", url, name); err != nil {
		return errors.Wrap(errors.ErrCodeTransport, err, "clone %s", name)
	}
	if !s.Exists(name) {
		return errors.New(errors.ErrCodeTransport, "clone of %s produced no directory", name)
	}
	return nil
}

// Pull refreshes a tracked package to the latest upstream state.
func (s *Store) Pull(ctx context.Context, name string) error {
	if !s.Exists(name) {
		return errors.New(errors.ErrCodeNotFound, "package not tracked: %s", name)
	}
	if _, err := s.runner.Output(ctx, s.Path(name), s.git, "pull", "--ff-only"); err != nil {
		return errors.Wrap(errors.ErrCodeTransport, err, "pull %s", name)
	}
	return nil
}

// Delete removes a package's directory. Deleting an untracked package is
// not an error.
func (s *Store) Delete(name string) error {
	return os.RemoveAll(s.Path(name))
}

// BuildFile returns the path to a tracked package's PKGBUILD, or an error
// with code FILE_NOT_FOUND when the file is absent.
func (s *Store) BuildFile(name string) (string, error) {
	return s.file(name, srcinfo.BuildFileName)
}

// MetadataFile returns the path to a tracked package's .SRCINFO, or an
// error with code FILE_NOT_FOUND when the file is absent.
func (s *Store) MetadataFile(name string) (string, error) {
	return s.file(name, srcinfo.FileName)
}

func (s *Store) file(pkg, name string) (string, error) {
	path := filepath.Join(s.Path(pkg), name)
	if _, err := os.Stat(path); err != nil {
		return "", errors.New(errors.ErrCodeFileNotFound, "no %s in %s", name, s.Path(pkg))
	}
	return path, nil
}

// List enumerates tracked packages in sorted order.
func (s *Store) List() ([]string, error) {
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
	sort.Strings(names)
	return names, nil
}
