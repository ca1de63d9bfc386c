package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aurum-pm/aurum/pkg/errors"
)

// gitFake simulates the git binary. A clone creates the target directory
// unless the package name is in failing; a clone of a name in vanishing
// exits zero without creating anything.
type gitFake struct {
	root      string
	failing   map[string]bool
	vanishing map[string]bool
	calls     []string
}

func (g *gitFake) Output(ctx context.Context, dir, name string, args ...string) (string, error) {
	g.calls = append(g.calls, strings.Join(args, " "))
	if len(args) > 0 && args[0] == "clone" {
		pkg := args[2]
		if g.failing[pkg] {
			return "", errors.New(errors.ErrCodeInternal, "exit status 128")
		}
		if g.vanishing[pkg] {
			return "", nil
		}
		return "", os.MkdirAll(filepath.Join(dir, pkg), 0755)
	}
	return "", nil
}

func (g *gitFake) Interactive(ctx context.Context, dir, name string, args ...string) error {
	return nil
}

func newTestStore(t *testing.T) (*Store, *gitFake) {
	t.Helper()
	root := t.TempDir()
	fake := &gitFake{root: root, failing: map[string]bool{}, vanishing: map[string]bool{}}
	s, err := New(root, fake, "git", "https://aur.archlinux.org")
	if err != nil {
		t.Fatal(err)
	}
	return s, fake
}

func TestCloneAndExists(t *testing.T) {
	s, fake := newTestStore(t)
	ctx := context.Background()

	if s.Exists("yay") {
		t.Fatal("fresh store should not track yay")
	}
	if err := s.Clone(ctx, "yay"); err != nil {
		t.Fatalf("Clone failed: %v", err)
	}
	if !s.Exists("yay") {
		t.Error("clone should create a tracked entry")
	}
	if fake.calls[0] != "clone https://aur.archlinux.org/yay.git yay" {
		t.Errorf("unexpected git invocation: %s", fake.calls[0])
	}
}

func TestClone_Failure(t *testing.T) {
	s, fake := newTestStore(t)
	fake.failing["ghost"] = true

	err := s.Clone(context.Background(), "ghost")
	if !errors.Is(err, errors.ErrCodeTransport) {
		t.Errorf("expected TRANSPORT_FAILURE, got %v", err)
	}
	if s.Exists("ghost") {
		t.Error("failed clone must not leave an entry")
	}
}

func TestClone_NoDirectoryProduced(t *testing.T) {
	s, fake := newTestStore(t)
	fake.vanishing["odd"] = true

	err := s.Clone(context.Background(), "odd")
	if !errors.Is(err, errors.ErrCodeTransport) {
		t.Errorf("zero-exit clone without directory should be TRANSPORT_FAILURE, got %v", err)
	}
}

func TestPull(t *testing.T) {
	s, fake := newTestStore(t)
	ctx := context.Background()

	if err := s.Pull(ctx, "untracked"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("pull of untracked package: expected NOT_FOUND, got %v", err)
	}

	if err := s.Clone(ctx, "yay"); err != nil {
		t.Fatal(err)
	}
	if err := s.Pull(ctx, "yay"); err != nil {
		t.Fatalf("Pull failed: %v", err)
	}
	last := fake.calls[len(fake.calls)-1]
	if last != "pull --ff-only" {
		t.Errorf("unexpected git invocation: %s", last)
	}
}

func TestBuildFile(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if err := s.Clone(ctx, "yay"); err != nil {
		t.Fatal(err)
	}

	if _, err := s.BuildFile("yay"); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("expected FILE_NOT_FOUND before PKGBUILD exists, got %v", err)
	}

	want := filepath.Join(s.Path("yay"), "PKGBUILD")
	if err := os.WriteFile(want, []byte("pkgname=yay\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := s.BuildFile("yay")
	if err != nil {
		t.Fatalf("BuildFile failed: %v", err)
	}
	if got != want {
		t.Errorf("BuildFile = %q, want %q", got, want)
	}
}

func TestMetadataFile(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if err := s.Clone(ctx, "yay"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.MetadataFile("yay"); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("expected FILE_NOT_FOUND, got %v", err)
	}

	path := filepath.Join(s.Path("yay"), ".SRCINFO")
	if err := os.WriteFile(path, []byte("pkgver = 1.0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.MetadataFile("yay"); err != nil {
		t.Errorf("MetadataFile failed: %v", err)
	}
}

func TestDeleteAndList(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"zig-dev", "aurutils"} {
		if err := s.Clone(ctx, name); err != nil {
			t.Fatal(err)
		}
	}

	names, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != "aurutils" || names[1] != "zig-dev" {
		t.Errorf("expected sorted list, got %v", names)
	}

	if err := s.Delete("aurutils"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if s.Exists("aurutils") {
		t.Error("deleted entry should not be tracked")
	}
	// Idempotent delete.
	if err := s.Delete("aurutils"); err != nil {
		t.Errorf("second delete should not error: %v", err)
	}
}
