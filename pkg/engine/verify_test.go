package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aurum-pm/aurum/pkg/aur"
	"github.com/aurum-pm/aurum/pkg/errors"
)

func TestVerifyRemote(t *testing.T) {
	h := newHarness(t)
	h.client.pkgs["app"] = &aur.Package{
		Name:        "app",
		Version:     "1.0-1",
		Depends:     []string{"glibc>=2.38", "sqlite"},
		MakeDepends: []string{"meson"},
	}
	h.oracle.installed["glibc"] = "2.39-1"
	h.oracle.installed["meson"] = "1.4.0-1"

	statuses, err := h.engine.VerifyRemote(context.Background(), "app")
	require.NoError(t, err)

	require.Len(t, statuses, 3)
	require.Equal(t, "glibc", statuses[0].Name, "constraint suffix stripped")
	require.True(t, statuses[0].Installed)
	require.Equal(t, "2.39-1", statuses[0].Version)
	require.False(t, statuses[1].Installed)
	require.True(t, statuses[2].Installed)
}

func TestVerifyRemote_NotFound(t *testing.T) {
	h := newHarness(t)

	_, err := h.engine.VerifyRemote(context.Background(), "missing")
	require.True(t, errors.Is(err, errors.ErrCodePackageNotFound))
}

func TestVerifyRemote_DoesNotTouchStore(t *testing.T) {
	h := newHarness(t)
	h.addRemote("app", "1.0-1", "dep")

	_, err := h.engine.VerifyRemote(context.Background(), "app")
	require.NoError(t, err)

	require.Empty(t, h.store.cloned)
	require.Empty(t, h.store.pulled)
	require.Empty(t, h.store.deleted)
}

func TestVerifyLocal(t *testing.T) {
	h := newHarness(t)
	h.store.seed(t, "app", map[string]string{
		"PKGBUILD": "pkgname=app\ndepends=('glibc>=2.38' 'sqlite')\n",
	})
	h.oracle.installed["glibc"] = "2.39-1"

	statuses, err := h.engine.VerifyLocal(context.Background(), "app")
	require.NoError(t, err)

	require.Len(t, statuses, 2)
	require.Equal(t, "glibc", statuses[0].Name)
	require.True(t, statuses[0].Installed)
	require.Equal(t, "sqlite", statuses[1].Name)
	require.False(t, statuses[1].Installed)
}

func TestVerifyLocal_InstalledButUntracked(t *testing.T) {
	h := newHarness(t)
	h.oracle.installed["stray"] = "1.0-1"

	_, err := h.engine.VerifyLocal(context.Background(), "stray")
	require.True(t, errors.Is(err, errors.ErrCodeInconsistentState))
	require.Contains(t, errors.UserMessage(err), "adopt")
}

func TestVerifyLocal_Unknown(t *testing.T) {
	h := newHarness(t)

	_, err := h.engine.VerifyLocal(context.Background(), "unknown")
	require.True(t, errors.Is(err, errors.ErrCodePackageNotFound))
}

func TestVerifyLocal_MissingBuildFile(t *testing.T) {
	h := newHarness(t)
	h.store.seed(t, "bare", nil)

	_, err := h.engine.VerifyLocal(context.Background(), "bare")
	require.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
}
