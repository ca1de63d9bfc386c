package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aurum-pm/aurum/pkg/errors"
)

func TestMigrateAll(t *testing.T) {
	h := newHarness(t)
	h.oracle.foreign = []string{"a", "b"}
	h.addRemote("a", "1.0-1", "dep-of-a")
	h.addRemote("dep-of-a", "1.0-1")
	// b has no AUR record.

	err := h.engine.MigrateAll(context.Background())
	require.NoError(t, err)

	require.True(t, h.store.Exists("a"), "valid foreign package gains an entry")
	require.False(t, h.store.Exists("b"))

	// Migration neither recurses into dependencies nor reports the
	// missing package.
	require.NotContains(t, h.client.queried, "dep-of-a")
	require.Empty(t, h.out.errs)
	require.Empty(t, h.out.warns)
}

func TestMigrateAll_Empty(t *testing.T) {
	h := newHarness(t)

	err := h.engine.MigrateAll(context.Background())
	require.NoError(t, err)
	require.Contains(t, h.out.infos[0], "no foreign packages")
}

func TestMigrate_AlreadyTracked(t *testing.T) {
	h := newHarness(t)
	h.store.seed(t, "yay", nil)

	err := h.engine.Migrate(context.Background(), "yay")
	require.True(t, errors.Is(err, errors.ErrCodeAlreadyPresent))
}

func TestMigrate_NotInstalled(t *testing.T) {
	h := newHarness(t)
	h.addRemote("yay", "12.0.2-1")

	err := h.engine.Migrate(context.Background(), "yay")
	require.True(t, errors.Is(err, errors.ErrCodePackageNotFound))
	require.Contains(t, errors.UserMessage(err), "not installed")
}

func TestMigrate_NotRemote(t *testing.T) {
	h := newHarness(t)
	h.oracle.installed["inhouse"] = "1.0-1"

	err := h.engine.Migrate(context.Background(), "inhouse")
	require.True(t, errors.Is(err, errors.ErrCodePackageNotFound))
	require.Contains(t, errors.UserMessage(err), "not an AUR package")
}

func TestMigrate_Adopts(t *testing.T) {
	h := newHarness(t)
	h.oracle.installed["yay"] = "12.0.2-1"
	h.addRemote("yay", "12.0.2-1", "git")

	err := h.engine.Migrate(context.Background(), "yay")
	require.NoError(t, err)

	require.True(t, h.store.Exists("yay"))
	// No plan accumulation and no dependency recursion during migration.
	require.NotContains(t, h.client.queried, "git")
	require.Empty(t, h.builder.built)
}
