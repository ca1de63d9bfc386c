package cli

import (
	"context"

	"github.com/aurum-pm/aurum/pkg/run"
)

// makepkgBuilder builds and installs a package by running makepkg in its
// source directory. makepkg handles repo dependencies (-s), installs the
// result (-i), removes build deps afterwards (-r) and cleans up (-c).
type makepkgBuilder struct {
	runner run.Runner
	bin    string
	flags  []string
}

func (b *makepkgBuilder) Build(ctx context.Context, dir string) error {
	args := []string{"-sirc"}
	args = append(args, b.flags...)
	return b.runner.Interactive(ctx, dir, b.bin, args...)
}
