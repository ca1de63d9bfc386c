// Package cli implements the aurum command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/aurum-pm/aurum/pkg/aur"
	"github.com/aurum-pm/aurum/pkg/buildinfo"
	"github.com/aurum-pm/aurum/pkg/cache"
	"github.com/aurum-pm/aurum/pkg/config"
	"github.com/aurum-pm/aurum/pkg/engine"
	"github.com/aurum-pm/aurum/pkg/pacman"
	"github.com/aurum-pm/aurum/pkg/run"
	"github.com/aurum-pm/aurum/pkg/store"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	cfg    config.Config
	runner run.Runner
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		runner: run.NewExec(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var repoDir string

	root := &cobra.Command{
		Use:          "aurum",
		Short:        "Aurum builds and tracks AUR packages",
		Long:         `Aurum is an AUR helper. It resolves dependency trees in the AUR, clones package sources into a local store, and drives makepkg and pacman to build and install them.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if repoDir != "" {
				cfg.RepoDir = repoDir
			}
			c.cfg = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&repoDir, "repo-dir", "", "override the package store location")

	root.AddCommand(c.installCommand())
	root.AddCommand(c.updateCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.adoptCommand())
	root.AddCommand(c.removeCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newEngine wires an engine from the loaded configuration. The returned
// cleanup closes the cache backend.
func (c *CLI) newEngine(ctx context.Context, refresh bool) (*engine.Engine, func(), error) {
	client, closeCache, err := c.newAURClient(ctx)
	if err != nil {
		return nil, nil, err
	}

	st, err := store.New(c.cfg.RepoDir, c.runner, c.cfg.Commands.Git, c.cfg.GitURL)
	if err != nil {
		closeCache()
		return nil, nil, err
	}

	eng := engine.New(engine.Options{
		Client:  client,
		Oracle:  c.pacman(),
		Store:   st,
		Builder: c.builder(),
		Auditor: &prompt{},
		Notify:  printNotifier{},
		Logger:  loggerFromContext(ctx),
		Refresh: refresh,
	})
	return eng, closeCache, nil
}

// newAURClient builds the RPC client on top of the configured cache backend.
func (c *CLI) newAURClient(ctx context.Context) (*aur.Client, func(), error) {
	backend, err := c.newCache(ctx)
	if err != nil {
		return nil, nil, err
	}
	closeCache := func() {
		if err := backend.Close(); err != nil {
			c.Logger.Debug("cache close failed", "err", err)
		}
	}
	return aur.NewClient(c.cfg.RPCURL, backend, c.cfg.Cache.TTL()), closeCache, nil
}

func (c *CLI) newCache(ctx context.Context) (cache.Cache, error) {
	switch c.cfg.Cache.Backend {
	case "none":
		return cache.NewNullCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, c.cfg.Cache.RedisAddr)
	default:
		backend, err := cache.NewFileCache(c.cfg.Cache.Dir)
		if err != nil {
			c.Logger.Debug("file cache unavailable", "err", err)
			return cache.NewNullCache(), nil
		}
		return backend, nil
	}
}

func (c *CLI) pacman() *pacman.Pacman {
	return pacman.New(c.runner, c.cfg.Commands.Pacman, c.cfg.Commands.Sudo)
}

func (c *CLI) builder() engine.Builder {
	return &makepkgBuilder{
		runner: c.runner,
		bin:    c.cfg.Commands.Makepkg,
		flags:  c.cfg.Commands.MakepkgFlags,
	}
}
