// Package config loads aurum's configuration file.
//
// Configuration lives at ~/.config/aurum/config.toml (or
// $XDG_CONFIG_HOME/aurum/config.toml). Every key is optional; a missing
// file yields the defaults. Example:
//
//	repo_dir = "/home/me/.cache/aurum/pkg"
//	rpc_url = "https://aur.archlinux.org/rpc"
//	git_url = "https://aur.archlinux.org"
//
//	[cache]
//	backend = "file"        # file | redis | none
//	ttl_hours = 24
//	redis_addr = "localhost:6379"
//
//	[commands]
//	git = "git"
//	pacman = "pacman"
//	makepkg = "makepkg"
//	sudo = "sudo"
//	makepkg_flags = ["--needed"]
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const appName = "aurum"

// Config holds all tunable settings.
type Config struct {
	// RepoDir is the root of the local package store, one subdirectory
	// per tracked package.
	RepoDir string `toml:"repo_dir"`

	// RPCURL is the base URL of the AUR RPC endpoint.
	RPCURL string `toml:"rpc_url"`

	// GitURL is the base URL packages are cloned from (<GitURL>/<name>.git).
	GitURL string `toml:"git_url"`

	Cache    CacheConfig    `toml:"cache"`
	Commands CommandsConfig `toml:"commands"`
}

// CacheConfig selects and configures the metadata cache backend.
type CacheConfig struct {
	Backend   string `toml:"backend"` // file | redis | none
	Dir       string `toml:"dir"`
	TTLHours  int    `toml:"ttl_hours"`
	RedisAddr string `toml:"redis_addr"`
}

// CommandsConfig names the external binaries aurum drives.
type CommandsConfig struct {
	Git          string   `toml:"git"`
	Pacman       string   `toml:"pacman"`
	Makepkg      string   `toml:"makepkg"`
	Sudo         string   `toml:"sudo"`
	MakepkgFlags []string `toml:"makepkg_flags"`
}

// TTL returns the cache TTL as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		RepoDir: filepath.Join(cacheHome(), appName, "pkg"),
		RPCURL:  "https://aur.archlinux.org/rpc",
		GitURL:  "https://aur.archlinux.org",
		Cache: CacheConfig{
			Backend:   "file",
			Dir:       filepath.Join(cacheHome(), appName, "http"),
			TTLHours:  24,
			RedisAddr: "localhost:6379",
		},
		Commands: CommandsConfig{
			Git:     "git",
			Pacman:  "pacman",
			Makepkg: "makepkg",
			Sudo:    "sudo",
		},
	}
}

// Load reads the configuration from the default path, applying defaults
// for missing keys. A missing file is not an error.
func Load() (Config, error) {
	return LoadFile(DefaultPath())
}

// LoadFile reads the configuration from a specific path.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		applyEnv(&cfg)
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

// DefaultPath returns the configuration file location.
func DefaultPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", appName+".toml")
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// applyEnv lets environment variables override file values. Useful for
// scripting and tests.
func applyEnv(cfg *Config) {
	if v := os.Getenv("AURUM_REPO_DIR"); v != "" {
		cfg.RepoDir = v
	}
	if v := os.Getenv("AURUM_RPC_URL"); v != "" {
		cfg.RPCURL = v
	}
}

func cacheHome() string {
	if cacheDir := os.Getenv("XDG_CACHE_HOME"); cacheDir != "" {
		return cacheDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".cache")
}
