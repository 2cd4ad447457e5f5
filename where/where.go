// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/podspy-cli/podspy/constant"
	"github.com/podspy-cli/podspy/filesystem"
	"github.com/podspy-cli/podspy/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvConfigPath is the environment variable used to override the configuration directory.
const EnvConfigPath = "PODSPY_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the application configuration directory.
// PODSPY_CONFIG_PATH takes precedence over the platform default.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Podspy))
}

// Cache resolves the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Podspy))
}

// Logs resolves the directory used for diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Downloads resolves the directory episodes are downloaded to.
// An empty downloads.path means the current working directory.
func Downloads() string {
	if path := viper.GetString(key.DownloadsPath); path != "" {
		return ensureDir(path)
	}

	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// Feeds resolves the path of the parsed feed cache.
func Feeds() string {
	return filepath.Join(Cache(), "feeds.json")
}
