// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/iro-cli/iro/constant"
	"github.com/iro-cli/iro/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "IRO_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// The path can be overridden with the IRO_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Iro))
}

// Cache resolves the absolute path to the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Iro))
}

// Logs resolves the absolute path to the directory used for application logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Names resolves the default location of the user's custom color names file.
func Names() string {
	return filepath.Join(Config(), "names.json")
}

// History resolves the absolute path to the conversion history file.
func History() string {
	return filepath.Join(Cache(), "history.json")
}
