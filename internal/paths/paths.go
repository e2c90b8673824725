package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"

	"EnvKit/internal/constants"
	"EnvKit/internal/version"
)

var (
	// ConfigHomeOverride allows overriding the config home for tests.
	ConfigHomeOverride string
)

// GetConfigDir returns the directory holding the application config file,
// a subdirectory named after the application (e.g. ~/.config/envkit).
func GetConfigDir() string {
	appName := strings.ToLower(version.ApplicationName)
	if ConfigHomeOverride != "" {
		return filepath.Join(ConfigHomeOverride, appName)
	}
	if runtime.GOOS == "darwin" {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", appName)
	}
	return filepath.Join(xdg.ConfigHome, appName)
}

// GetConfigFilePath returns the absolute path to the envkit.toml file.
func GetConfigFilePath() string {
	return filepath.Join(GetConfigDir(), constants.AppConfigFileName)
}
