package config

import (
	"os"
	"os/user"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"

	"EnvKit/internal/constants"
	"EnvKit/internal/paths"
)

// AppConfig holds the application configuration settings.
type AppConfig struct {
	Search SearchConfig `toml:"search"`
	Output OutputConfig `toml:"output"`
}

// SearchConfig controls the upward env file search.
type SearchConfig struct {
	// Suffix matched against file names, e.g. ".env".
	Suffix string `toml:"suffix"`
	// MaxHops limits how many parent directories are visited; 0 walks to
	// the filesystem root.
	MaxHops int `toml:"max_hops"`
	// StartDir is the default search start directory; empty means the
	// current working directory. May contain ${HOME}-style variables.
	StartDir string `toml:"start_dir"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	// Format is the default export format name.
	Format string `toml:"format"`
	// Color toggles styled terminal output.
	Color bool `toml:"color"`
}

// ExpandVariables expands environment variables in config path values.
// It supports:
// - ${XDG_CONFIG_HOME} -> xdg.ConfigHome
// - ${XDG_DATA_HOME}   -> xdg.DataHome
// - ${HOME}            -> os.UserHomeDir()
// - ${USER}            -> current username
func ExpandVariables(val string) string {
	mapper := func(varName string) string {
		switch varName {
		case "XDG_CONFIG_HOME":
			return xdg.ConfigHome
		case "XDG_DATA_HOME":
			return xdg.DataHome
		case "HOME":
			home, err := os.UserHomeDir()
			if err != nil {
				return ""
			}
			return home
		case "USER":
			u, err := user.Current()
			if err != nil {
				return os.Getenv("USERNAME") // Fallback for Windows
			}
			return u.Username
		}
		return ""
	}
	return os.Expand(val, mapper)
}

// defaultConfig returns the configuration used when no file exists.
func defaultConfig() AppConfig {
	return AppConfig{
		Search: SearchConfig{
			Suffix:  constants.EnvFileSuffix,
			MaxHops: constants.DefaultMaxHops,
		},
		Output: OutputConfig{
			Format: constants.DefaultExportFormat,
			Color:  true,
		},
	}
}

// LoadAppConfig reads the configuration file and returns the
// configuration. A missing or unreadable file yields the defaults;
// fields absent from the file keep their default values.
func LoadAppConfig() AppConfig {
	conf := defaultConfig()

	data, err := os.ReadFile(paths.GetConfigFilePath())
	if err != nil {
		return conf
	}
	if err := toml.Unmarshal(data, &conf); err != nil {
		return defaultConfig()
	}

	if conf.Search.Suffix == "" {
		conf.Search.Suffix = constants.EnvFileSuffix
	}
	if conf.Output.Format == "" {
		conf.Output.Format = constants.DefaultExportFormat
	}
	conf.Search.StartDir = ExpandVariables(conf.Search.StartDir)
	return conf
}

// SaveAppConfig writes the configuration to the config file, creating
// the directory if needed.
func SaveAppConfig(conf AppConfig) error {
	path := paths.GetConfigFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := toml.Marshal(conf)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
