package constants

// File names
const (
	EnvFileName       = ".env"
	EnvFileSuffix     = ".env"
	AppConfigFileName = "envkit.toml"
)

// Defaults
const (
	// DefaultExportFormat is used when --export is given no format name.
	DefaultExportFormat = "dotenv"
	// DefaultMaxHops bounds the upward env file search; 0 walks all the
	// way to the filesystem root.
	DefaultMaxHops = 0
)
