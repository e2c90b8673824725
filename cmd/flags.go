package cmd

import (
	"sync"

	"github.com/spf13/pflag"
)

var initFlagsOnce sync.Once

// InitFlags defines the pflags used for argument validation and help.
// Safe to call more than once; registration happens a single time.
func InitFlags() {
	initFlagsOnce.Do(func() {
		// Modifiers
		pflag.BoolP("verbose", "v", false, "Verbose output")
		pflag.BoolP("debug", "x", false, "Debug output")
		pflag.Bool("no-color", false, "Disable colored output")
		pflag.BoolP("help", "h", false, "Show help")

		// Parsing
		pflag.StringP("parse", "p", "", "Parse an env file and print its variables")
		pflag.StringP("export", "e", "", "Export an env file (dotenv, json, yaml, toml)")

		// Variables
		pflag.StringP("get", "g", "", "Get the value of a variable")
		pflag.StringP("set", "s", "", "Set the value of a variable")
		pflag.StringP("unset", "u", "", "Remove a variable")
		pflag.StringP("merge", "m", "", "Merge new variables from one file into another")

		// Discovery
		pflag.StringP("find", "f", "", "Find the nearest env file walking up from a directory")
		pflag.StringP("watch", "w", "", "Watch an env file and report changes")

		// Info
		pflag.BoolP("version", "V", false, "Show version")
		pflag.Bool("config-show", false, "Show the active configuration")
	})
}
