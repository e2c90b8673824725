// Package format converts a parsed env mapping into machine-readable
// output formats: dotenv lines, JSON, YAML and TOML.
package format
