package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"EnvKit/internal/dotenv"
)

// Format names accepted by Export.
const (
	Dotenv = "dotenv"
	JSON   = "json"
	YAML   = "yaml"
	TOML   = "toml"
)

// Names lists the supported format names in display order.
func Names() []string {
	return []string{Dotenv, JSON, YAML, TOML}
}

// Export renders mapping in the named format. Output is deterministic:
// dotenv and JSON sort keys themselves, and the YAML and TOML encoders
// emit map keys in sorted order. Unknown names are an error.
func Export(mapping dotenv.Mapping, name string) ([]byte, error) {
	switch strings.ToLower(name) {
	case Dotenv:
		return exportDotenv(mapping), nil
	case JSON:
		return exportJSON(mapping)
	case YAML:
		return yaml.Marshal(map[string]string(mapping))
	case TOML:
		return toml.Marshal(map[string]string(mapping))
	default:
		return nil, fmt.Errorf("unknown export format '%s' (supported: %s)",
			name, strings.Join(Names(), ", "))
	}
}

// exportDotenv writes KEY=VALUE lines with sorted keys. Values are raw,
// matching the file serializer: values containing '=', '#', quotes or
// newlines will not parse back identically.
func exportDotenv(mapping dotenv.Mapping) []byte {
	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	for _, k := range keys {
		fmt.Fprintf(&buf, "%s=%s\n", k, mapping[k])
	}
	return buf.Bytes()
}

func exportJSON(mapping dotenv.Mapping) ([]byte, error) {
	data, err := json.MarshalIndent(map[string]string(mapping), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
