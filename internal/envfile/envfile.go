package envfile

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"EnvKit/internal/dotenv"
)

// Load reads path and parses its contents into a Mapping.
func Load(path string) (dotenv.Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return dotenv.Process(string(data))
}

// Serialize writes mapping to path as KEY=VALUE lines, one per entry,
// overwriting the file if it exists. Values are written raw, without
// quoting or escaping, so values containing '=', '#', quote marks or
// newlines will not survive a parse round trip. Keys are written in
// sorted order so repeated serializations of the same mapping produce
// identical files. Returns a confirmation message.
func Serialize(mapping dotenv.Mapping, path string) (string, error) {
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := bufio.NewWriter(f)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s=%s\n", k, mapping[k]); err != nil {
			return "", err
		}
	}
	if err := w.Flush(); err != nil {
		return "", err
	}
	return fmt.Sprintf("serialized to %s", path), nil
}
