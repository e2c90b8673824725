package envfile

import (
	"context"
	"os"
	"sort"

	"EnvKit/internal/dotenv"
	"EnvKit/internal/logger"
)

// Get loads path and returns the value for key, with an ok flag telling
// whether the key exists.
func Get(path, key string) (string, bool, error) {
	mapping, err := Load(path)
	if err != nil {
		return "", false, err
	}
	value, ok := mapping[key]
	return value, ok, nil
}

// Set loads path, assigns key=value and serializes the result back. A
// missing file is treated as an empty mapping, so Set can create a new
// env file from scratch.
func Set(path, key, value string) error {
	mapping, err := Load(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		mapping = dotenv.Mapping{}
	}
	mapping[key] = value
	_, err = Serialize(mapping, path)
	return err
}

// Unset loads path, removes key and serializes the result back. Removing
// a key that does not exist is not an error.
func Unset(path, key string) error {
	mapping, err := Load(path)
	if err != nil {
		return err
	}
	delete(mapping, key)
	_, err = Serialize(mapping, path)
	return err
}

// MergeNewOnly copies variables from sourcePath into targetPath, adding
// only keys the target does not already have. Existing target values are
// never overwritten.
//
// Behavior:
//   - If the source file doesn't exist: logs a warning and returns nil
//   - If the target file doesn't exist: starts from an empty mapping
//   - Logs each variable being added
//
// Returns the sorted names of the keys that were added, or nil if none.
func MergeNewOnly(ctx context.Context, targetPath, sourcePath string) ([]string, error) {
	if _, err := os.Stat(sourcePath); os.IsNotExist(err) {
		logger.Warn(ctx, "File '%s' does not exist.", sourcePath)
		return nil, nil
	}

	source, err := Load(sourcePath)
	if err != nil {
		return nil, err
	}

	target, err := Load(targetPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		target = dotenv.Mapping{}
	}

	var added []string
	for key, value := range source {
		if _, exists := target[key]; exists {
			continue
		}
		target[key] = value
		added = append(added, key)
	}

	if len(added) == 0 {
		return nil, nil
	}
	sort.Strings(added)

	logger.Notice(ctx, "Adding variables to %s:", targetPath)
	for _, key := range added {
		logger.Notice(ctx, "   %s=%s", key, target[key])
	}

	if _, err := Serialize(target, targetPath); err != nil {
		return nil, err
	}
	return added, nil
}
