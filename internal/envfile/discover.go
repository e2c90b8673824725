package envfile

import (
	"errors"
	"fmt"
	"os"

	"EnvKit/internal/dotenv"
)

// ErrNotFound is reported by Discover when no env file exists in the
// start directory or any of its parents.
var ErrNotFound = errors.New("env file not found in current or any parent directories")

// Discovery stages, recorded on DiscoverError.
const (
	StageLocate = "locate"
	StageRead   = "read"
	StageParse  = "parse"
)

// DiscoverError wraps the first failure of a locate/read/parse
// composition. The wrapped error is one of: ErrNotFound, an I/O error
// from reading the located file, or a dotenv parse error. Callers match
// with errors.Is / errors.As through Unwrap.
type DiscoverError struct {
	Stage string
	Path  string
	Err   error
}

func (e *DiscoverError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("discover %s: %s: %v", e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("discover %s: %v", e.Stage, e.Err)
}

func (e *DiscoverError) Unwrap() error {
	return e.Err
}

// Discover locates the nearest env file from startDir upward, reads it
// and parses it. It returns the parsed mapping and the path of the file
// it came from. The first failing stage aborts the composition; no
// partial mapping is ever returned.
func Discover(startDir, suffix string, maxHops int) (dotenv.Mapping, string, error) {
	path, ok := Locate(startDir, suffix, maxHops)
	if !ok {
		return nil, "", &DiscoverError{Stage: StageLocate, Err: ErrNotFound}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", &DiscoverError{Stage: StageRead, Path: path, Err: err}
	}

	mapping, err := dotenv.Process(string(data))
	if err != nil {
		return nil, "", &DiscoverError{Stage: StageParse, Path: path, Err: err}
	}
	return mapping, path, nil
}
