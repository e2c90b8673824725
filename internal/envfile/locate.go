package envfile

import (
	"os"
	"path/filepath"
	"strings"
)

// Locate searches startDir's direct entries for a regular file whose name
// ends with suffix, walking up to the parent directory on a miss. It
// returns the first match at the shallowest level outward, or false once
// the filesystem root is reached without one. An empty startDir means the
// current working directory. maxHops limits how many parent directories
// are visited after startDir; 0 means unbounded.
//
// The walk is a plain loop rather than recursion so a deeply nested start
// directory cannot grow the stack.
func Locate(startDir, suffix string, maxHops int) (string, bool) {
	dir := startDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", false
		}
		dir = wd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	hops := 0
	for {
		if path, ok := scanDir(dir, suffix); ok {
			return path, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached the filesystem root.
			return "", false
		}
		hops++
		if maxHops > 0 && hops > maxHops {
			return "", false
		}
		dir = parent
	}
}

// scanDir looks for a matching regular file among dir's direct entries.
// Unreadable directories are treated as empty; the search simply moves on
// to the parent.
func scanDir(dir, suffix string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if strings.HasSuffix(entry.Name(), suffix) {
			return filepath.Join(dir, entry.Name()), true
		}
	}
	return "", false
}
