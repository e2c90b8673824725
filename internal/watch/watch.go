// Package watch re-parses an env file whenever it changes on disk and
// reports the difference between successive parses.
package watch

import (
	"context"
	"path/filepath"
	"sort"

	"github.com/fsnotify/fsnotify"

	"EnvKit/internal/dotenv"
	"EnvKit/internal/envfile"
	"EnvKit/internal/logger"
)

// Diff describes what changed between two parses of the same file.
type Diff struct {
	Added   []string
	Removed []string
	Changed []string
}

// Empty reports whether nothing changed.
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// Compare builds the Diff between an old and a new mapping. Key slices
// are sorted so output is deterministic.
func Compare(old, new dotenv.Mapping) Diff {
	var d Diff
	for key, value := range new {
		oldValue, existed := old[key]
		if !existed {
			d.Added = append(d.Added, key)
		} else if oldValue != value {
			d.Changed = append(d.Changed, key)
		}
	}
	for key := range old {
		if _, exists := new[key]; !exists {
			d.Removed = append(d.Removed, key)
		}
	}
	sort.Strings(d.Added)
	sort.Strings(d.Removed)
	sort.Strings(d.Changed)
	return d
}

// Run watches path until ctx is cancelled, re-parsing on every write and
// logging the mapping diff. A parse failure is reported and watching
// continues, so the file can be fixed without restarting. The watch is
// registered on the parent directory because editors typically replace
// the file rather than write it in place.
func Run(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	current, err := envfile.Load(abs)
	if err != nil {
		logger.Warn(ctx, "Initial parse of '%s' failed: %v", abs, err)
		current = dotenv.Mapping{}
	} else {
		logger.Notice(ctx, "Watching '%s' (%d variables)", abs, len(current))
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			next, err := envfile.Load(abs)
			if err != nil {
				logger.Error(ctx, "Parse of '%s' failed: %v", abs, err)
				continue
			}

			diff := Compare(current, next)
			current = next
			if diff.Empty() {
				logger.Info(ctx, "'%s' rewritten without changes", abs)
				continue
			}
			for _, key := range diff.Added {
				logger.Notice(ctx, "+ %s=%s", key, next[key])
			}
			for _, key := range diff.Changed {
				logger.Notice(ctx, "~ %s=%s", key, next[key])
			}
			for _, key := range diff.Removed {
				logger.Notice(ctx, "- %s", key)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn(ctx, "Watcher error: %v", err)
		}
	}
}
