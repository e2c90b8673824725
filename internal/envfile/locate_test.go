package envfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"EnvKit/internal/dotenv"
)

func TestLocateInStartDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "local.env"), "A=1\n")

	path, ok := Locate(dir, ".env", 0)
	if !ok {
		t.Fatal("Locate found nothing")
	}
	if filepath.Base(path) != "local.env" {
		t.Errorf("Locate = %q; want local.env", path)
	}
}

func TestLocateWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "FindMe.env"), "Hello=World\n")

	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	path, ok := Locate(nested, ".env", 0)
	if !ok {
		t.Fatal("Locate found nothing walking up")
	}
	if filepath.Base(path) != "FindMe.env" {
		t.Errorf("Locate = %q; want FindMe.env", path)
	}
}

func TestLocateShallowestWins(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "outer.env"), "A=outer\n")

	inner := filepath.Join(root, "sub")
	if err := os.MkdirAll(inner, 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(inner, "inner.env"), "A=inner\n")

	path, ok := Locate(inner, ".env", 0)
	if !ok {
		t.Fatal("Locate found nothing")
	}
	if filepath.Base(path) != "inner.env" {
		t.Errorf("Locate = %q; the closest file must win", path)
	}
}

func TestLocateIgnoresDirectories(t *testing.T) {
	root := t.TempDir()
	// A directory whose name ends in .env must not match.
	if err := os.MkdirAll(filepath.Join(root, "decoy.env"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(root, "real.env"), "A=1\n")

	path, ok := Locate(root, ".env", 0)
	if !ok {
		t.Fatal("Locate found nothing")
	}
	if filepath.Base(path) != "real.env" {
		t.Errorf("Locate = %q; want real.env", path)
	}
}

func TestLocateMaxHops(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "far.env"), "A=1\n")

	nested := filepath.Join(root, "a", "b", "c", "d")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	if _, ok := Locate(nested, ".env", 2); ok {
		t.Error("Locate found a file beyond the hop limit")
	}
	if _, ok := Locate(nested, ".env", 4); !ok {
		t.Error("Locate missed a file within the hop limit")
	}
}

func TestLocateCustomSuffix(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "config.envrc"), "A=1\n")
	writeFile(t, filepath.Join(root, "plain.txt"), "not me\n")

	if _, ok := Locate(root, ".env", 1); ok {
		t.Error("Locate matched a file without the suffix")
	}
	path, ok := Locate(root, ".envrc", 1)
	if !ok || filepath.Base(path) != "config.envrc" {
		t.Errorf("Locate = (%q, %v); want config.envrc", path, ok)
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "app.env"), "Hello=World\n")

	nested := filepath.Join(root, "deep", "deeper")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	mapping, path, err := Discover(nested, ".env", 0)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if filepath.Base(path) != "app.env" {
		t.Errorf("Discover path = %q; want app.env", path)
	}
	if mapping["Hello"] != "World" {
		t.Errorf("mapping[Hello] = %q; want World", mapping["Hello"])
	}
}

func TestDiscoverNotFound(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "empty")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	// Hop limit keeps the walk inside the temp tree, where no env file
	// exists.
	_, _, err := Discover(nested, ".env", 1)
	if err == nil {
		t.Fatal("Discover succeeded; want ErrNotFound")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Discover error = %v; want ErrNotFound", err)
	}
	var discoverErr *DiscoverError
	if !errors.As(err, &discoverErr) || discoverErr.Stage != StageLocate {
		t.Errorf("Discover error stage = %v; want locate", err)
	}
}

func TestDiscoverParseFailure(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "broken.env"), "KEY=\n")

	_, _, err := Discover(root, ".env", 1)
	if err == nil {
		t.Fatal("Discover succeeded on a malformed file")
	}
	var discoverErr *DiscoverError
	if !errors.As(err, &discoverErr) || discoverErr.Stage != StageParse {
		t.Fatalf("Discover error = %v; want a parse-stage DiscoverError", err)
	}
	var missingValue *dotenv.MissingValueError
	if !errors.As(err, &missingValue) || missingValue.Line != 1 {
		t.Errorf("wrapped error = %v; want MissingValueError on line 1", err)
	}
}
