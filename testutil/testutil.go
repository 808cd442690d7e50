// Package testutil provides shared test fixtures for validator packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/transitlint/gtfs-validator/parser"
)

// CreateTestFeedLoader writes files (GTFS filename -> raw contents) to a
// temporary directory, cleaned up automatically when the test ends, and
// returns a FeedLoader backed by it.
func CreateTestFeedLoader(t *testing.T, files map[string]string) *parser.FeedLoader {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write test file %s: %v", name, err)
		}
	}

	loader, err := parser.LoadFromDirectory(dir)
	if err != nil {
		t.Fatalf("failed to load test feed from %s: %v", dir, err)
	}
	return loader
}
