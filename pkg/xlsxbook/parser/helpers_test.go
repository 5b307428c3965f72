package parser

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// writePackage writes an xlsx-shaped zip archive holding parts and returns
// its path.
func writePackage(t *testing.T, parts map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "book.xlsx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create package: %v", err)
	}
	defer f.Close()

	names := make([]string, 0, len(parts))
	for name := range parts {
		names = append(names, name)
	}
	sort.Strings(names)

	zw := zip.NewWriter(f)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("Failed to add %s: %v", name, err)
		}
		if _, err := w.Write([]byte(parts[name])); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to finish package: %v", err)
	}
	return path
}

func strPtr(s string) *string {
	return &s
}
