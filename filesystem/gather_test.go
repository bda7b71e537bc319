package filesystem

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o666); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestGatherFiles(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "tracks", "a.gpx"))
	touch(t, filepath.Join(root, "tracks", "notes.md"))
	touch(t, filepath.Join(root, "tracks", "2023", "b.GPX"))
	touch(t, filepath.Join(root, "single.kml"))

	accept := func(name string) bool {
		return strings.EqualFold(filepath.Ext(name), ".gpx")
	}

	got, err := GatherFiles([]string{filepath.Join(root, "tracks"), filepath.Join(root, "single.kml")}, accept)
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	want := []string{
		filepath.Join(root, "tracks", "2023", "b.GPX"),
		filepath.Join(root, "tracks", "a.gpx"),
		filepath.Join(root, "single.kml"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected files:\n got %v\nwant %v", got, want)
	}
}

func TestGatherFilesMissing(t *testing.T) {
	if _, err := GatherFiles([]string{filepath.Join(t.TempDir(), "missing.gpx")}, nil); err == nil {
		t.Fatalf("expected error for missing path")
	}
}
