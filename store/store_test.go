package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/bgraf/routetracker/geotrack"
)

func sampleCollection() geotrack.Collection {
	return geotrack.Collection{
		{
			ID:          1,
			Name:        "ridge",
			Coordinates: []geotrack.LatLng{{Lat: 47.1, Lon: 8.2}, {Lat: 47.2, Lon: 8.3}},
			Distance:    13456.25,
			Elevation:   812.5,
		},
		{
			ID:          4,
			Name:        "valley",
			Coordinates: []geotrack.LatLng{},
		},
	}
}

func testRoundTrip(t *testing.T, s Store) {
	t.Helper()

	coll, err := s.Load()
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if coll == nil || coll.Len() != 0 {
		t.Fatalf("expected empty, non-nil collection, got %#v", coll)
	}

	want := sampleCollection()
	if err := s.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", got, want)
	}

	got.Remove(1)
	if err := s.Save(got); err != nil {
		t.Fatalf("save after remove: %v", err)
	}
	got, err = s.Load()
	if err != nil {
		t.Fatalf("load after remove: %v", err)
	}
	if got.Len() != 1 || got[0].Name != "valley" {
		t.Fatalf("unexpected collection after remove: %#v", got)
	}
}

func TestJSONStore(t *testing.T) {
	testRoundTrip(t, NewJSONStore(filepath.Join(t.TempDir(), "data", "routes.json")))
}

func TestJSONStoreFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.json")
	s := NewJSONStore(path)

	if err := s.Save(geotrack.Collection{{ID: 1, Name: "a", Coordinates: []geotrack.LatLng{{Lat: 1, Lon: 2}}, Distance: 3, Elevation: 4}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := `[{"id":1,"name":"a","coordinates":[[1,2]],"distance":3,"elevation":4}]`
	if string(raw) != want {
		t.Fatalf("unexpected file content: %s", raw)
	}
}

func TestJSONStoreClearedCollectionIsEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.json")
	if err := NewJSONStore(path).Save(nil); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, _ := os.ReadFile(path)
	if string(raw) != "[]" {
		t.Fatalf("expected empty array, got %s", raw)
	}
}

func TestJSONStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o666); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := NewJSONStore(path).Load(); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "routes.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	testRoundTrip(t, s)
}

func TestSQLiteStoreRejectsDuplicateNames(t *testing.T) {
	s, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "routes.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if err := s.Save(sampleCollection()); err != nil {
		t.Fatalf("save: %v", err)
	}

	dup := geotrack.Collection{{ID: 1, Name: "x"}, {ID: 2, Name: "x"}}
	if err := s.Save(dup); err == nil {
		t.Fatalf("expected unique constraint error")
	}

	// The failed transaction must leave the previous state in place.
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Len() != 2 {
		t.Fatalf("expected previous collection, got %#v", got)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(DriverJSON, filepath.Join(dir, "routes.json"))
	if err != nil {
		t.Fatalf("open json: %v", err)
	}
	if _, ok := s.(*JSONStore); !ok {
		t.Fatalf("expected JSONStore, got %T", s)
	}
	if err := Close(s); err != nil {
		t.Fatalf("close json: %v", err)
	}

	s, err = Open(DriverSQLite, filepath.Join(dir, "routes.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if _, ok := s.(*SQLiteStore); !ok {
		t.Fatalf("expected SQLiteStore, got %T", s)
	}
	if err := Close(s); err != nil {
		t.Fatalf("close sqlite: %v", err)
	}

	if _, err := Open("postgres", "x"); err == nil {
		t.Fatalf("expected unknown driver error")
	}
}
