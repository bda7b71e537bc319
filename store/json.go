package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bgraf/routetracker/filesystem"
	"github.com/bgraf/routetracker/geotrack"
)

// JSONStore keeps the collection as a JSON array in a single file.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Load returns an empty collection when the file does not exist yet.
func (s *JSONStore) Load() (coll geotrack.Collection, err error) {
	payloadBytes, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return geotrack.Collection{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read routes file: %w", err)
	}

	if err = json.Unmarshal(payloadBytes, &coll); err != nil {
		return nil, fmt.Errorf("decode routes file %s: %w", s.path, err)
	}

	if coll == nil {
		coll = geotrack.Collection{}
	}

	return
}

func (s *JSONStore) Save(coll geotrack.Collection) error {
	if coll == nil {
		coll = geotrack.Collection{}
	}

	jsonBytes, err := json.Marshal(coll)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := filesystem.CreateDirectoryIfNotExists(dir); err != nil {
			return fmt.Errorf("create routes directory: %w", err)
		}
	}

	return os.WriteFile(s.path, jsonBytes, 0o666)
}
