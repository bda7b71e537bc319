package store

import (
	"fmt"
	"io"

	"github.com/bgraf/routetracker/geotrack"
)

const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

// Store persists the whole route collection at once.
type Store interface {
	Load() (geotrack.Collection, error)
	Save(coll geotrack.Collection) error
}

// Open returns the store for the given driver name.
func Open(driver, path string) (Store, error) {
	switch driver {
	case DriverJSON, "":
		return NewJSONStore(path), nil
	case DriverSQLite:
		s, err := OpenSQLiteStore(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store driver '%s'", driver)
	}
}

// Close releases the resources of stores that hold any, such as the SQLite handle.
func Close(s Store) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}

	return nil
}
