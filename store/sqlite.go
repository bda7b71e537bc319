package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/bgraf/routetracker/geotrack"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS tracks (
	id          INTEGER PRIMARY KEY,
	name        TEXT NOT NULL UNIQUE,
	distance    REAL NOT NULL,
	elevation   REAL NOT NULL,
	coordinates TEXT NOT NULL
)`

// SQLiteStore keeps one row per track. Coordinates are stored as JSON text.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	for _, stmt := range []string{"PRAGMA journal_mode=WAL", schema} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("prepare sqlite database: %w", err)
		}
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Load() (geotrack.Collection, error) {
	rows, err := s.db.Query(`SELECT id, name, distance, elevation, coordinates FROM tracks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query tracks: %w", err)
	}
	defer rows.Close()

	coll := geotrack.Collection{}
	for rows.Next() {
		var (
			t           geotrack.Track
			coordinates string
		)
		if err := rows.Scan(&t.ID, &t.Name, &t.Distance, &t.Elevation, &coordinates); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(coordinates), &t.Coordinates); err != nil {
			return nil, fmt.Errorf("decode coordinates of track %d: %w", t.ID, err)
		}
		coll = append(coll, t)
	}

	return coll, rows.Err()
}

// Save replaces all stored tracks with coll in a single transaction.
func (s *SQLiteStore) Save(coll geotrack.Collection) error {
	return s.transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM tracks`); err != nil {
			return err
		}

		stmt, err := tx.Prepare(`INSERT INTO tracks (id, name, distance, elevation, coordinates) VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, t := range coll {
			coordinates := t.Coordinates
			if coordinates == nil {
				coordinates = []geotrack.LatLng{}
			}
			payload, err := json.Marshal(coordinates)
			if err != nil {
				return err
			}
			if _, err := stmt.Exec(t.ID, t.Name, t.Distance, t.Elevation, string(payload)); err != nil {
				return fmt.Errorf("insert track '%s': %w", t.Name, err)
			}
		}

		return nil
	})
}

func (s *SQLiteStore) transaction(fn func(*sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
