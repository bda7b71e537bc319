package geotrack

import (
	"errors"
	"fmt"
)

// ParseError reports track content that could not be decoded.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DuplicateNameError reports a route name that already exists in the collection.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("route '%s' already exists", e.Name)
}

// File is one uploaded track file.
type File struct {
	Name    string
	Content []byte
}

// BatchResult lists the route names that were added and a description of every failure.
type BatchResult struct {
	Succeeded []string `json:"succeeded"`
	Failed    []string `json:"failed"`
}

// Ingest parses a track file and builds a new Track with its metrics. The collection
// is only read, for the duplicate check and the next ID; appending is up to the caller.
// A nil collection is treated as empty.
func Ingest(content []byte, fileName string, coll *Collection) (Track, error) {
	if coll == nil {
		coll = &Collection{}
	}

	points, err := ParseTrack(content, fileName)
	if err != nil {
		return Track{}, err
	}

	name := TrackName(fileName)
	if coll.Contains(name) {
		return Track{}, &DuplicateNameError{Name: name}
	}

	coordinates := make([]LatLng, 0, len(points))
	for _, p := range points {
		coordinates = append(coordinates, p.LatLng())
	}

	return Track{
		ID:          coll.NextID(),
		Name:        name,
		Coordinates: coordinates,
		Distance:    Distance(points),
		Elevation:   ElevationGain(points),
	}, nil
}

// IngestBatch ingests files in order and appends every new track to coll right away,
// so later files of the same batch are checked against it. Failures never stop the batch.
// coll must not be nil.
func IngestBatch(files []File, coll *Collection) BatchResult {
	result := BatchResult{Succeeded: []string{}, Failed: []string{}}

	for _, f := range files {
		track, err := Ingest(f.Content, f.Name, coll)
		if err != nil {
			result.Failed = append(result.Failed, describeFailure(f.Name, err))
			continue
		}

		coll.Add(track)
		result.Succeeded = append(result.Succeeded, track.Name)
	}

	return result
}

func describeFailure(fileName string, err error) string {
	var dupErr *DuplicateNameError
	if errors.As(err, &dupErr) {
		return fmt.Sprintf("%s (duplicate route)", dupErr.Name)
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return fmt.Sprintf("%s (error: %s)", fileName, parseErr.Err)
	}

	return fmt.Sprintf("%s (error: %s)", fileName, err)
}
