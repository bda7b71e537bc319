package geotrack

import (
	"encoding/json"
	"fmt"

	"github.com/bgraf/routetracker/option"
)

// TrackPoint is a single sample read from a track file.
type TrackPoint struct {
	Lat, Lon  float64
	Elevation option.Option[float64]
}

func (p TrackPoint) LatLng() LatLng {
	return LatLng{Lat: p.Lat, Lon: p.Lon}
}

// LatLng is serialized as a `[lat, lon]` array.
type LatLng struct {
	Lat, Lon float64
}

func (p LatLng) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{p.Lat, p.Lon})
}

func (p *LatLng) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}

	if len(pair) != 2 {
		return fmt.Errorf("coordinate needs 2 values, got %d", len(pair))
	}

	p.Lat, p.Lon = pair[0], pair[1]
	return nil
}

// Track is one ingested route together with its derived metrics.
type Track struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Coordinates []LatLng `json:"coordinates"`
	Distance    float64  `json:"distance"`
	Elevation   float64  `json:"elevation"`
}

// Collection is the ordered list of tracks. Names are unique within a collection.
type Collection []Track

func (c Collection) Len() int {
	return len(c)
}

func (c Collection) Contains(name string) bool {
	for _, t := range c {
		if t.Name == name {
			return true
		}
	}

	return false
}

// NextID returns one greater than the highest ID in the collection.
func (c Collection) NextID() int {
	maxID := 0
	for _, t := range c {
		if t.ID > maxID {
			maxID = t.ID
		}
	}

	return maxID + 1
}

func (c *Collection) Add(t Track) {
	*c = append(*c, t)
}

// Remove deletes the track with the given ID and reports whether it was present.
func (c *Collection) Remove(id int) (Track, bool) {
	for i, t := range *c {
		if t.ID == id {
			*c = append((*c)[:i], (*c)[i+1:]...)
			return t, true
		}
	}

	return Track{}, false
}

func (c *Collection) Clear() {
	*c = (*c)[:0]
}
