package render

import (
	"github.com/bgraf/routetracker/geotrack"
)

// MapTrack is the map representation of one route.
type MapTrack struct {
	ID        int               `json:"id"`
	Name      string            `json:"name"`
	Color     string            `json:"color"`
	Distance  float64           `json:"distance"`
	Elevation float64           `json:"elevation"`
	Path      []geotrack.LatLng `json:"path"`
	Start     *geotrack.LatLng  `json:"start,omitempty"`
	End       *geotrack.LatLng  `json:"end,omitempty"`
}

// MapPayload is the data handed to the map script.
type MapPayload struct {
	Tracks []MapTrack `json:"tracks"`
	View   View       `json:"view"`
	Tiles  string     `json:"tiles"`
}

// NewMapPayload builds the line and start/end markers of every route. Routes without
// coordinates are listed but get no markers.
func NewMapPayload(coll geotrack.Collection, view View, tiles string) MapPayload {
	palette := NewPalette()

	payload := MapPayload{
		Tracks: make([]MapTrack, 0, len(coll)),
		View:   view,
		Tiles:  tiles,
	}

	for _, t := range coll {
		mt := MapTrack{
			ID:        t.ID,
			Name:      t.Name,
			Color:     palette.HexColor(t.Name),
			Distance:  t.Distance,
			Elevation: t.Elevation,
			Path:      t.Coordinates,
		}
		if mt.Path == nil {
			mt.Path = []geotrack.LatLng{}
		}

		if n := len(t.Coordinates); n > 0 {
			start, end := t.Coordinates[0], t.Coordinates[n-1]
			mt.Start = &start
			mt.End = &end
		}

		payload.Tracks = append(payload.Tracks, mt)
	}

	return payload
}
