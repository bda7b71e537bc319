package geotrack

import (
	"fmt"

	"github.com/bgraf/routetracker/option"
	"github.com/tkrajina/gpxgo/gpx"
)

// parseGPX reads all track points of all tracks and segments in document order.
// Segment boundaries are not preserved.
func parseGPX(content []byte) (points []TrackPoint, err error) {
	gpxData, err := gpx.ParseBytes(content)
	if err != nil {
		return nil, fmt.Errorf("read GPX data: %w", err)
	}

	for _, track := range gpxData.Tracks {
		for _, segment := range track.Segments {
			for _, p := range segment.Points {
				elevation := option.None[float64]()
				if p.Elevation.NotNull() {
					elevation = option.Some(p.Elevation.Value())
				}

				points = append(points, TrackPoint{Lat: p.Latitude, Lon: p.Longitude, Elevation: elevation})
			}
		}
	}

	return
}
