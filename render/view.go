package render

import (
	"github.com/bgraf/routetracker/config"
	"github.com/bgraf/routetracker/geotrack"
	"github.com/golang/geo/s2"
)

const (
	minZoom = 1
	maxZoom = 18
)

// View is the initial map position.
type View struct {
	Center geotrack.LatLng `json:"center"`
	Zoom   int             `json:"zoom"`
}

// DefaultView is the configured map position used while there are no routes.
func DefaultView() View {
	center := config.DefaultMapCenter()
	return View{
		Center: geotrack.LatLng{Lat: center.Lat, Lon: center.Lon},
		Zoom:   config.DefaultMapZoom(),
	}
}

// Bounds returns the smallest lat/lng rectangle containing every coordinate of every track.
// The rectangle is empty when there are no coordinates.
func Bounds(coll geotrack.Collection) s2.Rect {
	rect := s2.EmptyRect()
	for _, t := range coll {
		for _, c := range t.Coordinates {
			rect = rect.AddPoint(s2.LatLngFromDegrees(c.Lat, c.Lon))
		}
	}

	return rect
}

// ComputeView centers the map on all routes and derives a zoom level from their spread.
// Without any coordinates, fallback is returned unchanged.
func ComputeView(coll geotrack.Collection, fallback View) View {
	rect := Bounds(coll)
	if rect.IsEmpty() {
		return fallback
	}

	center := rect.Center()
	size := rect.Size()

	spread := size.Lat.Degrees()
	if lng := size.Lng.Degrees(); lng > spread {
		spread = lng
	}

	zoom := 10 - int(spread*0.2)
	if zoom < minZoom {
		zoom = minZoom
	} else if zoom > maxZoom {
		zoom = maxZoom
	}

	return View{
		Center: geotrack.LatLng{Lat: center.Lat.Degrees(), Lon: center.Lng.Degrees()},
		Zoom:   zoom,
	}
}
