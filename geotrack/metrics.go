package geotrack

import (
	"github.com/jftuga/geodist"
)

// HaversineMeters returns the great-circle distance between a and b on a spherical earth.
func HaversineMeters(a, b LatLng) float64 {
	_, km := geodist.HaversineDistance(
		geodist.Coord{Lat: a.Lat, Lon: a.Lon},
		geodist.Coord{Lat: b.Lat, Lon: b.Lon},
	)
	return km * 1000
}

// Distance sums the haversine distance of consecutive points, in meters.
func Distance(points []TrackPoint) float64 {
	distance := 0.0
	for i := 1; i < len(points); i++ {
		distance += HaversineMeters(points[i-1].LatLng(), points[i].LatLng())
	}

	return distance
}

// ElevationGain sums all positive elevation deltas between consecutive points.
// A pair where either point has no elevation contributes nothing.
func ElevationGain(points []TrackPoint) float64 {
	gain := 0.0
	for i := 1; i < len(points); i++ {
		prev, curr := points[i-1].Elevation, points[i].Elevation
		if prev.IsNone() || curr.IsNone() {
			continue
		}

		if delta := curr.Get() - prev.Get(); delta > 0 {
			gain += delta
		}
	}

	return gain
}
