package geotrack

import (
	"bytes"
	"fmt"
	"math"
	"path/filepath"
	"slices"
	"strings"
)

var (
	gpxExtensions  = []string{".gpx"}
	nmeaExtensions = []string{".nmea", ".txt"}
)

// SupportedExtensions lists the lower-case file extensions that ParseTrack understands.
func SupportedExtensions() []string {
	return append(slices.Clone(gpxExtensions), nmeaExtensions...)
}

// IsTrackFile reports whether the file name carries a supported extension.
func IsTrackFile(fileName string) bool {
	return slices.Contains(SupportedExtensions(), strings.ToLower(filepath.Ext(fileName)))
}

// TrackName derives a route name from a file name by dropping directories and the extension.
func TrackName(fileName string) string {
	base := filepath.Base(fileName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ParseTrack decodes the content of a track file, choosing the format by extension.
// All failures are reported as *ParseError.
func ParseTrack(content []byte, fileName string) (points []TrackPoint, err error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, &ParseError{File: fileName, Err: fmt.Errorf("empty track file")}
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if slices.Contains(gpxExtensions, ext) {
		points, err = parseGPX(content)
	} else if slices.Contains(nmeaExtensions, ext) {
		points, err = parseNMEA(content)
	} else {
		return nil, &ParseError{File: fileName, Err: fmt.Errorf("unknown track extension '%s'", ext)}
	}

	if err == nil {
		err = validatePoints(points)
	}
	if err != nil {
		return nil, &ParseError{File: fileName, Err: err}
	}

	return
}

// validatePoints rejects coordinates outside the WGS84 ranges and non-finite values.
func validatePoints(points []TrackPoint) error {
	for i, p := range points {
		if math.IsNaN(p.Lat) || p.Lat < -90 || p.Lat > 90 {
			return fmt.Errorf("point %d: latitude %v out of range", i, p.Lat)
		}
		if math.IsNaN(p.Lon) || p.Lon < -180 || p.Lon > 180 {
			return fmt.Errorf("point %d: longitude %v out of range", i, p.Lon)
		}
		if p.Elevation.IsSome() {
			if e := p.Elevation.Get(); math.IsNaN(e) || math.IsInf(e, 0) {
				return fmt.Errorf("point %d: invalid elevation %v", i, e)
			}
		}
	}

	return nil
}
