package geotrack

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/adrianmo/go-nmea"
	"github.com/bgraf/routetracker/option"
)

// parseNMEA reads positions from RMC sentences. A GGA sentence carrying the same UTC time
// as an RMC fix contributes the altitude of that fix, whether it comes before or after it.
func parseNMEA(content []byte) (points []TrackPoint, err error) {
	scanner := bufio.NewScanner(bytes.NewReader(content))

	var (
		lastFix    nmea.Time
		hasLastFix bool
		pending    nmea.GGA
		hasPending bool
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		sentence, err := nmea.Parse(line)
		if err != nil {
			return nil, err
		}

		switch sentence.DataType() {
		case nmea.TypeRMC:
			rmc := sentence.(nmea.RMC)
			// Only "active" fixes carry a usable position.
			if rmc.Validity != nmea.ValidRMC {
				hasLastFix = false
				continue
			}

			elevation := option.None[float64]()
			if hasPending && pending.Time == rmc.Time {
				elevation = option.Some(pending.Altitude)
			}
			hasPending = false

			points = append(points, TrackPoint{
				Lat:       rmc.Latitude,
				Lon:       rmc.Longitude,
				Elevation: elevation,
			})
			lastFix, hasLastFix = rmc.Time, true
		case nmea.TypeGGA:
			gga := sentence.(nmea.GGA)
			if gga.FixQuality == nmea.Invalid {
				continue
			}

			if hasLastFix && lastFix == gga.Time {
				last := &points[len(points)-1]
				if last.Elevation.IsNone() {
					last.Elevation = option.Some(gga.Altitude)
				}
				continue
			}

			pending, hasPending = gga, true
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return
}
