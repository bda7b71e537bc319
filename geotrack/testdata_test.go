package geotrack

import (
	"fmt"
	"strings"
)

type testPoint struct {
	lat, lon float64
	ele      *float64
}

func ele(v float64) *float64 {
	return &v
}

// gpxDocument builds a GPX 1.1 document with one track per segment list entry.
func gpxDocument(segments ...[]testPoint) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<gpx version="1.1" creator="routetracker-test" xmlns="http://www.topografix.com/GPX/1/1">` + "\n")
	b.WriteString("<trk><name>test</name>\n")
	for _, seg := range segments {
		b.WriteString("<trkseg>\n")
		for _, p := range seg {
			fmt.Fprintf(&b, `<trkpt lat="%f" lon="%f">`, p.lat, p.lon)
			if p.ele != nil {
				fmt.Fprintf(&b, "<ele>%f</ele>", *p.ele)
			}
			b.WriteString("</trkpt>\n")
		}
		b.WriteString("</trkseg>\n")
	}
	b.WriteString("</trk>\n</gpx>\n")
	return []byte(b.String())
}

// nmeaSentence adds the leading '$' and the XOR checksum to a sentence body.
func nmeaSentence(body string) string {
	var sum byte
	for i := 0; i < len(body); i++ {
		sum ^= body[i]
	}
	return fmt.Sprintf("$%s*%02X", body, sum)
}

var exampleTrack = []testPoint{
	{0, 0, ele(0)},
	{0, 0.001, ele(10)},
	{0, 0.002, ele(5)},
}
