package render

import (
	"hash/fnv"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette hands out one color per route name. The color only depends on the name,
// so a route keeps its color across runs.
type Palette struct {
	colors map[string]colorful.Color
}

func NewPalette() *Palette {
	return &Palette{
		colors: make(map[string]colorful.Color),
	}
}

func (p *Palette) HexColor(name string) string {
	c, ok := p.colors[name]
	if !ok {
		h := fnv.New32a()
		_, _ = h.Write([]byte(name))
		hue := float64(h.Sum32()%360)
		c = colorful.Hsv(hue, 0.8, 0.75).Clamped()
		p.colors[name] = c
	}

	return c.Hex()
}
