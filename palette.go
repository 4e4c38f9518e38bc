package taprunes

import (
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// Palette is an ordered list of gradient colours.
type Palette []gg.RGBA

// DefaultPalette is the violet to pale blue gradient used when no palette is
// given.
var DefaultPalette = Palette{
	gg.RGB(175.0/255, 31.0/255, 1),
	gg.RGB(170.0/255, 207.0/255, 1),
	gg.RGB(224.0/255, 160.0/255, 1),
}

// DefaultBackground is the near-black green behind every drawing.
var DefaultBackground = gg.RGB(5.0/255, 21.0/255, 9.0/255)

// ParsePalette reads a '#'-delimited list of colours. Each entry is either
// six hex digits or a CSS colour name. Entries that parse as neither are
// skipped; if none are left, DefaultPalette is returned.
func ParsePalette(s string) Palette {
	var out Palette
	for _, entry := range strings.Split(s, "#") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		c, ok := parseColor(entry)
		if !ok {
			Logger().Warn("taprunes: skipping palette entry", "entry", entry)
			continue
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return DefaultPalette
	}
	return out
}

func parseColor(s string) (gg.RGBA, bool) {
	if len(s) == 6 {
		if _, err := strconv.ParseUint(s, 16, 32); err == nil {
			return gg.Hex(s), true
		}
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return gg.FromColor(c), true
	}
	return gg.RGBA{}, false
}

// Gradient returns a linear gradient from (x0, y0) to (x1, y1) with the
// palette colours spaced evenly along it. A one-colour palette yields a
// flat gradient.
func (p Palette) Gradient(x0, y0, x1, y1 float64) *gg.LinearGradientBrush {
	if len(p) == 0 {
		p = DefaultPalette
	}
	g := gg.NewLinearGradientBrush(x0, y0, x1, y1)
	if len(p) == 1 {
		return g.AddColorStop(0, p[0]).AddColorStop(1, p[0])
	}
	last := float64(len(p) - 1)
	for i, c := range p {
		g.AddColorStop(float64(i)/last, c)
	}
	return g
}

// Vertical is Gradient running from the top to the bottom of a canvas of
// the given height.
func (p Palette) Vertical(height float64) *gg.LinearGradientBrush {
	return p.Gradient(0, 0, 0, height)
}
