package taprunes

import (
	"math"

	"github.com/gogpu/gg"
)

// Span classifies the angular extent of an arc request.
type Span uint8

const (
	// SpanFull is a closed circle (a2 == a1 + 2π).
	SpanFull Span = iota
	// SpanHalfDown is the lower half, requested with a1 == 0.
	SpanHalfDown
	// SpanHalfUp is every other request.
	SpanHalfUp
)

func (s Span) String() string {
	switch s {
	case SpanFull:
		return "full"
	case SpanHalfDown:
		return "half-down"
	default:
		return "half-up"
	}
}

const spanEpsilon = 1e-9

// ClassifySpan maps an angle pair onto one of the three spans. Polygonal
// styles only know these three shapes, so quarter arcs and other spans
// collapse onto the nearest half.
func ClassifySpan(a1, a2 float64) Span {
	switch {
	case math.Abs(a2-(a1+2*math.Pi)) < spanEpsilon:
		return SpanFull
	case a1 == 0:
		return SpanHalfDown
	default:
		return SpanHalfUp
	}
}

// Arc is resolved arc geometry in glyph-local unit coordinates.
type Arc struct {
	Span Span
	Path *gg.Path
	// Smooth is true when Path holds true arc segments (curved style).
	Smooth bool
}

// arcTable holds the vertex offsets of one polygonal style, in units of the
// radius, relative to the arc center.
type arcTable struct {
	up, down, full []gg.Point
}

// halfUpOutlines lists, per polygonal style, the upper half outline from
// the left extreme (-1, 0) to the right extreme (1, 0). Y grows downward.
var halfUpOutlines = [numStyles][]gg.Point{
	Diamond: {{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 1, Y: 0}},
	Square:  {{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}},
	Hex1:    {{X: -1, Y: 0}, {X: -0.5, Y: -1}, {X: 0.5, Y: -1}, {X: 1, Y: 0}},
	Hex2:    {{X: -1, Y: 0}, {X: -1, Y: -0.5}, {X: 0, Y: -1}, {X: 1, Y: -0.5}, {X: 1, Y: 0}},
	Chamfer: {{X: -1, Y: 0}, {X: -1, Y: -2.0 / 3}, {X: -2.0 / 3, Y: -1}, {X: 2.0 / 3, Y: -1}, {X: 1, Y: -2.0 / 3}, {X: 1, Y: 0}},
	Octagon: {{X: -1, Y: 0}, {X: -1, Y: -0.5}, {X: -0.5, Y: -1}, {X: 0.5, Y: -1}, {X: 1, Y: -0.5}, {X: 1, Y: 0}},
}

var arcTables = buildArcTables()

// buildArcTables derives the half-down outline by mirroring the half-up one
// (reversed, y negated) so it runs from the right extreme to the left, and
// the full outline as half-up followed by half-down without the shared point.
func buildArcTables() [numStyles]arcTable {
	var tables [numStyles]arcTable
	for s := Diamond; s < numStyles; s++ {
		up := halfUpOutlines[s]
		down := make([]gg.Point, len(up))
		for i, p := range up {
			down[len(up)-1-i] = gg.Pt(p.X, -p.Y)
		}
		full := make([]gg.Point, 0, len(up)+len(down)-1)
		full = append(full, up...)
		full = append(full, down[1:]...)
		tables[s] = arcTable{up: up, down: down, full: full}
	}
	return tables
}

// Vertices returns the polygon outline used for span by a polygonal style,
// in units of the radius. It returns nil for Curved.
func (s Style) Vertices(span Span) []gg.Point {
	if !s.Polygonal() || s >= numStyles {
		return nil
	}
	t := arcTables[s]
	switch span {
	case SpanFull:
		return t.full
	case SpanHalfDown:
		return t.down
	default:
		return t.up
	}
}

// ResolveArc expands an arc request into geometry for the given style.
// Angles are in radians, measured clockwise on screen since y grows down.
func ResolveArc(style Style, cx, cy, r, a1, a2 float64) Arc {
	span := ClassifySpan(a1, a2)
	p := gg.NewPath()

	if !style.Polygonal() {
		p.Arc(cx, cy, r, a1, a2)
		return Arc{Span: span, Path: p, Smooth: true}
	}

	for i, v := range style.Vertices(span) {
		x, y := cx+v.X*r, cy+v.Y*r
		if i == 0 {
			p.MoveTo(x, y)
			continue
		}
		p.LineTo(x, y)
	}
	return Arc{Span: span, Path: p}
}
