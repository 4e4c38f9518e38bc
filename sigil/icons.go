package sigil

import (
	"math"

	"github.com/gogpu/gg"

	taprunes "github.com/JakeDSargent/TapRunes"
)

// Icons are built in unit coordinates (radius 1 around the origin) and
// scaled onto the card by the renderer. Circles go through the arc resolver
// so polygonal styles facet icons the same way they facet runes.

func circle(p *gg.Path, style taprunes.Style, cx, cy, r float64) {
	arc := taprunes.ResolveArc(style, cx, cy, r, 0, 2*math.Pi)
	appendPath(p, arc.Path)
	p.Close()
}

func line(p *gg.Path, x0, y0, x1, y1 float64) {
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
}

func polyline(p *gg.Path, closed bool, pts ...float64) {
	for i := 0; i+1 < len(pts); i += 2 {
		if i == 0 {
			p.MoveTo(pts[i], pts[i+1])
			continue
		}
		p.LineTo(pts[i], pts[i+1])
	}
	if closed {
		p.Close()
	}
}

// appendPath copies the elements of src onto dst.
func appendPath(dst, src *gg.Path) {
	for _, el := range src.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			dst.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			dst.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			dst.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			dst.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			dst.Close()
		}
	}
}

// SaveIcon returns the mark drawn at the sigil center.
func SaveIcon(c Category, style taprunes.Style) *gg.Path {
	switch c {
	case Attack:
		p := gg.NewPath()
		circle(p, style, 0, 0, 0.6)
		line(p, 0, -1, 0, -0.3)
		line(p, 0, 0.3, 0, 1)
		line(p, -1, 0, -0.3, 0)
		line(p, 0.3, 0, 1, 0)
		return p
	case Str:
		return gg.BuildPath().Rect(-0.7, -0.7, 1.4, 1.4).Build()
	case Dex:
		return gg.BuildPath().Polygon(0, 0, 1, 3).Build()
	case Con:
		p := gg.NewPath()
		circle(p, style, 0, 0, 0.8)
		return p
	case Int:
		return gg.BuildPath().Polygon(0, 0, 1, 4).Build()
	case Wis:
		return gg.BuildPath().Polygon(0, 0, 1, 6).Build()
	case Cha:
		return gg.BuildPath().Star(0, 0, 1, 0.45, 5).Build()
	default:
		p := gg.NewPath()
		circle(p, style, 0, 0, 0.3)
		return p
	}
}

// SchoolIcon returns the mark drawn inside the SCHOOL slot.
func SchoolIcon(s School, style taprunes.Style) *gg.Path {
	p := gg.NewPath()
	switch s {
	case Abjuration:
		// Shield.
		polyline(p, true, -0.6, -0.7, 0.6, -0.7, 0.6, 0, 0, 0.8, -0.6, 0)
	case Conjuration:
		circle(p, style, 0, 0, 0.7)
		circle(p, style, 0, 0, 0.3)
	case Divination:
		// Eye.
		p.MoveTo(-0.9, 0)
		p.QuadraticTo(0, -0.9, 0.9, 0)
		p.QuadraticTo(0, 0.9, -0.9, 0)
		p.Close()
		circle(p, style, 0, 0, 0.25)
	case Enchantment:
		circle(p, style, -0.3, 0, 0.45)
		circle(p, style, 0.3, 0, 0.45)
	case Evocation:
		// Bolt.
		polyline(p, false, 0.3, -0.9, -0.35, 0.05, 0.35, -0.05, -0.3, 0.9)
	case Illusion:
		appendPath(p, gg.BuildPath().Polygon(0, 0, 0.85, 3).Build())
		appendPath(p, gg.BuildPath().Polygon(0, 0, 0.85, 3).Build().Transform(gg.Rotate(math.Pi)))
	case Necromancy:
		// Hourglass.
		polyline(p, true, -0.6, -0.8, 0.6, -0.8, -0.6, 0.8, 0.6, 0.8)
	case Transmutation:
		circle(p, style, 0, 0, 0.85)
		appendPath(p, gg.BuildPath().Polygon(0, 0, 0.85, 3).Build())
	}
	return p
}

// TargetShapes lists the recognized TARGETSHAPE values.
var TargetShapes = []string{
	"SELF", "SINGLE", "MULTIPLE", "CONE", "CUBE", "CYLINDER", "LINE", "SPHERE", "SQUARE", "WALL",
}

// TargetOverlay returns the frame drawn around the TARGET slot, or nil for
// an unrecognized shape. The slot itself has radius 1.
func TargetOverlay(shape string, style taprunes.Style) *gg.Path {
	p := gg.NewPath()
	switch shape {
	case "SELF":
		circle(p, style, 0, 0, 1.3)
	case "SINGLE":
		polyline(p, false, -0.4, -1.7, 0, -1.3, 0.4, -1.7)
	case "MULTIPLE":
		polyline(p, false, -0.4, -1.7, 0, -1.3, 0.4, -1.7)
		polyline(p, false, -1.7, 0.6, -1.2, 0.9, -1.4, 1.4)
		polyline(p, false, 1.7, 0.6, 1.2, 0.9, 1.4, 1.4)
	case "CONE":
		polyline(p, false, 1.4, -1.3, -1.6, 0, 1.4, 1.3)
	case "CUBE":
		p.Rectangle(-1.3, -1.0, 2.3, 2.3)
		polyline(p, false, -1.3, -1.0, -1.0, -1.3, 1.3, -1.3, 1.3, 1.0, 1.0, 1.3)
		line(p, 1.0, -1.0, 1.3, -1.3)
	case "CYLINDER":
		p.Ellipse(0, -1.2, 1.3, 0.4)
		line(p, -1.3, -1.2, -1.3, 1.2)
		line(p, 1.3, -1.2, 1.3, 1.2)
		p.MoveTo(-1.3, 1.2)
		p.QuadraticTo(0, 2.0, 1.3, 1.2)
	case "LINE":
		line(p, -1.9, 0, -1.25, 0)
		line(p, 1.25, 0, 1.9, 0)
	case "SPHERE":
		circle(p, style, 0, 0, 1.3)
		p.Ellipse(0, 0, 1.3, 0.4)
	case "SQUARE":
		p.Rectangle(-1.3, -1.3, 2.6, 2.6)
	case "WALL":
		line(p, -1.4, -1.4, -1.4, 1.4)
		line(p, 1.4, -1.4, 1.4, 1.4)
		line(p, -1.4, 0, -1.2, 0)
		line(p, 1.2, 0, 1.4, 0)
	default:
		return nil
	}
	return p
}

// DamageDice lists the recognized DAMAGEDICE values.
var DamageDice = []string{"D4", "D6", "D8", "D10", "D12", "D20"}

// DiceOverlay returns the die outline drawn around the DAMAGE slot, or nil
// for an unrecognized die.
func DiceOverlay(die string) *gg.Path {
	b := gg.BuildPath()
	switch die {
	case "D4":
		b.Polygon(0, 0.2, 1.8, 3)
	case "D6":
		b.Rect(-1.3, -1.3, 2.6, 2.6)
	case "D8":
		b.Polygon(0, 0, 1.6, 4)
	case "D10":
		b.MoveTo(0, -1.7).LineTo(1.4, -0.2).LineTo(0, 1.5).LineTo(-1.4, -0.2).Close()
	case "D12":
		b.Polygon(0, 0, 1.55, 5)
	case "D20":
		b.Polygon(0, 0, 1.5, 6)
	default:
		return nil
	}
	return b.Build()
}

// SplitArc returns the two halves of the C/R glyph: the left half stands for
// concentration, the right half for ritual. Each half is closed by its
// diameter so it can be filled.
func SplitArc(style taprunes.Style) (left, right *gg.Path) {
	half := func(a1, a2, rot float64) *gg.Path {
		p := gg.NewPath()
		arc := taprunes.ResolveArc(style, 0, 0, 1, a1, a2)
		appendPath(p, arc.Path.Transform(gg.Rotate(rot)))
		p.Close()
		return p
	}
	// The upper half turned a quarter left is the left half, the lower half
	// likewise the right one.
	return half(math.Pi, 0, -math.Pi/2), half(0, math.Pi, -math.Pi/2)
}
