package taprunes

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

// Canvas is the subset of a gg drawing context the rune engine draws with.
// *gg.Context satisfies it directly; RecorderCanvas adapts a
// recording.Recorder.
type Canvas interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
	ClearPath()

	SetLineWidth(width float64)
	SetStrokeBrush(b gg.Brush)
	SetFillBrush(b gg.Brush)

	Stroke() error
	Fill() error
}

var (
	_ Canvas = (*gg.Context)(nil)
	_ Canvas = RecorderCanvas{}
)

// RecorderCanvas adapts a recording.Recorder to Canvas, so drawings can be
// inspected command by command or played back to any registered backend.
type RecorderCanvas struct {
	*recording.Recorder
}

// NewRecorderCanvas returns a Canvas recording into a new Recorder.
func NewRecorderCanvas(width, height int) RecorderCanvas {
	return RecorderCanvas{Recorder: recording.NewRecorder(width, height)}
}

// Stroke strokes and clears the current path. Recording never fails.
func (r RecorderCanvas) Stroke() error {
	r.Recorder.Stroke()
	return nil
}

// Fill fills and clears the current path. Recording never fails.
func (r RecorderCanvas) Fill() error {
	r.Recorder.Fill()
	return nil
}

// AppendPath replays p into c after transforming every point by m. The
// canvas path is extended, not stroked.
func AppendPath(c Canvas, p *gg.Path, m gg.Matrix) {
	var cur, start gg.Point
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			pt := m.TransformPoint(e.Point)
			c.MoveTo(pt.X, pt.Y)
			cur, start = e.Point, e.Point
		case gg.LineTo:
			pt := m.TransformPoint(e.Point)
			c.LineTo(pt.X, pt.Y)
			cur = e.Point
		case gg.QuadTo:
			// Elevate to a cubic; Canvas has no quadratic segment.
			c1 := cur.Lerp(e.Control, 2.0/3)
			c2 := e.Point.Lerp(e.Control, 2.0/3)
			a, b, pt := m.TransformPoint(c1), m.TransformPoint(c2), m.TransformPoint(e.Point)
			c.CubicTo(a.X, a.Y, b.X, b.Y, pt.X, pt.Y)
			cur = e.Point
		case gg.CubicTo:
			a := m.TransformPoint(e.Control1)
			b := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			c.CubicTo(a.X, a.Y, b.X, b.Y, pt.X, pt.Y)
			cur = e.Point
		case gg.Close:
			c.ClosePath()
			cur = start
		}
	}
}

// PathEnds returns the first and last on-curve points of p.
func PathEnds(p *gg.Path) (first, last gg.Point, ok bool) {
	els := p.Elements()
	if len(els) == 0 {
		return gg.Point{}, gg.Point{}, false
	}
	var start gg.Point
	for i, el := range els {
		switch e := el.(type) {
		case gg.MoveTo:
			if i == 0 {
				first = e.Point
			}
			start, last = e.Point, e.Point
		case gg.LineTo:
			last = e.Point
		case gg.QuadTo:
			last = e.Point
		case gg.CubicTo:
			last = e.Point
		case gg.Close:
			last = start
		}
	}
	return first, last, true
}
