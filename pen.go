package taprunes

import (
	"math"

	"github.com/gogpu/gg"
)

// curvedArcWeight thins true arcs relative to straight strokes.
const curvedArcWeight = 0.75

// Pen issues the path primitives of stroke programs. All coordinates are
// glyph-local unit coordinates mapped through the cursor. The pen keeps the
// last point it drew to, so primitives such as Flag and VToBottom never ask
// the backend for its current point.
//
// The first canvas error is kept and reported by Err; later primitives still
// run so the cursor bookkeeping stays consistent.
type Pen struct {
	canvas Canvas
	cursor *Cursor
	style  Style
	last   gg.Point
	inked  bool
	err    error
}

// NewPen returns a pen drawing on c at the position of cur.
func NewPen(c Canvas, cur *Cursor, style Style) *Pen {
	return &Pen{canvas: c, cursor: cur, style: style}
}

// Cursor returns the cursor the pen maps through.
func (p *Pen) Cursor() *Cursor { return p.cursor }

// Style returns the arc style.
func (p *Pen) Style() Style { return p.style }

// Canvas returns the canvas the pen draws on.
func (p *Pen) Canvas() Canvas { return p.canvas }

// Last returns the current point in unit coordinates.
func (p *Pen) Last() gg.Point { return p.last }

// Err returns the first error reported by the canvas.
func (p *Pen) Err() error { return p.err }

func (p *Pen) setErr(err error) {
	if err != nil && p.err == nil {
		p.err = err
	}
}

// Prepare applies the cursor's line width to the canvas.
func (p *Pen) Prepare() {
	p.canvas.SetLineWidth(p.cursor.LineWidth)
}

// Begin discards any unstroked path and moves to (x, y).
func (p *Pen) Begin(x, y float64) {
	p.canvas.ClearPath()
	p.inked = false
	p.MoveTo(x, y)
}

// MoveTo starts a new sub-path at (x, y).
func (p *Pen) MoveTo(x, y float64) {
	p.last = gg.Pt(x, y)
	p.canvas.MoveTo(p.cursor.Map(x, y))
}

// LineTo draws a straight segment to (x, y).
func (p *Pen) LineTo(x, y float64) {
	p.last = gg.Pt(x, y)
	p.inked = true
	p.canvas.LineTo(p.cursor.Map(x, y))
}

// Line draws a separate segment from (x1, y1) to (x2, y2).
func (p *Pen) Line(x1, y1, x2, y2 float64) {
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
}

// RelMove moves by (dx, dy) without drawing.
func (p *Pen) RelMove(dx, dy float64) {
	p.MoveTo(p.last.X+dx, p.last.Y+dy)
}

// RelLine draws by (dx, dy).
func (p *Pen) RelLine(dx, dy float64) {
	p.LineTo(p.last.X+dx, p.last.Y+dy)
}

// Vert draws a vertical stroke of the given length downward.
func (p *Pen) Vert(length float64) {
	p.RelLine(0, length)
}

// VToBottom draws two legs from the current point to the bottom corners of
// the cell and returns to the current point.
func (p *Pen) VToBottom() {
	p.legs(1)
}

// VToTop draws two legs from the current point to the top corners of the
// cell and returns to the current point.
func (p *Pen) VToTop() {
	p.legs(0)
}

func (p *Pen) legs(y float64) {
	o := p.last
	p.LineTo(-0.5, y)
	p.MoveTo(o.X, o.Y)
	p.LineTo(0.5, y)
	p.MoveTo(o.X, o.Y)
}

// Flag draws two connected diagonals from the current point: out to tipX
// halfway to endY, then back to the starting x at endY.
func (p *Pen) Flag(endY, tipX float64) {
	x, y := p.last.X, p.last.Y
	xdiff := x - tipX
	ydiff := y - endY
	p.RelLine(-xdiff, -ydiff/2)
	p.RelLine(xdiff, -ydiff/2)
}

// FlagLeft is a flag whose tip touches the left edge of the cell.
func (p *Pen) FlagLeft(endY float64) { p.Flag(endY, -0.5) }

// FlagRight is a flag whose tip touches the right edge of the cell.
func (p *Pen) FlagRight(endY float64) { p.Flag(endY, 0.5) }

// Cross draws a horizontally centered stroke of the given width following
// y = b + m*x.
func (p *Pen) Cross(m, b, width float64) {
	p.MoveTo(width*-0.5, b+m*width*-0.5)
	p.LineTo(width*0.5, b+m*width*0.5)
}

// TriangleDown draws a triangle from the cell's vertical midpoint to the
// bottom corners, closed by a bar along the bottom edge.
func (p *Pen) TriangleDown() {
	p.MoveTo(0, 0.5)
	p.VToBottom()
	p.Cross(0, 1, 1)
}

// TriangleUp draws a triangle from the cell's vertical midpoint to the top
// corners, closed by a bar along the top edge.
func (p *Pen) TriangleUp() {
	p.MoveTo(0, 0.5)
	p.VToTop()
	p.Cross(0, 0, 1)
}

// Arc draws an arc through the style resolver. In the curved style the arc
// is stroked on its own at a reduced weight, so anything pending is flushed
// first; polygonal arcs join the current path.
func (p *Pen) Arc(cx, cy, r, a1, a2 float64) {
	arc := ResolveArc(p.style, cx, cy, r, a1, a2)
	if arc.Smooth {
		p.Stroke()
		p.canvas.SetLineWidth(p.cursor.LineWidth * curvedArcWeight)
		AppendPath(p.canvas, arc.Path, p.cursor.Matrix())
		p.inked = true
		p.Stroke()
		p.canvas.SetLineWidth(p.cursor.LineWidth)
	} else {
		AppendPath(p.canvas, arc.Path, p.cursor.Matrix())
		p.inked = true
	}
	if _, end, ok := PathEnds(arc.Path); ok {
		p.last = end
	}
}

// Circle is a full-circle Arc.
func (p *Pen) Circle(cx, cy, r float64) {
	p.Arc(cx, cy, r, 0, 2*math.Pi)
}

// Curve draws a cubic from (x0, y0). Polygonal styles replace it with a
// three-segment polyline: when the x coordinates are monotonic the inner
// points are pulled halfway toward the nearer horizontal edge, when only y
// is monotonic they are pulled halfway toward x = 0, otherwise the control
// points are used as they are.
func (p *Pen) Curve(x0, y0, x1, y1, x2, y2, x3, y3 float64) {
	p.MoveTo(x0, y0)
	if !p.style.Polygonal() {
		ax, ay := p.cursor.Map(x1, y1)
		bx, by := p.cursor.Map(x2, y2)
		cx, cy := p.cursor.Map(x3, y3)
		p.canvas.CubicTo(ax, ay, bx, by, cx, cy)
		p.last = gg.Pt(x3, y3)
		p.inked = true
		return
	}
	for _, pt := range Polyline(x0, y0, x1, y1, x2, y2, x3, y3) {
		p.LineTo(pt.X, pt.Y)
	}
}

// Polyline returns the three vertices that replace a cubic in polygonal
// styles. The start point is not included.
func Polyline(x0, y0, x1, y1, x2, y2, x3, y3 float64) [3]gg.Point {
	switch {
	case monotonic(x0, x1, x2, x3):
		off := 0.0
		if y0 >= 0.5 {
			off = 0.5
		}
		return [3]gg.Point{{X: x1, Y: y1/2 + off}, {X: x2, Y: y2/2 + off}, {X: x3, Y: y3}}
	case monotonic(y0, y1, y2, y3):
		return [3]gg.Point{{X: x1 / 2, Y: y1}, {X: x2 / 2, Y: y2}, {X: x3, Y: y3}}
	default:
		return [3]gg.Point{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3}}
	}
}

func monotonic(a, b, c, d float64) bool {
	return (a <= b && b <= c && c <= d) || (d <= c && c <= b && b <= a)
}

// ClosePath closes the current sub-path.
func (p *Pen) ClosePath() {
	p.canvas.ClosePath()
}

// Stroke flushes the current path as a stroke. A path made only of moves
// is discarded instead.
func (p *Pen) Stroke() {
	if !p.flush() {
		return
	}
	p.setErr(p.canvas.Stroke())
}

// Fill flushes the current path as a fill.
func (p *Pen) Fill() {
	if !p.flush() {
		return
	}
	p.setErr(p.canvas.Fill())
}

func (p *Pen) flush() bool {
	if !p.inked {
		p.canvas.ClearPath()
		return false
	}
	p.inked = false
	return true
}
