package taprunes

import "github.com/gogpu/gg"

// Default cell metrics at scale 1, in canvas units.
const (
	DefaultCellWidth  = 50.0
	DefaultCellHeight = 80.0
	DefaultLineWidth  = 4.0
	DefaultXPad       = DefaultLineWidth * 2
	DefaultYPad       = DefaultLineWidth * 4
)

// Cursor is the typewriter state of a Writer. Glyph programs draw in a unit
// cell whose x origin is the cell's horizontal center and whose y origin is
// the top edge; Map converts those coordinates to canvas coordinates.
//
// XPad, YPad and LineWidth are stored already scaled: SetScale rescales them
// together with the cell so proportions survive a change of density.
type Cursor struct {
	X, Y         float64
	HomeX, HomeY float64

	Scale      float64
	CellWidth  float64
	CellHeight float64
	XPad, YPad float64
	LineWidth  float64
}

// NewCursor returns a cursor with the default cell metrics at the given
// scale, positioned at the first cell of the first line.
func NewCursor(scale float64) *Cursor {
	c := &Cursor{
		Scale:      1,
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
		XPad:       DefaultXPad,
		YPad:       DefaultYPad,
		LineWidth:  DefaultLineWidth,
	}
	c.SetScale(scale)
	c.PlaceCursor(c.XPad+c.ScaledWidth()/2, c.YPad)
	return c
}

// ScaledWidth returns the cell width at the current scale.
func (c *Cursor) ScaledWidth() float64 { return c.CellWidth * c.Scale }

// ScaledHeight returns the cell height at the current scale.
func (c *Cursor) ScaledHeight() float64 { return c.CellHeight * c.Scale }

// AdvanceWidth is the horizontal distance moved by Advance.
func (c *Cursor) AdvanceWidth() float64 { return c.ScaledWidth() + c.XPad }

// LineHeight is the vertical distance moved by LineFeed.
func (c *Cursor) LineHeight() float64 { return c.ScaledHeight() + c.YPad }

// SetScale changes the scale, rescaling padding and line width by the same
// ratio. Non-positive scales are ignored.
func (c *Cursor) SetScale(scale float64) {
	if scale <= 0 || c.Scale <= 0 {
		return
	}
	ratio := scale / c.Scale
	c.Scale = scale
	c.XPad *= ratio
	c.YPad *= ratio
	c.LineWidth *= ratio
}

// Map converts glyph-local unit coordinates to canvas coordinates.
func (c *Cursor) Map(rx, ry float64) (x, y float64) {
	return rx*c.ScaledWidth() + c.X, ry*c.ScaledHeight() + c.Y
}

// Matrix returns Map as an affine transform.
func (c *Cursor) Matrix() gg.Matrix {
	return gg.Translate(c.X, c.Y).Multiply(gg.Scale(c.ScaledWidth(), c.ScaledHeight()))
}

// Advance moves one cell to the right.
func (c *Cursor) Advance() { c.X += c.AdvanceWidth() }

// LineFeed moves one line down without touching x.
func (c *Cursor) LineFeed() { c.Y += c.LineHeight() }

// CarriageReturn moves back to the home x.
func (c *Cursor) CarriageReturn() { c.X = c.HomeX }

// LineReturn moves back to the home y.
func (c *Cursor) LineReturn() { c.Y = c.HomeY }

// Newline is LineFeed followed by CarriageReturn.
func (c *Cursor) Newline() {
	c.LineFeed()
	c.CarriageReturn()
}

// PlaceCursor redefines home and moves there.
func (c *Cursor) PlaceCursor(x, y float64) {
	c.HomeX, c.HomeY = x, y
	c.CarriageReturn()
	c.LineReturn()
}
