package taprunes

import (
	"fmt"
	"strings"
)

// Writer draws inscriptions rune by rune, advancing a typewriter cursor
// after each one.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	canvas Canvas
	cursor *Cursor
	pen    *Pen
}

// NewWriter returns a Writer drawing on c.
func NewWriter(c Canvas, opts ...Option) *Writer {
	o := defaultWriterOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cur := NewCursor(o.scale)
	if o.hasOrigin {
		cur.PlaceCursor(o.origin.X, o.origin.Y)
	}
	if o.brush != nil {
		c.SetStrokeBrush(o.brush)
	}

	w := &Writer{canvas: c, cursor: cur, pen: NewPen(c, cur, o.style)}
	w.pen.Prepare()
	return w
}

// Cursor returns the writer's cursor. Changes to it take effect on the next
// rune.
func (w *Writer) Cursor() *Cursor { return w.cursor }

// Style returns the arc style.
func (w *Writer) Style() Style { return w.pen.style }

// SetStyle changes the arc style for subsequent runes.
func (w *Writer) SetStyle(s Style) { w.pen.style = s }

// SetScale rescales the cell and line width for subsequent runes.
func (w *Writer) SetScale(scale float64) {
	w.cursor.SetScale(scale)
	w.pen.Prepare()
}

// PlaceCursor moves home to (x, y).
func (w *Writer) PlaceCursor(x, y float64) { w.cursor.PlaceCursor(x, y) }

// Newline moves to the start of the next line.
func (w *Writer) Newline() { w.cursor.Newline() }

// Err returns the first error reported by the canvas.
func (w *Writer) Err() error { return w.pen.Err() }

// Write draws every rune of in and returns the first canvas error.
func (w *Writer) Write(in Inscription) error {
	for _, id := range in {
		if err := w.WriteRune(id); err != nil {
			return err
		}
	}
	return w.Err()
}

// WriteString tokenizes s and writes the result.
func (w *Writer) WriteString(s string) error {
	return w.Write(Tokenize(s))
}

// WriteLines writes each line of s and returns to the start of the line
// below the last one written.
func (w *Writer) WriteLines(s string) error {
	lines := TokenizeLines(s)
	for _, in := range lines {
		if err := w.Write(in); err != nil {
			return err
		}
		if len(in) == 0 || in[len(in)-1] != RuneNewline {
			w.cursor.Newline()
		}
	}
	cols, rows := Measure(lines)
	Logger().Info("taprunes: wrote inscription", "lines", rows, "cells", cols, "style", w.pen.style)
	return nil
}

// WriteRune draws a single rune. Numerals are drawn with WriteNumeral, the
// newline token moves to the next line without advancing, and runes outside
// the alphabet draw nothing but still take up a cell.
func (w *Writer) WriteRune(id RuneID) error {
	if v, ok := NumeralValue(id); ok {
		return w.WriteNumeral(v)
	}
	if id == RuneNewline {
		w.cursor.Newline()
		return nil
	}
	if !drawGlyph(w.pen, id) {
		Logger().Debug("taprunes: unknown rune", "rune", string(id))
	}
	w.cursor.Advance()
	return nil
}

// WriteNumeral draws v as three stacked base-6 digits in one cell and
// advances. Values outside 0..MaxNumeral are rejected with ErrNumeralRange
// and nothing is drawn.
func (w *Writer) WriteNumeral(v int) error {
	n, err := EncodeNumeral(v)
	if err != nil {
		return err
	}
	Logger().Debug("taprunes: numeral", "value", v, "digits", n.Digits())
	y := w.cursor.Y
	for i, d := range n.Digits() {
		if i > 0 {
			w.cursor.Y += numeralStep * w.cursor.ScaledHeight()
		}
		drawNumeralDigit(w.pen, d)
	}
	w.cursor.Y = y
	w.cursor.Advance()
	return nil
}

// Fit returns the largest scale, at most limit, at which text written as a
// single line is no wider than width and no taller than height.
func Fit(text string, width, height, limit float64) float64 {
	cols := Tokenize(strings.TrimRight(text, "\n")).Advances()
	if cols == 0 {
		return limit
	}
	cur := NewCursor(1)
	sx := width / (float64(cols) * cur.AdvanceWidth())
	sy := height / cur.LineHeight()
	return minPositive(limit, sx, sy)
}

func minPositive(vals ...float64) float64 {
	out := 0.0
	for _, v := range vals {
		if v > 0 && (out == 0 || v < out) {
			out = v
		}
	}
	return out
}

// String describes the writer state, for debugging.
func (w *Writer) String() string {
	c := w.cursor
	return fmt.Sprintf("Writer{style=%s scale=%g at=(%g,%g)}", w.pen.style, c.Scale, c.X, c.Y)
}
