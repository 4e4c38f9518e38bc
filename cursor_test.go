package taprunes

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestNewCursorDefaults(t *testing.T) {
	c := NewCursor(1)
	if c.X != DefaultXPad+DefaultCellWidth/2 || c.Y != DefaultYPad {
		t.Errorf("start = (%v, %v), want (%v, %v)", c.X, c.Y, DefaultXPad+DefaultCellWidth/2, DefaultYPad)
	}
	if c.HomeX != c.X || c.HomeY != c.Y {
		t.Errorf("home = (%v, %v), want start position", c.HomeX, c.HomeY)
	}
	if c.LineWidth != DefaultLineWidth {
		t.Errorf("LineWidth = %v, want %v", c.LineWidth, DefaultLineWidth)
	}
}

func TestCursorAdvanceAndNewline(t *testing.T) {
	tests := []struct {
		name     string
		scale    float64
		advance  float64
		lineStep float64
	}{
		{"unit", 1, 50 + 8, 80 + 16},
		{"half", 0.5, 25 + 4, 40 + 8},
		{"double", 2, 100 + 16, 160 + 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.scale)
			x0, y0 := c.X, c.Y

			c.Advance()
			c.Advance()
			if got := c.X - x0; !approxEqual(got, 2*tt.advance, 1e-9) {
				t.Errorf("two advances moved %v, want %v", got, 2*tt.advance)
			}
			if c.Y != y0 {
				t.Errorf("Advance changed Y to %v", c.Y)
			}

			c.Newline()
			if c.X != x0 {
				t.Errorf("Newline X = %v, want home %v", c.X, x0)
			}
			if got := c.Y - y0; !approxEqual(got, tt.lineStep, 1e-9) {
				t.Errorf("Newline moved %v, want %v", got, tt.lineStep)
			}
		})
	}
}

func TestCursorReturns(t *testing.T) {
	c := NewCursor(1)
	c.PlaceCursor(100, 200)
	c.Advance()
	c.LineFeed()

	c.CarriageReturn()
	if c.X != 100 || c.Y == 200 {
		t.Errorf("CarriageReturn = (%v, %v), want x=100 and y unchanged", c.X, c.Y)
	}
	c.LineReturn()
	if c.Y != 200 {
		t.Errorf("LineReturn Y = %v, want 200", c.Y)
	}
}

func TestCursorSetScale(t *testing.T) {
	c := NewCursor(1)
	c.SetScale(2)
	if c.Scale != 2 {
		t.Fatalf("Scale = %v, want 2", c.Scale)
	}
	if c.XPad != 2*DefaultXPad || c.YPad != 2*DefaultYPad || c.LineWidth != 2*DefaultLineWidth {
		t.Errorf("pads/width = %v %v %v, want doubled defaults", c.XPad, c.YPad, c.LineWidth)
	}

	c.SetScale(0)
	c.SetScale(-1)
	if c.Scale != 2 {
		t.Errorf("non-positive scale changed Scale to %v", c.Scale)
	}
}

func TestCursorMapMatchesMatrix(t *testing.T) {
	c := NewCursor(0.75)
	c.Advance()
	m := c.Matrix()

	for _, p := range []gg.Point{{X: 0, Y: 0}, {X: -0.5, Y: 1}, {X: 0.5, Y: 0.25}, {X: 0.3, Y: 1.4}} {
		x, y := c.Map(p.X, p.Y)
		got := m.TransformPoint(p)
		if !pointsEqual(got, gg.Pt(x, y), 1e-9) {
			t.Errorf("Matrix(%v) = %v, Map = (%v, %v)", p, got, x, y)
		}
	}
}
