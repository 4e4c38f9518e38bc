package taprunes

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

func TestWriteStringDigraphAdvances(t *testing.T) {
	c := newTestCanvas()
	w := NewWriter(c)
	x0 := w.Cursor().X

	if err := w.WriteString("ABCK"); err != nil {
		t.Fatalf("WriteString() = %v", err)
	}
	if got, want := w.Cursor().X-x0, 3*w.Cursor().AdvanceWidth(); !approxEqual(got, want, 1e-9) {
		t.Errorf("cursor moved %v, want three advances (%v)", got, want)
	}
	if got := countCommands(c, recording.CmdStrokePath); got != 3 {
		t.Errorf("strokes = %d, want 3", got)
	}
}

func TestWriteUnknownRuneAdvances(t *testing.T) {
	c := newTestCanvas()
	w := NewWriter(c)
	x0 := w.Cursor().X

	if err := w.WriteString("@#"); err != nil {
		t.Fatalf("WriteString() = %v", err)
	}
	if got := w.Cursor().X - x0; !approxEqual(got, 2*w.Cursor().AdvanceWidth(), 1e-9) {
		t.Errorf("cursor moved %v, want two advances", got)
	}
	if got := countCommands(c, recording.CmdStrokePath); got != 0 {
		t.Errorf("strokes = %d, want 0", got)
	}
}

func TestWriteNewlineDoesNotAdvance(t *testing.T) {
	w := NewWriter(newTestCanvas())
	cur := w.Cursor()
	x0, y0 := cur.X, cur.Y

	if err := w.Write(Inscription{"A", RuneNewline, "B"}); err != nil {
		t.Fatalf("Write() = %v", err)
	}
	if !approxEqual(cur.X, x0+cur.AdvanceWidth(), 1e-9) {
		t.Errorf("X = %v, want one cell past home", cur.X)
	}
	if !approxEqual(cur.Y, y0+cur.LineHeight(), 1e-9) {
		t.Errorf("Y = %v, want one line down", cur.Y)
	}
}

func TestWriteLines(t *testing.T) {
	w := NewWriter(newTestCanvas())
	cur := w.Cursor()
	y0 := cur.Y

	if err := w.WriteLines("AB\nC"); err != nil {
		t.Fatalf("WriteLines() = %v", err)
	}
	if cur.X != cur.HomeX {
		t.Errorf("X = %v, want home %v", cur.X, cur.HomeX)
	}
	if !approxEqual(cur.Y, y0+2*cur.LineHeight(), 1e-9) {
		t.Errorf("Y = %v, want two lines down", cur.Y)
	}
}

func TestEveryRuneDrawsInEveryStyle(t *testing.T) {
	for _, s := range Styles() {
		t.Run(s.String(), func(t *testing.T) {
			for _, id := range Alphabet() {
				c := newTestCanvas()
				p := NewPen(c, NewCursor(1), s)
				if !drawGlyph(p, id) {
					t.Errorf("no program for %q", id)
					continue
				}
				if got := countCommands(c, recording.CmdStrokePath); got == 0 {
					t.Errorf("%q drew nothing", id)
				}
			}
		})
	}
}

func TestWriterOptions(t *testing.T) {
	c := newTestCanvas()
	brush := gg.Solid(gg.RGB(1, 0, 0))
	w := NewWriter(c,
		WithStyle(Hex1),
		WithScale(0.5),
		WithStrokeBrush(brush),
		WithOrigin(40, 60),
	)

	if w.Style() != Hex1 {
		t.Errorf("Style() = %v, want hex1", w.Style())
	}
	cur := w.Cursor()
	if cur.Scale != 0.5 || cur.X != 40 || cur.Y != 60 {
		t.Errorf("cursor = scale %v at (%v, %v), want 0.5 at (40, 60)", cur.Scale, cur.X, cur.Y)
	}
	if cur.LineWidth != DefaultLineWidth/2 {
		t.Errorf("LineWidth = %v, want %v", cur.LineWidth, DefaultLineWidth/2)
	}
}

func TestWriterSetScale(t *testing.T) {
	w := NewWriter(newTestCanvas())
	w.SetScale(0.25)
	if w.Cursor().LineWidth != DefaultLineWidth/4 {
		t.Errorf("LineWidth = %v, want %v", w.Cursor().LineWidth, DefaultLineWidth/4)
	}
}

func TestWriterReportsCanvasError(t *testing.T) {
	w := NewWriter(&brokenCanvas{RecorderCanvas: newTestCanvas()})
	if err := w.WriteString("AB"); !errors.Is(err, errCanvasBroken) {
		t.Errorf("WriteString() = %v, want errCanvasBroken", err)
	}
	if !errors.Is(w.Err(), errCanvasBroken) {
		t.Errorf("Err() = %v, want errCanvasBroken", w.Err())
	}
}

func TestFit(t *testing.T) {
	// One cell at scale 1 is 58 wide and 96 tall.
	tests := []struct {
		name                 string
		text                 string
		width, height, limit float64
		want                 float64
	}{
		{"limited", "AB", 1000, 1000, 1, 1},
		{"width bound", "AB", 58, 1000, 1, 0.5},
		{"height bound", "A", 1000, 48, 1, 0.5},
		{"empty", "", 10, 10, 0.7, 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fit(tt.text, tt.width, tt.height, tt.limit); !approxEqual(got, tt.want, 1e-9) {
				t.Errorf("Fit() = %v, want %v", got, tt.want)
			}
		})
	}
}
