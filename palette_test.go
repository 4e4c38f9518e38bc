package taprunes

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestParsePalette(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Palette
	}{
		{"hex", "ff0000#00FF00", Palette{gg.RGB(1, 0, 0), gg.RGB(0, 1, 0)}},
		{"leading hash", "#0000ff", Palette{gg.RGB(0, 0, 1)}},
		{"named", "white#bogus#000000", Palette{gg.RGB(1, 1, 1), gg.RGB(0, 0, 0)}},
		{"short hex skipped", "fff#00ff00", Palette{gg.RGB(0, 1, 0)}},
		{"nothing valid", "zzzzzz#12", DefaultPalette},
		{"empty", "", DefaultPalette},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePalette(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("ParsePalette(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if !colorsClose(got[i], tt.want[i]) {
					t.Errorf("color %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPaletteGradient(t *testing.T) {
	g := ParsePalette("ff0000#0000ff").Vertical(100)
	if c := g.ColorAt(0, 0); !colorsClose(c, gg.RGB(1, 0, 0)) {
		t.Errorf("top = %v, want red", c)
	}
	if c := g.ColorAt(0, 100); !colorsClose(c, gg.RGB(0, 0, 1)) {
		t.Errorf("bottom = %v, want blue", c)
	}

	flat := Palette{gg.RGB(0, 1, 0)}.Vertical(100)
	if c := flat.ColorAt(0, 50); !colorsClose(c, gg.RGB(0, 1, 0)) {
		t.Errorf("flat gradient = %v, want green", c)
	}
}

func colorsClose(a, b gg.RGBA) bool {
	const eps = 1.0 / 255
	return approxEqual(a.R, b.R, eps) && approxEqual(a.G, b.G, eps) &&
		approxEqual(a.B, b.B, eps) && approxEqual(a.A, b.A, eps)
}
