package taprunes

import (
	"slices"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Inscription
	}{
		{"greedy no backtrack", "CKC", Inscription{"CK", "C"}},
		{"digraph at end", "ABCK", Inscription{"A", "B", "CK"}},
		{"lower case", "abck", Inscription{"A", "B", "CK"}},
		{"reverse pair", "KCK", Inscription{"KC", "K"}},
		{"doubled letter", "AAA", Inscription{"AA", "A"}},
		{"asymmetric pair", "JWJ", Inscription{"JW", "J"}},
		{"diacritics", "élan", Inscription{"E", "L", "A", "N"}},
		{"space", "A B", Inscription{"A", " ", "B"}},
		{"newline", "A\nB", Inscription{"A", "\n", "B"}},
		{"two digits", "12", Inscription{"12"}},
		{"three digits", "123", Inscription{"12", "3"}},
		{"numeral between letters", "a1b", Inscription{"A", "1", "B"}},
		{"numeral does not merge", "1A", Inscription{"1", "A"}},
		{"bonus mark", "**", Inscription{"**"}},
		{"marks", "***", Inscription{"**", "*"}},
		{"unknown kept", "A@", Inscription{"A", "@"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenizeLines(t *testing.T) {
	got := TokenizeLines("AB\r\nCK\nZ")
	want := []Inscription{
		{"A", "B", "\n"},
		{"CK", "\n"},
		{"Z"},
	}
	if len(got) != len(want) {
		t.Fatalf("TokenizeLines() = %v lines, want %d", got, len(want))
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("line %d = %v, want %v", i, got[i], want[i])
		}
	}

	if TokenizeLines("") != nil {
		t.Error("TokenizeLines(\"\") should be nil")
	}
}

func TestIsNumeral(t *testing.T) {
	tests := []struct {
		id   RuneID
		want bool
	}{
		{"0", true},
		{"42", true},
		{"123", false},
		{"A", false},
		{"4A", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsNumeral(tt.id); got != tt.want {
			t.Errorf("IsNumeral(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestMeasure(t *testing.T) {
	lines := TokenizeLines("ABC\nCK\n")
	cols, rows := Measure(lines)
	if cols != 3 || rows != 2 {
		t.Errorf("Measure() = (%d, %d), want (3, 2)", cols, rows)
	}

	w, h := CanvasSize(lines, 1)
	if w != 3*58+8 || h != 2*96+8 {
		t.Errorf("CanvasSize() = (%d, %d), want (%d, %d)", w, h, 3*58+8, 2*96+8)
	}
}

func TestKnown(t *testing.T) {
	for _, id := range []RuneID{"A", "ZZ", "CK", "KC", "YU", "*", "**", "\n", " "} {
		if !Known(id) {
			t.Errorf("Known(%q) = false", id)
		}
	}
	for _, id := range []RuneID{"AB", "CKC", "a", "1", "***"} {
		if Known(id) {
			t.Errorf("Known(%q) = true", id)
		}
	}
	if n := len(Alphabet()); n != 26+26+24+2 {
		t.Errorf("len(Alphabet()) = %d, want %d", n, 26+26+24+2)
	}
}
