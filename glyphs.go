package taprunes

import (
	"math"
	"sort"
)

// RuneID names one drawable glyph: a letter, a digraph, a mark, a control
// token, or a one- or two-digit numeral.
type RuneID string

// Control tokens.
const (
	RuneNewline RuneID = "\n"
	RuneSpace   RuneID = " "
	RuneEmpty   RuneID = ""
	RuneAction  RuneID = "*"
	RuneBonus   RuneID = "**"
)

// digraphs lists the two-letter runes other than the doubled letters.
var digraphs = []RuneID{
	"BF", "CK", "CL", "DQ", "EV", "FB", "HM", "IR", "JW", "KC", "KL", "LC",
	"LK", "MH", "OS", "PX", "QD", "RI", "SO", "UY", "VE", "WJ", "XP", "YU",
}

var alphabet = buildAlphabet()

func buildAlphabet() map[RuneID]struct{} {
	set := make(map[RuneID]struct{}, 96)
	for c := 'A'; c <= 'Z'; c++ {
		set[RuneID(c)] = struct{}{}
		set[RuneID([]rune{c, c})] = struct{}{}
	}
	for _, d := range digraphs {
		set[d] = struct{}{}
	}
	for _, id := range []RuneID{RuneNewline, RuneSpace, RuneEmpty, RuneAction, RuneBonus} {
		set[id] = struct{}{}
	}
	return set
}

// Known reports whether id is part of the rune alphabet. Numerals are not
// part of the alphabet; see IsNumeral.
func Known(id RuneID) bool {
	_, ok := alphabet[id]
	return ok
}

// Alphabet returns the drawable letter and digraph runes, sorted.
func Alphabet() []RuneID {
	out := make([]RuneID, 0, len(alphabet))
	for id := range alphabet {
		switch id {
		case RuneNewline, RuneSpace, RuneEmpty:
			continue
		}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// drawGlyph runs the stroke program for id. It reports false when id has no
// program; the caller treats that as an empty glyph.
func drawGlyph(p *Pen, id RuneID) bool {
	switch id {
	case RuneSpace, RuneEmpty:
		// Blank cell.
	case RuneAction:
		p.Begin(0, 0)
		p.LineTo(-0.25, 0.5)
		p.LineTo(0.25, 0.5)
		p.LineTo(0, 1)
		p.Stroke()
	case RuneBonus:
		p.Begin(0, 0)
		p.LineTo(-0.2, 0.33)
		p.LineTo(0.2, 0.33)
		p.LineTo(-0.2, 0.67)
		p.LineTo(0.2, 0.67)
		p.LineTo(0, 1)
		p.Stroke()

	case "A":
		p.Begin(0, 0)
		p.Vert(1)
		p.Stroke()
	case "B":
		p.Begin(0, 0)
		p.Vert(0.65)
		p.VToBottom()
		p.Stroke()
	case "C":
		p.Begin(0.15, 0)
		p.Vert(1)
		p.FlagLeft(0.5)
		p.Stroke()
	case "D":
		p.Begin(0, 0)
		p.Vert(1)
		p.Stroke()
		p.Cross(0.5, 0.75, 0.9)
		p.Stroke()
	case "E":
		p.Begin(0, 0)
		p.Vert(0.75)
		p.Stroke()
		p.Arc(0, 0.5, 0.5, 0, math.Pi)
		p.Stroke()
	case "F":
		p.Begin(0, 0)
		p.MoveTo(0, 0.35)
		p.VToTop()
		p.Vert(0.65)
		p.Stroke()
	case "G":
		p.Begin(0, 0.5)
		p.VToBottom()
		p.VToTop()
		p.Stroke()
	case "H":
		p.Begin(0, 0.5)
		p.VToTop()
		p.TriangleDown()
		p.Stroke()
	case "I":
		p.Begin(0, 0.5)
		p.VToTop()
		p.Vert(0.5)
		p.Stroke()
		p.Cross(0, 0.75, 0.65)
		p.Stroke()
	case "J":
		p.Begin(0, 0)
		jCurves(p, 1, 0)
		p.Stroke()
	case "K":
		p.Begin(-0.15, 0)
		p.Vert(1)
		p.FlagRight(0.5)
		p.Stroke()
	case "L":
		p.Begin(-0.15, 0)
		p.Vert(1)
		p.MoveTo(-0.15, 0.5)
		p.FlagRight(0)
		p.Stroke()
	case "M":
		p.Begin(0, 0)
		p.TriangleUp()
		p.Stroke()
		p.MoveTo(0, 0.5)
		p.VToBottom()
		p.Stroke()
	case "N":
		p.Begin(0, 0)
		p.Vert(1)
		p.FlagLeft(0.5)
		p.FlagRight(0)
		p.Stroke()
	case "O":
		p.Begin(-0.15, 0)
		p.Vert(1)
		p.RelMove(0, -0.5)
		p.FlagRight(0)
		p.Stroke()
		p.Cross(0.25, 0.75, 0.75)
		p.Stroke()
	case "P":
		p.Begin(0, 0)
		p.TriangleUp()
		p.Stroke()
		p.Arc(0, 0.8, 0.5, math.Pi, 0)
		p.Stroke()
	case "Q":
		p.Begin(0, 0)
		p.Vert(1)
		p.Stroke()
		p.Cross(-0.5, 0.25, 0.9)
		p.Stroke()
	case "R":
		p.Begin(0, 0)
		p.Vert(0.5)
		p.VToBottom()
		p.Stroke()
		p.Cross(0, 0.25, 0.65)
		p.Stroke()
	case "S":
		p.Begin(-0.15, 0)
		p.Vert(1)
		p.FlagRight(0.5)
		p.Stroke()
		p.Cross(-0.25, 0.25, 0.75)
		p.Stroke()
	case "T":
		p.Begin(0, 0)
		p.Vert(1)
		p.Stroke()
		p.Cross(-0.5, 0.25, 1)
		p.Stroke()
		p.Cross(0.5, 0.75, 1)
		p.Stroke()
	case "U":
		p.Begin(0, 0)
		p.Arc(0, 0.75, 0.5, math.Pi, 0)
		p.Stroke()
		p.MoveTo(0, 0.1)
		p.Vert(0.4)
		p.Stroke()
	case "V":
		p.Begin(0, 0.25)
		p.Vert(0.75)
		p.Stroke()
		p.Arc(0, 0.5, 0.5, math.Pi, 0)
		p.Stroke()
	case "W":
		p.Begin(0, 0)
		wCurves(p, 1, 0)
		p.Stroke()
	case "X":
		p.Begin(0, 0)
		p.TriangleDown()
		p.Stroke()
		p.Arc(0, 0.2, 0.5, 0, -math.Pi)
		p.Stroke()
	case "Y":
		p.Begin(0, 0)
		p.Arc(0, 0.25, 0.5, 0, math.Pi)
		p.Stroke()
		p.MoveTo(0, 0.5)
		p.Vert(0.4)
		p.Stroke()
	case "Z":
		p.Begin(0, 0)
		p.Circle(0, 0.25, 0.25)
		p.Stroke()
		p.Circle(0, 0.75, 0.25)
		p.Stroke()

	default:
		return drawDigraph(p, id)
	}
	return true
}

// jCurves draws the J hook: an S-shaped pair of cubics from the top-left
// corner down to the bottom center and back to the top-right, squeezed to
// height h and shifted down by dy.
func jCurves(p *Pen, h, dy float64) {
	y := func(v float64) float64 { return v*h + dy }
	p.Curve(-0.5, y(0), 0, y(0.3), 1, y(0.65), 0, y(1))
	p.Curve(0, y(1), -1, y(0.65), 0, y(0.3), 0.5, y(0))
}

// wCurves is jCurves flipped vertically.
func wCurves(p *Pen, h, dy float64) {
	y := func(v float64) float64 { return v*h + dy }
	p.Curve(-0.5, y(1), 0, y(0.7), 1, y(0.35), 0, y(0))
	p.Curve(0, y(0), -1, y(0.35), 0, y(0.65), 0.5, y(1))
}
