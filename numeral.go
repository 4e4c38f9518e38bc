package taprunes

import "fmt"

// MaxNumeral is the largest value a numeral rune can encode.
const MaxNumeral = 6*6*6 - 1

// numeralStep is the vertical offset between the stacked digits of a
// numeral, as a fraction of the cell height.
const numeralStep = 0.35

// Numeral is a value split into three base-6 digits, drawn top to bottom.
type Numeral struct {
	High, Mid, Low int
}

// EncodeNumeral splits v into base-6 digits.
func EncodeNumeral(v int) (Numeral, error) {
	if v < 0 || v > MaxNumeral {
		return Numeral{}, fmt.Errorf("%w: %d", ErrNumeralRange, v)
	}
	return Numeral{High: v / 36, Mid: v % 36 / 6, Low: v % 6}, nil
}

// Value recomposes the encoded value.
func (n Numeral) Value() int {
	return n.High*36 + n.Mid*6 + n.Low
}

// Digits returns High, Mid and Low in drawing order.
func (n Numeral) Digits() [3]int {
	return [3]int{n.High, n.Mid, n.Low}
}

// drawNumeralDigit draws one base-6 digit in the top third of the cell.
func drawNumeralDigit(p *Pen, d int) bool {
	switch d {
	case 0:
		p.Begin(-0.5, 0.05)
		p.Vert(0.2)
		p.MoveTo(0.5, 0.05)
		p.Vert(0.2)
		p.Stroke()
	case 1:
		p.Begin(-0.5, 0.05)
		p.Vert(0.2)
		p.MoveTo(0.5, 0.05)
		p.Vert(0.2)
		p.Cross(0, 0.15, 1)
		p.Stroke()
	case 2:
		p.Begin(0, 0)
		p.LineTo(-0.5, 0.3)
		p.MoveTo(0, 0)
		p.LineTo(0.5, 0.3)
		p.Stroke()
	case 3:
		p.Begin(0, 0)
		p.LineTo(-0.5, 0.3)
		p.MoveTo(0, 0)
		p.LineTo(0.5, 0.3)
		p.Cross(0, 0.3, 1)
		p.Stroke()
	case 4:
		p.Begin(0, 0)
		p.Vert(0.3)
		p.Cross(0, 0.15, 0.4)
		p.Stroke()
	case 5:
		p.Begin(0, 0)
		p.Circle(0, 0.15, 0.15)
		p.Stroke()
	default:
		return false
	}
	return true
}
