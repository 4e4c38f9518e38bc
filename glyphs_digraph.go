package taprunes

import "math"

// drawDigraph runs the stroke program of a two-letter rune.
func drawDigraph(p *Pen, id RuneID) bool {
	switch id {
	case "AA":
		p.Begin(-0.2, 0)
		p.Vert(1)
		p.Stroke()
		p.MoveTo(0.2, 0)
		p.Vert(1)
		p.Stroke()
	case "BB":
		p.Begin(-0.15, 0)
		p.Vert(0.65)
		p.LineTo(-0.5, 1)
		p.Stroke()
		p.MoveTo(0.15, 0)
		p.Vert(0.65)
		p.LineTo(0.5, 1)
		p.Stroke()
	case "CC":
		p.Begin(0.4, 0)
		p.Vert(1)
		p.Flag(0.5, -0.1)
		p.Stroke()
		p.MoveTo(0, 0.5)
		p.Flag(1, -0.5)
		p.Stroke()
	case "CK":
		p.Begin(0, 0)
		p.Vert(1)
		p.Flag(0.5, -0.5)
		p.Flag(1, 0.5)
		p.Stroke()
	case "KC":
		p.Begin(0, 0)
		p.Vert(1)
		p.MoveTo(-0.5, 0.5)
		p.Flag(1, 0)
		p.Stroke()
		p.MoveTo(0.5, 0.5)
		p.Flag(1, 0)
		p.Stroke()
	case "DD":
		p.Begin(0, 0)
		p.Vert(1)
		p.Stroke()
		p.Cross(0.5, 0.85, 0.9)
		p.Stroke()
		p.Cross(0.5, 0.6, 0.9)
		p.Stroke()
	case "EE":
		p.Begin(0, 0)
		p.Vert(0.75)
		p.Stroke()
		p.Circle(0, 0.675, 0.325)
		p.Stroke()
	case "FF":
		p.Begin(-0.5, 0)
		p.LineTo(-0.15, 0.35)
		p.Vert(0.65)
		p.Stroke()
		p.MoveTo(0.5, 0)
		p.LineTo(0.15, 0.35)
		p.Vert(0.65)
		p.Stroke()
	case "GG":
		p.Begin(0, 0.5)
		p.VToBottom()
		p.VToTop()
		p.Stroke()
		p.MoveTo(0, 0)
		p.Vert(1)
		p.Stroke()
	case "HH":
		p.Begin(0, 0.5)
		p.VToTop()
		p.TriangleDown()
		p.Stroke()
		p.MoveTo(0, 0)
		p.Vert(1)
		p.Stroke()
	case "II":
		p.Begin(0, 0.5)
		p.VToTop()
		p.Vert(0.5)
		p.Stroke()
		p.Cross(0, 0.65, 0.65)
		p.Stroke()
		p.Cross(0, 0.85, 0.65)
		p.Stroke()
	case "JJ":
		p.Begin(0, 0)
		jCurves(p, 1, 0)
		p.Stroke()
		p.Circle(0, 0.65, 0.175)
		p.Stroke()
	case "KK":
		p.Begin(-0.4, 0)
		p.Vert(1)
		p.Flag(0.5, 0.1)
		p.Stroke()
		p.MoveTo(0, 0.5)
		p.Flag(1, 0.5)
		p.Stroke()
	case "LL":
		p.Begin(-0.4, 0)
		p.Vert(1)
		p.MoveTo(-0.4, 0.5)
		p.Flag(0, 0.1)
		p.Stroke()
		p.MoveTo(0, 0.5)
		p.Flag(0, 0.5)
		p.Stroke()
	case "MM":
		p.Begin(0, 0)
		p.TriangleUp()
		p.Stroke()
		p.MoveTo(0, 0.5)
		p.VToBottom()
		p.Stroke()
		p.MoveTo(0, 0)
		p.Vert(1)
		p.Stroke()
	case "NN":
		p.Begin(0, 0)
		p.Vert(1)
		p.FlagLeft(0.5)
		p.FlagRight(0)
		p.MoveTo(0, 1)
		p.FlagRight(0.5)
		p.FlagLeft(0)
		p.Stroke()
	case "OO":
		p.Begin(-0.15, 0)
		p.Vert(1)
		p.RelMove(0, -0.5)
		p.FlagRight(0)
		p.Stroke()
		p.Cross(0.25, 0.7, 0.75)
		p.Stroke()
		p.Cross(0.25, 0.9, 0.75)
		p.Stroke()
	case "PP":
		p.Begin(0, 0)
		p.TriangleUp()
		p.Stroke()
		p.Arc(0, 0.6, 0.35, -2*math.Pi, 0)
		p.Stroke()
	case "QQ":
		p.Begin(0, 0)
		p.Vert(1)
		p.Stroke()
		p.Cross(-0.5, 0.15, 0.9)
		p.Stroke()
		p.Cross(-0.5, 0.4, 0.9)
		p.Stroke()
	case "RR":
		p.Begin(0, 0)
		p.Vert(0.5)
		p.VToBottom()
		p.Stroke()
		p.Cross(0, 0.15, 0.65)
		p.Stroke()
		p.Cross(0, 0.35, 0.65)
		p.Stroke()
	case "SS":
		p.Begin(-0.15, 0)
		p.Vert(1)
		p.FlagRight(0.5)
		p.Stroke()
		p.Cross(-0.25, 0.15, 0.75)
		p.Stroke()
		p.Cross(-0.25, 0.35, 0.75)
		p.Stroke()
	case "TT":
		p.Begin(-0.1, 0)
		p.Vert(1)
		p.Stroke()
		p.MoveTo(0.2, 0)
		p.Vert(1)
		p.Stroke()
		p.Cross(-0.5, 0.25, 1)
		p.Stroke()
		p.Cross(0.5, 0.75, 1)
		p.Stroke()
	case "UU":
		p.Begin(0, 0)
		p.Arc(0, 0.75, 0.5, math.Pi, 0)
		p.Stroke()
		p.MoveTo(-0.15, 0.1)
		p.Vert(0.4)
		p.Stroke()
		p.MoveTo(0.15, 0.1)
		p.Vert(0.4)
		p.Stroke()
	case "VV":
		p.Begin(0, 0.25)
		p.Vert(0.75)
		p.Stroke()
		p.Circle(0, 0.325, 0.325)
		p.Stroke()
	case "WW":
		p.Begin(0, 0)
		wCurves(p, 1, 0)
		p.Stroke()
		p.Circle(0, 0.35, 0.175)
		p.Stroke()
	case "XX":
		p.Begin(0, 0.5)
		p.TriangleDown()
		p.Stroke()
		p.Arc(0, 0.4, 0.35, -2*math.Pi, 0)
		p.Stroke()
	case "YY":
		p.Begin(0, 0)
		p.Arc(0, 0.25, 0.5, 0, math.Pi)
		p.Stroke()
		p.MoveTo(-0.15, 0.5)
		p.Vert(0.4)
		p.Stroke()
		p.MoveTo(0.15, 0.5)
		p.Vert(0.4)
		p.Stroke()
	case "ZZ":
		p.Begin(0, 0)
		for _, c := range [][2]float64{{0, 0.25}, {0, 0.75}, {-0.25, 0.5}, {0.25, 0.5}} {
			p.Circle(c[0], c[1], 0.25)
			p.Stroke()
		}

	case "BF":
		p.Begin(0, 0)
		p.Vert(0.25)
		p.FlagLeft(0.75)
		p.FlagRight(0.25)
		p.Stroke()
		p.MoveTo(0, 0.75)
		p.Vert(0.25)
		p.Stroke()
	case "CL":
		p.Begin(0.2, 0)
		p.Vert(1)
		p.Stroke()
		p.MoveTo(0.2, 0.75)
		p.Flag(0.25, -0.4)
		p.Stroke()
	case "DQ":
		p.Begin(0, 0)
		p.Vert(1)
		p.Stroke()
		p.Cross(0, 0.5, 0.75)
		p.Stroke()
	case "EV":
		p.Begin(0, 0)
		p.Vert(1)
		p.Stroke()
		p.Arc(0, 0.2, 0.3, 0, math.Pi)
		p.Stroke()
		p.Arc(0, 0.8, 0.3, -math.Pi, 0)
		p.Stroke()
	case "FB":
		p.Begin(0, 0.4)
		p.VToTop()
		p.Vert(0.2)
		p.VToBottom()
		p.Stroke()
	case "HM":
		p.Begin(0, 0.25)
		p.VToTop()
		p.FlagRight(0.75)
		p.FlagLeft(0.25)
		p.Stroke()
		p.MoveTo(0, 0.75)
		p.VToBottom()
		p.Stroke()
		p.Cross(0, 0.5, 1)
		p.Stroke()
	case "IR":
		p.Begin(0, 0.4)
		p.VToTop()
		p.Vert(0.2)
		p.VToBottom()
		p.Stroke()
		p.Cross(0, 0.5, 0.6)
		p.Stroke()
	case "JW":
		p.Begin(-0.5, 0)
		jCurves(p, 0.75, 0)
		p.Stroke()
		wCurves(p, 0.75, 0.25)
		p.Stroke()
	case "KL":
		p.Begin(-0.2, 0)
		p.Vert(1)
		p.Stroke()
		p.MoveTo(-0.2, 0.75)
		p.Flag(0.25, 0.4)
		p.Stroke()
	case "LC":
		p.Begin(0.2, 0)
		p.Vert(1)
		p.Flag(0.65, -0.3)
		p.MoveTo(0.2, 0.35)
		p.Flag(0, -0.3)
		p.Stroke()
	case "LK":
		p.Begin(-0.2, 0)
		p.Vert(1)
		p.Flag(0.65, 0.3)
		p.MoveTo(-0.2, 0.35)
		p.Flag(0, 0.3)
		p.Stroke()
	case "MH":
		p.Begin(0, 0.25)
		p.VToTop()
		p.FlagRight(0.75)
		p.FlagLeft(0.25)
		p.Stroke()
		p.MoveTo(0, 0.75)
		p.VToBottom()
		p.Stroke()
		p.Cross(0, 0, 1)
		p.Stroke()
		p.Cross(0, 1, 1)
		p.Stroke()
	case "OS":
		p.Begin(-0.1, 0)
		p.Vert(1)
		p.Flag(0.65, 0.3)
		p.MoveTo(-0.1, 0.35)
		p.Flag(0, 0.3)
		p.Stroke()
		p.Cross(0, 0.5, 0.75)
		p.Stroke()
	case "PX":
		p.Begin(0, 0.5)
		p.TriangleUp()
		p.TriangleDown()
		p.Stroke()
		p.Circle(0, 0.5, 0.35)
		p.Stroke()
	case "QD":
		p.Begin(0, 0)
		p.Vert(1)
		p.Stroke()
		p.Cross(0, 0.25, 0.6)
		p.Stroke()
		p.Cross(0, 0.75, 0.6)
		p.Stroke()
	case "RI":
		p.Begin(0, 0)
		p.Vert(0.25)
		p.FlagLeft(0.75)
		p.FlagRight(0.25)
		p.Stroke()
		p.MoveTo(0, 0.75)
		p.Vert(0.25)
		p.Stroke()
		p.Cross(0, 0.125, 0.6)
		p.Stroke()
		p.Cross(0, 0.875, 0.6)
		p.Stroke()
	case "SO":
		p.Begin(-0.05, 0)
		p.Vert(1)
		p.Stroke()
		p.MoveTo(-0.05, 0.75)
		p.Flag(0.25, 0.4)
		p.Stroke()
		p.Cross(-0.25, 0.125, 0.6)
		p.Stroke()
		p.Cross(0.25, 0.875, 0.6)
		p.Stroke()
	case "UY":
		p.Begin(0, 0)
		p.Vert(0.3)
		p.Stroke()
		p.MoveTo(0, 0.7)
		p.Vert(0.3)
		p.Circle(0, 0.5, 0.325)
		p.Stroke()
	case "VE":
		p.Begin(0, 0.25)
		p.Vert(0.5)
		p.Stroke()
		p.Arc(0, 0.25, 0.25, math.Pi, 2*math.Pi)
		p.Arc(0, 0.75, 0.25, 0, math.Pi)
		p.Stroke()
	case "WJ":
		p.Begin(-0.5, 0.5)
		wCurves(p, 0.5, 0)
		p.Stroke()
		p.Begin(0, 0)
		jCurves(p, 0.5, 0.5)
		p.Stroke()
	case "XP":
		p.Begin(0, 0.25)
		p.FlagLeft(0.75)
		p.FlagRight(0.25)
		p.Cross(0, 0.5, 1)
		p.Stroke()
		p.Arc(0, 0, 0.4, 0, math.Pi)
		p.Stroke()
		p.Arc(0, 1, 0.4, math.Pi, 2*math.Pi)
		p.Stroke()
	case "YU":
		p.Begin(0, 0.2)
		p.Vert(0.6)
		p.Arc(0, 0, 0.4, 0, math.Pi)
		p.Stroke()
		p.Arc(0, 1, 0.4, math.Pi, 2*math.Pi)
		p.Stroke()
	default:
		return false
	}
	return true
}
