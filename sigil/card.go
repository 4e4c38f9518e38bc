package sigil

import (
	"strings"

	"github.com/gogpu/gg"

	taprunes "github.com/JakeDSargent/TapRunes"
)

// Slot radii and icon sizes, in units of the sigil radius.
const (
	largeSlot    = 0.14
	smallSlot    = 0.11
	componentMul = 1.25
	saveIconSize = 0.12
	splitArcMul  = 0.6
	schoolMul    = 0.65
	slotTextMul  = 1.5
)

// Geometry is the pixel layout of a card.
type Geometry struct {
	Width, Height float64
	Center        gg.Point
	Radius        float64 // sigil radius
	LineWidth     float64

	// NameTop and NameHeight bound the band holding the spell name.
	NameTop, NameHeight float64
}

// NewGeometry lays out a card of the given width.
func NewGeometry(width float64) Geometry {
	r := 0.36 * width
	cy := 0.48 * width
	top := cy + r*(1+largeSlot) + 0.04*width
	height := width * 5 / 4
	return Geometry{
		Width:      width,
		Height:     height,
		Center:     gg.Pt(width/2, cy),
		Radius:     r,
		LineWidth:  width / 150,
		NameTop:    top,
		NameHeight: height - top - 0.04*width,
	}
}

// Matrix maps sigil units (radius 1, centered at the origin) to pixels.
func (g Geometry) Matrix() gg.Matrix {
	return gg.Translate(g.Center.X, g.Center.Y).Multiply(gg.Scale(g.Radius, g.Radius))
}

// Render validates rec and draws its card on c. A record that fails
// validation is reported before anything is drawn.
func Render(c taprunes.Canvas, rec Record, opts ...Option) error {
	s, err := rec.Parse()
	if err != nil {
		return err
	}
	return RenderSpell(c, s, opts...)
}

// RenderSpell draws the card of s on c and returns the first canvas error.
func RenderSpell(c taprunes.Canvas, s *Spell, opts ...Option) error {
	k := newCard(c, s, opts...)

	k.drawBackground()
	k.c.SetStrokeBrush(k.brush)
	k.c.SetLineWidth(k.g.LineWidth)

	k.drawConnectives()
	k.drawOverlays()
	k.drawComponents()
	k.drawSlots()
	k.drawSaveIcon()
	k.drawValues()
	k.drawSplitArc()
	k.drawSchoolIcon()
	k.drawName()

	if k.err == nil {
		taprunes.Logger().Info("sigil: rendered card", "name", s.Name, "save", s.Save, "school", s.School)
	}
	return k.err
}

type card struct {
	c       taprunes.Canvas
	o       options
	g       Geometry
	m       gg.Matrix
	spell   *Spell
	anchors AnchorMap
	radii   Radii
	brush   gg.Brush
	err     error
}

func newCard(c taprunes.Canvas, s *Spell, opts ...Option) *card {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g := NewGeometry(o.width)
	radii := s.Save.Radii()
	k := &card{
		c:       c,
		o:       o,
		g:       g,
		m:       g.Matrix(),
		spell:   s,
		anchors: Layout(s.Save, LayoutOptions{Radii: radii, Equidistant: o.equidistant}),
		radii:   radii,
	}
	k.brush = k.gradient()
	return k
}

func (k *card) gradient() gg.Brush {
	w, h := k.g.Width, k.g.Height
	x0, y0, x1, y1 := 0.0, 0.0, 0.0, h
	if k.o.rng != nil {
		switch k.o.rng.IntN(4) {
		case 1:
			x1, y1 = w, 0
		case 2:
			x1, y1 = w, h
		case 3:
			x0, x1 = w, 0
		}
	}
	return k.spell.Palette.Gradient(x0, y0, x1, y1)
}

func (k *card) setErr(err error) {
	if err != nil && k.err == nil {
		k.err = err
	}
}

// local maps unit icon coordinates onto a circle of radius r (sigil units)
// around pt.
func (k *card) local(pt gg.Point, r float64) gg.Matrix {
	return k.m.Multiply(gg.Translate(pt.X, pt.Y)).Multiply(gg.Scale(r, r))
}

func (k *card) stroke(p *gg.Path, m gg.Matrix) {
	if p == nil || len(p.Elements()) == 0 {
		return
	}
	taprunes.AppendPath(k.c, p, m)
	k.setErr(k.c.Stroke())
}

func (k *card) fill(p *gg.Path, m gg.Matrix) {
	if p == nil || len(p.Elements()) == 0 {
		return
	}
	taprunes.AppendPath(k.c, p, m)
	k.setErr(k.c.Fill())
}

func (k *card) unitCircle() *gg.Path {
	p := gg.NewPath()
	circle(p, k.o.style, 0, 0, 1)
	return p
}

func (k *card) slotRadius(a Anchor) float64 {
	if a.Ring == Three {
		return largeSlot
	}
	return smallSlot
}

func (k *card) drawBackground() {
	p := gg.NewPath()
	p.Rectangle(0, 0, k.g.Width, k.g.Height)
	k.c.SetFillBrush(gg.Solid(k.o.background))
	k.fill(p, gg.Identity())
}

// drawConnectives strokes every edge and ring of the category topology, one
// stroke each.
func (k *card) drawConnectives() {
	topo := k.spell.Save.Topology()
	for _, e := range topo.Edges {
		p := gg.NewPath()
		a, b := k.anchors.Node(e.From), k.anchors.Node(e.To)
		line(p, a.X, a.Y, b.X, b.Y)
		k.stroke(p, k.m)
	}
	drawn := make(map[float64]bool, len(topo.Rings))
	for _, r := range topo.Rings {
		radius := k.ringRadius(r)
		if drawn[radius] {
			continue
		}
		drawn[radius] = true
		k.stroke(k.unitCircle(), k.local(gg.Point{}, radius))
	}
}

// ringRadius returns the radius the slots of r sit on. In equidistant mode
// every slot is on the outer ring.
func (k *card) ringRadius(r Ring) float64 {
	if r == Three && !k.o.equidistant {
		return k.radii.Three
	}
	return k.radii.Five
}

func (k *card) drawOverlays() {
	if shape := k.spell.TargetShape; shape != "" {
		if p := TargetOverlay(shape, k.o.style); p != nil {
			a := k.anchors[FieldTarget]
			k.stroke(p, k.local(a.Point, k.slotRadius(a)))
		} else {
			taprunes.Logger().Warn("sigil: unknown target shape", "shape", shape, "name", k.spell.Name)
		}
	}
	if die := k.spell.DamageDice; die != "" {
		if p := DiceOverlay(die); p != nil {
			a := k.anchors[FieldDamage]
			k.stroke(p, k.local(a.Point, k.slotRadius(a)))
		} else {
			taprunes.Logger().Warn("sigil: unknown damage dice", "dice", die, "name", k.spell.Name)
		}
	}
}

// drawComponents rings the LEVEL, C/R and CASTINGTIME slots for verbal,
// somatic and material components.
func (k *card) drawComponents() {
	for _, c := range []struct {
		on    bool
		field Field
	}{
		{k.spell.Verbal, FieldLevel},
		{k.spell.Somatic, FieldCR},
		{k.spell.Material, FieldCastingTime},
	} {
		if !c.on {
			continue
		}
		a := k.anchors[c.field]
		k.stroke(k.unitCircle(), k.local(a.Point, k.slotRadius(a)*componentMul))
	}
}

// drawSlots stamps a marker at every anchor: filled with the background so
// connectives stop at its rim, then outlined.
func (k *card) drawSlots() {
	k.c.SetFillBrush(gg.Solid(k.o.background))
	for _, f := range slotOrder() {
		a := k.anchors[f]
		m := k.local(a.Point, k.slotRadius(a))
		k.fill(k.unitCircle(), m)
		k.stroke(k.unitCircle(), m)
	}
}

func slotOrder() []Field {
	out := make([]Field, 0, 8)
	out = append(out, ThreeRing[:]...)
	return append(out, FiveRing[:]...)
}

func (k *card) drawSaveIcon() {
	k.stroke(SaveIcon(k.spell.Save, k.o.style), k.local(gg.Point{}, saveIconSize))
}

// textFields are the slots that hold an inscribed value.
var textFields = []Field{FieldLevel, FieldRange, FieldDamage, FieldCastingTime, FieldDuration, FieldTarget}

func (k *card) drawValues() {
	for _, f := range textFields {
		v := k.spell.Value(f)
		if v == "" {
			continue
		}
		a := k.anchors[f]
		px := k.m.TransformPoint(a.Point)
		box := k.slotRadius(a) * k.g.Radius * slotTextMul
		k.write(v, px, box, box, 1)
	}
	k.c.SetLineWidth(k.g.LineWidth)
}

// write draws text on one line centered on pt, shrunk to fit a w×h box.
// Line breaks inside text are written as spaces.
func (k *card) write(text string, pt gg.Point, w, h, limit float64) {
	text = strings.Join(strings.Fields(text), " ")
	in := taprunes.Tokenize(text)
	cols := in.Advances()
	if cols == 0 {
		return
	}
	scale := taprunes.Fit(text, w, h, limit)
	cur := taprunes.NewCursor(scale)
	width := float64(cols)*cur.AdvanceWidth() - cur.XPad
	x := pt.X - width/2 + cur.ScaledWidth()/2
	y := pt.Y - cur.ScaledHeight()/2

	wr := taprunes.NewWriter(k.c,
		taprunes.WithStyle(k.o.style),
		taprunes.WithScale(scale),
		taprunes.WithOrigin(x, y),
	)
	k.setErr(wr.Write(in))
}

func (k *card) drawSplitArc() {
	a := k.anchors[FieldCR]
	m := k.local(a.Point, k.slotRadius(a)*splitArcMul)
	left, right := SplitArc(k.o.style)

	k.c.SetFillBrush(k.brush)
	for _, half := range []struct {
		path *gg.Path
		on   bool
	}{
		{left, k.spell.Concentration},
		{right, k.spell.Ritual},
	} {
		if half.on {
			k.fill(half.path, m)
		}
		k.stroke(half.path, m)
	}
}

func (k *card) drawSchoolIcon() {
	a := k.anchors[FieldSchool]
	k.stroke(SchoolIcon(k.spell.School, k.o.style), k.local(a.Point, k.slotRadius(a)*schoolMul))
}

func (k *card) drawName() {
	name := strings.TrimSpace(k.spell.Name)
	if name == "" {
		return
	}
	pt := gg.Pt(k.g.Width/2, k.g.NameTop+k.g.NameHeight/2)
	k.write(name, pt, k.g.Width*0.9, k.g.NameHeight, 0.6)
	k.c.SetLineWidth(k.g.LineWidth)
}
