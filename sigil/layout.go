package sigil

import (
	"math"

	"github.com/gogpu/gg"
)

const twoPi = 2 * math.Pi

// Ring angles in radians. Screen y grows downward, so 270° is straight up.
const (
	threeBase = 3 * math.Pi / 2
	threeStep = twoPi / 3
	fiveStep  = twoPi / 5
	fiveBase  = math.Pi/2 - 2*fiveStep
	eightBase = 3 * math.Pi / 2
	eightStep = twoPi / 8
)

// Ring identifies a node set of a sigil.
type Ring uint8

const (
	Center Ring = iota
	Three
	Five
)

func (r Ring) String() string {
	switch r {
	case Center:
		return "center"
	case Three:
		return "three"
	default:
		return "five"
	}
}

// ThreeRing and FiveRing list the slot fields by ring index.
var (
	ThreeRing = [3]Field{FieldLevel, FieldCR, FieldCastingTime}
	FiveRing  = [5]Field{FieldDuration, FieldTarget, FieldSchool, FieldDamage, FieldRange}
)

// equidistantOrder interleaves both rings on a single ring of eight.
var equidistantOrder = [8]Field{
	FieldLevel, FieldDuration, FieldTarget, FieldCR,
	FieldSchool, FieldCastingTime, FieldDamage, FieldRange,
}

// Anchor is the position of one slot, in units of the sigil radius with the
// sigil center at the origin.
type Anchor struct {
	Field Field
	Ring  Ring
	Index int
	Angle float64
	Point gg.Point
}

// AnchorMap holds the anchors of the eight slot fields.
type AnchorMap map[Field]Anchor

// LayoutOptions adjusts Layout.
type LayoutOptions struct {
	// Radii overrides the category's ring radii when non-zero.
	Radii Radii
	// Equidistant puts all eight slots on one ring of radius Radii.Five.
	Equidistant bool
}

// NormalizeAngle maps a into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	if a >= twoPi {
		a = 0
	}
	return a
}

// XYFromAngle returns the point at angle a on a circle of radius r around
// the origin.
func XYFromAngle(a, r float64) gg.Point {
	a = NormalizeAngle(a)
	return gg.Pt(math.Cos(a)*r, math.Sin(a)*r)
}

// Layout computes the slot anchors for category cat.
func Layout(cat Category, opts LayoutOptions) AnchorMap {
	radii := opts.Radii
	if radii == (Radii{}) {
		radii = cat.Radii()
	}

	m := make(AnchorMap, 8)
	place := func(f Field, ring Ring, index int, angle, r float64) {
		angle = NormalizeAngle(angle)
		m[f] = Anchor{Field: f, Ring: ring, Index: index, Angle: angle, Point: XYFromAngle(angle, r)}
	}

	if opts.Equidistant {
		for i, f := range equidistantOrder {
			ring, index := ringOf(f)
			place(f, ring, index, eightBase+float64(i)*eightStep, radii.Five)
		}
		return m
	}

	for i, f := range ThreeRing {
		place(f, Three, i, threeBase+float64(i)*threeStep, radii.Three)
	}
	for i, f := range FiveRing {
		place(f, Five, i, fiveBase+float64(i)*fiveStep, radii.Five)
	}
	return m
}

func ringOf(f Field) (Ring, int) {
	for i, g := range ThreeRing {
		if g == f {
			return Three, i
		}
	}
	for i, g := range FiveRing {
		if g == f {
			return Five, i
		}
	}
	return Center, 0
}

// Node returns the position of a topology node.
func (m AnchorMap) Node(n Node) gg.Point {
	switch n.Ring {
	case Three:
		return m[ThreeRing[n.Index]].Point
	case Five:
		return m[FiveRing[n.Index]].Point
	default:
		return gg.Point{}
	}
}
