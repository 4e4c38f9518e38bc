package taprunes

import (
	"fmt"
	"strings"
)

// Style selects how every arc in a render pass is realized: as a true arc
// or as one of six polygonal approximations.
type Style uint8

const (
	// Curved renders arcs as true (elliptical) arcs and curves as cubics.
	Curved Style = iota
	Diamond
	Square
	Hex1
	Hex2
	Chamfer
	Octagon

	numStyles
)

var styleNames = [...]string{
	Curved:  "curved",
	Diamond: "diamond",
	Square:  "square",
	Hex1:    "hex1",
	Hex2:    "hex2",
	Chamfer: "chamfer",
	Octagon: "octagon",
}

// String returns the lower-case style name.
func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return fmt.Sprintf("Style(%d)", s)
}

// Polygonal reports whether the style approximates arcs with straight lines.
func (s Style) Polygonal() bool {
	return s != Curved
}

// Styles returns all styles in declaration order.
func Styles() []Style {
	out := make([]Style, numStyles)
	for i := range out {
		out[i] = Style(i)
	}
	return out
}

// ParseStyle returns the style with the given name (case-insensitive).
// "octogon" is accepted as an alias of octagon.
func ParseStyle(name string) (Style, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "octogon" {
		return Octagon, nil
	}
	for i, s := range styleNames {
		if s == n {
			return Style(i), nil
		}
	}
	return Curved, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}
