package sigil

import (
	"math/rand/v2"

	"github.com/gogpu/gg"

	taprunes "github.com/JakeDSargent/TapRunes"
)

// DefaultWidth is the card width used when WithSize is not given.
const DefaultWidth = 600

// Option configures a card render.
type Option func(*options)

type options struct {
	width       float64
	style       taprunes.Style
	rng         *rand.Rand
	equidistant bool
	background  gg.RGBA
}

func defaultOptions() options {
	return options{
		width:      DefaultWidth,
		style:      taprunes.Curved,
		background: taprunes.DefaultBackground,
	}
}

// WithSize sets the card width in pixels. The height follows from it; see
// CardSize.
func WithSize(width int) Option {
	return func(o *options) {
		if width > 0 {
			o.width = float64(width)
		}
	}
}

// WithStyle sets the arc style for runes, rings and icons.
func WithStyle(s taprunes.Style) Option {
	return func(o *options) {
		o.style = s
	}
}

// WithRand supplies the randomness used to orient the colour gradient.
// Without it the gradient always runs top to bottom. Geometry never depends
// on it.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithEquidistant places all eight slots on a single ring.
func WithEquidistant(on bool) Option {
	return func(o *options) {
		o.equidistant = on
	}
}

// WithBackground sets the card background colour.
func WithBackground(c gg.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// CardSize returns the pixel size of a card of the given width.
func CardSize(width int) (w, h int) {
	return width, width * 5 / 4
}
