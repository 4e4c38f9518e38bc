package taprunes

import "github.com/gogpu/gg"

// Option configures a Writer during creation.
//
// Example:
//
//	w := taprunes.NewWriter(dc,
//	    taprunes.WithStyle(taprunes.Hex2),
//	    taprunes.WithScale(0.5),
//	)
type Option func(*writerOptions)

type writerOptions struct {
	style     Style
	scale     float64
	brush     gg.Brush
	origin    gg.Point
	hasOrigin bool
}

func defaultWriterOptions() writerOptions {
	return writerOptions{style: Curved, scale: 1}
}

// WithStyle sets the arc style. The default is Curved.
func WithStyle(s Style) Option {
	return func(o *writerOptions) {
		o.style = s
	}
}

// WithScale sets the cell scale. Non-positive values are ignored.
func WithScale(scale float64) Option {
	return func(o *writerOptions) {
		if scale > 0 {
			o.scale = scale
		}
	}
}

// WithStrokeBrush sets the brush installed on the canvas before writing.
// Without it the canvas keeps whatever stroke brush it already has.
func WithStrokeBrush(b gg.Brush) Option {
	return func(o *writerOptions) {
		o.brush = b
	}
}

// WithOrigin places the first cell's anchor at (x, y) instead of the top-left
// corner of the canvas. x is the horizontal center of the cell, y its top.
func WithOrigin(x, y float64) Option {
	return func(o *writerOptions) {
		o.origin = gg.Pt(x, y)
		o.hasOrigin = true
	}
}
