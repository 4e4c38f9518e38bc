// Package taprunes draws runic inscriptions with stroke programs on a 2D
// vector canvas.
//
// # Overview
//
// Text is tokenized into runes: letters, two-letter digraphs, numerals and a
// few marks. Each rune is a small program of pen moves drawn inside a cell;
// a typewriter cursor places the cells left to right and top to bottom.
//
//	dc := gg.NewContext(640, 120)
//	w := taprunes.NewWriter(dc,
//	    taprunes.WithStyle(taprunes.Hex2),
//	    taprunes.WithStrokeBrush(taprunes.DefaultPalette.Vertical(120)),
//	)
//	if err := w.WriteString("fireball 3"); err != nil {
//	    log.Fatal(err)
//	}
//	dc.SavePNG("fireball.png")
//
// # Cells
//
// Glyph programs use unit coordinates: x runs from -0.5 to 0.5 with 0 at the
// horizontal center of the cell, y from 0 at the top to 1 at the bottom. The
// cursor maps these to canvas units (see Cursor.Map).
//
// # Styles
//
// Every arc a program draws goes through ResolveArc. The Curved style keeps
// true arcs and cubic curves; the other styles replace arcs with polygon
// outlines and curves with polylines, giving the same text a carved look.
//
// # Numerals
//
// One or two digits form a numeral rune. Its value is drawn as three base-6
// digits stacked in a single cell, so values up to MaxNumeral fit.
//
// # Canvas
//
// Drawing goes through the Canvas interface, which *gg.Context implements.
// RecorderCanvas records the commands instead, for inspection or playback to
// another gg recording backend.
package taprunes
