// Package sigil lays out spell cards: eight rune slots on two concentric
// rings around a save-category mark, joined by a connective pattern that
// depends on the category.
//
// The three-slot ring holds LEVEL, C/R and CASTINGTIME; the five-slot ring
// holds DURATION, TARGET, SCHOOL, DAMAGE and RANGE. Six slots carry the
// field value written in runes, C/R carries a split arc showing
// concentration and ritual, and SCHOOL carries the school icon. The spell
// name is written beneath the sigil.
//
//	rec := sigil.Record{"NAME": "Fireball", "SAVE": "DEX", ...}
//	w, h := sigil.CardSize(600)
//	dc := gg.NewContext(w, h)
//	if err := sigil.Render(dc, rec, sigil.WithStyle(taprunes.Hex1)); err != nil {
//	    return err
//	}
//	dc.SavePNG("fireball.png")
package sigil
