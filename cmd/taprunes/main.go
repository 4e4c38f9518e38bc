// Command taprunes renders runic inscriptions and spell sigil cards.
//
// Usage:
//
//	taprunes write [flags] TEXT...
//	taprunes cards [flags] SPELLBOOK.csv
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	_ "github.com/gogpu/gg/recording/backends/raster"

	taprunes "github.com/JakeDSargent/TapRunes"
	"github.com/JakeDSargent/TapRunes/sigil"
	"github.com/JakeDSargent/TapRunes/spellbook"
)

// common holds the flags shared by every subcommand.
type common struct {
	style   string
	palette string
	out     string
	record  string
	verbose bool
}

func (c *common) register(fs *flag.FlagSet, out string) {
	fs.StringVar(&c.style, "style", "curved", "rune style: "+styleNames())
	fs.StringVar(&c.palette, "palette", "", "stroke gradient as #rrggbb#rrggbb or colour names")
	fs.StringVar(&c.out, "out", out, "output path")
	fs.StringVar(&c.record, "record", "", "draw into a recording and play it back to this backend ("+strings.Join(recording.Backends(), ", ")+")")
	fs.BoolVar(&c.verbose, "v", false, "verbose logging")
}

func (c *common) setup() taprunes.Style {
	if c.verbose {
		l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		taprunes.SetLogger(l)
		gg.SetLogger(l)
	}
	s, err := taprunes.ParseStyle(c.style)
	if err != nil {
		log.Fatalf("taprunes: %v", err)
	}
	return s
}

func styleNames() string {
	names := make([]string, 0, len(taprunes.Styles()))
	for _, s := range taprunes.Styles() {
		names = append(names, strings.ToLower(s.String()))
	}
	return strings.Join(names, ", ")
}

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "write":
		runWrite(os.Args[2:])
	case "cards":
		runCards(os.Args[2:])
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: taprunes write [flags] TEXT...")
	fmt.Fprintln(os.Stderr, "       taprunes cards [flags] SPELLBOOK.csv")
	os.Exit(2)
}

func runWrite(args []string) {
	fs := flag.NewFlagSet("write", flag.ExitOnError)
	var (
		c         common
		scale     = fs.Float64("scale", 1, "glyph scale")
		font      = fs.String("font", "", "TrueType font for a plain-text caption")
		allStyles = fs.Bool("all-styles", false, "write one image per rune style")
	)
	c.register(fs, "runes.png")
	_ = fs.Parse(args)

	style := c.setup()
	text := strings.Join(fs.Args(), " ")
	if text == "" {
		log.Fatal("taprunes: nothing to write")
	}
	if !*allStyles {
		writeImage(text, style, *scale, *font, c.palette, c.record, c.out)
		return
	}
	ext := filepath.Ext(c.out)
	base := strings.TrimSuffix(c.out, ext)
	for _, st := range taprunes.Styles() {
		writeImage(text, st, *scale, *font, c.palette, c.record, base+"-"+strings.ToLower(st.String())+ext)
	}
}

func writeImage(text string, style taprunes.Style, scale float64, font, palette, backend, out string) {
	lines := taprunes.TokenizeLines(text)
	w, h := taprunes.CanvasSize(lines, scale)
	caption := 0
	if font != "" {
		caption = int(taprunes.DefaultCellHeight * scale / 2)
	}

	pal := taprunes.ParsePalette(palette)
	draw := func(cv taprunes.Canvas) error {
		fillBackground(cv, float64(w), float64(h+caption))
		wr := taprunes.NewWriter(cv,
			taprunes.WithStyle(style),
			taprunes.WithScale(scale),
			taprunes.WithStrokeBrush(pal.Vertical(float64(h))),
		)
		for _, line := range lines {
			if err := wr.Write(line); err != nil {
				return err
			}
		}
		return nil
	}

	if backend != "" {
		if err := playback(backend, w, h+caption, out, draw); err != nil {
			log.Fatalf("taprunes: %v", err)
		}
		log.Printf("wrote %s (%dx%d)", out, w, h+caption)
		return
	}

	dc := gg.NewContext(w, h+caption)
	defer dc.Close()
	dc.SetLineCap(gg.LineCapRound)
	if err := draw(dc); err != nil {
		log.Fatalf("taprunes: %v", err)
	}
	if font != "" {
		if err := dc.LoadFontFace(font, float64(caption)*0.6); err != nil {
			log.Fatalf("taprunes: %v", err)
		}
		dc.SetRGB(0.8, 0.8, 0.8)
		dc.DrawStringAnchored(text, float64(w)/2, float64(h)+float64(caption)/2, 0.5, 0.5)
	}
	if err := dc.SavePNG(out); err != nil {
		log.Fatalf("taprunes: %v", err)
	}
	log.Printf("wrote %s (%dx%d)", out, w, h+caption)
}

func runCards(args []string) {
	fs := flag.NewFlagSet("cards", flag.ExitOnError)
	var (
		c           common
		width       = fs.Int("width", sigil.DefaultWidth, "card width in pixels")
		seed        = fs.Uint64("seed", 0, "seed for the gradient direction (0 picks one at random)")
		spell       = fs.String("spell", "", "render only the named spell")
		allStyles   = fs.Bool("all-styles", false, "render every rune style of each card")
		equidistant = fs.Bool("equidistant", false, "place all eight slots evenly on one ring")
	)
	c.register(fs, "cards")
	_ = fs.Parse(args)

	style := c.setup()
	if fs.NArg() != 1 {
		usage()
	}
	book, err := spellbook.Load(fs.Arg(0))
	if err != nil {
		log.Fatalf("taprunes: %v", err)
	}
	if *spell != "" {
		rec, ok := book.Find(*spell)
		if !ok {
			log.Fatalf("taprunes: no spell named %q", *spell)
		}
		book = &spellbook.Book{Entries: []spellbook.Entry{{Record: rec}}}
	}

	spells, errs := book.Validate()
	for _, err := range errs {
		log.Print(err)
	}
	if err := os.MkdirAll(c.out, 0o755); err != nil {
		log.Fatalf("taprunes: %v", err)
	}

	styles := []taprunes.Style{style}
	if *allStyles {
		styles = taprunes.Styles()
	}
	for i, s := range spells {
		if c.palette != "" {
			s.Palette = taprunes.ParsePalette(c.palette)
		}
		for _, st := range styles {
			name := slug(s.Name)
			if *allStyles {
				name += "-" + strings.ToLower(st.String())
			}
			path := filepath.Join(c.out, name+".png")
			opts := []sigil.Option{
				sigil.WithSize(*width),
				sigil.WithStyle(st),
				sigil.WithEquidistant(*equidistant),
			}
			opts = append(opts, sigil.WithRand(cardRand(*seed, i)))
			if err := renderCard(s, *width, path, c.record, opts); err != nil {
				log.Printf("taprunes: %s: %v", s.Name, err)
				continue
			}
			log.Printf("wrote %s", path)
		}
	}
	if len(errs) > 0 {
		os.Exit(1)
	}
}

func renderCard(s *sigil.Spell, width int, path, backend string, opts []sigil.Option) error {
	w, h := sigil.CardSize(width)
	draw := func(cv taprunes.Canvas) error { return sigil.RenderSpell(cv, s, opts...) }
	if backend != "" {
		return playback(backend, w, h, path, draw)
	}
	dc := gg.NewContext(w, h)
	defer dc.Close()
	dc.SetLineCap(gg.LineCapRound)
	if err := draw(dc); err != nil {
		return err
	}
	return dc.SavePNG(path)
}

// playback draws into a recording and replays it to the named backend.
func playback(backend string, w, h int, path string, draw func(taprunes.Canvas) error) error {
	rc := taprunes.NewRecorderCanvas(w, h)
	rc.SetLineCapGG(gg.LineCapRound)
	if err := draw(rc); err != nil {
		return err
	}
	b, err := recording.NewBackend(backend)
	if err != nil {
		return err
	}
	if err := rc.FinishRecording().Playback(b); err != nil {
		return err
	}
	fb, ok := b.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("backend %q cannot write files", backend)
	}
	return fb.SaveToFile(path)
}

func fillBackground(cv taprunes.Canvas, w, h float64) {
	cv.SetFillBrush(gg.Solid(taprunes.DefaultBackground))
	cv.MoveTo(0, 0)
	cv.LineTo(w, 0)
	cv.LineTo(w, h)
	cv.LineTo(0, h)
	cv.ClosePath()
	_ = cv.Fill()
}

func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		return "spell"
	}
	return s
}

// cardRand returns the gradient randomness of the i-th card. A zero seed
// draws from the runtime's random source, so every run differs.
func cardRand(seed uint64, i int) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	seed += uint64(i)
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
