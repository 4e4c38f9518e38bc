package taprunes

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Inscription is a tokenized line of text, ready to be written.
type Inscription []RuneID

// String joins the runes with spaces, for logs and test failures.
func (in Inscription) String() string {
	parts := make([]string, len(in))
	for i, id := range in {
		parts[i] = strconv.Quote(string(id))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Advances returns the number of cells the inscription occupies: every rune
// except the newline token moves the cursor once.
func (in Inscription) Advances() int {
	n := 0
	for _, id := range in {
		if id != RuneNewline {
			n++
		}
	}
	return n
}

var upper = cases.Upper(language.Und)

// normalize upper-cases s and strips diacritics so that accented input maps
// onto the base alphabet.
func normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		Logger().Debug("taprunes: normalize failed", "err", err)
		out = s
	}
	return upper.String(out)
}

// Tokenize splits text into runes. Letters are merged greedily left to
// right: a character joins the previous token when the pair is a known
// digraph, and tokens never backtrack, so "CKC" becomes CK, C. Digits form
// numerals of at most two digits. Characters outside the alphabet are kept
// as tokens of their own and draw nothing.
func Tokenize(text string) Inscription {
	var (
		out     Inscription
		pending bool
	)
	for _, r := range normalize(text) {
		c := string(r)
		if r >= '0' && r <= '9' {
			if pending {
				out[len(out)-1] += RuneID(c)
				pending = false
				continue
			}
			out = append(out, RuneID(c))
			pending = true
			continue
		}
		pending = false
		if n := len(out); n > 0 && !IsNumeral(out[n-1]) && Known(out[n-1]+RuneID(c)) {
			out[n-1] += RuneID(c)
			continue
		}
		out = append(out, RuneID(c))
	}
	return out
}

// TokenizeLines tokenizes text line by line. Every line that ended with a
// newline keeps the newline token at its end. Carriage returns before a
// newline are dropped.
func TokenizeLines(text string) []Inscription {
	if text == "" {
		return nil
	}
	var lines []Inscription
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		if strings.HasSuffix(line, "\r\n") {
			line = strings.TrimSuffix(line, "\r\n") + "\n"
		}
		lines = append(lines, Tokenize(line))
	}
	return lines
}

// IsNumeral reports whether id is a numeral token: one or two decimal digits.
func IsNumeral(id RuneID) bool {
	if len(id) == 0 || len(id) > 2 {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}

// NumeralValue returns the decimal value of a numeral token.
func NumeralValue(id RuneID) (int, bool) {
	if !IsNumeral(id) {
		return 0, false
	}
	v, err := strconv.Atoi(string(id))
	if err != nil {
		return 0, false
	}
	return v, true
}

// Measure returns the width in cells of the widest line and the number of
// lines.
func Measure(lines []Inscription) (cols, rows int) {
	for _, in := range lines {
		cols = max(cols, in.Advances())
	}
	return cols, len(lines)
}

// CanvasSize returns the pixel size needed to write lines at the given
// scale, with a margin of one line width on every side.
func CanvasSize(lines []Inscription, scale float64) (width, height int) {
	cur := NewCursor(scale)
	cols, rows := Measure(lines)
	w := float64(cols)*cur.AdvanceWidth() + 2*cur.LineWidth
	h := float64(rows)*cur.LineHeight() + 2*cur.LineWidth
	return int(w + 0.5), int(h + 0.5)
}
