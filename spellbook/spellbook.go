// Package spellbook reads spell records from CSV files.
//
// The first row names the columns; column names are matched to record
// fields case-insensitively. Rows shorter than the header simply lack the
// trailing fields, which sigil reports when the card is rendered.
package spellbook

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	taprunes "github.com/JakeDSargent/TapRunes"
	"github.com/JakeDSargent/TapRunes/sigil"
)

// ErrNoHeader is returned for an empty spellbook.
var ErrNoHeader = errors.New("spellbook: missing header row")

// Entry is one spell of a book with the CSV line it came from.
type Entry struct {
	Line   int
	Record sigil.Record
}

// Book is an ordered list of spells.
type Book struct {
	Entries []Entry
}

// Read parses a spellbook from r.
func Read(r io.Reader) (*Book, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("spellbook: header: %w", err)
	}
	fields := make([]sigil.Field, len(header))
	for i, h := range header {
		fields[i] = sigil.Field(strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))))
	}

	book := &Book{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("spellbook: %w", err)
		}
		if blank(row) {
			continue
		}
		line, _ := cr.FieldPos(0)
		rec := make(sigil.Record, len(fields))
		for i, v := range row {
			if i >= len(fields) || fields[i] == "" {
				continue
			}
			rec[fields[i]] = v
		}
		book.Entries = append(book.Entries, Entry{Line: line, Record: rec})
	}
	taprunes.Logger().Debug("spellbook: read", "spells", len(book.Entries), "columns", len(fields))
	return book, nil
}

// Load reads the spellbook at path.
func Load(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("spellbook: %w", err)
	}
	defer f.Close()
	return Read(f)
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Len returns the number of spells.
func (b *Book) Len() int { return len(b.Entries) }

// Find returns the first spell whose NAME matches name, ignoring case.
func (b *Book) Find(name string) (sigil.Record, bool) {
	for _, e := range b.Entries {
		if strings.EqualFold(e.Record.Get(sigil.FieldName), strings.TrimSpace(name)) {
			return e.Record, true
		}
	}
	return nil, false
}

// LineError is a record error located in the spellbook.
type LineError struct {
	Line int
	Name string
	Err  error
}

func (e *LineError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("spellbook: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("spellbook: line %d (%s): %v", e.Line, e.Name, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Validate parses every record and returns the spells that are valid
// together with one LineError per invalid record.
func (b *Book) Validate() ([]*sigil.Spell, []error) {
	var (
		spells []*sigil.Spell
		errs   []error
	)
	for _, e := range b.Entries {
		s, err := e.Record.Parse()
		if err != nil {
			errs = append(errs, &LineError{Line: e.Line, Name: e.Record.Get(sigil.FieldName), Err: err})
			continue
		}
		spells = append(spells, s)
	}
	return spells, errs
}
