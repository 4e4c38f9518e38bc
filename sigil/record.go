package sigil

import (
	"errors"
	"fmt"
	"strings"

	taprunes "github.com/JakeDSargent/TapRunes"
)

// Field names a column of a spell record.
type Field string

// Record fields.
const (
	FieldName        Field = "NAME"
	FieldSave        Field = "SAVE"
	FieldLevel       Field = "LEVEL"
	FieldRange       Field = "RANGE"
	FieldDamage      Field = "DAMAGE"
	FieldCastingTime Field = "CASTINGTIME"
	FieldDuration    Field = "DURATION"
	FieldTarget      Field = "TARGET"
	FieldSchool      Field = "SCHOOL"
	FieldComponents  Field = "COMPONENTS"
	FieldCR          Field = "C/R"

	FieldPalette     Field = "PALETTE"
	FieldTargetShape Field = "TARGETSHAPE"
	FieldDamageDice  Field = "DAMAGEDICE"
)

// RequiredFields lists the fields every record must carry, in the order
// they are checked.
var RequiredFields = []Field{
	FieldName, FieldSave, FieldLevel, FieldRange, FieldDamage, FieldCastingTime,
	FieldDuration, FieldTarget, FieldSchool, FieldComponents, FieldCR,
}

var (
	// ErrMissingField is reported when a required field is absent.
	ErrMissingField = errors.New("sigil: missing field")

	// ErrUnknownSave is reported for a SAVE value outside the categories.
	ErrUnknownSave = errors.New("sigil: unknown save")

	// ErrUnknownSchool is reported for a SCHOOL value outside the schools.
	ErrUnknownSchool = errors.New("sigil: unknown school")
)

// FieldError ties a record error to the field that caused it.
type FieldError struct {
	Field Field
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%v: %s", e.Err, e.Field)
	}
	return fmt.Sprintf("%v: %s=%q", e.Err, e.Field, e.Value)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Record is a spell as read from a spellbook: field name to raw value.
type Record map[Field]string

// Lookup returns the trimmed value of f and whether it is present.
func (r Record) Lookup(f Field) (string, bool) {
	v, ok := r[f]
	return strings.TrimSpace(v), ok
}

// Get returns the trimmed value of f, or "" when absent.
func (r Record) Get(f Field) string {
	v, _ := r.Lookup(f)
	return v
}

// Validate reports the first missing required field.
func (r Record) Validate() error {
	for _, f := range RequiredFields {
		if _, ok := r[f]; !ok {
			return &FieldError{Field: f, Err: ErrMissingField}
		}
	}
	return nil
}

// Spell is a validated record with its fields decoded.
type Spell struct {
	Name   string
	Save   Category
	School School

	// Inscribed values, upper-cased.
	Level, Range, Damage, CastingTime, Duration, Target string

	Concentration, Ritual      bool
	Verbal, Somatic, Material bool

	Palette     taprunes.Palette
	TargetShape string
	DamageDice  string
}

// Parse validates r and decodes it. Nothing about the record is drawn
// until Parse succeeds.
func (r Record) Parse() (*Spell, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	upper := func(f Field) string { return strings.ToUpper(r.Get(f)) }

	save, err := ParseCategory(upper(FieldSave))
	if err != nil {
		return nil, &FieldError{Field: FieldSave, Value: r.Get(FieldSave), Err: err}
	}
	school, err := ParseSchool(upper(FieldSchool))
	if err != nil {
		return nil, &FieldError{Field: FieldSchool, Value: r.Get(FieldSchool), Err: err}
	}

	cr := upper(FieldCR)
	comp := upper(FieldComponents)
	s := &Spell{
		Name:          upper(FieldName),
		Save:          save,
		School:        school,
		Level:         upper(FieldLevel),
		Range:         upper(FieldRange),
		Damage:        upper(FieldDamage),
		CastingTime:   upper(FieldCastingTime),
		Duration:      upper(FieldDuration),
		Target:        upper(FieldTarget),
		Concentration: strings.Contains(cr, "C"),
		Ritual:        strings.Contains(cr, "R"),
		Verbal:        strings.Contains(comp, "V"),
		Somatic:       strings.Contains(comp, "S"),
		Material:      strings.Contains(comp, "M"),
		Palette:       taprunes.DefaultPalette,
		TargetShape:   upper(FieldTargetShape),
		DamageDice:    upper(FieldDamageDice),
	}
	if p := r.Get(FieldPalette); p != "" {
		s.Palette = taprunes.ParsePalette(p)
	}
	return s, nil
}

// Value returns the inscribed value for one of the six text slots.
func (s *Spell) Value(f Field) string {
	switch f {
	case FieldLevel:
		return s.Level
	case FieldRange:
		return s.Range
	case FieldDamage:
		return s.Damage
	case FieldCastingTime:
		return s.CastingTime
	case FieldDuration:
		return s.Duration
	case FieldTarget:
		return s.Target
	}
	return ""
}
