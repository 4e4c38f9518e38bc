package sigil

import (
	"fmt"
	"strings"
)

// Category is the save category of a spell. It selects ring radii, the
// connective topology and the icon at the center of the sigil.
type Category uint8

const (
	NoSave Category = iota
	Attack
	Str
	Dex
	Con
	Int
	Wis
	Cha

	numCategories
)

var categoryNames = [...]string{
	NoSave: "NOSAVE",
	Attack: "ATTACK",
	Str:    "STR",
	Dex:    "DEX",
	Con:    "CON",
	Int:    "INT",
	Wis:    "WIS",
	Cha:    "CHA",
}

var categoryAliases = map[string]Category{
	"NONE":         NoSave,
	"STRENGTH":     Str,
	"DEXTERITY":    Dex,
	"CONSTITUTION": Con,
	"INTELLIGENCE": Int,
	"WISDOM":       Wis,
	"CHARISMA":     Cha,
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", c)
}

// Categories returns all categories in declaration order.
func Categories() []Category {
	out := make([]Category, numCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// ParseCategory maps a SAVE value to its category. Full ability names are
// accepted as well as the three-letter tags.
func ParseCategory(s string) (Category, error) {
	n := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range categoryNames {
		if name == n {
			return Category(i), nil
		}
	}
	if c, ok := categoryAliases[n]; ok {
		return c, nil
	}
	return NoSave, ErrUnknownSave
}

// Radii are the ring radii of a sigil as fractions of its outer radius.
type Radii struct {
	Three float64 // ring holding LEVEL, C/R and CASTINGTIME
	Five  float64 // ring holding the other five slots
}

var categoryRadii = [...]Radii{
	NoSave: {Three: 0.65, Five: 1},
	Attack: {Three: 0.55, Five: 1},
	Str:    {Three: 0.55, Five: 0.95},
	Dex:    {Three: 0.45, Five: 1},
	Con:    {Three: 0.5, Five: 1},
	Int:    {Three: 0.6, Five: 1},
	Wis:    {Three: 0.5, Five: 0.9},
	Cha:    {Three: 0.45, Five: 0.95},
}

// Radii returns the ring radii of c. No two categories share a pair.
func (c Category) Radii() Radii {
	if int(c) < len(categoryRadii) {
		return categoryRadii[c]
	}
	return categoryRadii[NoSave]
}

// School is the school of magic of a spell.
type School uint8

const (
	Abjuration School = iota
	Conjuration
	Divination
	Enchantment
	Evocation
	Illusion
	Necromancy
	Transmutation

	numSchools
)

var schoolNames = [...]string{
	Abjuration:    "ABJURATION",
	Conjuration:   "CONJURATION",
	Divination:    "DIVINATION",
	Enchantment:   "ENCHANTMENT",
	Evocation:     "EVOCATION",
	Illusion:      "ILLUSION",
	Necromancy:    "NECROMANCY",
	Transmutation: "TRANSMUTATION",
}

func (s School) String() string {
	if int(s) < len(schoolNames) {
		return schoolNames[s]
	}
	return fmt.Sprintf("School(%d)", s)
}

// Schools returns all schools in declaration order.
func Schools() []School {
	out := make([]School, numSchools)
	for i := range out {
		out[i] = School(i)
	}
	return out
}

// ParseSchool maps a SCHOOL value to its school.
func ParseSchool(s string) (School, error) {
	n := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range schoolNames {
		if name == n {
			return School(i), nil
		}
	}
	return Abjuration, ErrUnknownSchool
}
