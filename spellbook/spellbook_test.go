package spellbook

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JakeDSargent/TapRunes/sigil"
)

const book = `name,save,level,range,damage,castingtime,duration,target,school,components,c/r,palette
Fireball,DEX,3,150FT,8D6,1A,INST,SPHERE,Evocation,"V, S, M",,#ff8800#ff0000
Shield,NOSAVE,1,SELF,,1R,1RD,SELF,Abjuration,"V, S",

Detect Magic,NOSAVE,1,SELF,,1A,10MIN,SELF,Divination,"V, S",C R
Broken,DEX,1
`

func TestRead(t *testing.T) {
	b, err := Read(strings.NewReader(book))
	require.NoError(t, err)
	require.Equal(t, 4, b.Len(), "the blank row is skipped")

	fb := b.Entries[0]
	assert.Equal(t, 2, fb.Line)
	assert.Equal(t, "Fireball", fb.Record.Get(sigil.FieldName))
	assert.Equal(t, "V, S, M", fb.Record.Get(sigil.FieldComponents))
	assert.Equal(t, "#ff8800#ff0000", fb.Record.Get(sigil.FieldPalette))

	assert.Equal(t, 5, b.Entries[2].Line)

	_, ok := b.Entries[3].Record.Lookup(sigil.FieldRange)
	assert.False(t, ok, "short rows lack trailing fields")
}

func TestFind(t *testing.T) {
	b, err := Read(strings.NewReader(book))
	require.NoError(t, err)

	rec, ok := b.Find("detect magic")
	require.True(t, ok)
	assert.Equal(t, "C R", rec.Get(sigil.FieldCR))

	_, ok = b.Find("Wish")
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	b, err := Read(strings.NewReader(book))
	require.NoError(t, err)

	spells, errs := b.Validate()
	require.Len(t, spells, 3)
	require.Len(t, errs, 1)

	var le *LineError
	require.True(t, errors.As(errs[0], &le))
	assert.Equal(t, 6, le.Line)
	assert.Equal(t, "Broken", le.Name)
	assert.ErrorIs(t, errs[0], sigil.ErrMissingField)

	assert.True(t, spells[2].Concentration)
	assert.True(t, spells[2].Ritual)
	assert.Equal(t, sigil.Divination, spells[2].School)
}

func TestReadEmpty(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestReadMalformed(t *testing.T) {
	_, err := Read(strings.NewReader("name,save\n\"unterminated,DEX\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.csv")
	require.NoError(t, os.WriteFile(path, []byte(book), 0o600))

	b, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, b.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestReadStripsByteOrderMark(t *testing.T) {
	b, err := Read(strings.NewReader("\ufeff" + book))
	require.NoError(t, err)

	rec, ok := b.Find("Fireball")
	require.True(t, ok, "NAME column is found behind a byte order mark")
	assert.Equal(t, "DEX", rec.Get(sigil.FieldSave))
}
