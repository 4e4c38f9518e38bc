package taprunes

import "errors"

var (
	// ErrUnknownStyle is returned by ParseStyle for unrecognized names.
	ErrUnknownStyle = errors.New("taprunes: unknown style")

	// ErrNumeralRange is returned when a numeral does not fit the
	// three-digit base-6 encoding (0..215).
	ErrNumeralRange = errors.New("taprunes: numeral out of range")
)
