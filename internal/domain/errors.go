package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrLayoutMismatch means the named fields and the column slots of a layout disagree.
	ErrLayoutMismatch = errors.New("layout mismatch")

	// ErrMalformedRecord means a line could not be decoded with the layout.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrEmptyInput means there are no records to reshape.
	ErrEmptyInput = errors.New("empty input")

	// ErrUnsupportedElement means a requested element code is not in the vocabulary.
	ErrUnsupportedElement = errors.New("unsupported element")

	// ErrMultipleStations means a table holds more than one station ID.
	ErrMultipleStations = errors.New("multiple stations in table")

	// ErrDuplicateRecord means more than one record shares a (year, month, element) key.
	ErrDuplicateRecord = errors.New("duplicate record")
)

// UnsupportedElementError reports a requested element that was skipped.
type UnsupportedElementError struct {
	Element string
}

func (e *UnsupportedElementError) Error() string {
	return fmt.Sprintf("%s not in GHCN-Daily element list, skipped", e.Element)
}

func (e *UnsupportedElementError) Unwrap() error {
	return ErrUnsupportedElement
}
