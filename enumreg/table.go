// Package enumreg implements the Enum Registry: bounded u8 ↔ variant
// bijections for the protocol's enumerated fields (firmware
// update state, charge state, BLE pairing state, file kind, reporting
// trigger mode). Decoding an unrecognized code fails with
// errs.ErrUnknownEnumValue; every declared variant round-trips.
package enumreg

import (
	"fmt"
	"sort"

	"github.com/aidee-health/embodycodec/errs"
)

// Table is an immutable u8 ↔ variant bijection for one enumeration.
//
// Like mebo's section.NumericFlag validTimestampEncodings maps, a Table
// is built once at package init from a literal pair list and never
// mutated afterward — safe for unsynchronized concurrent reads.
type Table[T comparable] struct {
	name       string
	codeToEnum map[uint8]T
	enumToCode map[T]uint8
}

// NewTable builds a bijection table from code/variant pairs. Panics if a
// code or variant is listed twice, since that would make the mapping
// ambiguous — a programming error in the table definition, not a runtime
// condition callers need to handle.
func NewTable[T comparable](name string, pairs map[uint8]T) *Table[T] {
	t := &Table[T]{
		name:       name,
		codeToEnum: make(map[uint8]T, len(pairs)),
		enumToCode: make(map[T]uint8, len(pairs)),
	}

	for code, variant := range pairs {
		if _, dup := t.codeToEnum[code]; dup {
			panic("enumreg: duplicate code in " + name)
		}

		if _, dup := t.enumToCode[variant]; dup {
			panic("enumreg: duplicate variant in " + name)
		}

		t.codeToEnum[code] = variant
		t.enumToCode[variant] = code
	}

	return t
}

// Decode maps a wire code to its variant, or ErrUnknownEnumValue.
func (t *Table[T]) Decode(code uint8) (T, error) {
	v, ok := t.codeToEnum[code]
	if !ok {
		var zero T

		return zero, errs.UnknownEnumValue(t.name, code)
	}

	return v, nil
}

// Encode maps a variant to its wire code, or RangeError if the variant was
// never registered (e.g. a zero-value T outside the declared set).
func (t *Table[T]) Encode(v T) (uint8, error) {
	c, ok := t.enumToCode[v]
	if !ok {
		return 0, errs.RangeError(t.name, v)
	}

	return c, nil
}

// Name returns the enum's registry name, as used in UnknownEnumValue errors.
func (t *Table[T]) Name() string { return t.name }

// Codes returns every registered wire code, sorted, for callers that need
// to enumerate a table (e.g. embodydump's registry dump command) rather
// than decode a single known code.
func (t *Table[T]) Codes() []uint8 {
	codes := make([]uint8, 0, len(t.codeToEnum))
	for c := range t.codeToEnum {
		codes = append(codes, c)
	}

	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	return codes
}

// Entries returns every registered (code, variant) pair as strings,
// ordered by code, for display purposes (e.g. embodydump's registry dump
// command) without exposing T through a non-generic interface.
func (t *Table[T]) Entries() [][2]string {
	codes := t.Codes()
	out := make([][2]string, len(codes))

	for i, c := range codes {
		out[i] = [2]string{fmt.Sprintf("%d", c), fmt.Sprintf("%v", t.codeToEnum[c])}
	}

	return out
}
