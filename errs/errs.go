// Package errs defines the sentinel error kinds produced by the codec.
//
// Every error the codec returns wraps one of the sentinels below, so
// callers can classify failures with errors.Is regardless of which
// package raised them. The codec never logs or retries on its own; it
// only ever returns one of these kinds to the caller.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel error kinds, named after the error taxonomy in the protocol's
// error handling design.
var (
	// ErrTruncated means the input ended before a field could be fully read.
	ErrTruncated = errors.New("embodycodec: truncated input")
	// ErrInvalidLength means a frame's length header is out of range or
	// inconsistent with the body layout it claims to carry.
	ErrInvalidLength = errors.New("embodycodec: invalid frame length")
	// ErrCrcMismatch means the trailing CRC did not match the computed one.
	ErrCrcMismatch = errors.New("embodycodec: crc mismatch")
	// ErrUnknownMessageType means the frame's type code has no body codec.
	ErrUnknownMessageType = errors.New("embodycodec: unknown message type")
	// ErrUnknownAttribute means the attribute id has no registry entry.
	ErrUnknownAttribute = errors.New("embodycodec: unknown attribute")
	// ErrUnknownEnumValue means a wire code is outside a bounded enum's range.
	ErrUnknownEnumValue = errors.New("embodycodec: unknown enum value")
	// ErrTrailingGarbage means a message body was longer than its layout consumed.
	ErrTrailingGarbage = errors.New("embodycodec: trailing garbage after body")
	// ErrRangeError means an encoder was given a value that does not fit its field.
	ErrRangeError = errors.New("embodycodec: value out of range for field")
)

// Truncated wraps ErrTruncated with the field that ran out of bytes.
func Truncated(field string, need, have int) error {
	return fmt.Errorf("%w: need %d bytes for %s, have %d", ErrTruncated, need, field, have)
}

// InvalidLength wraps ErrInvalidLength with the offending value.
func InvalidLength(length int) error {
	return fmt.Errorf("%w: %d", ErrInvalidLength, length)
}

// CrcMismatch wraps ErrCrcMismatch with the expected and actual values.
func CrcMismatch(want, got uint16) error {
	return fmt.Errorf("%w: want %#04x, got %#04x", ErrCrcMismatch, want, got)
}

// UnknownMessageType wraps ErrUnknownMessageType with the offending code.
func UnknownMessageType(code uint8) error {
	return fmt.Errorf("%w: %#02x", ErrUnknownMessageType, code)
}

// UnknownAttribute wraps ErrUnknownAttribute with the offending id.
func UnknownAttribute(id uint8) error {
	return fmt.Errorf("%w: %#02x", ErrUnknownAttribute, id)
}

// UnknownEnumValue wraps ErrUnknownEnumValue with the enum name and code.
func UnknownEnumValue(enum string, code uint8) error {
	return fmt.Errorf("%w: %s code %#02x", ErrUnknownEnumValue, enum, code)
}

// TrailingGarbage wraps ErrTrailingGarbage with the number of leftover bytes.
func TrailingGarbage(n int) error {
	return fmt.Errorf("%w: %d byte(s)", ErrTrailingGarbage, n)
}

// RangeError wraps ErrRangeError with a description of the offending field.
func RangeError(field string, value any) error {
	return fmt.Errorf("%w: %s = %v", ErrRangeError, field, value)
}
