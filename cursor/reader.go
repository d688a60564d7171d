// Package cursor provides bounds-checked big-endian readers and writers
// over a byte slice.
//
// Every multi-byte value on the wire is positional and big-endian, so
// the message and attribute layers never touch raw byte arithmetic
// directly — they read and write through a Reader/Writer pair, which
// centralizes endianness and truncation handling the way mebo's
// encoding/numeric_raw.go centralizes writeFloat64 for a single
// fixed-width type.
package cursor

import (
	"bytes"
	"math"

	"github.com/aidee-health/embodycodec/endian"
	"github.com/aidee-health/embodycodec/errs"
)

// Reader reads fixed-width fields from a borrowed byte slice in order.
//
// A Reader does not copy its input; callers that need to retain a byte
// range past the life of the decode call (e.g. a file name) must copy it
// out explicitly with ReadBytes.
type Reader struct {
	data []byte
	pos  int
}

// NewReader wraps data for sequential reading. The slice is borrowed, not
// copied; the caller must not mutate it while the Reader is in use.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current read offset.
func (r *Reader) Pos() int { return r.pos }

// Len returns the total length of the wrapped slice.
func (r *Reader) Len() int { return len(r.data) }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

func (r *Reader) need(n int, field string) error {
	if r.Remaining() < n {
		return errs.Truncated(field, n, r.Remaining())
	}

	return nil
}

// ReadU8 reads one byte.
func (r *Reader) ReadU8(field string) (uint8, error) {
	if err := r.need(1, field); err != nil {
		return 0, err
	}

	v := r.data[r.pos]
	r.pos++

	return v, nil
}

// ReadU16 reads a big-endian uint16.
func (r *Reader) ReadU16(field string) (uint16, error) {
	if err := r.need(2, field); err != nil {
		return 0, err
	}

	v := endian.Engine.Uint16(r.data[r.pos : r.pos+2])
	r.pos += 2

	return v, nil
}

// ReadU32 reads a big-endian uint32.
func (r *Reader) ReadU32(field string) (uint32, error) {
	if err := r.need(4, field); err != nil {
		return 0, err
	}

	v := endian.Engine.Uint32(r.data[r.pos : r.pos+4])
	r.pos += 4

	return v, nil
}

// ReadU48 reads a big-endian 48-bit unsigned integer, zero-extended to 64 bits.
func (r *Reader) ReadU48(field string) (uint64, error) {
	if err := r.need(6, field); err != nil {
		return 0, err
	}

	b := r.data[r.pos : r.pos+6]
	v := uint64(b[0])<<40 | uint64(b[1])<<32 | uint64(b[2])<<24 |
		uint64(b[3])<<16 | uint64(b[4])<<8 | uint64(b[5])
	r.pos += 6

	return v, nil
}

// ReadU64 reads a big-endian uint64.
func (r *Reader) ReadU64(field string) (uint64, error) {
	if err := r.need(8, field); err != nil {
		return 0, err
	}

	v := endian.Engine.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8

	return v, nil
}

// ReadI8 reads one byte as a signed int8.
func (r *Reader) ReadI8(field string) (int8, error) {
	v, err := r.ReadU8(field)

	return int8(v), err
}

// ReadI16 reads a big-endian signed int16.
func (r *Reader) ReadI16(field string) (int16, error) {
	v, err := r.ReadU16(field)

	return int16(v), err
}

// ReadI32 reads a big-endian signed int32.
func (r *Reader) ReadI32(field string) (int32, error) {
	v, err := r.ReadU32(field)

	return int32(v), err
}

// ReadI64 reads a big-endian signed int64.
func (r *Reader) ReadI64(field string) (int64, error) {
	v, err := r.ReadU64(field)

	return int64(v), err
}

// ReadF32 reads a big-endian IEEE-754 float32.
func (r *Reader) ReadF32(field string) (float32, error) {
	v, err := r.ReadU32(field)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}

// ReadBytes reads and returns a copy of the next n bytes.
//
// The returned slice is owned by the caller and safe to retain past the
// Reader's lifetime.
func (r *Reader) ReadBytes(n int, field string) ([]byte, error) {
	if err := r.need(n, field); err != nil {
		return nil, err
	}

	out := make([]byte, n)
	copy(out, r.data[r.pos:r.pos+n])
	r.pos += n

	return out, nil
}

// PeekBytes returns a borrowed view of the next n bytes without advancing
// the cursor. The returned slice aliases the Reader's input.
func (r *Reader) PeekBytes(n int, field string) ([]byte, error) {
	if err := r.need(n, field); err != nil {
		return nil, err
	}

	return r.data[r.pos : r.pos+n], nil
}

// ReadFixedString reads a fixed-width, null-padded ASCII field and returns
// the portion before the first null byte (or the whole field if there is
// none).
func (r *Reader) ReadFixedString(width int, field string) (string, error) {
	b, err := r.ReadBytes(width, field)
	if err != nil {
		return "", err
	}

	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}

	return string(b), nil
}

// Skip advances the cursor by n bytes without copying them out.
func (r *Reader) Skip(n int, field string) error {
	if err := r.need(n, field); err != nil {
		return err
	}

	r.pos += n

	return nil
}
