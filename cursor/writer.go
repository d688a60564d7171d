package cursor

import (
	"math"

	"github.com/aidee-health/embodycodec/endian"
	"github.com/aidee-health/embodycodec/errs"
)

// Writer fills a pre-sized byte slice in order.
//
// Message encoders compute their exact body length up front and
// allocate the output buffer exactly once via NewWriter; there is
// no amortized growth strategy here because, unlike mebo's streaming
// time-series payloads, every frame this protocol produces is small and
// its length is known before a single byte is written.
type Writer struct {
	buf []byte
	pos int
}

// NewWriter allocates a Writer over a buffer of exactly size bytes.
func NewWriter(size int) *Writer {
	return &Writer{buf: make([]byte, size)}
}

// Pos returns the number of bytes written so far.
func (w *Writer) Pos() int { return w.pos }

// Bytes returns the underlying buffer. It must be fully written (Pos ==
// len(buf)) by the time the caller inspects it; callers that allocate an
// exact-size Writer and fill it field-by-field get this for free.
func (w *Writer) Bytes() []byte { return w.buf }

// WriteU8 writes one byte.
func (w *Writer) WriteU8(v uint8) {
	w.buf[w.pos] = v
	w.pos++
}

// WriteU16 writes a big-endian uint16.
func (w *Writer) WriteU16(v uint16) {
	endian.Engine.PutUint16(w.buf[w.pos:w.pos+2], v)
	w.pos += 2
}

// WriteU32 writes a big-endian uint32.
func (w *Writer) WriteU32(v uint32) {
	endian.Engine.PutUint32(w.buf[w.pos:w.pos+4], v)
	w.pos += 4
}

// WriteU48 writes the low 48 bits of v as a big-endian 48-bit integer.
//
// Returns RangeError if v does not fit in 48 bits.
func (w *Writer) WriteU48(v uint64, field string) error {
	if v >= 1<<48 {
		return errs.RangeError(field, v)
	}

	b := w.buf[w.pos : w.pos+6]
	b[0] = byte(v >> 40)
	b[1] = byte(v >> 32)
	b[2] = byte(v >> 24)
	b[3] = byte(v >> 16)
	b[4] = byte(v >> 8)
	b[5] = byte(v)
	w.pos += 6

	return nil
}

// WriteU64 writes a big-endian uint64.
func (w *Writer) WriteU64(v uint64) {
	endian.Engine.PutUint64(w.buf[w.pos:w.pos+8], v)
	w.pos += 8
}

// WriteI8 writes one byte from a signed int8.
func (w *Writer) WriteI8(v int8) { w.WriteU8(uint8(v)) }

// WriteI16 writes a big-endian signed int16.
func (w *Writer) WriteI16(v int16) { w.WriteU16(uint16(v)) }

// WriteI32 writes a big-endian signed int32.
func (w *Writer) WriteI32(v int32) { w.WriteU32(uint32(v)) }

// WriteI64 writes a big-endian signed int64.
func (w *Writer) WriteI64(v int64) { w.WriteU64(uint64(v)) }

// WriteF32 writes a big-endian IEEE-754 float32.
func (w *Writer) WriteF32(v float32) {
	w.WriteU32(math.Float32bits(v))
}

// WriteBytes copies b verbatim into the buffer.
func (w *Writer) WriteBytes(b []byte) {
	copy(w.buf[w.pos:w.pos+len(b)], b)
	w.pos += len(b)
}

// WriteFixedString writes s left-aligned and null-padded into a field of
// exactly width bytes.
//
// Returns RangeError if s (plus its terminating null) does not fit.
func (w *Writer) WriteFixedString(s string, width int, field string) error {
	if len(s) >= width {
		return errs.RangeError(field, s)
	}

	dst := w.buf[w.pos : w.pos+width]
	for i := range dst {
		dst[i] = 0
	}
	copy(dst, s)
	w.pos += width

	return nil
}
