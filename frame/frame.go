// Package frame implements the outer frame envelope: a length-prefixed
// header, a message body, and a trailing CRC-16/XMODEM.
//
// Frame decoding tolerates a transport buffer that holds zero, one, or
// more than one frame's worth of bytes, and always reports how many bytes
// were consumed so a caller streaming bytes off a serial or BLE link can
// resynchronize after a bad frame without losing alignment. This
// mirrors the partial-read discipline mebo's section.NumericHeader.Parse
// applies to its own fixed-size header, generalized here to a length
// that is itself part of the wire data rather than a compile-time
// constant.
package frame

import (
	"github.com/aidee-health/embodycodec/errs"
	"github.com/aidee-health/embodycodec/message"
)

const (
	// HeaderLen is the number of bytes preceding the body: type_code (1) + length (2).
	HeaderLen = 3
	// CrcLen is the number of trailing CRC bytes.
	CrcLen = 2
	// MinFrameLen is the smallest legal frame: header + empty body + CRC.
	MinFrameLen = HeaderLen + CrcLen
	// MaxFrameLen is the largest frame this implementation accepts, a
	// 4 KiB policy ceiling tighter than the 65535 the length field could
	// otherwise address.
	MaxFrameLen = 4096
)

// Outcome is the result of attempting to decode one frame from the front
// of a byte slice. Exactly one of Frame, Need, or Err applies; callers
// should switch on Outcome.Kind.
type Outcome struct {
	Kind OutcomeKind

	// Message is populated when Kind == OutcomeFrame.
	Message message.Message
	// NeedBytes is populated when Kind == OutcomeNeed: the minimum
	// number of additional bytes required before decoding can make
	// further progress.
	NeedBytes int
	// Consumed is the number of bytes the caller should drop from the
	// front of its buffer. It is populated for OutcomeFrame (the full
	// frame length) and OutcomeErr (enough to resynchronize), and is
	// always 0 for OutcomeNeed.
	Consumed int
	// Err is populated when Kind == OutcomeErr.
	Err error
}

// OutcomeKind discriminates the three shapes a decode attempt can take.
type OutcomeKind int

const (
	// OutcomeNeed means the buffer does not yet hold a complete frame.
	OutcomeNeed OutcomeKind = iota
	// OutcomeFrame means a complete, CRC-valid frame was decoded.
	OutcomeFrame
	// OutcomeErr means framing or dispatch failed; Consumed bytes should
	// still be dropped to resynchronize the stream.
	OutcomeErr
)

func need(n int) Outcome { return Outcome{Kind: OutcomeNeed, NeedBytes: n} }

func fail(err error, consumed int) Outcome {
	return Outcome{Kind: OutcomeErr, Err: err, Consumed: consumed}
}

// Decode attempts to split one frame off the front of data and decode
// its body into a Message.
//
// It never panics and never retains a reference to data: a successful
// OutcomeFrame carries a Message whose fields have already been copied out
// of the input by the message layer's decoders.
func Decode(data []byte) Outcome {
	if len(data) < HeaderLen {
		return need(HeaderLen - len(data))
	}

	typeCode := message.TypeCode(data[0])
	length := int(data[1])<<8 | int(data[2])

	if length < MinFrameLen || length > MaxFrameLen {
		// The header itself is malformed; resync past just the header
		// since we cannot trust `length` to find the next frame boundary.
		return fail(errs.InvalidLength(length), HeaderLen)
	}

	if len(data) < length {
		return need(length - len(data))
	}

	frame := data[:length]
	body := frame[HeaderLen : length-CrcLen]

	wantCrc := uint16(frame[length-2])<<8 | uint16(frame[length-1])
	gotCrc := crc16XModem(frame[:length-CrcLen])

	if wantCrc != gotCrc {
		return fail(errs.CrcMismatch(wantCrc, gotCrc), length)
	}

	msg, err := message.DecodeBody(typeCode, body)
	if err != nil {
		return fail(err, length)
	}

	return Outcome{Kind: OutcomeFrame, Message: msg, Consumed: length}
}

// Encode renders m as one complete frame: header, body, and CRC in a
// single allocation. It fails before writing any frame byte if m's body
// cannot be encoded: UnknownAttribute for an attribute id outside the
// registry, RangeError for a field value outside its wire range or a frame
// longer than MaxFrameLen.
func Encode(m message.Message) ([]byte, error) {
	body, err := message.EncodeBody(m)
	if err != nil {
		return nil, err
	}

	length := HeaderLen + len(body) + CrcLen
	if length > MaxFrameLen {
		return nil, errs.RangeError("frame_length", length)
	}

	out := make([]byte, length)
	out[0] = byte(m.Type())
	out[1] = byte(length >> 8)
	out[2] = byte(length)
	copy(out[HeaderLen:length-CrcLen], body)

	crc := crc16XModem(out[:length-CrcLen])
	out[length-2] = byte(crc >> 8)
	out[length-1] = byte(crc)

	return out, nil
}
