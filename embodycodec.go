// Package embodycodec implements the wire codec for the EmBody/HyperSension
// wearable-device protocol: a compact, binary, request/response and
// notification framing used between a host and a body-worn sensor device
// over a reliable byte-stream transport such as BLE serial or USB CDC.
//
// The package's single job is translating between raw bytes on the wire
// and strongly-typed in-memory message values, in both directions,
// losslessly and safely. It is pure and stateless: DecodeFrame and
// EncodeMessage are referentially transparent over their inputs, there is
// no shared mutable state, and no operation performs I/O or blocks.
// Callers own the transport, buffering across frame boundaries, and
// threading.
//
// # Basic usage
//
// Encoding a message into a frame ready for the wire:
//
//	out, err := embodycodec.EncodeMessage(message.Heartbeat{})
//
// Decoding bytes pulled off a transport, which may hold a partial frame,
// exactly one frame, or several:
//
//	outcome := embodycodec.DecodeFrame(buf)
//	switch outcome.Kind {
//	case frame.OutcomeFrame:
//	    handle(outcome.Message)
//	    buf = buf[outcome.Consumed:]
//	case frame.OutcomeNeed:
//	    // wait for outcome.NeedBytes more bytes before retrying
//	case frame.OutcomeErr:
//	    log.Printf("bad frame: %v", outcome.Err)
//	    buf = buf[outcome.Consumed:] // still resynchronizes
//	}
//
// Attribute blobs received out of band (e.g. from a vendor extension
// outside the framed protocol) can be decoded directly against the
// Attribute Registry:
//
//	val, n, err := embodycodec.DecodeAttribute(0xA1, raw)
package embodycodec

import (
	"github.com/aidee-health/embodycodec/attr"
	"github.com/aidee-health/embodycodec/frame"
	"github.com/aidee-health/embodycodec/message"
)

// DecodeFrame decodes the next frame from the front of data. data may
// hold zero, one, or more than one frame's worth of bytes; the returned
// Outcome reports whether more input is needed, a frame decoded
// successfully, or framing/dispatch failed, and in every case how many
// bytes the caller should drop to make progress.
func DecodeFrame(data []byte) frame.Outcome {
	return frame.Decode(data)
}

// EncodeMessage emits one complete frame — header, body, and trailing
// CRC-16/XMODEM — for msg in a single allocation.
func EncodeMessage(msg message.Message) ([]byte, error) {
	return frame.Encode(msg)
}

// DecodeAttribute decodes an attribute value for id, exported for
// callers that receive attribute blobs out of band rather than embedded
// in a framed message. It reports the decoded value and how many bytes
// of data were consumed.
func DecodeAttribute(id uint8, data []byte) (attr.Value, int, error) {
	return attr.Decode(id, data)
}

// EncodeAttribute encodes value for attribute id, the mirror of
// DecodeAttribute.
func EncodeAttribute(id uint8, v attr.Value) ([]byte, error) {
	return attr.Encode(id, v)
}
