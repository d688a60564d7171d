// Package message implements the Message sum type and per-variant body
// codecs plus the dispatch tables that map a wire type code to a decoder
// and a Message value back to its type code and encoder.
//
// Every variant defines a fixed or computed body length and an ordered
// field layout; there is no reflective field iteration — each variant's
// decodeXxx/encodeBody pair is an explicit, hand-written layout, the same
// way mebo's section.NumericHeader.Parse/Bytes hand-codes its 32-byte
// layout instead of introspecting struct tags.
package message

import (
	"github.com/aidee-health/embodycodec/cursor"
	"github.com/aidee-health/embodycodec/errs"
)

// TypeCode is the one-byte wire discriminant identifying a message variant.
//
// The numeric assignment below is fixed by protocol: callers must not
// renumber these without breaking wire compatibility with real devices.
type TypeCode uint8

const (
	TypeHeartbeat              TypeCode = 0x01
	TypeHeartbeatResponse      TypeCode = 0x02
	TypeNackResponse           TypeCode = 0x03
	TypeSetAttribute           TypeCode = 0x10
	TypeSetAttributeResponse   TypeCode = 0x11
	TypeGetAttribute           TypeCode = 0x12
	TypeGetAttributeResponse   TypeCode = 0x13
	TypeResetAttribute         TypeCode = 0x14
	TypeConfigureReporting     TypeCode = 0x20
	TypeResetReporting         TypeCode = 0x21
	TypePeriodicAttribute      TypeCode = 0x22
	TypeListFiles              TypeCode = 0x30
	TypeListFilesResponse      TypeCode = 0x31
	TypeGetFileUart            TypeCode = 0x32
	TypeGetFileUartResponse    TypeCode = 0x33
	TypeDeleteFile             TypeCode = 0x34
	TypeDeleteAllFiles         TypeCode = 0x35
	TypeReformatDisk           TypeCode = 0x36
	TypeExecuteCommand         TypeCode = 0x40
	TypeExecuteCommandResponse TypeCode = 0x41
	TypeFirmwareUpdate         TypeCode = 0x50
	TypeAlarmEvent             TypeCode = 0x60
	TypeRawPulseChanged        TypeCode = 0x61
	TypeSensorData             TypeCode = 0x62
)

func (c TypeCode) String() string {
	if n, ok := typeNames[c]; ok {
		return n
	}

	return "unknown"
}

// Message is the sum type over every known message variant. Each concrete
// type in this package implements it; Type reports the variant's wire
// discriminant. bodyLen reports its exact encoded body length (or
// UnknownAttribute if the message's fields can't be sized, i.e. an
// attribute id outside the registry), which EncodeBody uses to size the
// output buffer before a single byte is written.
type Message interface {
	Type() TypeCode

	bodyLen() (int, error)
	encodeBody(w *cursor.Writer) error
}

// boolToU8 renders a wire boolean flag as the canonical 0/1 byte the
// protocol uses wherever a field is documented as "u8-as-bool".
func boolToU8(b bool) uint8 {
	if b {
		return 1
	}

	return 0
}

// requireEmptyBody enforces the empty-body message policy: body length
// must be exactly 0.
func requireEmptyBody(body []byte) error {
	if len(body) != 0 {
		return errs.TrailingGarbage(len(body))
	}

	return nil
}

// requireConsumedAll enforces the fixed-body message policy: a decoder
// must consume exactly len(body) bytes, no more, no less.
func requireConsumedAll(r *cursor.Reader) error {
	if r.Remaining() != 0 {
		return errs.TrailingGarbage(r.Remaining())
	}

	return nil
}
