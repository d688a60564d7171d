// Package endian supplies the single byte-order engine the wire format uses.
//
// Unlike a host-facing serialization library, this protocol does not let
// either side negotiate byte order: every multi-byte field is big-endian,
// full stop. EndianEngine is kept as a small interface, rather than
// calling encoding/binary.BigEndian directly everywhere, so the cursor
// and message packages depend on a narrow seam instead of the standard
// library type directly — useful for tests that want to swap in a fake to
// exercise error paths.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into the single interface the codec depends on.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Engine is the wire byte order mandated by the protocol: big-endian.
// There is no per-message or per-attribute choice; every field not
// explicitly documented otherwise uses this engine.
var Engine EndianEngine = binary.BigEndian
