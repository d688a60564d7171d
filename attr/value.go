// Package attr implements the Attribute Registry: a static mapping from
// an 8-bit attribute id to the wire width, decoder, encoder,
// unit, and name of the value it carries. Generic get/set/report message
// bodies consult this registry to know how many bytes to consume for a
// given id; it is the sole source of truth for attribute width.
package attr

import (
	"github.com/aidee-health/embodycodec/enumreg"
	"github.com/aidee-health/embodycodec/unit"
)

// Value is the sum type over every concrete shape an attribute's value can
// take: unsigned/signed integers of width 8 through 64, an IEEE-754
// float32, a unit-tagged scaled integer, and the packed struct shapes
// (accelerometer sample, pulse-rate aggregate) and bounded enumerations
// the device protocol defines.
//
// There is deliberately no reflection here: each concrete type below is a
// distinct Go type satisfying the marker method, and the registry's
// per-attribute Decode/Encode functions type-assert to the one shape their
// descriptor declares, exactly as section.NumericFlag's validXxx tables
// replace a runtime-introspected schema with a compile-time one.
type Value interface {
	isAttributeValue()
}

// UInt8 is an 8-bit unsigned scalar, e.g. a percentage or raw count.
type UInt8 uint8

// UInt16 is a 16-bit unsigned scalar.
type UInt16 uint16

// UInt32 is a 32-bit unsigned scalar.
type UInt32 uint32

// UInt64 is a 64-bit unsigned scalar.
type UInt64 uint64

// Int8 is an 8-bit signed scalar.
type Int8 int8

// Int16 is a 16-bit signed scalar.
type Int16 int16

// Int32 is a 32-bit signed scalar.
type Int32 int32

// Int64 is a 64-bit signed scalar.
type Int64 int64

// Float32 is an IEEE-754 single-precision float.
type Float32 float32

// Scaled is a fixed-point scaled integer carrying its physical value and
// unit. The wire width and scale factor live in the Descriptor, not in
// the value itself.
type Scaled struct {
	Physical float64
	Unit     unit.Unit
}

// Accelerometer is a packed 3-axis 16-bit sample.
type Accelerometer struct {
	X, Y, Z int16
}

// PulseAggregate is a packed pulse-rate aggregate.
type PulseAggregate struct {
	BPM           uint8
	ConfidencePct uint8
}

// ChargeStateValue wraps a bounded charge-state enumeration.
type ChargeStateValue struct{ Value enumreg.ChargeState }

// BLEPairingStateValue wraps a bounded BLE pairing-state enumeration.
type BLEPairingStateValue struct{ Value enumreg.BLEPairingState }

func (UInt8) isAttributeValue()                {}
func (UInt16) isAttributeValue()               {}
func (UInt32) isAttributeValue()               {}
func (UInt64) isAttributeValue()               {}
func (Int8) isAttributeValue()                 {}
func (Int16) isAttributeValue()                {}
func (Int32) isAttributeValue()                {}
func (Int64) isAttributeValue()                {}
func (Float32) isAttributeValue()              {}
func (Scaled) isAttributeValue()               {}
func (Accelerometer) isAttributeValue()        {}
func (PulseAggregate) isAttributeValue()       {}
func (ChargeStateValue) isAttributeValue()     {}
func (BLEPairingStateValue) isAttributeValue() {}
