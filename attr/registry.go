package attr

import (
	"sort"

	"github.com/aidee-health/embodycodec/cursor"
	"github.com/aidee-health/embodycodec/enumreg"
	"github.com/aidee-health/embodycodec/errs"
	"github.com/aidee-health/embodycodec/unit"
)

// Descriptor is the registry's per-attribute entry: wire width, decoder,
// encoder, unit, and human name. It is the sole source of truth for how
// many bytes a given attribute id occupies on the wire.
type Descriptor struct {
	ID     uint8
	Name   string
	Width  int
	Unit   unit.Unit
	decode func(r *cursor.Reader) (Value, error)
	encode func(w *cursor.Writer, v Value) error
}

// registry is the static attribute_id -> Descriptor table. It is built once
// below and never mutated, matching the process-wide immutable registry
// model the protocol requires.
var registry = buildRegistry()

func buildRegistry() map[uint8]Descriptor {
	m := make(map[uint8]Descriptor)

	add := func(d Descriptor) {
		if _, dup := m[d.ID]; dup {
			panic("attr: duplicate attribute id in registry")
		}

		m[d.ID] = d
	}

	add(uint8Descriptor(0x01, "battery_level", unit.Percent))
	add(scaledU16Descriptor(0x02, "battery_voltage", unit.Millivolt, unit.Scale{Factor: 10}, 0, 65535))
	add(enumChargeStateDescriptor(0x03, "charge_state"))
	add(uint8Descriptor(0x10, "heart_rate", unit.BPM))
	add(scaledU16Descriptor(0x11, "pulse_raw", unit.None, unit.Scale{Factor: 1}, 0, 65535))
	add(pulseAggregateDescriptor(0x12, "pulse_rate_aggregate"))
	add(accelerometerDescriptor(0x20, "accelerometer"))
	add(scaledI16Descriptor(0x21, "temperature", unit.CentiCelsius, unit.Scale{Factor: 1}, -32768, 32767))
	add(enumBLEPairingStateDescriptor(0x30, "ble_pairing_state"))
	add(scaledU32Descriptor(0x40, "coulomb_counter", unit.MicroampereHour, unit.Scale{Factor: 1}, 0, 4294967295))
	add(float32Descriptor(0x41, "line_current", unit.None))
	add(uint64Descriptor(0x42, "device_uptime_ms", unit.None))
	add(uint8Descriptor(0xA1, "battery_level_pct", unit.Percent))

	return m
}

// Lookup returns the Descriptor for id, or false if id is not registered.
func Lookup(id uint8) (Descriptor, bool) {
	d, ok := registry[id]

	return d, ok
}

// All returns every registered Descriptor sorted by id, for callers that
// need to enumerate the registry (e.g. embodydump's registry dump
// command) rather than look up a single known id.
func All() []Descriptor {
	out := make([]Descriptor, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// --- descriptor builders -----------------------------------------------
//
// Each builder returns a Descriptor whose decode/encode pair handles
// exactly one Value shape. Keeping these as small composable functions,
// rather than one hand-written Parse/Bytes pair per attribute id, mirrors
// the factory style of mebo's compress.CreateCodec: a declarative table
// of shapes instead of per-id boilerplate.

func uint8Descriptor(id uint8, name string, u unit.Unit) Descriptor {
	return Descriptor{
		ID: id, Name: name, Width: 1, Unit: u,
		decode: func(r *cursor.Reader) (Value, error) {
			v, err := r.ReadU8(name)

			return UInt8(v), err
		},
		encode: func(w *cursor.Writer, v Value) error {
			u8, ok := v.(UInt8)
			if !ok {
				return errs.RangeError(name, v)
			}
			w.WriteU8(uint8(u8))

			return nil
		},
	}
}

func uint64Descriptor(id uint8, name string, u unit.Unit) Descriptor {
	return Descriptor{
		ID: id, Name: name, Width: 8, Unit: u,
		decode: func(r *cursor.Reader) (Value, error) {
			v, err := r.ReadU64(name)

			return UInt64(v), err
		},
		encode: func(w *cursor.Writer, v Value) error {
			u64, ok := v.(UInt64)
			if !ok {
				return errs.RangeError(name, v)
			}
			w.WriteU64(uint64(u64))

			return nil
		},
	}
}

func float32Descriptor(id uint8, name string, u unit.Unit) Descriptor {
	return Descriptor{
		ID: id, Name: name, Width: 4, Unit: u,
		decode: func(r *cursor.Reader) (Value, error) {
			v, err := r.ReadF32(name)

			return Float32(v), err
		},
		encode: func(w *cursor.Writer, v Value) error {
			f, ok := v.(Float32)
			if !ok {
				return errs.RangeError(name, v)
			}
			w.WriteF32(float32(f))

			return nil
		},
	}
}

func scaledU16Descriptor(id uint8, name string, u unit.Unit, scale unit.Scale, min, max int64) Descriptor {
	return Descriptor{
		ID: id, Name: name, Width: 2, Unit: u,
		decode: func(r *cursor.Reader) (Value, error) {
			wire, err := r.ReadU16(name)
			if err != nil {
				return nil, err
			}

			return Scaled{Physical: scale.ToPhysical(int64(wire)), Unit: u}, nil
		},
		encode: func(w *cursor.Writer, v Value) error {
			s, ok := v.(Scaled)
			if !ok {
				return errs.RangeError(name, v)
			}

			wire, err := scale.ToWire(s.Physical, min, max, name)
			if err != nil {
				return err
			}
			w.WriteU16(uint16(wire))

			return nil
		},
	}
}

func scaledI16Descriptor(id uint8, name string, u unit.Unit, scale unit.Scale, min, max int64) Descriptor {
	return Descriptor{
		ID: id, Name: name, Width: 2, Unit: u,
		decode: func(r *cursor.Reader) (Value, error) {
			wire, err := r.ReadI16(name)
			if err != nil {
				return nil, err
			}

			return Scaled{Physical: scale.ToPhysical(int64(wire)), Unit: u}, nil
		},
		encode: func(w *cursor.Writer, v Value) error {
			s, ok := v.(Scaled)
			if !ok {
				return errs.RangeError(name, v)
			}

			wire, err := scale.ToWire(s.Physical, min, max, name)
			if err != nil {
				return err
			}
			w.WriteI16(int16(wire))

			return nil
		},
	}
}

func scaledU32Descriptor(id uint8, name string, u unit.Unit, scale unit.Scale, min, max int64) Descriptor {
	return Descriptor{
		ID: id, Name: name, Width: 4, Unit: u,
		decode: func(r *cursor.Reader) (Value, error) {
			wire, err := r.ReadU32(name)
			if err != nil {
				return nil, err
			}

			return Scaled{Physical: scale.ToPhysical(int64(wire)), Unit: u}, nil
		},
		encode: func(w *cursor.Writer, v Value) error {
			s, ok := v.(Scaled)
			if !ok {
				return errs.RangeError(name, v)
			}

			wire, err := scale.ToWire(s.Physical, min, max, name)
			if err != nil {
				return err
			}
			w.WriteU32(uint32(wire))

			return nil
		},
	}
}

func pulseAggregateDescriptor(id uint8, name string) Descriptor {
	return Descriptor{
		ID: id, Name: name, Width: 2, Unit: unit.BPM,
		decode: func(r *cursor.Reader) (Value, error) {
			bpm, err := r.ReadU8(name + ".bpm")
			if err != nil {
				return nil, err
			}

			conf, err := r.ReadU8(name + ".confidence_pct")
			if err != nil {
				return nil, err
			}

			return PulseAggregate{BPM: bpm, ConfidencePct: conf}, nil
		},
		encode: func(w *cursor.Writer, v Value) error {
			p, ok := v.(PulseAggregate)
			if !ok {
				return errs.RangeError(name, v)
			}
			w.WriteU8(p.BPM)
			w.WriteU8(p.ConfidencePct)

			return nil
		},
	}
}

func accelerometerDescriptor(id uint8, name string) Descriptor {
	return Descriptor{
		ID: id, Name: name, Width: 6, Unit: unit.Milligauss,
		decode: func(r *cursor.Reader) (Value, error) {
			x, err := r.ReadI16(name + ".x")
			if err != nil {
				return nil, err
			}

			y, err := r.ReadI16(name + ".y")
			if err != nil {
				return nil, err
			}

			z, err := r.ReadI16(name + ".z")
			if err != nil {
				return nil, err
			}

			return Accelerometer{X: x, Y: y, Z: z}, nil
		},
		encode: func(w *cursor.Writer, v Value) error {
			a, ok := v.(Accelerometer)
			if !ok {
				return errs.RangeError(name, v)
			}
			w.WriteI16(a.X)
			w.WriteI16(a.Y)
			w.WriteI16(a.Z)

			return nil
		},
	}
}

func enumChargeStateDescriptor(id uint8, name string) Descriptor {
	return Descriptor{
		ID: id, Name: name, Width: 1, Unit: unit.None,
		decode: func(r *cursor.Reader) (Value, error) {
			code, err := r.ReadU8(name)
			if err != nil {
				return nil, err
			}

			cs, err := enumreg.ChargeStates.Decode(code)
			if err != nil {
				return nil, err
			}

			return ChargeStateValue{Value: cs}, nil
		},
		encode: func(w *cursor.Writer, v Value) error {
			cs, ok := v.(ChargeStateValue)
			if !ok {
				return errs.RangeError(name, v)
			}

			code, err := enumreg.ChargeStates.Encode(cs.Value)
			if err != nil {
				return err
			}
			w.WriteU8(code)

			return nil
		},
	}
}

func enumBLEPairingStateDescriptor(id uint8, name string) Descriptor {
	return Descriptor{
		ID: id, Name: name, Width: 1, Unit: unit.None,
		decode: func(r *cursor.Reader) (Value, error) {
			code, err := r.ReadU8(name)
			if err != nil {
				return nil, err
			}

			ps, err := enumreg.BLEPairingStates.Decode(code)
			if err != nil {
				return nil, err
			}

			return BLEPairingStateValue{Value: ps}, nil
		},
		encode: func(w *cursor.Writer, v Value) error {
			ps, ok := v.(BLEPairingStateValue)
			if !ok {
				return errs.RangeError(name, v)
			}

			code, err := enumreg.BLEPairingStates.Encode(ps.Value)
			if err != nil {
				return err
			}
			w.WriteU8(code)

			return nil
		},
	}
}
