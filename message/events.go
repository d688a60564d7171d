package message

import (
	"github.com/aidee-health/embodycodec/cursor"
	"github.com/aidee-health/embodycodec/errs"
)

// AlarmEvent reports a device-raised alarm identified by Code at the
// given Timestamp (milliseconds since device epoch).
type AlarmEvent struct {
	Code      uint8
	Timestamp uint64
}

func (AlarmEvent) Type() TypeCode        { return TypeAlarmEvent }
func (AlarmEvent) bodyLen() (int, error) { return 1 + 8, nil }

func (m AlarmEvent) encodeBody(w *cursor.Writer) error {
	w.WriteU8(m.Code)
	w.WriteU64(m.Timestamp)

	return nil
}

func decodeAlarmEvent(body []byte) (Message, error) {
	r := cursor.NewReader(body)

	code, err := r.ReadU8("code")
	if err != nil {
		return nil, err
	}

	ts, err := r.ReadU64("timestamp")
	if err != nil {
		return nil, err
	}

	if err := requireConsumedAll(r); err != nil {
		return nil, err
	}

	return AlarmEvent{Code: code, Timestamp: ts}, nil
}

// RawPulseChanged reports a single raw pulse sensor reading at Timestamp.
type RawPulseChanged struct {
	Timestamp uint64
	Pulse     uint16
}

func (RawPulseChanged) Type() TypeCode        { return TypeRawPulseChanged }
func (RawPulseChanged) bodyLen() (int, error) { return 8 + 2, nil }

func (m RawPulseChanged) encodeBody(w *cursor.Writer) error {
	w.WriteU64(m.Timestamp)
	w.WriteU16(m.Pulse)

	return nil
}

func decodeRawPulseChanged(body []byte) (Message, error) {
	r := cursor.NewReader(body)

	ts, err := r.ReadU64("timestamp")
	if err != nil {
		return nil, err
	}

	pulse, err := r.ReadU16("pulse")
	if err != nil {
		return nil, err
	}

	if err := requireConsumedAll(r); err != nil {
		return nil, err
	}

	return RawPulseChanged{Timestamp: ts, Pulse: pulse}, nil
}

// SensorData reports a batch of raw signed 16-bit samples captured at
// Timestamp, the one variant whose body is a raw sample array rather
// than an AttributeValue. The sample count is a single u8 prefix, the
// same count-prefixed-array convention ListFilesResponse uses.
type SensorData struct {
	Timestamp uint64
	Values    []int16
}

func (SensorData) Type() TypeCode { return TypeSensorData }

func (m SensorData) bodyLen() (int, error) {
	return 8 + 1 + len(m.Values)*2, nil
}

func (m SensorData) encodeBody(w *cursor.Writer) error {
	if len(m.Values) > 0xFF {
		return errs.RangeError("sample_count", len(m.Values))
	}

	w.WriteU64(m.Timestamp)
	w.WriteU8(uint8(len(m.Values)))

	for _, v := range m.Values {
		w.WriteI16(v)
	}

	return nil
}

func decodeSensorData(body []byte) (Message, error) {
	r := cursor.NewReader(body)

	ts, err := r.ReadU64("timestamp")
	if err != nil {
		return nil, err
	}

	count, err := r.ReadU8("sample_count")
	if err != nil {
		return nil, err
	}

	values := make([]int16, 0, count)

	for i := uint8(0); i < count; i++ {
		v, err := r.ReadI16("sample")
		if err != nil {
			return nil, err
		}

		values = append(values, v)
	}

	if err := requireConsumedAll(r); err != nil {
		return nil, err
	}

	return SensorData{Timestamp: ts, Values: values}, nil
}
