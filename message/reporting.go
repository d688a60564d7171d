package message

import (
	"github.com/aidee-health/embodycodec/attr"
	"github.com/aidee-health/embodycodec/cursor"
)

// ConfigureReporting asks the device to push PeriodicAttribute messages for
// AttributeID every IntervalMs, or only when the value changes if OnChange
// is set.
type ConfigureReporting struct {
	AttributeID uint8
	IntervalMs  uint16
	OnChange    bool
}

func (ConfigureReporting) Type() TypeCode        { return TypeConfigureReporting }
func (ConfigureReporting) bodyLen() (int, error) { return 1 + 2 + 1, nil }

func (m ConfigureReporting) encodeBody(w *cursor.Writer) error {
	w.WriteU8(m.AttributeID)
	w.WriteU16(m.IntervalMs)
	w.WriteU8(boolToU8(m.OnChange))

	return nil
}

func decodeConfigureReporting(body []byte) (Message, error) {
	r := cursor.NewReader(body)

	id, err := r.ReadU8("attribute_id")
	if err != nil {
		return nil, err
	}

	interval, err := r.ReadU16("interval_ms")
	if err != nil {
		return nil, err
	}

	onChange, err := r.ReadU8("on_change")
	if err != nil {
		return nil, err
	}

	if err := requireConsumedAll(r); err != nil {
		return nil, err
	}

	return ConfigureReporting{AttributeID: id, IntervalMs: interval, OnChange: onChange != 0}, nil
}

// ResetReporting cancels all configured periodic reporting. Its body is
// always empty.
type ResetReporting struct{}

func (ResetReporting) Type() TypeCode                  { return TypeResetReporting }
func (ResetReporting) bodyLen() (int, error)           { return 0, nil }
func (ResetReporting) encodeBody(*cursor.Writer) error { return nil }

func decodeResetReporting(body []byte) (Message, error) {
	if err := requireEmptyBody(body); err != nil {
		return nil, err
	}

	return ResetReporting{}, nil
}

// PeriodicAttribute is a device-initiated report pushed per a prior
// ConfigureReporting request. Unlike GetAttributeResponse it carries no
// reporting metadata, only the id and the current value.
type PeriodicAttribute struct {
	AttributeID uint8
	Value       attr.Value
}

func (PeriodicAttribute) Type() TypeCode { return TypePeriodicAttribute }

func (m PeriodicAttribute) bodyLen() (int, error) {
	w, err := attr.Width(m.AttributeID)
	if err != nil {
		return 0, err
	}

	return 1 + w, nil
}

func (m PeriodicAttribute) encodeBody(w *cursor.Writer) error {
	w.WriteU8(m.AttributeID)

	return attr.EncodeToWriter(m.AttributeID, m.Value, w)
}

func decodePeriodicAttribute(body []byte) (Message, error) {
	r := cursor.NewReader(body)

	id, err := r.ReadU8("attribute_id")
	if err != nil {
		return nil, err
	}

	v, err := attr.DecodeFromReader(id, r)
	if err != nil {
		return nil, err
	}

	if err := requireConsumedAll(r); err != nil {
		return nil, err
	}

	return PeriodicAttribute{AttributeID: id, Value: v}, nil
}
