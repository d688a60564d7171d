package message

import (
	"github.com/aidee-health/embodycodec/attr"
	"github.com/aidee-health/embodycodec/cursor"
)

// SetAttribute requests that the device adopt value for the attribute
// identified by AttributeID.
type SetAttribute struct {
	AttributeID uint8
	Value       attr.Value
}

func (SetAttribute) Type() TypeCode { return TypeSetAttribute }

func (m SetAttribute) bodyLen() (int, error) {
	w, err := attr.Width(m.AttributeID)
	if err != nil {
		return 0, err
	}

	return 1 + w, nil
}

func (m SetAttribute) encodeBody(w *cursor.Writer) error {
	w.WriteU8(m.AttributeID)

	return attr.EncodeToWriter(m.AttributeID, m.Value, w)
}

func decodeSetAttribute(body []byte) (Message, error) {
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

	return SetAttribute{AttributeID: id, Value: v}, nil
}

// SetAttributeResponse acknowledges a SetAttribute with the value the
// device actually committed, which may differ from the request if the
// device clamped or rejected part of it.
type SetAttributeResponse struct {
	AttributeID uint8
	Value       attr.Value
}

func (SetAttributeResponse) Type() TypeCode { return TypeSetAttributeResponse }

func (m SetAttributeResponse) bodyLen() (int, error) {
	w, err := attr.Width(m.AttributeID)
	if err != nil {
		return 0, err
	}

	return 1 + w, nil
}

func (m SetAttributeResponse) encodeBody(w *cursor.Writer) error {
	w.WriteU8(m.AttributeID)

	return attr.EncodeToWriter(m.AttributeID, m.Value, w)
}

func decodeSetAttributeResponse(body []byte) (Message, error) {
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

	return SetAttributeResponse{AttributeID: id, Value: v}, nil
}

// GetAttribute requests the current value of the attribute identified by
// AttributeID. Its body carries only the id; the value comes back in a
// GetAttributeResponse.
type GetAttribute struct {
	AttributeID uint8
}

func (GetAttribute) Type() TypeCode        { return TypeGetAttribute }
func (GetAttribute) bodyLen() (int, error) { return 1, nil }

func (m GetAttribute) encodeBody(w *cursor.Writer) error {
	w.WriteU8(m.AttributeID)

	return nil
}

func decodeGetAttribute(body []byte) (Message, error) {
	r := cursor.NewReader(body)

	id, err := r.ReadU8("attribute_id")
	if err != nil {
		return nil, err
	}

	if err := requireConsumedAll(r); err != nil {
		return nil, err
	}

	return GetAttribute{AttributeID: id}, nil
}

// GetAttributeResponse carries the current value of the requested
// attribute along with the device's reporting configuration for it and
// the timestamp the value last changed.
type GetAttributeResponse struct {
	AttributeID         uint8
	ChangedAt           uint64 // milliseconds, wire-encoded as u48
	ReportingOn         bool
	ReportingIntervalMs uint16
	Value               attr.Value
}

func (GetAttributeResponse) Type() TypeCode { return TypeGetAttributeResponse }

func (m GetAttributeResponse) bodyLen() (int, error) {
	w, err := attr.Width(m.AttributeID)
	if err != nil {
		return 0, err
	}

	return 1 + 6 + 1 + 2 + w, nil
}

func (m GetAttributeResponse) encodeBody(w *cursor.Writer) error {
	w.WriteU8(m.AttributeID)

	if err := w.WriteU48(m.ChangedAt, "changed_at"); err != nil {
		return err
	}

	w.WriteU8(boolToU8(m.ReportingOn))
	w.WriteU16(m.ReportingIntervalMs)

	return attr.EncodeToWriter(m.AttributeID, m.Value, w)
}

func decodeGetAttributeResponse(body []byte) (Message, error) {
	r := cursor.NewReader(body)

	id, err := r.ReadU8("attribute_id")
	if err != nil {
		return nil, err
	}

	changedAt, err := r.ReadU48("changed_at")
	if err != nil {
		return nil, err
	}

	reportingOn, err := r.ReadU8("reporting_on")
	if err != nil {
		return nil, err
	}

	interval, err := r.ReadU16("reporting_interval_ms")
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

	return GetAttributeResponse{
		AttributeID:         id,
		ChangedAt:           changedAt,
		ReportingOn:         reportingOn != 0,
		ReportingIntervalMs: interval,
		Value:               v,
	}, nil
}

// ResetAttribute asks the device to restore the attribute identified by
// AttributeID to its factory default. It carries no value.
type ResetAttribute struct {
	AttributeID uint8
}

func (ResetAttribute) Type() TypeCode        { return TypeResetAttribute }
func (ResetAttribute) bodyLen() (int, error) { return 1, nil }

func (m ResetAttribute) encodeBody(w *cursor.Writer) error {
	w.WriteU8(m.AttributeID)

	return nil
}

func decodeResetAttribute(body []byte) (Message, error) {
	r := cursor.NewReader(body)

	id, err := r.ReadU8("attribute_id")
	if err != nil {
		return nil, err
	}

	if err := requireConsumedAll(r); err != nil {
		return nil, err
	}

	return ResetAttribute{AttributeID: id}, nil
}
