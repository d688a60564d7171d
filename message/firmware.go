package message

import (
	"github.com/aidee-health/embodycodec/cursor"
	"github.com/aidee-health/embodycodec/enumreg"
)

// FirmwareUpdate reports the device's current firmware update state and
// its progress through that state, as a percentage.
type FirmwareUpdate struct {
	State    enumreg.FirmwareState
	Progress uint8
}

func (FirmwareUpdate) Type() TypeCode        { return TypeFirmwareUpdate }
func (FirmwareUpdate) bodyLen() (int, error) { return 2, nil }

func (m FirmwareUpdate) encodeBody(w *cursor.Writer) error {
	code, err := enumreg.FirmwareStates.Encode(m.State)
	if err != nil {
		return err
	}

	w.WriteU8(code)
	w.WriteU8(m.Progress)

	return nil
}

func decodeFirmwareUpdate(body []byte) (Message, error) {
	r := cursor.NewReader(body)

	code, err := r.ReadU8("state")
	if err != nil {
		return nil, err
	}

	state, err := enumreg.FirmwareStates.Decode(code)
	if err != nil {
		return nil, err
	}

	progress, err := r.ReadU8("progress")
	if err != nil {
		return nil, err
	}

	if err := requireConsumedAll(r); err != nil {
		return nil, err
	}

	return FirmwareUpdate{State: state, Progress: progress}, nil
}
