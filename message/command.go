package message

import "github.com/aidee-health/embodycodec/cursor"

// ExecuteCommand invokes device-specific command Cmd with an
// opaque Payload occupying the rest of the body.
type ExecuteCommand struct {
	Cmd     uint8
	Payload []byte
}

func (ExecuteCommand) Type() TypeCode { return TypeExecuteCommand }

func (m ExecuteCommand) bodyLen() (int, error) {
	return 1 + len(m.Payload), nil
}

func (m ExecuteCommand) encodeBody(w *cursor.Writer) error {
	w.WriteU8(m.Cmd)
	w.WriteBytes(m.Payload)

	return nil
}

func decodeExecuteCommand(body []byte) (Message, error) {
	r := cursor.NewReader(body)

	cmd, err := r.ReadU8("cmd")
	if err != nil {
		return nil, err
	}

	payload, err := r.ReadBytes(r.Remaining(), "payload")
	if err != nil {
		return nil, err
	}

	return ExecuteCommand{Cmd: cmd, Payload: payload}, nil
}

// ExecuteCommandResponse reports the outcome of a preceding ExecuteCommand.
type ExecuteCommandResponse struct {
	Cmd     uint8
	Status  uint8
	Payload []byte
}

func (ExecuteCommandResponse) Type() TypeCode { return TypeExecuteCommandResponse }

func (m ExecuteCommandResponse) bodyLen() (int, error) {
	return 2 + len(m.Payload), nil
}

func (m ExecuteCommandResponse) encodeBody(w *cursor.Writer) error {
	w.WriteU8(m.Cmd)
	w.WriteU8(m.Status)
	w.WriteBytes(m.Payload)

	return nil
}

func decodeExecuteCommandResponse(body []byte) (Message, error) {
	r := cursor.NewReader(body)

	cmd, err := r.ReadU8("cmd")
	if err != nil {
		return nil, err
	}

	status, err := r.ReadU8("status")
	if err != nil {
		return nil, err
	}

	payload, err := r.ReadBytes(r.Remaining(), "payload")
	if err != nil {
		return nil, err
	}

	return ExecuteCommandResponse{Cmd: cmd, Status: status, Payload: payload}, nil
}
