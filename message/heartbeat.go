package message

import "github.com/aidee-health/embodycodec/cursor"

// Heartbeat is a keepalive sent by either side. Its body is always empty.
type Heartbeat struct{}

func (Heartbeat) Type() TypeCode                  { return TypeHeartbeat }
func (Heartbeat) bodyLen() (int, error)           { return 0, nil }
func (Heartbeat) encodeBody(*cursor.Writer) error { return nil }

func decodeHeartbeat(body []byte) (Message, error) {
	if err := requireEmptyBody(body); err != nil {
		return nil, err
	}

	return Heartbeat{}, nil
}

// HeartbeatResponse acknowledges a Heartbeat. Its body is always empty.
type HeartbeatResponse struct{}

func (HeartbeatResponse) Type() TypeCode                  { return TypeHeartbeatResponse }
func (HeartbeatResponse) bodyLen() (int, error)           { return 0, nil }
func (HeartbeatResponse) encodeBody(*cursor.Writer) error { return nil }

func decodeHeartbeatResponse(body []byte) (Message, error) {
	if err := requireEmptyBody(body); err != nil {
		return nil, err
	}

	return HeartbeatResponse{}, nil
}
