package message

import "github.com/aidee-health/embodycodec/cursor"

// NackResponse reports that a preceding request could not be satisfied.
type NackResponse struct {
	ErrorCode uint8
}

func (NackResponse) Type() TypeCode        { return TypeNackResponse }
func (NackResponse) bodyLen() (int, error) { return 1, nil }

func (m NackResponse) encodeBody(w *cursor.Writer) error {
	w.WriteU8(m.ErrorCode)

	return nil
}

func decodeNackResponse(body []byte) (Message, error) {
	r := cursor.NewReader(body)

	code, err := r.ReadU8("error_code")
	if err != nil {
		return nil, err
	}

	if err := requireConsumedAll(r); err != nil {
		return nil, err
	}

	return NackResponse{ErrorCode: code}, nil
}
