package message

import (
	"testing"

	"github.com/aidee-health/embodycodec/attr"
	"github.com/aidee-health/embodycodec/cursor"
	"github.com/aidee-health/embodycodec/errs"
	"github.com/stretchr/testify/require"
)

func encodeBody(t *testing.T, m Message) []byte {
	t.Helper()

	n, err := m.bodyLen()
	require.NoError(t, err)

	w := cursor.NewWriter(n)
	require.NoError(t, m.encodeBody(w))
	require.Equal(t, n, w.Pos())

	return w.Bytes()
}

func TestSetAttributeRoundTrip(t *testing.T) {
	in := SetAttribute{AttributeID: 0x01, Value: attr.UInt8(40)}
	body := encodeBody(t, in)
	require.Equal(t, []byte{0x01, 40}, body)

	out, err := decodeSetAttribute(body)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestSetAttributeUnknownID(t *testing.T) {
	_, err := SetAttribute{AttributeID: 0xFE, Value: attr.UInt8(1)}.bodyLen()
	require.ErrorIs(t, err, errs.ErrUnknownAttribute)
}

func TestGetAttributeRoundTrip(t *testing.T) {
	in := GetAttribute{AttributeID: 0x10}
	body := encodeBody(t, in)

	out, err := decodeGetAttribute(body)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestGetAttributeResponseRoundTrip(t *testing.T) {
	in := GetAttributeResponse{
		AttributeID:         0xA1,
		ChangedAt:           123456,
		ReportingOn:         true,
		ReportingIntervalMs: 1000,
		Value:               attr.UInt8(85),
	}
	body := encodeBody(t, in)

	out, err := decodeGetAttributeResponse(body)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestResetAttributeRoundTrip(t *testing.T) {
	in := ResetAttribute{AttributeID: 0x02}
	body := encodeBody(t, in)

	out, err := decodeResetAttribute(body)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestSetAttributeResponseTrailingGarbage(t *testing.T) {
	body := append(encodeBody(t, SetAttributeResponse{AttributeID: 0x01, Value: attr.UInt8(1)}), 0xFF)

	_, err := decodeSetAttributeResponse(body)
	require.ErrorIs(t, err, errs.ErrTrailingGarbage)
}
