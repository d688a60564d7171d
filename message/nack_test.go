package message

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNackResponseRoundTrip(t *testing.T) {
	in := NackResponse{ErrorCode: 2}
	body := encodeBody(t, in)
	require.Equal(t, []byte{2}, body)

	out, err := decodeNackResponse(body)
	require.NoError(t, err)
	require.Equal(t, in, out)
}
