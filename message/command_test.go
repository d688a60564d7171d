package message

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExecuteCommandRoundTrip(t *testing.T) {
	in := ExecuteCommand{Cmd: 1, Payload: []byte{0xDE, 0xAD}}
	body := encodeBody(t, in)

	out, err := decodeExecuteCommand(body)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestExecuteCommandResponseRoundTrip(t *testing.T) {
	in := ExecuteCommandResponse{Cmd: 1, Status: 0, Payload: []byte{}}
	body := encodeBody(t, in)

	out, err := decodeExecuteCommandResponse(body)
	require.NoError(t, err)
	require.Equal(t, in, out)
}
