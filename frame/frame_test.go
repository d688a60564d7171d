package frame

import (
	"testing"

	"github.com/aidee-health/embodycodec/message"
	"github.com/stretchr/testify/require"
)

func TestHeartbeatGoldenFrame(t *testing.T) {
	out, err := Encode(message.Heartbeat{})
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x00, 0x05}, out[:3])

	crc := crc16XModem(out[:3])
	require.Equal(t, byte(crc>>8), out[3])
	require.Equal(t, byte(crc), out[4])

	outcome := Decode(out)
	require.Equal(t, OutcomeFrame, outcome.Kind)
	require.Equal(t, 5, outcome.Consumed)
	require.Equal(t, message.Heartbeat{}, outcome.Message)
}

func TestNeedMoreBytesForHeader(t *testing.T) {
	outcome := Decode([]byte{0x01, 0x00})
	require.Equal(t, OutcomeNeed, outcome.Kind)
	require.Equal(t, 1, outcome.NeedBytes)
}

func TestNeedMoreBytesForBody(t *testing.T) {
	out, err := Encode(message.NackResponse{ErrorCode: 1})
	require.NoError(t, err)

	outcome := Decode(out[:3])
	require.Equal(t, OutcomeNeed, outcome.Kind)
	require.Equal(t, len(out)-3, outcome.NeedBytes)
}

func TestInvalidLengthTooSmallResyncsPastHeader(t *testing.T) {
	raw := []byte{0x01, 0x00, 0x04, 0x00, 0x00}
	outcome := Decode(raw)
	require.Equal(t, OutcomeErr, outcome.Kind)
	require.Equal(t, HeaderLen, outcome.Consumed)
}

func TestInvalidLengthTooLargeResyncsPastHeader(t *testing.T) {
	raw := []byte{0x01, 0xFF, 0xFF, 0x00, 0x00}
	outcome := Decode(raw)
	require.Equal(t, OutcomeErr, outcome.Kind)
	require.Equal(t, HeaderLen, outcome.Consumed)
}

func TestCrcMismatchConsumesWholeFrame(t *testing.T) {
	out, err := Encode(message.NackResponse{ErrorCode: 0x02})
	require.NoError(t, err)
	require.Len(t, out, 6)

	out[len(out)-1] ^= 0xFF
	outcome := Decode(out)
	require.Equal(t, OutcomeErr, outcome.Kind)
	require.Equal(t, len(out), outcome.Consumed)
}

func TestUnknownMessageTypeStillConsumesFrame(t *testing.T) {
	body := []byte{0xFE, 0x00, 0x05}
	crc := crc16XModem(body)
	raw := append(append([]byte{}, body...), byte(crc>>8), byte(crc))

	outcome := Decode(raw)
	require.Equal(t, OutcomeErr, outcome.Kind)
	require.Equal(t, 5, outcome.Consumed)
}

// TestRoundTripAllVariants exercises invariant 1 of spec §8: every valid
// message, once encoded, decodes back to an equal value consuming exactly
// the encoded length.
func TestRoundTripAllVariants(t *testing.T) {
	msgs := []message.Message{
		message.Heartbeat{},
		message.HeartbeatResponse{},
		message.NackResponse{ErrorCode: 7},
		message.ListFiles{},
		message.ListFilesResponse{Entries: []message.FileEntry{
			{Name: "a.log", Size: 10},
			{Name: "b.log", Size: 20},
		}},
		message.DeleteAllFiles{},
		message.ReformatDisk{},
		message.ResetReporting{},
	}

	for _, m := range msgs {
		out, err := Encode(m)
		require.NoError(t, err)

		outcome := Decode(out)
		require.Equal(t, OutcomeFrame, outcome.Kind)
		require.Equal(t, len(out), outcome.Consumed)
		require.Equal(t, m, outcome.Message)
	}
}

// TestLengthFieldMatchesFrameLength exercises invariant 4 of spec §8.
func TestLengthFieldMatchesFrameLength(t *testing.T) {
	out, err := Encode(message.NackResponse{ErrorCode: 9})
	require.NoError(t, err)

	length := int(out[1])<<8 | int(out[2])
	require.Equal(t, len(out), length)
}

// TestResyncAfterPrefix exercises invariant 3 of spec §8: decoding
// prefix||frame after dropping the prefix's Consumed bytes matches
// decoding frame alone.
func TestResyncAfterPrefix(t *testing.T) {
	valid, err := Encode(message.Heartbeat{})
	require.NoError(t, err)

	prefix := []byte{0xFE, 0x00, 0x05, 0x00, 0x00}
	combined := append(append([]byte{}, prefix...), valid...)

	first := Decode(combined)
	require.Equal(t, OutcomeErr, first.Kind)

	viaPrefix := Decode(combined[first.Consumed:])
	alone := Decode(valid)
	require.Equal(t, alone, viaPrefix)
}
