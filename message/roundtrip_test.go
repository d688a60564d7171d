package message

import (
	"testing"

	"github.com/aidee-health/embodycodec/attr"
	"github.com/aidee-health/embodycodec/enumreg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// TestRoundTripEveryVariant exercises invariant 1 of spec §8 at the
// message-body layer (the frame-level equivalent lives in
// frame.TestRoundTripAllVariants): every variant's EncodeBody output
// decodes back to a value with no semantic difference from the original.
//
// cmp.Diff is used instead of testify's Equal for this one table because a
// field-by-field diff is the only readable way to see which of these
// dozens of multi-field variants actually regressed when one does.
func TestRoundTripEveryVariant(t *testing.T) {
	cases := []Message{
		Heartbeat{},
		HeartbeatResponse{},
		NackResponse{ErrorCode: 0x02},
		SetAttribute{AttributeID: 0x01, Value: attr.UInt8(42)},
		SetAttributeResponse{AttributeID: 0x01, Value: attr.UInt8(42)},
		GetAttribute{AttributeID: 0x01},
		GetAttributeResponse{
			AttributeID:         0xA1,
			ChangedAt:           123,
			ReportingOn:         true,
			ReportingIntervalMs: 60,
			Value:               attr.UInt8(85),
		},
		ResetAttribute{AttributeID: 0x01},
		ConfigureReporting{AttributeID: 0x01, IntervalMs: 1000, OnChange: true},
		ResetReporting{},
		PeriodicAttribute{AttributeID: 0x20, Value: attr.Accelerometer{X: 1, Y: -2, Z: 3}},
		ListFiles{},
		ListFilesResponse{Entries: []FileEntry{
			{Name: "log0.bin", Size: 128},
			{Name: "log1.bin", Size: 256},
		}},
		GetFileUart{Name: "log0.bin"},
		GetFileUartResponse{Name: "log0.bin", Size: 3, Payload: []byte{1, 2, 3}},
		DeleteFile{Name: "log0.bin"},
		DeleteAllFiles{},
		ReformatDisk{},
		ExecuteCommand{Cmd: 0x01, Payload: []byte{0xAA, 0xBB}},
		ExecuteCommandResponse{Cmd: 0x01, Status: 0, Payload: nil},
		FirmwareUpdate{State: enumreg.FirmwareDownloading, Progress: 50},
		AlarmEvent{Code: 3, Timestamp: 1700000000000},
		RawPulseChanged{Timestamp: 1700000000000, Pulse: 720},
		SensorData{Timestamp: 1700000000000, Values: []int16{-100, 0, 100}},
	}

	for _, in := range cases {
		body, err := EncodeBody(in)
		require.NoErrorf(t, err, "%T", in)

		out, err := DecodeBody(in.Type(), body)
		require.NoErrorf(t, err, "%T", in)

		if diff := cmp.Diff(in, out, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%T round-trip mismatch (-want +got):\n%s", in, diff)
		}
	}
}

// TestExecuteCommandResponseEmptyPayloadRoundTrips pins the edge case
// where an empty payload decodes back as an empty (not nil) slice, since
// ReadBytes(0, ...) allocates a zero-length slice rather than returning
// nil, and cmp treats the two as different.
func TestExecuteCommandResponseEmptyPayloadRoundTrips(t *testing.T) {
	in := ExecuteCommandResponse{Cmd: 1, Status: 0, Payload: []byte{}}

	body, err := EncodeBody(in)
	require.NoError(t, err)

	out, err := DecodeBody(TypeExecuteCommandResponse, body)
	require.NoError(t, err)
	require.Equal(t, in, out)
}
