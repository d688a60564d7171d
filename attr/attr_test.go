package attr

import (
	"testing"

	"github.com/aidee-health/embodycodec/enumreg"
	"github.com/aidee-health/embodycodec/errs"
	"github.com/aidee-health/embodycodec/unit"
	"github.com/stretchr/testify/require"
)

func TestBatteryLevelRoundTrip(t *testing.T) {
	encoded, err := Encode(0xA1, UInt8(85))
	require.NoError(t, err)
	require.Equal(t, []byte{85}, encoded)

	v, n, err := Decode(0xA1, encoded)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, UInt8(85), v)
}

func TestScaledVoltageRoundTrip(t *testing.T) {
	encoded, err := Encode(0x02, Scaled{Physical: 3700, Unit: unit.Millivolt})
	require.NoError(t, err)
	require.Len(t, encoded, 2)

	v, n, err := Decode(0x02, encoded)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.InDelta(t, 3700.0, v.(Scaled).Physical, 10)
}

func TestAccelerometerRoundTrip(t *testing.T) {
	in := Accelerometer{X: -100, Y: 200, Z: 16384}
	encoded, err := Encode(0x20, in)
	require.NoError(t, err)
	require.Len(t, encoded, 6)

	v, n, err := Decode(0x20, encoded)
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, in, v)
}

func TestPulseAggregateRoundTrip(t *testing.T) {
	in := PulseAggregate{BPM: 72, ConfidencePct: 98}
	encoded, err := Encode(0x12, in)
	require.NoError(t, err)

	v, n, err := Decode(0x12, encoded)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, in, v)
}

func TestChargeStateRoundTrip(t *testing.T) {
	in := ChargeStateValue{Value: enumreg.ChargeCharging}
	encoded, err := Encode(0x03, in)
	require.NoError(t, err)
	require.Equal(t, []byte{2}, encoded)

	v, _, err := Decode(0x03, encoded)
	require.NoError(t, err)
	require.Equal(t, in, v)
}

func TestChargeStateUnknownCode(t *testing.T) {
	_, _, err := Decode(0x03, []byte{0xFF})
	require.ErrorIs(t, err, errs.ErrUnknownEnumValue)
}

func TestUnknownAttribute(t *testing.T) {
	_, _, err := Decode(0xFE, []byte{0x00})
	require.ErrorIs(t, err, errs.ErrUnknownAttribute)
}

func TestDecodeTruncated(t *testing.T) {
	_, _, err := Decode(0x20, []byte{0x00, 0x01})
	require.ErrorIs(t, err, errs.ErrTruncated)
}

func TestEncodeWrongValueType(t *testing.T) {
	_, err := Encode(0xA1, Scaled{Physical: 1})
	require.ErrorIs(t, err, errs.ErrRangeError)
}

// TestAttributeWidthCoherence exercises spec §8 invariant 5: encoding the
// decoded value of every registered attribute reproduces exactly the
// bytes_consumed the decode reported.
func TestAttributeWidthCoherence(t *testing.T) {
	fixtures := map[uint8][]byte{
		0x01: {50},
		0x02: {0x01, 0x2C},
		0x03: {1},
		0x10: {60},
		0x11: {0x00, 0x0A},
		0x12: {72, 95},
		0x20: {0x00, 0x01, 0x00, 0x02, 0x00, 0x03},
		0x21: {0x08, 0x34},
		0x30: {2},
		0x40: {0x00, 0x00, 0x01, 0x00},
		0x41: {0x3F, 0x80, 0x00, 0x00},
		0x42: {0, 0, 0, 0, 0, 0, 0, 1},
		0xA1: {85},
	}

	for id, data := range fixtures {
		v, n, err := Decode(id, data)
		require.NoErrorf(t, err, "id %#02x", id)

		reenc, err := Encode(id, v)
		require.NoErrorf(t, err, "id %#02x", id)
		require.Lenf(t, reenc, n, "id %#02x", id)
	}
}

func TestWidthLookup(t *testing.T) {
	w, err := Width(0x20)
	require.NoError(t, err)
	require.Equal(t, 6, w)

	_, err = Width(0xFE)
	require.ErrorIs(t, err, errs.ErrUnknownAttribute)
}

func TestAllIsSortedAndTotal(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	for i := 1; i < len(all); i++ {
		require.Less(t, all[i-1].ID, all[i].ID)
	}

	d, ok := Lookup(0xA1)
	require.True(t, ok)
	require.Contains(t, all, d)
}
