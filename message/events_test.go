package message

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlarmEventRoundTrip(t *testing.T) {
	in := AlarmEvent{Code: 3, Timestamp: 1700000000000}
	body := encodeBody(t, in)

	out, err := decodeAlarmEvent(body)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestRawPulseChangedRoundTrip(t *testing.T) {
	in := RawPulseChanged{Timestamp: 42, Pulse: 512}
	body := encodeBody(t, in)

	out, err := decodeRawPulseChanged(body)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestSensorDataRoundTrip(t *testing.T) {
	in := SensorData{Timestamp: 99, Values: []int16{-1, 0, 1, 32767, -32768}}
	body := encodeBody(t, in)

	out, err := decodeSensorData(body)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestSensorDataEmpty(t *testing.T) {
	in := SensorData{Timestamp: 1, Values: []int16{}}
	body := encodeBody(t, in)

	out, err := decodeSensorData(body)
	require.NoError(t, err)
	require.Equal(t, in, out)
}
