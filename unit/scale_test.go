package unit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScaleRoundTrip(t *testing.T) {
	s := Scale{Factor: 0.01}

	wire, err := s.ToWire(21.37, -32768, 32767, "temperature")
	require.NoError(t, err)
	require.Equal(t, int64(2137), wire)
	require.InDelta(t, 21.37, s.ToPhysical(wire), 1e-9)
}

func TestScaleRoundHalfToEven(t *testing.T) {
	s := Scale{Factor: 1}

	// 2.5 rounds to 2, 3.5 rounds to 4 under round-half-to-even.
	wire, err := s.ToWire(2.5, 0, 10, "x")
	require.NoError(t, err)
	require.Equal(t, int64(2), wire)

	wire, err = s.ToWire(3.5, 0, 10, "x")
	require.NoError(t, err)
	require.Equal(t, int64(4), wire)
}

func TestScaleOutOfRange(t *testing.T) {
	s := Scale{Factor: 1}

	_, err := s.ToWire(1000, 0, 255, "battery_voltage")
	require.Error(t, err)
}

func TestUnitString(t *testing.T) {
	require.Equal(t, "%", Percent.String())
	require.Equal(t, "unknown", Unit(255).String())
}
