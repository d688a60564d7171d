package message

import (
	"testing"

	"github.com/aidee-health/embodycodec/attr"
	"github.com/stretchr/testify/require"
)

func TestConfigureReportingRoundTrip(t *testing.T) {
	in := ConfigureReporting{AttributeID: 0x10, IntervalMs: 500, OnChange: true}
	body := encodeBody(t, in)

	out, err := decodeConfigureReporting(body)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestResetReportingRoundTrip(t *testing.T) {
	out, err := decodeResetReporting(nil)
	require.NoError(t, err)
	require.Equal(t, ResetReporting{}, out)
}

func TestPeriodicAttributeRoundTrip(t *testing.T) {
	in := PeriodicAttribute{AttributeID: 0x01, Value: attr.UInt8(50)}
	body := encodeBody(t, in)

	out, err := decodePeriodicAttribute(body)
	require.NoError(t, err)
	require.Equal(t, in, out)
}
