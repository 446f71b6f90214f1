package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gocable/internal/cable"
	"github.com/alexiusacademia/gocable/internal/is7098"
)

func profileRequest() cable.Request {
	return cable.Request{
		Current:        63,
		Conductor:      is7098.Copper,
		Installation:   is7098.Ground,
		Length:         50,
		DeratingFactor: 1.0,
		MaxDropPercent: 3.0,
		Voltage:        415,
	}
}

func TestDropProfile(t *testing.T) {
	profile, err := DropProfile(profileRequest())
	require.NoError(t, err)
	require.Len(t, profile, len(is7098.Sizes))

	// 10 mm² is index 4: 4.40 mV/A/m × 63 A × 50 m over 415 V
	assert.InDelta(t, 3.34, profile[4], 0.01)

	for i := 1; i < len(profile); i++ {
		assert.Less(t, profile[i], profile[i-1], "drop must shrink with cross-section")
	}
}

func TestDropProfileUnknownConductor(t *testing.T) {
	req := profileRequest()
	req.Conductor = "Fe"

	_, err := DropProfile(req)
	assert.Error(t, err)
}

func TestDrawDropProfile(t *testing.T) {
	out, err := DrawDropProfile(profileRequest())
	require.NoError(t, err)

	assert.Contains(t, out, "VOLTAGE DROP PROFILE")
	assert.Contains(t, out, "limit 3.0%")
	assert.Contains(t, out, "400")
}
