package cable

import (
	"testing"

	"github.com/alexiusacademia/gocable/internal/is7098"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseRequest() Request {
	return Request{
		Current:        63,
		Conductor:      is7098.Copper,
		Installation:   is7098.Ground,
		Length:         50,
		DeratingFactor: 1.0,
		MaxDropPercent: 3.0,
		Voltage:        415,
	}
}

// 63 A over 50 m of buried copper: 10 mm² covers the current exactly
// (63 A ground rating) but drops 3.34%, so the scan advances to 16 mm²
// (85 A, 2.09%).
func TestSelectWorkedExample(t *testing.T) {
	res, err := Select(baseRequest())
	require.NoError(t, err)

	require.True(t, res.Found)
	assert.Equal(t, 16.0, res.Size)
	assert.Equal(t, 85.0, res.DeratedCapacity)
	assert.Equal(t, 2.09, res.DropPercent)
	assert.Equal(t, 173.25, res.DropPerMetre)
	assert.Equal(t, 3.0, res.MaxDropPercent)
}

// A derated capacity exactly equal to the load current still qualifies.
func TestSelectCapacityBoundary(t *testing.T) {
	req := baseRequest()
	req.Length = 10 // short enough that 10 mm² also passes voltage drop

	res, err := Select(req)
	require.NoError(t, err)

	require.True(t, res.Found)
	assert.Equal(t, 10.0, res.Size)
	assert.Equal(t, 63.0, res.DeratedCapacity)
	assert.LessOrEqual(t, res.DropPercent, req.MaxDropPercent)
}

func TestSelectMonotonicInCurrent(t *testing.T) {
	req := baseRequest()
	req.Length = 10
	req.MaxDropPercent = 5.0

	prevSize := 0.0
	for current := 5.0; current <= 540; current += 5 {
		req.Current = current
		res, err := Select(req)
		require.NoError(t, err)
		require.True(t, res.Found, "current %.0f A", current)
		assert.GreaterOrEqual(t, res.Size, prevSize,
			"selected size must not shrink as current grows (%.0f A)", current)
		prevSize = res.Size
	}
}

// Every successful selection satisfies its two defining invariants.
func TestSelectInvariants(t *testing.T) {
	for _, conductor := range []is7098.Conductor{is7098.Copper, is7098.Aluminium} {
		for _, method := range []is7098.Installation{is7098.Ground, is7098.FreeAir, is7098.PipeDuct} {
			for _, current := range []float64{5, 20, 63, 150, 300} {
				for _, length := range []float64{10, 50, 120} {
					req := Request{
						Current:        current,
						Conductor:      conductor,
						Installation:   method,
						Length:         length,
						DeratingFactor: 0.8,
						MaxDropPercent: 4.0,
						Voltage:        415,
					}
					res, err := Select(req)
					require.NoError(t, err)
					if !res.Found {
						continue
					}
					assert.GreaterOrEqual(t, res.DeratedCapacity, current,
						"%s/%s %0.f A %0.f m", conductor, method, current, length)
					assert.LessOrEqual(t, res.DropPercent, req.MaxDropPercent,
						"%s/%s %0.f A %0.f m", conductor, method, current, length)
				}
			}
		}
	}
}

func TestSelectNotFoundCapacityExhausted(t *testing.T) {
	req := baseRequest()
	req.Current = 1000 // beyond the 400 mm² rating in any method

	res, err := Select(req)
	require.NoError(t, err)

	assert.False(t, res.Found)
	assert.Zero(t, res.Size)
	assert.NotEmpty(t, res.Reason)
	assert.Equal(t, 3.0, res.MaxDropPercent)
	assert.Len(t, res.Remedies(), 4)
}

func TestSelectNotFoundDropBound(t *testing.T) {
	req := baseRequest()
	req.Current = 50
	req.Length = 5000
	req.MaxDropPercent = 1.0

	// Capacity is satisfied from 6 mm² up, but even 400 mm² drops more
	// than 1% over five kilometres.
	res, err := Select(req)
	require.NoError(t, err)

	assert.False(t, res.Found)
	assert.Equal(t, 1.0, res.MaxDropPercent)
}

func TestSelectIdempotent(t *testing.T) {
	req := baseRequest()

	first, err := Select(req)
	require.NoError(t, err)
	second, err := Select(req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSelectValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
		param  string
	}{
		{"bad conductor", func(r *Request) { r.Conductor = "Fe" }, "conductor material"},
		{"bad method", func(r *Request) { r.Installation = "tray" }, "installation method"},
		{"non-positive current", func(r *Request) { r.Current = 0 }, "current"},
		{"non-positive length", func(r *Request) { r.Length = -1 }, "length"},
		{"zero derating", func(r *Request) { r.DeratingFactor = 0 }, "derating factor"},
		{"derating above one", func(r *Request) { r.DeratingFactor = 1.2 }, "derating factor"},
		{"non-positive drop limit", func(r *Request) { r.MaxDropPercent = 0 }, "max voltage drop"},
		{"bad voltage", func(r *Request) { r.Voltage = 110 }, "voltage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mutate(&req)

			_, err := Select(req)
			require.Error(t, err)

			var ipe *InvalidParameterError
			require.ErrorAs(t, err, &ipe)
			assert.Equal(t, tt.param, ipe.Param)
		})
	}
}
