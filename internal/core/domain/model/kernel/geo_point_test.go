package kernel_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr string
	}{
		{name: "city centre", lat: 40.7128, lng: -74.0060},
		{name: "lower bounds", lat: kernel.LatitudeMin, lng: kernel.LongitudeMin},
		{name: "upper bounds", lat: kernel.LatitudeMax, lng: kernel.LongitudeMax},
		{name: "latitude too large", lat: 90.5, lng: 0, wantErr: "lat is 90.5"},
		{name: "longitude too small", lat: 0, lng: -180.1, wantErr: "lng is -180.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := kernel.NewGeoPoint(tt.lat, tt.lng)

			if tt.wantErr != "" {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NoError(t, p.Validate())
			assert.InDelta(t, tt.lat, p.Lat(), 1e-9)
			assert.InDelta(t, tt.lng, p.Lng(), 1e-9)
		})
	}

	t.Run("reports both coordinates at once", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(100, 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "lat")
		assert.Contains(t, err.Error(), "lng")
	})
}

func TestGeoPoint_ZeroValue(t *testing.T) {
	var p kernel.GeoPoint

	assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, p.Validate())
}
