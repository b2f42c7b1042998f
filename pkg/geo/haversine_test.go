package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm_SamePoint(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{28.6139, 77.2090},
		{-33.8688, 151.2093},
		{90, 0},
		{-90, 180},
	}
	for _, p := range points {
		d := HaversineKm(p[0], p[1], p[0], p[1])
		assert.Zero(t, d)
		assert.Equal(t, "0.00 km", FormatKm(d))
	}
}

func TestHaversineKm_NewDelhi(t *testing.T) {
	d := HaversineKm(28.6139, 77.2090, 28.6200, 77.2100)

	assert.InDelta(t, 0.6853, d, 0.0005)
	assert.Equal(t, "0.69 km", FormatKm(d))
}

func TestHaversineKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		delta                  float64
	}{
		{"one degree of longitude on equator", 0, 0, 0, 1, 111.195, 0.01},
		{"one degree of latitude", 0, 0, 1, 0, 111.195, 0.01},
		{"London to New York", 51.5007, 0.1246, 40.6892, -74.0445, 5591.2, 1},
		{"antipodal points", 0, 0, 0, 180, math.Pi * EarthRadiusKm, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, HaversineKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2), tt.delta)
		})
	}
}

func TestHaversineKm_Symmetric(t *testing.T) {
	a := HaversineKm(28.6139, 77.2090, 19.0760, 72.8777)
	b := HaversineKm(19.0760, 72.8777, 28.6139, 77.2090)
	assert.InDelta(t, a, b, 1e-9)
}

func TestFormatKm(t *testing.T) {
	assert.Equal(t, "2.35 km", FormatKm(2.3456))
	assert.Equal(t, "10.00 km", FormatKm(10))
	assert.Equal(t, "0.01 km", FormatKm(0.009))
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidLatitude(0))
	assert.True(t, ValidLatitude(-90))
	assert.True(t, ValidLatitude(90))
	assert.False(t, ValidLatitude(90.0001))
	assert.False(t, ValidLatitude(math.NaN()))
	assert.False(t, ValidLatitude(math.Inf(1)))

	assert.True(t, ValidLongitude(180))
	assert.True(t, ValidLongitude(-180))
	assert.False(t, ValidLongitude(-180.5))
	assert.False(t, ValidLongitude(math.Inf(-1)))
}
