package cycling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutes(t *testing.T) {
	assert.Equal(t, 0, Minutes(0))
	assert.Equal(t, 0, Minutes(-1))
	// 16 km/h: 4 km -> 15 dk.
	assert.Equal(t, 15, Minutes(4))
	// Çok kısa mesafe en az 1 dk.
	assert.Equal(t, 1, Minutes(0.05))
}

func TestEstimates(t *testing.T) {
	est := Estimates(8) // baz 30 dk
	require.NotNil(t, est)
	assert.Equal(t, 30, est.SoberMinutes)
	assert.Equal(t, 45, est.LagomMinutes)
	assert.Equal(t, 75, est.PartyMinutes)
}

func TestEstimatesUnknownDistance(t *testing.T) {
	assert.Nil(t, Estimates(0))
}

func TestHaversineKm(t *testing.T) {
	// Göteborg merkez -> Majorna, yaklaşık 2.5 km.
	d := HaversineKm(57.7089, 11.9746, 57.6953, 11.9155)
	assert.InDelta(t, 3.8, d, 0.6)

	// Aynı nokta.
	assert.InDelta(t, 0, HaversineKm(57.7, 11.9, 57.7, 11.9), 1e-9)
}
