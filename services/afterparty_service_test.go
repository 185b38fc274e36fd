package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuvert.link/models"
)

var partyTime = time.Date(2026, 5, 16, 23, 0, 0, 0, time.UTC)

func partyDetail() *models.EventDetail {
	at := partyTime
	return &models.EventDetail{
		City:                "Göteborg",
		AfterpartyTime:      &at,
		AfterpartyBYOB:      true,
		AfterpartyNotes:     "Ta med egen dryck!",
		AfterpartyLat:       ptrFloat(57.69923),
		AfterpartyLng:       ptrFloat(11.93651),
		AfterpartyDoorCode:  "1873",
		AfterpartyHostNames: models.StringList{"Festkommittén"},
	}
}

func ptrFloat(v float64) *float64 { return &v }

func partyViewer() *models.Pair {
	viewer := &models.Pair{Name: "Anna"}
	viewer.ID = 1
	viewer.StreetInfo = &models.StreetInfo{Lat: 57.6953, Lng: 11.9155}
	return viewer
}

// Otomatik pencere: manuel override yokken TEASING = T-30dk, OPEN = T.
func TestAfterpartyAutoWindow(t *testing.T) {
	svc := NewAfterpartyService()
	detail := partyDetail()
	viewer := partyViewer()

	// T - 40dk: henüz LOCKED.
	d := svc.BuildDisclosure(detail, viewer, partyTime.Add(-40*time.Minute))
	assert.Equal(t, "LOCKED", d.State)
	assert.Nil(t, d.StartsAt)
	assert.Nil(t, d.BYOB)
	assert.Nil(t, d.Notes)
	require.NotNil(t, d.NextReveal)
	assert.Equal(t, "TEASING", d.NextReveal.Type)

	// T - 10dk: 30 dakikalık pencere içinde, TEASING.
	d = svc.BuildDisclosure(detail, viewer, partyTime.Add(-10*time.Minute))
	assert.Equal(t, "TEASING", d.State)
	require.NotNil(t, d.StartsAt)
	assert.Equal(t, partyTime, *d.StartsAt)
	require.NotNil(t, d.BYOB)
	assert.True(t, *d.BYOB)
	require.NotNil(t, d.Notes)
	assert.Nil(t, d.FullAddress)
	assert.Nil(t, d.Zone)

	// T + 1s: OPEN.
	d = svc.BuildDisclosure(detail, viewer, partyTime.Add(time.Second))
	assert.Equal(t, "OPEN", d.State)
	require.NotNil(t, d.FullAddress)
	assert.Equal(t, []string{"Festkommittén"}, []string(d.HostNames))
}

// Zon aşamaları sadece organizatör açıkça zamanlarsa görünür; durum adları
// ZONE ve CLOSING_IN olarak sunulur.
func TestAfterpartyZoneStages(t *testing.T) {
	svc := NewAfterpartyService()
	detail := partyDetail()
	zoneAt := partyTime.Add(-25 * time.Minute)
	closingAt := partyTime.Add(-10 * time.Minute)
	detail.AfterpartyZoneAt = &zoneAt
	detail.AfterpartyClosingAt = &closingAt

	d := svc.BuildDisclosure(detail, partyViewer(), partyTime.Add(-20*time.Minute))
	assert.Equal(t, "ZONE", d.State)
	require.NotNil(t, d.Zone)
	assert.Equal(t, 500, d.Zone.RadiusM)
	// Merkez yuvarlanır; tam nokta taşınmaz.
	assert.Equal(t, 57.699, d.Zone.Center.Lat)
	assert.Equal(t, 11.937, d.Zone.Center.Lng)
	require.NotNil(t, d.NextReveal)
	assert.Equal(t, "CLOSING_IN", d.NextReveal.Type)

	d = svc.BuildDisclosure(detail, partyViewer(), partyTime.Add(-5*time.Minute))
	assert.Equal(t, "CLOSING_IN", d.State)
	require.NotNil(t, d.Zone)
	assert.Equal(t, 100, d.Zone.RadiusM)
	assert.Nil(t, d.FullAddress)
}

func TestAfterpartyOpenEstimates(t *testing.T) {
	svc := NewAfterpartyService()

	d := svc.BuildDisclosure(partyDetail(), partyViewer(), partyTime.Add(time.Minute))
	require.Equal(t, "OPEN", d.State)
	require.NotNil(t, d.CyclingEstimate)
	assert.Greater(t, d.CyclingEstimate.SoberMinutes, 0)
	assert.GreaterOrEqual(t, d.CyclingEstimate.LagomMinutes, d.CyclingEstimate.SoberMinutes)
	assert.GreaterOrEqual(t, d.CyclingEstimate.PartyMinutes, d.CyclingEstimate.LagomMinutes)
	require.NotNil(t, d.CyclingMeters)
	assert.Greater(t, *d.CyclingMeters, 0)
	require.NotNil(t, d.FullAddress)
	require.NotNil(t, d.FullAddress.Coordinates)
	assert.Equal(t, 57.69923, d.FullAddress.Coordinates.Lat)
	require.NotNil(t, d.FullAddress.DoorCode)
	assert.Equal(t, "1873", *d.FullAddress.DoorCode)
}

// Manuel override'lar otomatik türetmeden öncelikli.
func TestAfterpartyManualOverrides(t *testing.T) {
	svc := NewAfterpartyService()
	detail := partyDetail()
	teasing := partyTime.Add(-2 * time.Hour)
	revealed := partyTime.Add(time.Hour)
	detail.AfterpartyTeasingAt = &teasing
	detail.AfterpartyRevealedAt = &revealed

	// Otomatik pencere (T-30dk) içinde ama manuel open henüz gelmedi.
	d := svc.BuildDisclosure(detail, partyViewer(), partyTime.Add(-5*time.Minute))
	assert.Equal(t, "TEASING", d.State)

	d = svc.BuildDisclosure(detail, partyViewer(), revealed)
	assert.Equal(t, "OPEN", d.State)
}

// Hiç yapılandırma yoksa efterfest LOCKED kalır ve hiçbir şey sızmaz.
func TestAfterpartyUnconfigured(t *testing.T) {
	svc := NewAfterpartyService()

	d := svc.BuildDisclosure(&models.EventDetail{}, partyViewer(), partyTime)
	assert.Equal(t, "LOCKED", d.State)
	assert.Nil(t, d.StartsAt)
	assert.Nil(t, d.NextReveal)
	assert.Nil(t, d.Zone)
	assert.Nil(t, d.FullAddress)
}

// Katılımcının adresi yoksa tahmin alanları null kalır, hata yok.
func TestAfterpartyViewerWithoutAddress(t *testing.T) {
	svc := NewAfterpartyService()
	viewer := &models.Pair{Name: "Erik"}

	d := svc.BuildDisclosure(partyDetail(), viewer, partyTime.Add(time.Minute))
	assert.Equal(t, "OPEN", d.State)
	assert.Nil(t, d.CyclingEstimate)
	assert.Nil(t, d.CyclingMeters)
}
