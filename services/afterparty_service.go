package services

import (
	"math"
	"time"

	"kuvert.link/models"
	"kuvert.link/pkg/cycling"
	"kuvert.link/pkg/envelopestate"
)

// Efterfest anlatısının halka yarıçapları.
const (
	zoneRadiusM    = 500
	closingRadiusM = 100
)

// Otomatik türetme: TEASING, efterfest zamanından bu kadar önce başlar.
const afterpartyTeasingLead = 30 * time.Minute

// IAfterpartyService efterfest açığa çıkarmasını kurar.
type IAfterpartyService interface {
	BuildDisclosure(detail *models.EventDetail, viewer *models.Pair, now time.Time) CourseDisclosure
}

// AfterpartyService IAfterpartyService arayüzünü uygular. Saf; veri erişimi
// yok. Yemek turlarıyla aynı durum makinesi yeniden kullanılır; sadece
// sunum adları değişir (STREET -> ZONE, NUMBER -> CLOSING_IN).
type AfterpartyService struct{}

// NewAfterpartyService yeni bir AfterpartyService örneği oluşturur.
func NewAfterpartyService() IAfterpartyService {
	return &AfterpartyService{}
}

// Timestamps efterfest yapılandırmasından altı slotlu timestamp setini
// türetir. Manuel override'lar öncelikli; yoksa TEASING = T-30dk, OPEN = T.
// Zon aşamaları sadece organizatör açıkça zamanlarsa var olur.
func (s *AfterpartyService) timestamps(detail *models.EventDetail) envelopestate.Timestamps {
	ts := envelopestate.Timestamps{
		TeasingAt: detail.AfterpartyTeasingAt,
		StreetAt:  detail.AfterpartyZoneAt,
		NumberAt:  detail.AfterpartyClosingAt,
		OpenedAt:  detail.AfterpartyRevealedAt,
	}
	if detail.AfterpartyTime != nil {
		if ts.TeasingAt == nil {
			teasing := detail.AfterpartyTime.Add(-afterpartyTeasingLead)
			ts.TeasingAt = &teasing
		}
		if ts.OpenedAt == nil {
			ts.OpenedAt = detail.AfterpartyTime
		}
	}
	return ts
}

// BuildDisclosure efterfest turunun payload'ını üretir.
func (s *AfterpartyService) BuildDisclosure(detail *models.EventDetail, viewer *models.Pair, now time.Time) CourseDisclosure {
	disclosure := CourseDisclosure{
		Type:  string(models.CourseAfterparty),
		State: envelopestate.StateLocked.String(),
	}
	if detail == nil {
		return disclosure
	}

	ts := s.timestamps(detail)
	state := envelopestate.Compute(ts, now)
	disclosure.State = afterpartyStateName(state)

	if next := envelopestate.NextReveal(ts, state, now); next != nil {
		disclosure.NextReveal = &NextReveal{
			Type:      afterpartyStateName(next.State),
			At:        next.At,
			InSeconds: next.InSeconds,
		}
	}

	if state < envelopestate.StateTeasing {
		return disclosure
	}

	// TEASING ve sonrası: zaman, BYOB ve notlar görünür.
	disclosure.StartsAt = detail.AfterpartyTime
	byob := detail.AfterpartyBYOB
	disclosure.BYOB = &byob
	if detail.AfterpartyNotes != "" {
		notes := detail.AfterpartyNotes
		disclosure.Notes = &notes
	}

	hasCoords := detail.AfterpartyLat != nil && detail.AfterpartyLng != nil

	// Daralan halka aşamaları. Merkez yuvarlanır; payload tam noktayı
	// OPEN'dan önce taşımaz.
	if hasCoords && (state == envelopestate.StateStreet || state == envelopestate.StateNumber) {
		radius := zoneRadiusM
		if state == envelopestate.StateNumber {
			radius = closingRadiusM
		}
		disclosure.Zone = &Zone{
			Center: Coordinates{
				Lat: roundCoord(*detail.AfterpartyLat),
				Lng: roundCoord(*detail.AfterpartyLng),
			},
			RadiusM: radius,
		}
	}

	if state == envelopestate.StateOpen {
		disclosure.HostNames = detail.AfterpartyHostNames
		addr := &FullAddress{City: detail.City}
		if detail.AfterpartyDoorCode != "" {
			code := detail.AfterpartyDoorCode
			addr.DoorCode = &code
		}
		if hasCoords {
			addr.Coordinates = &Coordinates{Lat: *detail.AfterpartyLat, Lng: *detail.AfterpartyLng}
		}
		disclosure.FullAddress = addr

		// Bisiklet tahmini OPEN anında bir kez, katılımcının ev
		// koordinatından hesaplanır.
		if hasCoords && viewer != nil && viewer.StreetInfo != nil {
			km := cycling.HaversineKm(viewer.StreetInfo.Lat, viewer.StreetInfo.Lng,
				*detail.AfterpartyLat, *detail.AfterpartyLng)
			disclosure.CyclingEstimate = cycling.Estimates(km)
			meters := int(math.Round(km * 1000))
			disclosure.CyclingMeters = &meters
		}
	}

	return disclosure
}

// afterpartyStateName generic durumları efterfest anlatısına göre yeniden
// adlandırır. Durum makinesi çatallanmaz; sadece sunum katmanı değişir.
func afterpartyStateName(s envelopestate.State) string {
	switch s {
	case envelopestate.StateStreet:
		return "ZONE"
	case envelopestate.StateNumber:
		return "CLOSING_IN"
	default:
		return s.String()
	}
}

// roundCoord koordinatı ~3 ondalığa yuvarlar (~±70 m).
func roundCoord(v float64) float64 {
	return math.Round(v*1000) / 1000
}

var _ IAfterpartyService = (*AfterpartyService)(nil)
