package services

import (
	"time"

	"kuvert.link/pkg/cycling"
)

// StreetDisclosure STREET durumunda görünen kısmi adres.
type StreetDisclosure struct {
	Name           string `json:"name"`
	Range          string `json:"range"`
	CyclingMinutes int    `json:"cycling_minutes"`
}

// Coordinates enlem/boylam çifti.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// FullAddress sadece OPEN durumunda görünen tam adres.
type FullAddress struct {
	Street      string       `json:"street"`
	Number      int          `json:"number"`
	Apartment   *string      `json:"apartment"`
	DoorCode    *string      `json:"door_code"`
	City        string       `json:"city"`
	Coordinates *Coordinates `json:"coordinates"`
}

// NextReveal bir sonraki açığa çıkma tahmini.
type NextReveal struct {
	Type      string    `json:"type"`
	At        time.Time `json:"at"`
	InSeconds int64     `json:"in_seconds"`
}

// Zone efterfest anlatısının daralan halka aşaması: merkez + metre
// cinsinden yarıçap. Merkez yuvarlanmıştır; tam nokta OPEN'dan önce
// payload'da hiç taşınmaz.
type Zone struct {
	Center  Coordinates `json:"center"`
	RadiusM int         `json:"radius_m"`
}

// CourseDisclosure tek bir tur (veya efterfest) için katılımcının şu an
// bilmesine izin verilen her şey.
type CourseDisclosure struct {
	Type             string            `json:"type"`
	State            string            `json:"state"`
	Clues            []Clue            `json:"clues"`
	CluePool         []string          `json:"clue_pool"`
	Filler           *string           `json:"filler"`
	StreetHint       *string           `json:"street_hint"`
	Street           *StreetDisclosure `json:"street"`
	Number           *int              `json:"number"`
	FullAddress      *FullAddress      `json:"full_address"`
	NextReveal       *NextReveal       `json:"next_reveal"`
	StartsAt         *time.Time        `json:"starts_at"`
	HostNames        []string          `json:"host_names"`
	AllergiesSummary []string          `json:"allergies_summary"`
	IsSelfHost       bool              `json:"is_self_host"`
	HostHasFunFacts  bool              `json:"host_has_fun_facts"`
	CyclingMeters    *int              `json:"cycling_meters"`

	// Sadece efterfest turunda dolu olan alanlar.
	BYOB            *bool             `json:"byob,omitempty"`
	Notes           *string           `json:"notes,omitempty"`
	Zone            *Zone             `json:"zone,omitempty"`
	CyclingEstimate *cycling.Estimate `json:"cycling_estimate,omitempty"`
}

// RevealResponse bir katılımcının tüm turları için tek payload.
// server_time istemcilerin saat kaymasını telafi etmesi için.
type RevealResponse struct {
	ServerTime     time.Time           `json:"server_time"`
	Courses        []CourseDisclosure  `json:"courses"`
	FillerCatalogs map[string][]string `json:"filler_catalogs"`
}
