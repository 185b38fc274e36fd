package services

import (
	"fmt"
	"sort"
	"strings"

	"kuvert.link/models"
)

// IAllergyService ev sahibine gösterilen alerji özetini üretir.
type IAllergyService interface {
	Summarize(guests []models.Pair) []string
}

// AllergyService IAllergyService arayüzünü uygular. Saf; veri erişimi yok.
type AllergyService struct{}

// NewAllergyService yeni bir AllergyService örneği oluşturur.
func NewAllergyService() IAllergyService {
	return &AllergyService{}
}

// Summarize misafir çiftlerin alerji verisini normalize edip kişi bazında
// sayar. Çıktı normalize anahtara göre alfabetik satırlar
// ("Nötter (2 pers)"), ardından serbest metin notlar ("Anna: fiskallergi...").
// Misafir yoksa veya hiç alerji verisi yoksa nil döner (boş liste değil;
// yokluk açıkça belirtilir).
func (s *AllergyService) Summarize(guests []models.Pair) []string {
	if len(guests) == 0 {
		return nil
	}

	type tally struct {
		display string
		persons map[string]bool
	}
	counts := make(map[string]*tally)
	var notes []string

	record := func(person string, allergies models.StringList) {
		for _, raw := range allergies {
			norm := strings.ToLower(strings.TrimSpace(raw))
			if norm == "" {
				continue
			}
			entry, ok := counts[norm]
			if !ok {
				entry = &tally{display: strings.TrimSpace(raw), persons: make(map[string]bool)}
				counts[norm] = entry
			}
			// Aynı kişi aynı alerjiyi iki kez raporlasa da bir sayılır.
			entry.persons[person] = true
		}
	}

	for _, guest := range guests {
		record(guest.Name, guest.Allergies)
		if guest.PartnerName != nil && *guest.PartnerName != "" {
			record(*guest.PartnerName, guest.PartnerAllergies)
		}
		if note := strings.TrimSpace(guest.AllergyNotes); note != "" {
			notes = append(notes, fmt.Sprintf("%s: %s", guest.Name, note))
		}
	}

	if len(counts) == 0 && len(notes) == 0 {
		return nil
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys)+len(notes))
	for _, k := range keys {
		entry := counts[k]
		lines = append(lines, fmt.Sprintf("%s (%d pers)", capitalize(entry.display), len(entry.persons)))
	}
	lines = append(lines, notes...)
	return lines
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}

var _ IAllergyService = (*AllergyService)(nil)
