package services

import (
	"math/rand"
	"time"

	"kuvert.link/models"
	"kuvert.link/pkg/envelopestate"
)

// Clue açığa çıkmış tek bir değerli ipucu.
type Clue struct {
	Text       string    `json:"text"`
	RevealedAt time.Time `json:"revealed_at"`
}

// ClueSection bir tur için ipucu katmanının tamamı: gerçek ipuçları, yerine
// geçen dolgu mesajı, telafi ipucu ve çapraz masa havuzu.
type ClueSection struct {
	Clues           []Clue
	Filler          *string
	StreetHint      *string
	Pool            []string
	HostHasFunFacts bool
}

// IClueService ipucu katmanını kurar.
type IClueService interface {
	BuildClueSection(host *models.Pair, assignment *models.ClueAssignment, tableGuests []models.Pair,
		state envelopestate.State, ts envelopestate.Timestamps, now time.Time,
		isSelfHost bool, isMealCourse bool, streetName string,
		catalogs map[string][]string) ClueSection
}

// ClueService IClueService arayüzünü uygular. Tamamen saf; veri erişimi yok.
type ClueService struct{}

// NewClueService yeni bir ClueService örneği oluşturur.
func NewClueService() IClueService {
	return &ClueService{}
}

// BuildClueSection öncelik sıralı kenar durumlarıyla ipucu katmanını üretir:
//  1. Görüntüleyen ev sahibiyse: asla gerçek ipucu yok, duruma göre dönen
//     self dolgu mesajı.
//  2. Ev sahibinin hiç fun fact'i yoksa: mystery-host dolgusu.
//  3. İndeksli ipucu mevcut değilse (atama sonrası düzenleme): lips-sealed
//     dolgusu; CLUE_2'de tek ipucu hiç mevcut olmadıysa gatunamn telafisi.
func (s *ClueService) BuildClueSection(host *models.Pair, assignment *models.ClueAssignment, tableGuests []models.Pair,
	state envelopestate.State, ts envelopestate.Timestamps, now time.Time,
	isSelfHost bool, isMealCourse bool, streetName string,
	catalogs map[string][]string) ClueSection {

	section := ClueSection{}
	if host != nil {
		section.HostHasFunFacts = len(host.FunFacts) > 0
	}

	if state < envelopestate.StateClue1 || host == nil {
		return section
	}

	if isSelfHost {
		section.Filler = pickFiller(catalogs, CatalogHostSelf, int(state))
		return section
	}

	// Çapraz masa havuzu: sadece tam CLUE_1 durumunda, yemek turlarında.
	// Havuz bilinçli olarak istek başına karıştırılır; tüketiciler set
	// olarak ele almalı.
	if state == envelopestate.StateClue1 && isMealCourse {
		section.Pool = s.buildPool(host, tableGuests)
	}

	if !section.HostHasFunFacts {
		section.Filler = pickFiller(catalogs, CatalogMysteryHost, 0)
		return section
	}

	first, second := clueSlots(host, assignment)

	if first != nil && clueTimePassed(ts.Clue1At, now) {
		section.Clues = append(section.Clues, Clue{Text: *first, RevealedAt: *ts.Clue1At})
	} else {
		section.Filler = pickFiller(catalogs, CatalogLipsSealedClue1, 0)
	}

	if state >= envelopestate.StateClue2 {
		if second != nil && clueTimePassed(ts.Clue2At, now) {
			section.Clues = append(section.Clues, Clue{Text: *second, RevealedAt: *ts.Clue2At})
		} else {
			section.Filler = pickFiller(catalogs, CatalogLipsSealedClue2, 0)
			// Baştan beri tek ipucu mevcut olduysa gatunamn kısmi telafi
			// olarak verilir.
			if second == nil && first != nil && streetName != "" {
				hint := streetName
				section.StreetHint = &hint
			}
		}
	}

	return section
}

// clueSlots atanmış indekslerden ilk iki ipucuyu çözer. Taşan indeksler
// sessizce boş kalır; fact listesi atama sonrası kısalmış olabilir.
func clueSlots(host *models.Pair, assignment *models.ClueAssignment) (first, second *string) {
	if assignment == nil {
		return nil, nil
	}
	resolve := func(slot int) *string {
		if slot >= len(assignment.ClueIndexes) {
			return nil
		}
		idx := assignment.ClueIndexes[slot]
		if idx < 0 || idx >= len(host.FunFacts) {
			return nil
		}
		fact := host.FunFacts[idx]
		return &fact
	}
	return resolve(0), resolve(1)
}

func clueTimePassed(at *time.Time, now time.Time) bool {
	return at != nil && !at.After(now)
}

// buildPool ev sahibi + aynı masadaki tüm misafirlerin fun fact'lerini
// toplayıp karıştırır. Kapsam bilerek "bu masa": gerçek ev sahibi olmayan
// kişilerin fact'leri de karışarak "gissa vem" belirsizliği yaratılır.
func (s *ClueService) buildPool(host *models.Pair, tableGuests []models.Pair) []string {
	var pool []string
	pool = append(pool, host.FunFacts...)
	for _, guest := range tableGuests {
		pool = append(pool, guest.FunFacts...)
	}
	if len(pool) == 0 {
		return nil
	}
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool
}

var _ IClueService = (*ClueService)(nil)
