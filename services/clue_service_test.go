package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuvert.link/models"
	"kuvert.link/pkg/envelopestate"
)

var clueBase = time.Date(2026, 5, 16, 18, 0, 0, 0, time.UTC)

func cluePtr(offset time.Duration) *time.Time {
	t := clueBase.Add(offset)
	return &t
}

func clueTimestamps() envelopestate.Timestamps {
	return envelopestate.Timestamps{
		TeasingAt: cluePtr(-4 * time.Hour),
		Clue1At:   cluePtr(-2 * time.Hour),
		Clue2At:   cluePtr(-1 * time.Hour),
	}
}

func testHost() *models.Pair {
	host := &models.Pair{
		Name:     "Cecilia",
		FunFacts: models.StringList{"Har bott i Japan", "Vann en karaoketävling"},
	}
	host.ID = 2
	return host
}

func testAssignment(indexes ...int) *models.ClueAssignment {
	return &models.ClueAssignment{ClueIndexes: models.IntList(indexes)}
}

func defaultCatalogs() map[string][]string {
	return MergedFillerCatalogs(nil)
}

func TestHostCluesRevealedInOrder(t *testing.T) {
	svc := NewClueService()
	ts := clueTimestamps()

	// CLUE_1: sadece ilk ipucu.
	now := clueBase.Add(-90 * time.Minute)
	section := svc.BuildClueSection(testHost(), testAssignment(0, 1), nil,
		envelopestate.StateClue1, ts, now, false, true, "Såggatan", defaultCatalogs())
	require.Len(t, section.Clues, 1)
	assert.Equal(t, "Har bott i Japan", section.Clues[0].Text)
	assert.Equal(t, *ts.Clue1At, section.Clues[0].RevealedAt)
	assert.True(t, section.HostHasFunFacts)

	// CLUE_2: her iki ipucu.
	now = clueBase.Add(-30 * time.Minute)
	section = svc.BuildClueSection(testHost(), testAssignment(0, 1), nil,
		envelopestate.StateClue2, ts, now, false, true, "Såggatan", defaultCatalogs())
	require.Len(t, section.Clues, 2)
	assert.Equal(t, "Vann en karaoketävling", section.Clues[1].Text)
	assert.Nil(t, section.Filler)
}

func TestSelfHostNeverSeesHostClues(t *testing.T) {
	svc := NewClueService()
	ts := clueTimestamps()

	for _, state := range []envelopestate.State{
		envelopestate.StateClue1, envelopestate.StateClue2,
		envelopestate.StateStreet, envelopestate.StateOpen,
	} {
		section := svc.BuildClueSection(testHost(), testAssignment(0, 1), nil,
			state, ts, clueBase, true, true, "Såggatan", defaultCatalogs())
		assert.Empty(t, section.Clues, "state=%s", state)
		assert.Nil(t, section.Pool, "state=%s", state)
		require.NotNil(t, section.Filler, "state=%s", state)
		assert.Contains(t, defaultFillerCatalogs[CatalogHostSelf], *section.Filler)
	}
}

// Self dolgu mesajı duruma göre döner.
func TestSelfHostFillerRotatesByState(t *testing.T) {
	svc := NewClueService()
	ts := clueTimestamps()

	a := svc.BuildClueSection(testHost(), nil, nil,
		envelopestate.StateClue1, ts, clueBase, true, true, "", defaultCatalogs())
	b := svc.BuildClueSection(testHost(), nil, nil,
		envelopestate.StateClue2, ts, clueBase, true, true, "", defaultCatalogs())
	require.NotNil(t, a.Filler)
	require.NotNil(t, b.Filler)
	assert.NotEqual(t, *a.Filler, *b.Filler)
}

func TestMysteryHostFiller(t *testing.T) {
	svc := NewClueService()
	host := testHost()
	host.FunFacts = nil

	section := svc.BuildClueSection(host, testAssignment(0, 1), nil,
		envelopestate.StateClue1, clueTimestamps(), clueBase, false, true, "", defaultCatalogs())
	assert.Empty(t, section.Clues)
	assert.False(t, section.HostHasFunFacts)
	require.NotNil(t, section.Filler)
	assert.Equal(t, defaultFillerCatalogs[CatalogMysteryHost][0], *section.Filler)
}

// İndeks taşması: ev sahibi atamadan sonra fact sayısını azaltmış.
// Hata yok, boş ipucu dizisi çökme değil; lips-sealed dolgusu gösterilir.
func TestOutOfRangeIndexYieldsLipsSealed(t *testing.T) {
	svc := NewClueService()
	host := testHost()
	host.FunFacts = models.StringList{"Har bott i Japan"}

	section := svc.BuildClueSection(host, testAssignment(5, 6), nil,
		envelopestate.StateClue1, clueTimestamps(), clueBase, false, true, "Såggatan", defaultCatalogs())
	assert.Empty(t, section.Clues)
	require.NotNil(t, section.Filler)
	assert.Equal(t, defaultFillerCatalogs[CatalogLipsSealedClue1][0], *section.Filler)
}

// CLUE_2'de ikinci ipucu hiç mevcut değilse ayrı kopya + gatunamn telafisi.
func TestClue2MissingCompensatesWithStreet(t *testing.T) {
	svc := NewClueService()
	host := testHost()
	host.FunFacts = models.StringList{"Har bott i Japan"}

	section := svc.BuildClueSection(host, testAssignment(0, 1), nil,
		envelopestate.StateClue2, clueTimestamps(), clueBase, false, true, "Såggatan", defaultCatalogs())
	require.Len(t, section.Clues, 1)
	require.NotNil(t, section.Filler)
	assert.Equal(t, defaultFillerCatalogs[CatalogLipsSealedClue2][0], *section.Filler)
	require.NotNil(t, section.StreetHint)
	assert.Equal(t, "Såggatan", *section.StreetHint)
}

func TestPoolScopedToTableAndShuffled(t *testing.T) {
	svc := NewClueService()
	host := testHost()
	guests := []models.Pair{
		{Name: "Anna", FunFacts: models.StringList{"Har cyklat Vätternrundan", "Samlar på gamla kartor"}},
		{Name: "Erik", FunFacts: models.StringList{"Odlar chili på balkongen"}},
	}

	section := svc.BuildClueSection(host, testAssignment(0, 1), guests,
		envelopestate.StateClue1, clueTimestamps(), clueBase, false, true, "", defaultCatalogs())

	// Havuz set olarak kontrol edilir; sıra istek başına rastgeledir.
	assert.ElementsMatch(t, []string{
		"Har bott i Japan",
		"Vann en karaoketävling",
		"Har cyklat Vätternrundan",
		"Samlar på gamla kartor",
		"Odlar chili på balkongen",
	}, section.Pool)
}

func TestPoolOnlyAtClue1(t *testing.T) {
	svc := NewClueService()
	guests := []models.Pair{{Name: "Anna", FunFacts: models.StringList{"fact"}}}

	for _, tc := range []struct {
		state  envelopestate.State
		isMeal bool
		want   bool
	}{
		{envelopestate.StateTeasing, true, false},
		{envelopestate.StateClue1, true, true},
		{envelopestate.StateClue2, true, false},
		{envelopestate.StateOpen, true, false},
		{envelopestate.StateClue1, false, false}, // terminal tur: havuz yok
	} {
		section := svc.BuildClueSection(testHost(), testAssignment(0, 1), guests,
			tc.state, clueTimestamps(), clueBase, false, tc.isMeal, "", defaultCatalogs())
		if tc.want {
			assert.NotEmpty(t, section.Pool, "state=%s meal=%v", tc.state, tc.isMeal)
		} else {
			assert.Nil(t, section.Pool, "state=%s meal=%v", tc.state, tc.isMeal)
		}
	}
}

func TestMergedFillerCatalogsOverride(t *testing.T) {
	overrides := models.MessageCatalog{
		CatalogMysteryHost: {"Helt hemligt!"},
		"unknown_catalog":  {"ignorerad"},
	}
	merged := MergedFillerCatalogs(overrides)
	assert.Equal(t, []string{"Helt hemligt!"}, merged[CatalogMysteryHost])
	assert.Equal(t, defaultFillerCatalogs[CatalogHostSelf], merged[CatalogHostSelf])
	// Varsayılanlar mutasyona uğramaz.
	assert.NotEqual(t, []string{"Helt hemligt!"}, defaultFillerCatalogs[CatalogMysteryHost])
}
