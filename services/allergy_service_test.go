package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuvert.link/models"
)

func strp(s string) *string { return &s }

func TestSummarizeCountsAndSorts(t *testing.T) {
	svc := NewAllergyService()

	guests := []models.Pair{
		{
			Name:             "Anna",
			PartnerName:      strp("Björn"),
			Allergies:        models.StringList{"Nötter"},
			PartnerAllergies: models.StringList{"nötter", "laktos"},
		},
		{
			Name:      "Erik",
			Allergies: models.StringList{" gluten "},
		},
	}

	lines := svc.Summarize(guests)
	require.Equal(t, []string{
		"Gluten (1 pers)",
		"Laktos (1 pers)",
		"Nötter (2 pers)",
	}, lines)
}

func TestSummarizeNotesAppended(t *testing.T) {
	svc := NewAllergyService()

	guests := []models.Pair{
		{
			Name:         "Anna",
			Allergies:    models.StringList{"nötter"},
			AllergyNotes: "fiskallergi men ok med skaldjur",
		},
	}

	lines := svc.Summarize(guests)
	require.Len(t, lines, 2)
	assert.Equal(t, "Nötter (1 pers)", lines[0])
	assert.Equal(t, "Anna: fiskallergi men ok med skaldjur", lines[1])
}

// Aynı kişi aynı alerjiyi iki kez raporlasa da bir sayılır.
func TestSummarizeDedupesPerPerson(t *testing.T) {
	svc := NewAllergyService()

	guests := []models.Pair{
		{Name: "Anna", Allergies: models.StringList{"nötter", "NÖTTER "}},
	}

	lines := svc.Summarize(guests)
	require.Equal(t, []string{"Nötter (1 pers)"}, lines)
}

// Misafir yoksa veya hiç alerji verisi yoksa nil: boş liste değil, açık
// yokluk.
func TestSummarizeExplicitAbsence(t *testing.T) {
	svc := NewAllergyService()

	assert.Nil(t, svc.Summarize(nil))
	assert.Nil(t, svc.Summarize([]models.Pair{}))
	assert.Nil(t, svc.Summarize([]models.Pair{
		{Name: "Anna"},
		{Name: "Erik", Allergies: models.StringList{"  "}},
	}))
}

func TestSummarizePartnerWithoutName(t *testing.T) {
	svc := NewAllergyService()

	// Partner adı yoksa partner alerjileri sayılmaz; veri şekli bozuk olsa
	// da hata yok.
	guests := []models.Pair{
		{Name: "Erik", PartnerAllergies: models.StringList{"soja"}},
	}
	assert.Nil(t, svc.Summarize(guests))
}
