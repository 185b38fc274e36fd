package seeders

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kuvert.link/configs"
	"kuvert.link/configs/configslog"
	"kuvert.link/models"
	"kuvert.link/pkg/pairtoken"
)

const demoEventName = "Vandrande middag – Majorna"

// SeedDemoEvent geliştirme ortamı için komple bir demo etkinlik kurar:
// 3 çift, aktif plan, her turda sıralı kuvert zamanlaması ve efterfest.
// Etkinlik zaten varsa hiçbir şey yapmaz.
func SeedDemoEvent(db *gorm.DB) error {
	var existing models.Event
	err := db.Where("name = ?", demoEventName).First(&existing).Error
	if err == nil {
		configslog.SLog.Info("Demo etkinlik zaten mevcut, seed atlanıyor.")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	now := time.Now().UTC()
	eventDate := now.Add(2 * time.Hour)
	afterparty := eventDate.Add(6 * time.Hour)

	previewHash, err := bcrypt.GenerateFromPassword([]byte("smyga"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	event := models.Event{
		Name:      demoEventName,
		IsEnabled: true,
		Detail: models.EventDetail{
			City:               "Göteborg",
			EventDate:          eventDate,
			AfterpartyTime:     &afterparty,
			AfterpartyBYOB:     true,
			AfterpartyNotes:    "Ta med glatt humör och egen dryck!",
			AfterpartyLat:      ptr(57.6992),
			AfterpartyLng:      ptr(11.9365),
			AfterpartyDoorCode: "1873",
			AfterpartyHostNames: models.StringList{
				"Festkommittén",
			},
			PreviewKeyHash: string(previewHash),
		},
	}
	if err := db.Create(&event).Error; err != nil {
		return err
	}

	partner := func(name string) *string { return &name }
	pairs := []models.Pair{
		{
			EventID: event.ID, Name: "Anna", PartnerName: partner("Björn"),
			FunFacts:         models.StringList{"Har cyklat Vätternrundan", "Samlar på gamla kartor"},
			Allergies:        models.StringList{"nötter"},
			PartnerAllergies: models.StringList{"laktos"},
			AllergyNotes:     "fiskallergi men ok med skaldjur",
		},
		{
			EventID: event.ID, Name: "Cecilia", PartnerName: partner("David"),
			FunFacts:  models.StringList{"Har bott i Japan", "Vann en karaoketävling"},
			Allergies: models.StringList{"nötter"},
		},
		{
			EventID: event.ID, Name: "Erik",
			FunFacts: models.StringList{"Odlar chili på balkongen"},
		},
	}
	streets := []models.StreetInfo{
		{StreetName: "Karl Johansgatan", NumberRange: "12-40", StreetNumber: 27, City: "Göteborg", Lat: 57.6953, Lng: 11.9155},
		{StreetName: "Såggatan", NumberRange: "1-30", StreetNumber: 14, City: "Göteborg", Lat: 57.6940, Lng: 11.9271},
		{StreetName: "Slottsskogsgatan", NumberRange: "30-70", StreetNumber: 52, City: "Göteborg", Lat: 57.6901, Lng: 11.9312},
	}
	for i := range pairs {
		if err := db.Create(&pairs[i]).Error; err != nil {
			return err
		}
		streets[i].PairID = pairs[i].ID
		if err := db.Create(&streets[i]).Error; err != nil {
			return err
		}
	}

	plan := models.MatchPlan{EventID: event.ID, PublicID: uuid.New(), IsActive: true}
	if err := db.Create(&plan).Error; err != nil {
		return err
	}

	// Rotasyon: her çift bir tura ev sahipliği yapar, diğerlerinde misafir.
	hostByCourse := map[models.Course]uint{
		models.CourseAppetizer: pairs[0].ID,
		models.CourseMain:      pairs[1].ID,
		models.CourseDessert:   pairs[2].ID,
	}
	courseStart := map[models.Course]time.Time{
		models.CourseAppetizer: eventDate,
		models.CourseMain:      eventDate.Add(90 * time.Minute),
		models.CourseDessert:   eventDate.Add(3 * time.Hour),
	}

	for course, hostID := range hostByCourse {
		start := courseStart[course]
		for i := range pairs {
			env := models.Envelope{
				MatchPlanID: plan.ID,
				PairID:      pairs[i].ID,
				Course:      course,
				HostPairID:  &hostID,
				TeasingAt:   ptrTime(start.Add(-4 * time.Hour)),
				Clue1At:     ptrTime(start.Add(-2 * time.Hour)),
				Clue2At:     ptrTime(start.Add(-1 * time.Hour)),
				StreetAt:    ptrTime(start.Add(-40 * time.Minute)),
				NumberAt:    ptrTime(start.Add(-20 * time.Minute)),
				OpenedAt:    &start,
				CyclingKm:   ptr(2.4),
			}
			if err := db.Create(&env).Error; err != nil {
				return err
			}
		}
		assignment := models.ClueAssignment{
			MatchPlanID: plan.ID,
			HostPairID:  hostID,
			Course:      course,
			ClueIndexes: models.IntList{0, 1},
		}
		if err := db.Create(&assignment).Error; err != nil {
			return err
		}
	}

	// Katılımcı linkleri loglanır; e-posta gönderimi bu repo'nun dışında.
	cfg := configs.GetConfig()
	codec := pairtoken.NewCodec(cfg.TokenSecret, cfg.AllowLegacyPairIDs)
	for i := range pairs {
		token, signErr := codec.Sign(pairs[i].ID, event.ID)
		if signErr != nil {
			configslog.Log.Error("Demo token üretilemedi", zap.Uint("pairID", pairs[i].ID), zap.Error(signErr))
			continue
		}
		configslog.SLog.Infof("Demo çift %s: /%s", pairs[i].Name, token)
	}

	configslog.SLog.Infof("Demo etkinlik oluşturuldu: ID %d", event.ID)
	return nil
}

func ptr(v float64) *float64 { return &v }

func ptrTime(t time.Time) *time.Time { return &t }
