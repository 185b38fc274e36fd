package services

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"kuvert.link/configs"
	"kuvert.link/configs/configslog"
	"kuvert.link/models"
	"kuvert.link/pkg/clock"
	"kuvert.link/pkg/cycling"
	"kuvert.link/pkg/envelopestate"
	"kuvert.link/pkg/pairtoken"
	"kuvert.link/repositories"
)

// RevealServiceError özel servis hataları
type RevealServiceError string

func (e RevealServiceError) Error() string { return string(e) }

const (
	ErrRevealInvalidToken  RevealServiceError = "geçersiz erişim token'ı"
	ErrRevealPairNotFound  RevealServiceError = "çift bulunamadı"
	ErrRevealEventNotFound RevealServiceError = "etkinlik bulunamadı"
	ErrPreviewForbidden    RevealServiceError = "önizleme için yetki yok"
)

// IRevealService kuvert açığa çıkarma payload'ını üretir.
type IRevealService interface {
	// BuildReveal token'ı çözer ve katılımcının tüm turları için tek
	// payload üretir. nowOverride sadece previewKey etkinliğin önizleme
	// anahtarıyla doğrulanırsa kabul edilir.
	BuildReveal(ctx context.Context, token string, nowOverride *time.Time, previewKey string) (*RevealResponse, error)
}

// RevealService IRevealService arayüzünü uygular.
//
// Motor istek başına salt okunur ve durumsuzdur: tüm girdiler hesaplamanın
// başında bir kez çekilir ve değişmez bir snapshot olarak kullanılır.
// Türetilmiş hiçbir durum kalıcılaştırılmaz; aynı girdilerle iki çağrı,
// ipucu havuzunun eleman sırası dışında birebir aynı çıktıyı verir.
type RevealService struct {
	pairRepo     repositories.IPairRepository
	eventRepo    repositories.IEventRepository
	envelopeRepo repositories.IEnvelopeRepository
	clueRepo     repositories.IClueAssignmentRepository

	clueService       IClueService
	allergyService    IAllergyService
	afterpartyService IAfterpartyService

	codec *pairtoken.Codec
}

// NewRevealService yeni bir RevealService örneği oluşturur (DI ile).
func NewRevealService() IRevealService {
	cfg := configs.GetConfig()
	return &RevealService{
		pairRepo:          repositories.NewPairRepository(),
		eventRepo:         repositories.NewEventRepository(),
		envelopeRepo:      repositories.NewEnvelopeRepository(),
		clueRepo:          repositories.NewClueAssignmentRepository(),
		clueService:       NewClueService(),
		allergyService:    NewAllergyService(),
		afterpartyService: NewAfterpartyService(),
		codec:             pairtoken.NewCodec(cfg.TokenSecret, cfg.AllowLegacyPairIDs),
	}
}

// BuildReveal bkz. IRevealService.
func (s *RevealService) BuildReveal(ctx context.Context, token string, nowOverride *time.Time, previewKey string) (*RevealResponse, error) {
	// 1. Kimlik: çözülemeyen token hesaplamadan önce reddedilir, kısmi
	// payload yok.
	pairID, tokenEventID, err := s.codec.Resolve(token)
	if err != nil {
		return nil, ErrRevealInvalidToken
	}

	pair, err := s.pairRepo.FindByID(ctx, pairID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRevealPairNotFound
		}
		return nil, err
	}
	if tokenEventID != 0 && pair.EventID != tokenEventID {
		return nil, ErrRevealInvalidToken
	}

	event, err := s.eventRepo.FindByID(ctx, pair.EventID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRevealEventNotFound
		}
		return nil, err
	}
	if !event.IsEnabled {
		return nil, ErrRevealEventNotFound
	}

	// 2. İstek başına tek "now" kaynağı. Override tüm alt hesaplamalara
	// aynı şekilde uygulanır; gerçek ve simüle zaman asla karışmaz.
	var clk clock.Clock = clock.Real{}
	if nowOverride != nil {
		if !s.previewAllowed(&event.Detail, previewKey) {
			return nil, ErrPreviewForbidden
		}
		clk = clock.Fixed{At: nowOverride.UTC()}
	}
	now := clk.Now()

	catalogs := MergedFillerCatalogs(event.Detail.FillerOverrides)

	response := &RevealResponse{
		ServerTime:     now,
		FillerCatalogs: catalogs,
	}

	// 3. Yemek turları: sadece aktif plan okunur. Plan henüz yoksa
	// (eşleştirme çalışmadı) ekran yine tutarlı kalır: sadece efterfest.
	plan, err := s.eventRepo.FindActivePlan(ctx, event.ID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	if plan != nil {
		envelopes, envErr := s.envelopeRepo.FindForPair(ctx, plan.ID, pair.ID)
		if envErr != nil {
			return nil, envErr
		}
		for _, env := range envelopes {
			if !env.Course.IsMeal() {
				continue
			}
			disclosure, courseErr := s.buildCourse(ctx, plan, &env, pair, catalogs, now)
			if courseErr != nil {
				return nil, courseErr
			}
			response.Courses = append(response.Courses, disclosure)
		}
	}

	// 4. Efterfest: etkinlik yapılandırmasından türetilir.
	response.Courses = append(response.Courses, s.afterpartyService.BuildDisclosure(&event.Detail, pair, now))

	return response, nil
}

// previewAllowed önizleme anahtarını etkinliğin bcrypt hash'iyle doğrular.
func (s *RevealService) previewAllowed(detail *models.EventDetail, previewKey string) bool {
	if detail.PreviewKeyHash == "" || previewKey == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(detail.PreviewKeyHash), []byte(previewKey)) == nil
}

// buildCourse tek bir yemek turunun payload'ını kurar.
func (s *RevealService) buildCourse(ctx context.Context, plan *models.MatchPlan, env *models.Envelope,
	viewer *models.Pair, catalogs map[string][]string, now time.Time) (CourseDisclosure, error) {

	disclosure := CourseDisclosure{
		Type:     string(env.Course),
		State:    envelopestate.StateLocked.String(),
		StartsAt: env.OpenedAt,
	}

	// Atama yoksa tur LOCKED kalır ve diğer tüm katmanlar atlanır.
	if env.HostPairID == nil || env.HostPair == nil {
		return disclosure, nil
	}

	isSelfHost := *env.HostPairID == viewer.ID
	disclosure.IsSelfHost = isSelfHost
	disclosure.HostHasFunFacts = len(env.HostPair.FunFacts) > 0

	ts := envelopestate.Timestamps{
		TeasingAt: env.TeasingAt,
		Clue1At:   env.Clue1At,
		Clue2At:   env.Clue2At,
		StreetAt:  env.StreetAt,
		NumberAt:  env.NumberAt,
		OpenedAt:  env.OpenedAt,
	}
	if envelopestate.NonMonotonic(ts) {
		// Üst katman veri giriş hatası; tarama yine de en ileri durumu
		// üretir, sadece uyarırız.
		configslog.Log.Warn("Kuvert timestamp'leri sıra dışı",
			zap.Uint("envelopeID", env.ID), zap.String("course", string(env.Course)))
	}

	state := envelopestate.Compute(ts, now)
	disclosure.State = state.String()

	if next := envelopestate.NextReveal(ts, state, now); next != nil {
		disclosure.NextReveal = &NextReveal{
			Type:      next.State.String(),
			At:        next.At,
			InSeconds: next.InSeconds,
		}
	}

	info := env.HostPair.StreetInfo
	streetName := ""
	if info != nil {
		streetName = info.StreetName
	}

	// İpucu katmanı. Masa kapsamı: bu ev sahibi + tur masasında oturan
	// çiftler, etkinliğin geri kalanı değil.
	if state >= envelopestate.StateClue1 {
		var assignment *models.ClueAssignment
		var tableGuests []models.Pair

		if !isSelfHost {
			var err error
			assignment, err = s.clueRepo.FindForHostCourse(ctx, plan.ID, *env.HostPairID, env.Course)
			if err != nil && !errors.Is(err, repositories.ErrNotFound) {
				return disclosure, err
			}
			tableGuests, err = s.tableGuests(ctx, plan.ID, *env.HostPairID, env.Course)
			if err != nil {
				return disclosure, err
			}
		}

		section := s.clueService.BuildClueSection(env.HostPair, assignment, tableGuests,
			state, ts, now, isSelfHost, env.Course.IsMeal(), streetName, catalogs)
		disclosure.Clues = section.Clues
		disclosure.CluePool = section.Pool
		disclosure.Filler = section.Filler
		disclosure.StreetHint = section.StreetHint
	}

	// Adres katmanı. StreetInfo satırı eksikse alanlar null kalır, hata
	// fırlatılmaz; yarı yapılandırılmış etkinlik de tutarlı render edilmeli.
	if state >= envelopestate.StateStreet {
		if env.CyclingKm != nil {
			meters := int(math.Round(*env.CyclingKm * 1000))
			disclosure.CyclingMeters = &meters
		}
		if info != nil {
			street := &StreetDisclosure{Name: info.StreetName, Range: info.NumberRange}
			if env.CyclingKm != nil {
				street.CyclingMinutes = cycling.Minutes(*env.CyclingKm)
			}
			disclosure.Street = street
		}
	}
	if state >= envelopestate.StateNumber && info != nil {
		number := info.StreetNumber
		disclosure.Number = &number
	}
	if state == envelopestate.StateOpen {
		disclosure.HostNames = env.HostPair.DisplayNames()
		if info != nil {
			disclosure.FullAddress = &FullAddress{
				Street:      info.StreetName,
				Number:      info.StreetNumber,
				Apartment:   info.Apartment,
				DoorCode:    info.DoorCode,
				City:        info.City,
				Coordinates: &Coordinates{Lat: info.Lat, Lng: info.Lng},
			}
		}
	}

	// Alerji özeti: sadece ev sahibine, sadece kendi turu için ve durum
	// LOCKED'ı geçtiyse.
	if isSelfHost && state > envelopestate.StateLocked {
		guests, err := s.tableGuests(ctx, plan.ID, viewer.ID, env.Course)
		if err != nil {
			return disclosure, err
		}
		disclosure.AllergiesSummary = s.allergyService.Summarize(guests)
	}

	return disclosure, nil
}

// tableGuests verilen masadaki misafir çiftleri toplar; ev sahibinin kendi
// kuvert satırı hariç tutulur.
func (s *RevealService) tableGuests(ctx context.Context, planID, hostPairID uint, course models.Course) ([]models.Pair, error) {
	envelopes, err := s.envelopeRepo.FindGuestsAtTable(ctx, planID, hostPairID, course)
	if err != nil {
		return nil, err
	}
	guests := make([]models.Pair, 0, len(envelopes))
	for _, env := range envelopes {
		if env.PairID == hostPairID {
			continue
		}
		guests = append(guests, env.Pair)
	}
	return guests, nil
}

var _ IRevealService = (*RevealService)(nil)
