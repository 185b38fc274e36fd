package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"kuvert.link/configs"
	"kuvert.link/configs/configslog"
	"kuvert.link/models"
)

// IEnvelopeRepository kuvert veritabanı işlemleri için arayüz.
type IEnvelopeRepository interface {
	// FindForPair aktif plandaki, iptal edilmemiş kuvertleri getirir.
	FindForPair(ctx context.Context, matchPlanID, pairID uint) ([]models.Envelope, error)
	// FindGuestsAtTable verilen ev sahibi + tur masasında oturan misafir
	// çiftlerin kuvertlerini getirir (iptal edilenler hariç).
	FindGuestsAtTable(ctx context.Context, matchPlanID, hostPairID uint, course models.Course) ([]models.Envelope, error)
}

// EnvelopeRepository IEnvelopeRepository arayüzünü uygular.
type EnvelopeRepository struct {
	db *gorm.DB
}

// NewEnvelopeRepository yeni bir EnvelopeRepository örneği oluşturur.
func NewEnvelopeRepository() IEnvelopeRepository {
	return &EnvelopeRepository{db: configs.GetDB()}
}

// NewEnvelopeRepositoryTx transaction'lı örnek.
func NewEnvelopeRepositoryTx(tx *gorm.DB) IEnvelopeRepository {
	return &EnvelopeRepository{db: tx}
}

func (r *EnvelopeRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *EnvelopeRepository) FindForPair(ctx context.Context, matchPlanID, pairID uint) ([]models.Envelope, error) {
	if matchPlanID == 0 || pairID == 0 {
		return nil, errors.New("geçersiz plan veya pair ID")
	}
	var envelopes []models.Envelope
	err := r.getDB(ctx).
		Where("match_plan_id = ? AND pair_id = ? AND cancelled = ?", matchPlanID, pairID, false).
		Preload("HostPair").
		Preload("HostPair.StreetInfo").
		Order("course asc").
		Find(&envelopes).Error
	if err != nil {
		configslog.Log.Error("FindForPair error", zap.Uint("pairID", pairID), zap.Error(err))
		return nil, err
	}
	return envelopes, nil
}

func (r *EnvelopeRepository) FindGuestsAtTable(ctx context.Context, matchPlanID, hostPairID uint, course models.Course) ([]models.Envelope, error) {
	if matchPlanID == 0 || hostPairID == 0 {
		return nil, errors.New("geçersiz plan veya host pair ID")
	}
	var envelopes []models.Envelope
	err := r.getDB(ctx).
		Where("match_plan_id = ? AND host_pair_id = ? AND course = ? AND cancelled = ?",
			matchPlanID, hostPairID, course, false).
		Preload("Pair").
		Find(&envelopes).Error
	if err != nil {
		configslog.Log.Error("FindGuestsAtTable error",
			zap.Uint("hostPairID", hostPairID), zap.String("course", string(course)), zap.Error(err))
		return nil, err
	}
	return envelopes, nil
}

var _ IEnvelopeRepository = (*EnvelopeRepository)(nil)
