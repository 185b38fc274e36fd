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

// IClueAssignmentRepository ipucu indeksi atamaları için arayüz.
type IClueAssignmentRepository interface {
	FindForHostCourse(ctx context.Context, matchPlanID, hostPairID uint, course models.Course) (*models.ClueAssignment, error)
}

// ClueAssignmentRepository IClueAssignmentRepository arayüzünü uygular.
type ClueAssignmentRepository struct {
	db *gorm.DB
}

// NewClueAssignmentRepository yeni bir örnek oluşturur.
func NewClueAssignmentRepository() IClueAssignmentRepository {
	return &ClueAssignmentRepository{db: configs.GetDB()}
}

// NewClueAssignmentRepositoryTx transaction'lı örnek.
func NewClueAssignmentRepositoryTx(tx *gorm.DB) IClueAssignmentRepository {
	return &ClueAssignmentRepository{db: tx}
}

func (r *ClueAssignmentRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *ClueAssignmentRepository) FindForHostCourse(ctx context.Context, matchPlanID, hostPairID uint, course models.Course) (*models.ClueAssignment, error) {
	if matchPlanID == 0 || hostPairID == 0 {
		return nil, errors.New("geçersiz plan veya host pair ID")
	}
	var assignment models.ClueAssignment
	err := r.getDB(ctx).
		Where("match_plan_id = ? AND host_pair_id = ? AND course = ?", matchPlanID, hostPairID, course).
		First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("FindForHostCourse error",
			zap.Uint("hostPairID", hostPairID), zap.String("course", string(course)), zap.Error(err))
		return nil, err
	}
	return &assignment, nil
}

var _ IClueAssignmentRepository = (*ClueAssignmentRepository)(nil)
