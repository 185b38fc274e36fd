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

// IPairRepository katılımcı çifti okuma işlemleri için arayüz.
type IPairRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Pair, error)
}

// PairRepository IPairRepository arayüzünü uygular.
type PairRepository struct {
	db *gorm.DB
}

// NewPairRepository yeni bir PairRepository örneği oluşturur.
func NewPairRepository() IPairRepository {
	return &PairRepository{db: configs.GetDB()}
}

// NewPairRepositoryTx transaction'lı örnek.
func NewPairRepositoryTx(tx *gorm.DB) IPairRepository {
	return &PairRepository{db: tx}
}

func (r *PairRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *PairRepository) FindByID(ctx context.Context, id uint) (*models.Pair, error) {
	if id == 0 {
		return nil, errors.New("geçersiz pair ID")
	}
	var pair models.Pair
	err := r.getDB(ctx).Preload("StreetInfo").First(&pair, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("Pair FindByID error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &pair, nil
}

var _ IPairRepository = (*PairRepository)(nil)
