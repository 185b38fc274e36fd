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

// IEventRepository etkinlik ve aktif plan okuma işlemleri için arayüz.
type IEventRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	FindActivePlan(ctx context.Context, eventID uint) (*models.MatchPlan, error)
}

// EventRepository IEventRepository arayüzünü uygular.
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository yeni bir EventRepository örneği oluşturur.
func NewEventRepository() IEventRepository {
	return &EventRepository{db: configs.GetDB()}
}

// NewEventRepositoryTx transaction'lı örnek.
func NewEventRepositoryTx(tx *gorm.DB) IEventRepository {
	return &EventRepository{db: tx}
}

func (r *EventRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	if id == 0 {
		return nil, errors.New("geçersiz event ID")
	}
	var event models.Event
	err := r.getDB(ctx).Preload("Detail").First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("Event FindByID error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) FindActivePlan(ctx context.Context, eventID uint) (*models.MatchPlan, error) {
	if eventID == 0 {
		return nil, errors.New("geçersiz event ID")
	}
	var plan models.MatchPlan
	err := r.getDB(ctx).
		Where("event_id = ? AND is_active = ?", eventID, true).
		Order("created_at desc").
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("FindActivePlan error", zap.Uint("eventID", eventID), zap.Error(err))
		return nil, err
	}
	return &plan, nil
}

var _ IEventRepository = (*EventRepository)(nil)
