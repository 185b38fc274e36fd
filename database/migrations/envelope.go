package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kuvert.link/configs/configslog"
	"kuvert.link/models"
)

// MigrateEnvelopeTables Envelope ve ClueAssignment tablolarını
// oluşturur/günceller. Pair ve MatchPlan tabloları zaten var olmalı.
func MigrateEnvelopeTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating envelopes table...")
	if err := db.AutoMigrate(&models.Envelope{}); err != nil {
		configslog.Log.Error("Failed to migrate envelopes table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Envelopes table migrated successfully")

	configslog.SLog.Info("Migrating clue_assignments table...")
	if err := db.AutoMigrate(&models.ClueAssignment{}); err != nil {
		configslog.Log.Error("Failed to migrate clue_assignments table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Clue_assignments table migrated successfully")
	return nil
}
