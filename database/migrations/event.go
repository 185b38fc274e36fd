package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kuvert.link/configs/configslog"
	"kuvert.link/models"
)

// MigrateEventTables Event ve EventDetail tablolarını oluşturur/günceller.
func MigrateEventTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating events tables...")
	if err := db.AutoMigrate(&models.Event{}, &models.EventDetail{}); err != nil {
		configslog.Log.Error("Failed to migrate events tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Events tables migrated successfully")
	return nil
}

// MigrateMatchPlanTable MatchPlan tablosunu oluşturur/günceller.
func MigrateMatchPlanTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating match_plans table...")
	if err := db.AutoMigrate(&models.MatchPlan{}); err != nil {
		configslog.Log.Error("Failed to migrate match_plans table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Match_plans table migrated successfully")
	return nil
}
