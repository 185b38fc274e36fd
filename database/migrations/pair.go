package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kuvert.link/configs/configslog"
	"kuvert.link/models"
)

// MigratePairTables Pair ve StreetInfo tablolarını oluşturur/günceller.
func MigratePairTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating pairs table...")
	if err := db.AutoMigrate(&models.Pair{}); err != nil {
		configslog.Log.Error("Failed to migrate pairs table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Pairs table migrated successfully")

	configslog.SLog.Info("Migrating street_infos table...")
	if err := db.AutoMigrate(&models.StreetInfo{}); err != nil {
		configslog.Log.Error("Failed to migrate street_infos table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Street_infos table migrated successfully")
	return nil
}
