package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kuvert.link/configs/configslog"
	"kuvert.link/database/migrations"
	"kuvert.link/database/seeders"
)

// Initialize migrasyonları ve seeder'ları tek transaction içinde çalıştırır.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.SLog.Warn("Başlatma sırasında hata oluştuğu için işlem geri alınıyor.", zap.Error(err))
			rbErr := tx.Rollback().Error
			if rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Rollback sırasında ek hata oluştu", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if migrate {
		configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
			return
		}
		configslog.SLog.Info("Migrasyonlar tamamlandı.")
	}

	if seed {
		configslog.SLog.Info("Seeder'lar çalıştırılıyor...")
		if err := CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seeder'lar tamamlandı.")
	}

	configslog.SLog.Info("İşlem commit ediliyor...")
	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
}

// RunMigrationsInOrder migrasyonları FK bağımlılık sırasında çalıştırır.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info(" -> Event migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateEventTables(db); err != nil {
		return err
	}

	configslog.SLog.Info(" -> Pair migrasyonları çalıştırılıyor...")
	if err := migrations.MigratePairTables(db); err != nil {
		return err
	}

	configslog.SLog.Info(" -> MatchPlan migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateMatchPlanTable(db); err != nil {
		return err
	}

	configslog.SLog.Info(" -> Envelope migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateEnvelopeTables(db); err != nil {
		return err
	}

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

// CheckAndRunSeeders seeder'ları çalıştırır.
func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info(" -> Demo etkinlik seeder çalıştırılıyor...")
	if err := seeders.SeedDemoEvent(db); err != nil {
		configslog.Log.Error("Demo etkinlik seed edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Demo etkinlik seeder tamamlandı.")
	return nil
}
