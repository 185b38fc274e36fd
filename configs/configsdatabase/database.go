package configsdatabase

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"kuvert.link/configs/configslog"
)

var db *gorm.DB

// InitDB PostgreSQL bağlantısını kurar. Uygulama başlangıcında bir kez çağrılır.
func InitDB(host string, port int, user, password, dbname, sslmode string) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		host, port, user, password, dbname, sslmode)

	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	conn, err := gorm.Open(postgres.Open(dsn), gormCfg)
	if err != nil {
		configslog.Log.Fatal("Veritabanı bağlantısı kurulamadı", zap.Error(err))
	}

	sqlDB, err := conn.DB()
	if err != nil {
		configslog.Log.Fatal("Veritabanı havuzu alınamadı", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	db = conn
	configslog.SLog.Infof("Veritabanı bağlantısı kuruldu: %s@%s:%d/%s", user, host, port, dbname)
}

// GetDB global bağlantıyı döndürür.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("InitDB çağrılmadan GetDB kullanıldı")
	}
	return db
}

// SetDB test amaçlı bağlantı enjeksiyonu.
func SetDB(conn *gorm.DB) {
	db = conn
}

// CloseDB bağlantı havuzunu kapatır.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Bağlantı kapatılırken havuz alınamadı", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
	}
}
