package configs

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"kuvert.link/configs/configslog"
)

// AppConfig uygulamanın tüm ortam yapılandırması.
type AppConfig struct {
	AppEnv     string `env:"APP_ENV" envDefault:"development"`
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":3000"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     int    `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"kuvert"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"kuvert"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// Çift erişim token'ı imzalama anahtarı.
	TokenSecret string `env:"TOKEN_SECRET,required"`
	// Geçiş dönemi: ham sayısal pair ID ile erişime izin ver.
	AllowLegacyPairIDs bool `env:"ALLOW_LEGACY_PAIR_IDS" envDefault:"false"`
}

var appConfig *AppConfig

// LoadConfig .env dosyasını (varsa) yükler ve ortamı parse eder.
func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Info(".env dosyası bulunamadı, ortam değişkenleri kullanılacak")
	}

	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	appConfig = cfg
	return cfg, nil
}

// GetConfig yüklenmiş yapılandırmayı döndürür. LoadConfig önce çağrılmalı.
func GetConfig() *AppConfig {
	if appConfig == nil {
		configslog.Log.Fatal("Yapılandırma yüklenmeden GetConfig çağrıldı")
	}
	return appConfig
}
