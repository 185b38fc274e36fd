package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"kuvert.link/configs"
	"kuvert.link/configs/configsdatabase"
	"kuvert.link/configs/configslog"
	"kuvert.link/routes"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg, err := configs.LoadConfig()
	if err != nil {
		configslog.SLog.Fatalf("Yapılandırma yüklenemedi: %v", err)
	}

	configsdatabase.InitDB(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)
	defer configsdatabase.CloseDB()

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		AppName: "kuvert.link",
		Views:   engine,
	})

	routes.SetupRoutes(app)

	configslog.SLog.Infof("Sunucu dinlemede: %s", cfg.ListenAddr)
	if err := app.Listen(cfg.ListenAddr); err != nil {
		configslog.SLog.Fatalf("Sunucu başlatılamadı: %v", err)
	}
}
