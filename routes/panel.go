package routes

import (
	"github.com/gofiber/fiber/v2"

	handlers "kuvert.link/handlers/panel"
)

// registerPanelRoutes organizatör panel rotalarını tanımlar.
func registerPanelRoutes(app *fiber.App) {
	previewHandler := handlers.NewPreviewHandler()

	panel := app.Group("/panel")
	panel.Get("/preview/:token", previewHandler.ShowPreview)
}
