package routes

import (
	"github.com/gofiber/fiber/v2"

	handlers "kuvert.link/handlers/link"
)

// registerLinkRoutes public kuvert rotalarını tanımlar. Token catch-all'ı
// diğer özel rotalardan (örn. /panel, /api) SONRA tanımlanmalı.
func registerLinkRoutes(app *fiber.App) {
	envelopeHandler := handlers.NewEnvelopeHandler()

	api := app.Group("/api")
	api.Get("/envelope/:token", envelopeHandler.GetEnvelope)

	app.Get("/:token", envelopeHandler.ShowEnvelope)
}
