package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"kuvert.link/configs/configslog"
	"kuvert.link/services"
)

// EnvelopeHandler public kuvert isteklerini yönetir.
type EnvelopeHandler struct {
	revealService services.IRevealService
}

// NewEnvelopeHandler yeni bir EnvelopeHandler örneği oluşturur.
func NewEnvelopeHandler() *EnvelopeHandler {
	return &EnvelopeHandler{
		revealService: services.NewRevealService(),
	}
}

// ShowEnvelope (GET /:token) katılımcının kuvert sayfasını render eder.
// Sayfa kabuğu statiktir; içerik JSON API'den yüklenir.
func (h *EnvelopeHandler) ShowEnvelope(c *fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return h.renderNotFound(c, "Ogiltig länk")
	}
	return c.Render("public/envelope_view", fiber.Map{
		"Title": "Ditt kuvert",
		"Token": token,
	})
}

// GetEnvelope (GET /api/envelope/:token) açığa çıkarma payload'ını döndürür.
// Opsiyonel ?at=RFC3339 override'ı sadece ?preview_key doğrulanırsa kabul
// edilir.
func (h *EnvelopeHandler) GetEnvelope(c *fiber.Ctx) error {
	token := c.Params("token")

	var nowOverride *time.Time
	if at := c.Query("at"); at != "" {
		parsed, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz 'at' parametresi, RFC3339 bekleniyor"})
		}
		nowOverride = &parsed
	}

	response, err := h.revealService.BuildReveal(c.UserContext(), token, nowOverride, c.Query("preview_key"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRevealInvalidToken),
			errors.Is(err, services.ErrRevealPairNotFound),
			errors.Is(err, services.ErrRevealEventNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "kuvertet hittades inte"})
		case errors.Is(err, services.ErrPreviewForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "förhandsvisning nekad"})
		default:
			// Beklenmeyen veri şekli: logla, kısmi durum sızdırmadan
			// generic 500 dön.
			configslog.Log.Error("GetEnvelope: BuildReveal error", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "något gick fel"})
		}
	}

	return c.JSON(response)
}

// renderNotFound standart 404 sayfasını render eder.
func (h *EnvelopeHandler) renderNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title":   "Hittades inte",
		"Message": message,
	})
}
