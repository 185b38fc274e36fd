package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"kuvert.link/configs/configslog"
	"kuvert.link/services"
)

// PreviewHandler organizatör önizleme isteklerini yönetir: belirli bir
// simüle "now" anında bir katılımcının ne göreceğini gösterir. Üretimle
// aynı servis çağrılır; önizleme mantığı çatallanmaz.
type PreviewHandler struct {
	revealService services.IRevealService
}

// NewPreviewHandler yeni bir PreviewHandler örneği oluşturur.
func NewPreviewHandler() *PreviewHandler {
	return &PreviewHandler{
		revealService: services.NewRevealService(),
	}
}

// ShowPreview (GET /panel/preview/:token?at=...&preview_key=...) simüle
// zamanda payload'ı HTML olarak render eder.
func (h *PreviewHandler) ShowPreview(c *fiber.Ctx) error {
	token := c.Params("token")

	var nowOverride *time.Time
	if at := c.Query("at"); at != "" {
		parsed, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).Render("errors/404", fiber.Map{
				"Title": "Ogiltig tid", "Message": "Parametern 'at' måste vara RFC3339.",
			})
		}
		nowOverride = &parsed
	}

	response, err := h.revealService.BuildReveal(c.UserContext(), token, nowOverride, c.Query("preview_key"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPreviewForbidden):
			return c.Status(fiber.StatusForbidden).Render("errors/404", fiber.Map{
				"Title": "Nekad", "Message": "Förhandsvisningsnyckeln är fel.",
			})
		case errors.Is(err, services.ErrRevealInvalidToken),
			errors.Is(err, services.ErrRevealPairNotFound),
			errors.Is(err, services.ErrRevealEventNotFound):
			return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
				"Title": "Hittades inte", "Message": "Kuvertet hittades inte.",
			})
		default:
			configslog.Log.Error("ShowPreview: BuildReveal error", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{
				"Title": "Serverfel",
			})
		}
	}

	return c.Render("panel/preview", fiber.Map{
		"Title":    "Förhandsvisning",
		"Token":    token,
		"At":       c.Query("at"),
		"Response": response,
	})
}
