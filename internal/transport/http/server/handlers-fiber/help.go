package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"counter-api/internal/api"
)

// HelpAbout describes the running service and where to get support.
func (h *Handler) HelpAbout(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(api.HelpAboutResponse{
		Name:               h.app.Name,
		Version:            h.app.Version,
		SupportInformation: h.app.SupportInformation,
	})
}
