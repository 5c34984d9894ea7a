// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"counter-api/config"
	"counter-api/internal/usecase"
)

// Handler exposes the entry and help routes over the service layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
	app config.AppConfig
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase, app config.AppConfig) *Handler {
	return &Handler{
		log: log,
		uc:  uc,
		app: app,
	}
}

// Register mounts the routes. Entry routes sit behind the auth and user
// synchronisation middlewares; the help route is public.
func (h *Handler) Register(app *fiber.App, auth fiber.Handler, sync fiber.Handler) {
	app.Get("/", h.HelpAbout)

	app.Post("/entry", auth, sync, h.NewEntry)
	app.Get("/entry/:entryId", auth, sync, h.ViewEntry)
	app.Put("/entry/:entryId", auth, sync, h.EditEntry)
	app.Delete("/entry/:entryId", auth, sync, h.DeleteEntry)
	app.Get("/entries", auth, sync, h.ListEntries)
}
