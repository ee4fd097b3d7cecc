package registryadmin

import (
	"github.com/gofiber/fiber/v2"

	"arc-portal/app/models"
	"arc-portal/app/routes/auth"
)

func (h *Handler) SetupRoutes(app *fiber.App, authHandler *auth.Handler) {
	api := app.Group("/api/registry")
	api.Use(authHandler.Middleware)
	api.Use(auth.RequireRoles(models.RoleSectionAdvisor, models.RoleHOD))

	api.Get("/fields", h.GetFieldsAPI)
	api.Post("/fields", h.CreateFieldAPI)
	api.Delete("/fields/:id", h.DeleteFieldAPI)

	api.Get("/pending", h.GetPendingAPI)
	api.Post("/sync", h.SyncPendingAPI)
	api.Post("/broadcast", h.BroadcastAPI)
}
