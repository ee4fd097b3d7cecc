package students

import (
	"github.com/gofiber/fiber/v2"

	"arc-portal/app/models"
	"arc-portal/app/routes/auth"
)

func (h *Handler) SetupRoutes(app *fiber.App, authHandler *auth.Handler) {
	api := app.Group("/api/students")
	api.Use(authHandler.Middleware)
	api.Use(auth.RequireRoles(models.RoleSectionAdvisor, models.RoleHOD))

	api.Get("/", h.GetStudentsAPI)
	api.Get("/table", h.GetStudentsTableAPI)
	api.Get("/section/:section", h.GetStudentsBySectionAPI)
	api.Get("/:regno", h.GetStudentByRegNoAPI)

	sections := app.Group("/api/sections")
	sections.Use(authHandler.Middleware)
	sections.Use(auth.RequireRoles(models.RoleSectionAdvisor, models.RoleHOD))
	sections.Get("/", h.GetSectionsAPI)
}
