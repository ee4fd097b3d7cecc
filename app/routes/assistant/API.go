package assistant

import (
	"unicode"

	"github.com/gofiber/fiber/v2"

	"arc-portal/app/models"
	"arc-portal/app/routes/auth"
	"arc-portal/app/services"
)

// Handler proxies the decorative generative-text features.
type Handler struct {
	Assistant *services.Assistant
}

func NewHandler(a *services.Assistant) *Handler {
	return &Handler{Assistant: a}
}

func (h *Handler) SetupRoutes(app *fiber.App, authHandler *auth.Handler) {
	api := app.Group("/api/assistant")
	api.Use(authHandler.Middleware)
	api.Use(auth.RequireRoles(models.RoleSectionAdvisor, models.RoleHOD))

	api.Get("/greeting", h.GreetingAPI)
	api.Post("/security-analysis", h.SecurityAnalysisAPI)
}

// GreetingAPI returns a welcome line for the signed-in user.
func (h *Handler) GreetingAPI(c *fiber.Ctx) error {
	profile := auth.CurrentProfile(c)
	name := profile.Username
	if name == "" {
		name = profile.Email
	}
	return c.JSON(fiber.Map{"greeting": h.Assistant.Greet(c.UserContext(), name)})
}

// SecurityAnalysisAPI grades password strength. The password itself never
// leaves this handler; only its length and character-class count go
// upstream.
func (h *Handler) SecurityAnalysisAPI(c *fiber.Ctx) error {
	type AnalysisRequest struct {
		Password string `json:"password"`
	}

	var req AnalysisRequest
	if err := c.BodyParser(&req); err != nil || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Password is required"})
	}

	analysis := h.Assistant.AnalyzeSecurity(c.UserContext(), len(req.Password), charClasses(req.Password))
	return c.JSON(fiber.Map{"analysis": analysis})
}

func charClasses(password string) int {
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	count := 0
	for _, present := range []bool{lower, upper, digit, symbol} {
		if present {
			count++
		}
	}
	return count
}
