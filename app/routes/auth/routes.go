package auth

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"arc-portal/app/models"
)

func (h *Handler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api/auth")

	api.Post("/login", h.LoginAPI)
	api.Post("/logout", h.Middleware, h.LogoutAPI)
	api.Get("/me", h.Middleware, h.MeAPI)
}

// Middleware validates the session token from the cookie or Authorization
// header and stashes the claims in locals. STUDENT-role tokens are never
// resumed: the session is revoked and the cookie cleared on the spot.
func (h *Handler) Middleware(c *fiber.Ctx) error {
	tokenString := c.Cookies("arc_token")
	if tokenString == "" {
		if authHeader := c.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}
	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "Not authenticated"})
	}

	claims, err := ValidateJWT(h.Secret, tokenString)
	if err != nil {
		h.clearSessionCookie(c)
		return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired session"})
	}

	if claims.Role == models.RoleStudent || models.ParseRole(claims.Role) == "" {
		if err := h.Sessions.Delete(c.UserContext(), claims.SessionID); err != nil {
			log.Printf("[AUTH] session delete failed: %v", err)
		}
		h.clearSessionCookie(c)
		return c.Status(403).JSON(fiber.Map{"error": accessDeniedMessage})
	}

	// With Redis available a revoked session dies before its JWT does.
	if h.Sessions.Enabled() {
		sess, err := h.Sessions.Get(c.UserContext(), claims.SessionID)
		if err != nil {
			log.Printf("[AUTH] session check failed: %v", err)
		} else if sess == nil {
			h.clearSessionCookie(c)
			return c.Status(401).JSON(fiber.Map{"error": "Session expired"})
		}
	}

	c.Locals("claims", claims)
	c.Locals("profile", &models.Profile{
		ID:      claims.UserID,
		Email:   claims.Email,
		Role:    claims.Role,
		Section: claims.Section,
	})
	return c.Next()
}

// RequireRoles gates a route to the given roles. Runs after Middleware.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, ok := c.Locals("profile").(*models.Profile)
		if !ok {
			return c.Status(401).JSON(fiber.Map{"error": "Not authenticated"})
		}
		for _, role := range roles {
			if profile.Role == role {
				return c.Next()
			}
		}
		return c.Status(403).JSON(fiber.Map{"error": accessDeniedMessage})
	}
}

// CurrentProfile pulls the authenticated profile out of locals.
func CurrentProfile(c *fiber.Ctx) *models.Profile {
	profile, _ := c.Locals("profile").(*models.Profile)
	return profile
}
