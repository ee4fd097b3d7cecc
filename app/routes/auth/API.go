package auth

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"arc-portal/app/database"
	"arc-portal/app/models"
)

// accessDeniedMessage is the single message shown for every authorization
// failure, so responses do not leak why access was refused.
const accessDeniedMessage = "Your account is not permitted to access this portal"

var validate = validator.New()

// Handler owns the auth surface. Dependencies are injected; nothing here
// reaches for globals.
type Handler struct {
	DB       *sql.DB
	Profiles *database.ProfileStore
	Sessions *SessionStore
	Secret   []byte
	TTL      time.Duration
}

func NewHandler(db *sql.DB, profiles *database.ProfileStore, sessions *SessionStore, secret string, ttl time.Duration) *Handler {
	return &Handler{DB: db, Profiles: profiles, Sessions: sessions, Secret: []byte(secret), TTL: ttl}
}

// LoginAPI verifies credentials, resolves the access profile and issues the
// session cookie. STUDENT profiles are refused outright: this portal is for
// advisors and HODs only.
func (h *Handler) LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Email and password are required"})
	}

	user, err := database.GetUserByEmail(c.UserContext(), h.DB, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		log.Printf("[AUTH] user lookup failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	profile, err := h.Profiles.Resolve(c.UserContext(), user.ID, user.Email)
	if err != nil {
		log.Printf("[AUTH] profile resolution failed for %s: %v", user.ID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve profile"})
	}
	if profile == nil || profile.Role == models.RoleStudent {
		return c.Status(403).JSON(fiber.Map{"error": accessDeniedMessage})
	}

	sessionID := GenerateSessionID()
	token, err := GenerateJWT(h.Secret, h.TTL, JWTClaims{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      profile.Role,
		Section:   profile.Section,
		SessionID: sessionID,
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	now := time.Now()
	if err := h.Sessions.Put(c.UserContext(), &models.Session{
		ID:        sessionID,
		UserID:    user.ID,
		Email:     user.Email,
		Role:      profile.Role,
		Section:   profile.Section,
		ExpiresAt: now.Add(h.TTL),
		CreatedAt: now,
	}); err != nil {
		log.Printf("[AUTH] session store write failed: %v", err)
	}

	h.setSessionCookie(c, token, now.Add(h.TTL))
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"profile": profile,
	})
}

// LogoutAPI revokes the server-side session and clears the cookie.
func (h *Handler) LogoutAPI(c *fiber.Ctx) error {
	if claims, ok := c.Locals("claims").(*JWTClaims); ok && claims != nil {
		if err := h.Sessions.Delete(c.UserContext(), claims.SessionID); err != nil {
			log.Printf("[AUTH] session delete failed: %v", err)
		}
	}
	h.clearSessionCookie(c)
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// MeAPI resumes an existing session. The middleware already refused
// STUDENT-role tokens, so reaching here means the caller may stay in.
func (h *Handler) MeAPI(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*JWTClaims)
	return c.JSON(fiber.Map{
		"profile": fiber.Map{
			"id":      claims.UserID,
			"email":   claims.Email,
			"role":    claims.Role,
			"section": claims.Section,
		},
	})
}

func (h *Handler) setSessionCookie(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "arc_token",
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func (h *Handler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "arc_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
}
