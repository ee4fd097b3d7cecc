package registryadmin

import (
	"database/sql"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"arc-portal/app/database"
	"arc-portal/app/models"
	"arc-portal/app/registry"
	"arc-portal/app/routes/auth"
)

var validate = validator.New()

// Handler serves the schema-management screen: field descriptors, pending
// update syncs and best-effort broadcasts.
type Handler struct {
	DB            *sql.DB
	Notifications *database.NotificationStore
}

func NewHandler(db *sql.DB, notifications *database.NotificationStore) *Handler {
	return &Handler{DB: db, Notifications: notifications}
}

// GetFieldsAPI lists built-in descriptors plus the custom ones.
func (h *Handler) GetFieldsAPI(c *fiber.Ctx) error {
	fields := registry.DescribeFields()

	custom, err := database.ListCustomFields(c.UserContext(), h.DB)
	if err != nil {
		log.Printf("[REGISTRY] custom field list failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fields"})
	}
	fields = append(fields, custom...)

	return c.JSON(fiber.Map{
		"fields": fields,
		"count":  len(fields),
	})
}

// CreateFieldAPI adds a custom field descriptor.
func (h *Handler) CreateFieldAPI(c *fiber.Ctx) error {
	type CreateFieldRequest struct {
		Label    string `json:"label" validate:"required,min=2,max=80"`
		Category string `json:"category"`
	}

	var req CreateFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Label is required (2-80 characters)"})
	}
	if req.Category == "" {
		req.Category = "Custom"
	}

	field := &models.FieldDescriptor{Label: strings.TrimSpace(req.Label), Category: req.Category, Custom: true}
	if err := database.CreateCustomField(c.UserContext(), h.DB, field); err != nil {
		log.Printf("[REGISTRY] custom field insert failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create field"})
	}

	return c.Status(201).JSON(fiber.Map{"field": field})
}

// DeleteFieldAPI removes a custom field. Built-in fields are not stored
// rows, so they cannot be deleted here.
func (h *Handler) DeleteFieldAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	deleted, err := database.DeleteCustomField(c.UserContext(), h.DB, id)
	if err != nil {
		log.Printf("[REGISTRY] custom field delete failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete field"})
	}
	if !deleted {
		return c.Status(404).JSON(fiber.Map{"error": "Field not found"})
	}
	return c.JSON(fiber.Map{"message": "Field removed"})
}

// GetPendingAPI lists a section's pending-update rows.
func (h *Handler) GetPendingAPI(c *fiber.Ctx) error {
	section := strings.ToUpper(strings.TrimSpace(c.Query("section")))
	if section == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Section is required"})
	}
	if !auth.CurrentProfile(c).CanAccessSection(section) {
		return c.Status(403).JSON(fiber.Map{"error": "Section not permitted"})
	}

	pending, err := database.ListPendingUpdates(c.UserContext(), h.DB, section)
	if err != nil {
		log.Printf("[REGISTRY] pending list for %s failed: %v", section, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch pending updates"})
	}
	return c.JSON(fiber.Map{
		"pending": pending,
		"count":   len(pending),
	})
}

// SyncPendingAPI replaces a section's pending-update rows with the given
// field labels.
func (h *Handler) SyncPendingAPI(c *fiber.Ctx) error {
	type SyncRequest struct {
		Section     string   `json:"section" validate:"required"`
		FieldLabels []string `json:"field_labels"`
	}

	var req SyncRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Section is required"})
	}

	section := strings.ToUpper(strings.TrimSpace(req.Section))
	if !auth.CurrentProfile(c).CanAccessSection(section) {
		return c.Status(403).JSON(fiber.Map{"error": "Section not permitted"})
	}

	labels := make([]string, 0, len(req.FieldLabels))
	for _, l := range req.FieldLabels {
		if l = strings.TrimSpace(l); l != "" {
			labels = append(labels, l)
		}
	}

	if err := database.ReplacePendingUpdates(c.UserContext(), h.DB, section, labels); err != nil {
		log.Printf("[REGISTRY] pending sync for %s failed: %v", section, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to sync pending updates"})
	}

	return c.JSON(fiber.Map{
		"message": "Pending updates synced",
		"section": section,
		"count":   len(labels),
	})
}

// BroadcastAPI writes a best-effort notification row. The response is
// success even when no notification table exists; the note says so.
func (h *Handler) BroadcastAPI(c *fiber.Ctx) error {
	type BroadcastRequest struct {
		Section string `json:"section" validate:"required"`
		Message string `json:"message" validate:"required,min=1,max=500"`
	}

	var req BroadcastRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Section and message are required"})
	}

	section := strings.ToUpper(strings.TrimSpace(req.Section))
	if !auth.CurrentProfile(c).CanAccessSection(section) {
		return c.Status(403).JSON(fiber.Map{"error": "Section not permitted"})
	}

	_ = h.Notifications.Broadcast(c.UserContext(), section, req.Message)

	resp := fiber.Map{"message": "Broadcast sent", "section": section}
	if !h.Notifications.Enabled() {
		resp["note"] = "no notification table"
	}
	return c.JSON(resp)
}
