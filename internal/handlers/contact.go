package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/winehouse/internal/models"
)

// ContactHandler manages contact form submissions.
type ContactHandler struct {
	db *gorm.DB
}

// NewContactHandler constructs ContactHandler.
func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{db: db}
}

// Create stores a contact form submission (public endpoint).
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var payload models.ContactMessage
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if payload.Name == "" || payload.Email == "" || payload.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name, email and message are required")
	}

	if payload.Language == "" {
		payload.Language = "zh"
	}

	if err := h.db.Create(&payload).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": payload.ID})
}

// List returns all contact messages, newest first (admin endpoint).
func (h *ContactHandler) List(c *fiber.Ctx) error {
	var messages []models.ContactMessage
	if err := h.db.Order("created_at desc").Find(&messages).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": messages})
}

// Delete removes a contact message by ID (admin endpoint).
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.ContactMessage{}, "id = ?", id).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}
