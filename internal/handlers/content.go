package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/winehouse/internal/models"
)

// ContentHandler manages stories, home heroes and site settings.
type ContentHandler struct {
	db *gorm.DB
}

// NewContentHandler constructs ContentHandler.
func NewContentHandler(db *gorm.DB) *ContentHandler {
	return &ContentHandler{db: db}
}

// ListStories returns all stories ordered by sort_order.
func (h *ContentHandler) ListStories(c *fiber.Ctx) error {
	var stories []models.Story
	if err := h.db.Order("sort_order").Find(&stories).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": stories})
}

// CreateStory persists a new story.
func (h *ContentHandler) CreateStory(c *fiber.Ctx) error {
	var payload models.Story
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if payload.Title.Zh == "" || payload.Content.Zh == "" {
		return fiber.NewError(fiber.StatusBadRequest, "title and content (zh) are required")
	}

	if err := h.db.Create(&payload).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": payload.ID})
}

// UpdateStory overwrites an existing story.
func (h *ContentHandler) UpdateStory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var story models.Story
	if err := h.db.First(&story, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "story not found")
		}
		return err
	}

	var payload models.Story
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	story.Title = payload.Title
	story.Content = payload.Content
	story.Image = payload.Image
	story.SortOrder = payload.SortOrder

	if err := h.db.Save(&story).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": story})
}

// DeleteStory removes a story by ID.
func (h *ContentHandler) DeleteStory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.Story{}, "id = ?", id).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}

// ListHeroes returns all home heroes ordered by sort_order.
func (h *ContentHandler) ListHeroes(c *fiber.Ctx) error {
	var heroes []models.HomeHero
	if err := h.db.Order("sort_order").Find(&heroes).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": heroes})
}

func applyHeroDefaults(hero *models.HomeHero) {
	if hero.Theme == "" {
		hero.Theme = "from-stone-900 to-stone-950"
	}
	if hero.Link == "" {
		hero.Link = "/wines/red"
	}
}

// CreateHero persists a new home hero slide.
func (h *ContentHandler) CreateHero(c *fiber.Ctx) error {
	var payload models.HomeHero
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if payload.Title.Zh == "" || payload.Subtitle.Zh == "" {
		return fiber.NewError(fiber.StatusBadRequest, "title and subtitle (zh) are required")
	}

	applyHeroDefaults(&payload)

	if err := h.db.Create(&payload).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": payload.ID})
}

// UpdateHero overwrites an existing hero slide.
func (h *ContentHandler) UpdateHero(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var hero models.HomeHero
	if err := h.db.First(&hero, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "hero not found")
		}
		return err
	}

	var payload models.HomeHero
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	applyHeroDefaults(&payload)

	hero.Title = payload.Title
	hero.Subtitle = payload.Subtitle
	hero.Image = payload.Image
	hero.Theme = payload.Theme
	hero.Link = payload.Link
	hero.SortOrder = payload.SortOrder

	if err := h.db.Save(&hero).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": hero})
}

// DeleteHero removes a hero slide by ID.
func (h *ContentHandler) DeleteHero(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.HomeHero{}, "id = ?", id).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}

// ListSettings returns all site settings.
func (h *ContentHandler) ListSettings(c *fiber.Ctx) error {
	var settings []models.SiteSetting
	if err := h.db.Order("setting_key").Find(&settings).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": settings})
}

// saveSetting upserts a single setting inside tx. Blank locale values in
// the payload keep whatever is already stored for that locale.
func saveSetting(tx *gorm.DB, payload models.SiteSetting) error {
	var existing models.SiteSetting
	err := tx.Where("setting_key = ?", payload.SettingKey).First(&existing).Error
	switch err {
	case nil:
		existing.Value = existing.Value.MergeNonEmpty(payload.Value)
		return tx.Save(&existing).Error
	case gorm.ErrRecordNotFound:
		return tx.Create(&payload).Error
	default:
		return err
	}
}

// SaveSetting upserts one setting by key.
func (h *ContentHandler) SaveSetting(c *fiber.Ctx) error {
	var payload models.SiteSetting
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if payload.SettingKey == "" {
		return fiber.NewError(fiber.StatusBadRequest, "setting key is required")
	}

	if err := saveSetting(h.db, payload); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}

// SaveSettingsBatch writes a list of settings in a single transaction, so
// a failure leaves no partial update behind.
func (h *ContentHandler) SaveSettingsBatch(c *fiber.Ctx) error {
	var payload []models.SiteSetting
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	for _, setting := range payload {
		if setting.SettingKey == "" {
			return fiber.NewError(fiber.StatusBadRequest, "setting key is required")
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for _, setting := range payload {
			if err := saveSetting(tx, setting); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "count": len(payload)})
}
