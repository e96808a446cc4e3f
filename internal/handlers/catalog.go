package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/winehouse/internal/models"
)

// CatalogHandler manages categories and wines.
type CatalogHandler struct {
	db *gorm.DB
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

// ListCategories returns all categories ordered by sort_order.
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := h.db.Order("sort_order").Find(&categories).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": categories})
}

// CreateCategory persists a new category.
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var payload models.Category
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if payload.Slug == "" || payload.Name.Zh == "" {
		return fiber.NewError(fiber.StatusBadRequest, "slug and name (zh) are required")
	}

	if err := h.db.Create(&payload).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": payload.ID})
}

// UpdateCategory updates an existing category.
func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var category models.Category
	if err := h.db.First(&category, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "category not found")
		}
		return err
	}

	var payload models.Category
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	category.Slug = payload.Slug
	category.Name = payload.Name
	category.Description = payload.Description
	category.Image = payload.Image
	category.SortOrder = payload.SortOrder

	if err := h.db.Save(&category).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": category})
}

// DeleteCategory removes a category by ID.
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.Category{}, "id = ?", id).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}

// ListWines returns wines filtered by zero or more of: exact id, category
// slug, featured flag. Default order is sort_order then id.
func (h *CatalogHandler) ListWines(c *fiber.Ctx) error {
	query := h.db.Model(&models.Wine{})

	if id := c.QueryInt("id"); id > 0 {
		query = query.Where("id = ?", id)
	} else if slug := c.Query("category"); slug != "" {
		var category models.Category
		if err := h.db.Where("slug = ?", slug).First(&category).Error; err == nil {
			query = query.Where("category_id = ?", category.ID)
		} else if err != gorm.ErrRecordNotFound {
			return err
		}
	}

	if c.Query("featured") == "true" {
		query = query.Where("featured = ?", true)
	}

	var wines []models.Wine
	if err := query.Order("sort_order, id").Find(&wines).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": wines})
}

// GetWine returns a single wine with its country prices.
func (h *CatalogHandler) GetWine(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var wine models.Wine
	if err := h.db.Preload("Prices").First(&wine, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "wine not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": wine})
}

func applyWineDefaults(wine *models.Wine) {
	if wine.Year == 0 {
		wine.Year = 2024
	}
	if wine.AlcoholContent == 0 {
		wine.AlcoholContent = 13
	}
}

// CreateWine persists a new wine.
func (h *CatalogHandler) CreateWine(c *fiber.Ctx) error {
	var payload models.Wine
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if payload.CategoryID == 0 || payload.Name.Zh == "" {
		return fiber.NewError(fiber.StatusBadRequest, "category and name (zh) are required")
	}

	applyWineDefaults(&payload)

	if err := h.db.Create(&payload).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": payload.ID})
}

// UpdateWine overwrites an existing wine.
func (h *CatalogHandler) UpdateWine(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var wine models.Wine
	if err := h.db.First(&wine, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "wine not found")
		}
		return err
	}

	var payload models.Wine
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	applyWineDefaults(&payload)

	wine.CategoryID = payload.CategoryID
	wine.Name = payload.Name
	wine.Description = payload.Description
	wine.Region = payload.Region
	wine.GrapeVariety = payload.GrapeVariety
	wine.Image = payload.Image
	wine.Price = payload.Price
	wine.Year = payload.Year
	wine.AlcoholContent = payload.AlcoholContent
	wine.Featured = payload.Featured
	wine.SortOrder = payload.SortOrder

	if err := h.db.Save(&wine).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": wine})
}

// DeleteWine removes a wine and its country prices in one transaction.
func (h *CatalogHandler) DeleteWine(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.WinePrice{}, "wine_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Wine{}, "id = ?", id).Error
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}
