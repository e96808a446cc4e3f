package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/winehouse/internal/models"
)

// PriceHandler manages countries and per-country wine prices.
type PriceHandler struct {
	db *gorm.DB
}

// NewPriceHandler constructs PriceHandler.
func NewPriceHandler(db *gorm.DB) *PriceHandler {
	return &PriceHandler{db: db}
}

// ListCountries returns active countries ordered by sort_order.
func (h *PriceHandler) ListCountries(c *fiber.Ctx) error {
	var countries []models.Country
	if err := h.db.Where("active = ?", true).Order("sort_order").
		Find(&countries).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": countries})
}

// ListPrices returns all country prices for a wine.
func (h *PriceHandler) ListPrices(c *fiber.Ctx) error {
	wineID := c.QueryInt("wine_id")
	if wineID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "wine_id is required")
	}

	var prices []models.WinePrice
	if err := h.db.Where("wine_id = ?", wineID).Find(&prices).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": prices})
}

type savePriceRequest struct {
	WineID      uint     `json:"wine_id"`
	CountryCode string   `json:"country_code"`
	Price       *float64 `json:"price"`
	Currency    string   `json:"currency"`
}

// SavePrice upserts the price for a (wine_id, country_code) pair: an
// existing row is updated, otherwise exactly one new row is inserted.
func (h *PriceHandler) SavePrice(c *fiber.Ctx) error {
	var req savePriceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.WineID == 0 || req.CountryCode == "" || req.Price == nil {
		return fiber.NewError(fiber.StatusBadRequest, "wine_id, country_code and price are required")
	}

	if req.Currency == "" {
		req.Currency = "CNY"
	}

	var existing models.WinePrice
	err := h.db.Where("wine_id = ? AND country_code = ?", req.WineID, req.CountryCode).
		First(&existing).Error
	switch err {
	case nil:
		existing.Price = *req.Price
		existing.Currency = req.Currency
		if err := h.db.Save(&existing).Error; err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "id": existing.ID})
	case gorm.ErrRecordNotFound:
		price := models.WinePrice{
			WineID:      req.WineID,
			CountryCode: req.CountryCode,
			Price:       *req.Price,
			Currency:    req.Currency,
		}
		if err := h.db.Create(&price).Error; err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": price.ID})
	default:
		return err
	}
}

// DeletePrice removes a single price row by ID.
func (h *PriceHandler) DeletePrice(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.WinePrice{}, "id = ?", id).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}
