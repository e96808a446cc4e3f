package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/winehouse/internal/i18n"
	"github.com/example/winehouse/internal/models"
)

// PageHandler renders the public server-side pages.
type PageHandler struct {
	db *gorm.DB
}

// NewPageHandler constructs PageHandler.
func NewPageHandler(db *gorm.DB) *PageHandler {
	return &PageHandler{db: db}
}

func pageLocale(c *fiber.Ctx) i18n.Locale {
	lang := c.Params("lang")
	if i18n.Valid(lang) {
		return i18n.Locale(lang)
	}
	return i18n.Default
}

// settings loads all site settings resolved for the locale.
func (h *PageHandler) settings(locale i18n.Locale) (map[string]string, error) {
	var rows []models.SiteSetting
	if err := h.db.Find(&rows).Error; err != nil {
		return nil, err
	}

	resolved := make(map[string]string, len(rows))
	for _, row := range rows {
		resolved[row.SettingKey] = row.Value.Resolve(locale)
	}
	return resolved, nil
}

func (h *PageHandler) base(c *fiber.Ctx) (fiber.Map, i18n.Locale, error) {
	locale := pageLocale(c)
	settings, err := h.settings(locale)
	if err != nil {
		return nil, locale, err
	}

	return fiber.Map{
		"Locale":   string(locale),
		"Locales":  i18n.Locales,
		"T":        i18n.UI(locale),
		"Settings": settings,
	}, locale, nil
}

type wineView struct {
	ID          uint
	Name        string
	Description string
	Region      string
	Grape       string
	Image       string
	Price       float64
	Year        int
	Alcohol     float64
	Featured    bool
}

func localizeWine(wine models.Wine, locale i18n.Locale) wineView {
	return wineView{
		ID:          wine.ID,
		Name:        wine.Name.Resolve(locale),
		Description: wine.Description.Resolve(locale),
		Region:      wine.Region.Resolve(locale),
		Grape:       wine.GrapeVariety.Resolve(locale),
		Image:       wine.Image,
		Price:       wine.Price,
		Year:        wine.Year,
		Alcohol:     wine.AlcoholContent,
		Featured:    wine.Featured,
	}
}

func localizeWines(wines []models.Wine, locale i18n.Locale) []wineView {
	views := make([]wineView, len(wines))
	for i, wine := range wines {
		views[i] = localizeWine(wine, locale)
	}
	return views
}

type categoryView struct {
	Slug        string
	Name        string
	Description string
	Image       string
}

func localizeCategories(categories []models.Category, locale i18n.Locale) []categoryView {
	views := make([]categoryView, len(categories))
	for i, category := range categories {
		views[i] = categoryView{
			Slug:        category.Slug,
			Name:        category.Name.Resolve(locale),
			Description: category.Description.Resolve(locale),
			Image:       category.Image,
		}
	}
	return views
}

// Home renders the home page: hero carousel, featured wines, categories.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	data, locale, err := h.base(c)
	if err != nil {
		return err
	}

	var heroes []models.HomeHero
	if err := h.db.Order("sort_order").Find(&heroes).Error; err != nil {
		return err
	}

	type heroView struct {
		Title    string
		Subtitle string
		Image    string
		Theme    string
		Link     string
	}
	heroViews := make([]heroView, len(heroes))
	for i, hero := range heroes {
		heroViews[i] = heroView{
			Title:    hero.Title.Resolve(locale),
			Subtitle: hero.Subtitle.Resolve(locale),
			Image:    hero.Image,
			Theme:    hero.Theme,
			Link:     "/" + string(locale) + hero.Link,
		}
	}

	var featured []models.Wine
	if err := h.db.Where("featured = ?", true).Order("sort_order, id").
		Limit(6).Find(&featured).Error; err != nil {
		return err
	}

	var categories []models.Category
	if err := h.db.Order("sort_order").Find(&categories).Error; err != nil {
		return err
	}

	data["Heroes"] = heroViews
	data["Featured"] = localizeWines(featured, locale)
	data["Categories"] = localizeCategories(categories, locale)
	return c.Render("home", data)
}

// Wines renders the category listing page.
func (h *PageHandler) Wines(c *fiber.Ctx) error {
	data, locale, err := h.base(c)
	if err != nil {
		return err
	}

	var category models.Category
	if err := h.db.Where("slug = ?", c.Params("category")).First(&category).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.ErrNotFound
		}
		return err
	}

	var wines []models.Wine
	if err := h.db.Where("category_id = ?", category.ID).
		Order("sort_order, id").Find(&wines).Error; err != nil {
		return err
	}

	data["CategoryName"] = category.Name.Resolve(locale)
	data["CategoryDescription"] = category.Description.Resolve(locale)
	data["CategorySlug"] = category.Slug
	data["Wines"] = localizeWines(wines, locale)
	return c.Render("wines", data)
}

// WineDetail renders a single wine with its per-country prices.
func (h *PageHandler) WineDetail(c *fiber.Ctx) error {
	data, locale, err := h.base(c)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.ErrNotFound
	}

	var wine models.Wine
	if err := h.db.Preload("Prices").First(&wine, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.ErrNotFound
		}
		return err
	}

	var countries []models.Country
	if err := h.db.Where("active = ?", true).Order("sort_order").
		Find(&countries).Error; err != nil {
		return err
	}

	type priceView struct {
		Country  string
		Symbol   string
		Price    float64
		Currency string
	}
	prices := make([]priceView, 0, len(wine.Prices))
	for _, price := range wine.Prices {
		view := priceView{Country: price.CountryCode, Price: price.Price, Currency: price.Currency}
		for _, country := range countries {
			if country.Code == price.CountryCode {
				view.Country = country.Name.Resolve(locale)
				view.Symbol = country.Symbol
				break
			}
		}
		prices = append(prices, view)
	}

	data["Wine"] = localizeWine(wine, locale)
	data["CategorySlug"] = c.Params("category")
	data["Prices"] = prices
	return c.Render("wine_detail", data)
}

// Story renders the brand story page.
func (h *PageHandler) Story(c *fiber.Ctx) error {
	data, locale, err := h.base(c)
	if err != nil {
		return err
	}

	var stories []models.Story
	if err := h.db.Order("sort_order").Find(&stories).Error; err != nil {
		return err
	}

	type storyView struct {
		Title   string
		Content string
		Image   string
	}
	views := make([]storyView, len(stories))
	for i, story := range stories {
		views[i] = storyView{
			Title:   story.Title.Resolve(locale),
			Content: story.Content.Resolve(locale),
			Image:   story.Image,
		}
	}

	data["Stories"] = views
	return c.Render("story", data)
}

// Contact renders the contact page with the contact form.
func (h *PageHandler) Contact(c *fiber.Ctx) error {
	data, _, err := h.base(c)
	if err != nil {
		return err
	}

	data["Submitted"] = c.Query("submitted") == "1"
	return c.Render("contact", data)
}

// ContactSubmit handles the contact form post and redirects back with a
// confirmation flag.
func (h *PageHandler) ContactSubmit(c *fiber.Ctx) error {
	locale := pageLocale(c)

	var payload models.ContactMessage
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form data")
	}

	if payload.Name == "" || payload.Email == "" || payload.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name, email and message are required")
	}

	payload.Language = string(locale)
	if err := h.db.Create(&payload).Error; err != nil {
		return err
	}

	return c.Redirect("/"+string(locale)+"/contact?submitted=1", fiber.StatusFound)
}

// AdminLogin renders the dashboard login page.
func (h *PageHandler) AdminLogin(c *fiber.Ctx) error {
	return c.Render("admin_login", fiber.Map{"Locale": string(pageLocale(c))})
}

// AdminDashboard renders the dashboard shell; its tabs are driven by the
// admin JSON API.
func (h *PageHandler) AdminDashboard(c *fiber.Ctx) error {
	return c.Render("admin", fiber.Map{"Locale": string(pageLocale(c))})
}
