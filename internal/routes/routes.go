package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/winehouse/internal/config"
	"github.com/example/winehouse/internal/handlers"
	"github.com/example/winehouse/internal/middleware"
	"github.com/example/winehouse/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	translateService := services.NewTranslateService(cfg.TranslateBaseURL)

	authHandler := handlers.NewAuthHandler(db, cfg)
	catalogHandler := handlers.NewCatalogHandler(db)
	priceHandler := handlers.NewPriceHandler(db)
	contentHandler := handlers.NewContentHandler(db)
	contactHandler := handlers.NewContactHandler(db)
	uploadHandler := handlers.NewUploadHandler(db, cfg.UploadDir)
	translateHandler := handlers.NewTranslateHandler(translateService)
	pageHandler := handlers.NewPageHandler(db)

	api := app.Group("/api")

	// Public read API
	api.Get("/categories", catalogHandler.ListCategories)
	api.Get("/wines", catalogHandler.ListWines)
	api.Get("/wines/:id", catalogHandler.GetWine)
	api.Get("/stories", contentHandler.ListStories)
	api.Get("/heroes", contentHandler.ListHeroes)
	api.Get("/settings", contentHandler.ListSettings)
	api.Get("/countries", priceHandler.ListCountries)
	api.Post("/contact", contactHandler.Create)

	// Session endpoints live outside the auth gate
	admin := api.Group("/admin")
	admin.Post("/auth", authHandler.Login)
	admin.Get("/auth", authHandler.Session)
	admin.Delete("/auth", authHandler.Logout)

	// Admin CRUD API
	protected := admin.Group("", middleware.AuthMiddleware(cfg))

	protected.Post("/categories", catalogHandler.CreateCategory)
	protected.Put("/categories/:id", catalogHandler.UpdateCategory)
	protected.Delete("/categories/:id", catalogHandler.DeleteCategory)

	protected.Post("/wines", catalogHandler.CreateWine)
	protected.Put("/wines/:id", catalogHandler.UpdateWine)
	protected.Delete("/wines/:id", catalogHandler.DeleteWine)

	protected.Get("/prices", priceHandler.ListPrices)
	protected.Post("/prices", priceHandler.SavePrice)
	protected.Delete("/prices/:id", priceHandler.DeletePrice)

	protected.Post("/stories", contentHandler.CreateStory)
	protected.Put("/stories/:id", contentHandler.UpdateStory)
	protected.Delete("/stories/:id", contentHandler.DeleteStory)

	protected.Post("/heroes", contentHandler.CreateHero)
	protected.Put("/heroes/:id", contentHandler.UpdateHero)
	protected.Delete("/heroes/:id", contentHandler.DeleteHero)

	protected.Post("/settings", contentHandler.SaveSetting)
	protected.Put("/settings", contentHandler.SaveSettingsBatch)

	protected.Get("/messages", contactHandler.List)
	protected.Delete("/messages/:id", contactHandler.Delete)

	protected.Get("/manage/admins", authHandler.ListAdmins)
	protected.Post("/manage/admins", authHandler.AddAdmin)
	protected.Delete("/manage/admins/:id", authHandler.DeleteAdmin)
	protected.Post("/manage/password", authHandler.ChangePassword)

	protected.Post("/upload", uploadHandler.Upload)
	protected.Get("/upload", uploadHandler.List)

	protected.Post("/translate", translateHandler.Translate)

	// Uploaded files are served straight from the public directory
	app.Static("/images/uploads", cfg.UploadDir)

	// Server-rendered pages, locale-prefixed
	app.Use(middleware.LocaleRedirect())
	app.Get("/:lang", pageHandler.Home)
	app.Get("/:lang/story", pageHandler.Story)
	app.Get("/:lang/contact", pageHandler.Contact)
	app.Post("/:lang/contact", pageHandler.ContactSubmit)
	app.Get("/:lang/admin/login", pageHandler.AdminLogin)
	app.Get("/:lang/admin", pageHandler.AdminDashboard)
	app.Get("/:lang/wines/:category", pageHandler.Wines)
	app.Get("/:lang/wines/:category/:id", pageHandler.WineDetail)
}
