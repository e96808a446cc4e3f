package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/winehouse/internal/config"
	"github.com/example/winehouse/internal/database"
	"github.com/example/winehouse/internal/middleware"
	"github.com/example/winehouse/internal/models"
	"github.com/example/winehouse/internal/routes"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))

	cfg := &config.Config{
		AppPort:          "0",
		SessionSecret:    "test-secret",
		SessionTTL:       24 * time.Hour,
		UploadDir:        t.TempDir(),
		TranslateBaseURL: "http://127.0.0.1:1",
	}

	app := fiber.New(fiber.Config{
		Views: html.New("../../web/views", ".html"),
	})
	routes.Register(app, db, cfg)
	return app, db
}

func jsonRequest(t *testing.T, method, path string, payload interface{}) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

// login performs an admin login and returns the session cookie.
func login(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()

	req := jsonRequest(t, fiber.MethodPost, "/api/admin/auth", fiber.Map{
		"username": "admin",
		"password": "admin123",
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	t.Fatal("session cookie not issued")
	return nil
}

func authed(t *testing.T, app *fiber.App, req *http.Request) *http.Request {
	t.Helper()
	req.AddCookie(login(t, app))
	return req
}

func TestLoginWrongPasswordIssuesNoCookie(t *testing.T) {
	app, _ := setupApp(t)

	req := jsonRequest(t, fiber.MethodPost, "/api/admin/auth", fiber.Map{
		"username": "admin",
		"password": "wrong",
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		assert.NotEqual(t, middleware.SessionCookie, cookie.Name)
	}
}

func TestLoginIssuesDayLongCookie(t *testing.T) {
	app, _ := setupApp(t)

	cookie := login(t, app)
	assert.Equal(t, 86400, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)
}

func TestSessionEndpointWithoutCookie(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/admin/auth", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Authenticated bool `json:"authenticated"`
	}
	decodeBody(t, resp, &body)
	assert.False(t, body.Authenticated)
}

func TestAdminEndpointsRequireSession(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(jsonRequest(t, fiber.MethodPost, "/api/admin/wines", fiber.Map{}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := jsonRequest(t, fiber.MethodPost, "/api/admin/wines", fiber.Map{})
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "forged"})
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestListWinesByCategoryAndFeatured(t *testing.T) {
	app, db := setupApp(t)

	var red models.Category
	require.NoError(t, db.Where("slug = ?", "red").First(&red).Error)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/wines?category=red&featured=true", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []models.Wine `json:"data"`
	}
	decodeBody(t, resp, &body)

	require.NotEmpty(t, body.Data)
	lastOrder := -1
	for _, wine := range body.Data {
		assert.Equal(t, red.ID, wine.CategoryID)
		assert.True(t, wine.Featured)
		assert.GreaterOrEqual(t, wine.SortOrder, lastOrder)
		lastOrder = wine.SortOrder
	}
}

func TestListWinesById(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/wines?id=1", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []models.Wine `json:"data"`
	}
	decodeBody(t, resp, &body)
	require.Len(t, body.Data, 1)
	assert.EqualValues(t, 1, body.Data[0].ID)
}

func TestCreateWineRequiresChineseName(t *testing.T) {
	app, db := setupApp(t)

	var before int64
	db.Model(&models.Wine{}).Count(&before)

	req := authed(t, app, jsonRequest(t, fiber.MethodPost, "/api/admin/wines", fiber.Map{
		"category_id": 1,
		"name":        fiber.Map{"en": "Nameless"},
	}))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var after int64
	db.Model(&models.Wine{}).Count(&after)
	assert.Equal(t, before, after)
}

func TestCreateWine(t *testing.T) {
	app, db := setupApp(t)

	req := authed(t, app, jsonRequest(t, fiber.MethodPost, "/api/admin/wines", fiber.Map{
		"category_id": 1,
		"name":        fiber.Map{"zh": "新酒"},
		"price":       288,
	}))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body struct {
		ID uint `json:"id"`
	}
	decodeBody(t, resp, &body)
	require.NotZero(t, body.ID)

	var wine models.Wine
	require.NoError(t, db.First(&wine, "id = ?", body.ID).Error)
	assert.Equal(t, "新酒", wine.Name.Zh)
	assert.Equal(t, 2024, wine.Year)
	assert.Equal(t, 13.0, wine.AlcoholContent)
}

func TestDeleteWineCascadesPrices(t *testing.T) {
	app, db := setupApp(t)

	require.NoError(t, db.Create(&models.WinePrice{WineID: 1, CountryCode: "JP", Price: 9800, Currency: "JPY"}).Error)
	require.NoError(t, db.Create(&models.WinePrice{WineID: 1, CountryCode: "US", Price: 95, Currency: "USD"}).Error)

	req := authed(t, app, httptest.NewRequest(fiber.MethodDelete, "/api/admin/wines/1", nil))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var orphans int64
	db.Model(&models.WinePrice{}).Where("wine_id = ?", 1).Count(&orphans)
	assert.Zero(t, orphans)

	var wines int64
	db.Model(&models.Wine{}).Where("id = ?", 1).Count(&wines)
	assert.Zero(t, wines)
}

func TestPriceUpsert(t *testing.T) {
	app, db := setupApp(t)
	cookie := login(t, app)

	post := func(price float64) *http.Response {
		req := jsonRequest(t, fiber.MethodPost, "/api/admin/prices", fiber.Map{
			"wine_id":      1,
			"country_code": "JP",
			"price":        price,
			"currency":     "JPY",
		})
		req.AddCookie(cookie)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp
	}

	resp := post(9800)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = post(10800)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var rows []models.WinePrice
	require.NoError(t, db.Where("wine_id = ? AND country_code = ?", 1, "JP").Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 10800.0, rows[0].Price)

	// a new pair inserts exactly one new row
	req := jsonRequest(t, fiber.MethodPost, "/api/admin/prices", fiber.Map{
		"wine_id":      1,
		"country_code": "US",
		"price":        95,
		"currency":     "USD",
	})
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var total int64
	db.Model(&models.WinePrice{}).Where("wine_id = ?", 1).Count(&total)
	assert.EqualValues(t, 2, total)
}

func TestSelfDeleteRejected(t *testing.T) {
	app, db := setupApp(t)

	var admin models.Admin
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)

	req := authed(t, app, httptest.NewRequest(fiber.MethodDelete,
		"/api/admin/manage/admins/1", nil))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var count int64
	db.Model(&models.Admin{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestAddAdminRejectsDuplicateUsername(t *testing.T) {
	app, _ := setupApp(t)
	cookie := login(t, app)

	req := jsonRequest(t, fiber.MethodPost, "/api/admin/manage/admins", fiber.Map{
		"username": "admin",
		"password": "secret",
	})
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestDeleteOtherAdmin(t *testing.T) {
	app, db := setupApp(t)
	cookie := login(t, app)

	req := jsonRequest(t, fiber.MethodPost, "/api/admin/manage/admins", fiber.Map{
		"username": "second",
		"password": "secret",
		"email":    "second@winehouse.com",
	})
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body struct {
		ID uint `json:"id"`
	}
	decodeBody(t, resp, &body)

	del := httptest.NewRequest(fiber.MethodDelete, "/api/admin/manage/admins/2", nil)
	del.AddCookie(cookie)
	resp, err = app.Test(del, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	db.Model(&models.Admin{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestChangePasswordRequiresCorrectCurrent(t *testing.T) {
	app, _ := setupApp(t)
	cookie := login(t, app)

	req := jsonRequest(t, fiber.MethodPost, "/api/admin/manage/password", fiber.Map{
		"current_password": "wrong",
		"new_password":     "newpass",
	})
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	req = jsonRequest(t, fiber.MethodPost, "/api/admin/manage/password", fiber.Map{
		"current_password": "admin123",
		"new_password":     "newpass",
	})
	req.AddCookie(cookie)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// old password no longer works, new one does
	resp, err = app.Test(jsonRequest(t, fiber.MethodPost, "/api/admin/auth", fiber.Map{
		"username": "admin", "password": "admin123",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, fiber.MethodPost, "/api/admin/auth", fiber.Map{
		"username": "admin", "password": "newpass",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSettingsSavePreservesBlankLocales(t *testing.T) {
	app, db := setupApp(t)

	req := authed(t, app, jsonRequest(t, fiber.MethodPost, "/api/admin/settings", fiber.Map{
		"setting_key":   "site_name",
		"setting_value": fiber.Map{"en": "Maison du Vin"},
	}))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var setting models.SiteSetting
	require.NoError(t, db.Where("setting_key = ?", "site_name").First(&setting).Error)
	assert.Equal(t, "Maison du Vin", setting.Value.En)
	assert.Equal(t, "Wine House", setting.Value.Zh)
	assert.Equal(t, "Wine House", setting.Value.Ja)
}

func TestSettingsBatchSave(t *testing.T) {
	app, db := setupApp(t)

	req := authed(t, app, jsonRequest(t, fiber.MethodPut, "/api/admin/settings", []fiber.Map{
		{"setting_key": "site_name", "setting_value": fiber.Map{"it": "Casa del Vino"}},
		{"setting_key": "new_key", "setting_value": fiber.Map{"zh": "新值"}},
	}))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var setting models.SiteSetting
	require.NoError(t, db.Where("setting_key = ?", "site_name").First(&setting).Error)
	assert.Equal(t, "Casa del Vino", setting.Value.It)
	assert.Equal(t, "Wine House", setting.Value.Zh)

	var created models.SiteSetting
	require.NoError(t, db.Where("setting_key = ?", "new_key").First(&created).Error)
	assert.Equal(t, "新值", created.Value.Zh)
}

func TestSettingsBatchRejectsMissingKey(t *testing.T) {
	app, db := setupApp(t)

	req := authed(t, app, jsonRequest(t, fiber.MethodPut, "/api/admin/settings", []fiber.Map{
		{"setting_key": "site_name", "setting_value": fiber.Map{"en": "Changed"}},
		{"setting_key": "", "setting_value": fiber.Map{"en": "x"}},
	}))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var setting models.SiteSetting
	require.NoError(t, db.Where("setting_key = ?", "site_name").First(&setting).Error)
	assert.Equal(t, "Wine House", setting.Value.En)
}

func TestContactSubmission(t *testing.T) {
	app, db := setupApp(t)

	resp, err := app.Test(jsonRequest(t, fiber.MethodPost, "/api/contact", fiber.Map{
		"name": "Mario", "message": "Ciao",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, fiber.MethodPost, "/api/contact", fiber.Map{
		"name": "Mario", "email": "mario@example.it", "message": "Ciao",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var message models.ContactMessage
	require.NoError(t, db.Where("email = ?", "mario@example.it").First(&message).Error)
	assert.Equal(t, "zh", message.Language)
}

func TestLocaleRedirect(t *testing.T) {
	app, _ := setupApp(t)

	cases := []struct {
		path   string
		header string
		want   string
	}{
		{"/", "ja-JP,en;q=0.8", "/ja"},
		{"/", "", "/zh"},
		{"/story", "en-US,en;q=0.9", "/en/story"},
		{"/wines/red", "it-IT", "/it/wines/red"},
		{"/contact", "fr-FR", "/zh/contact"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(fiber.MethodGet, tc.path, nil)
		if tc.header != "" {
			req.Header.Set(fiber.HeaderAcceptLanguage, tc.header)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode, "path %q", tc.path)

		location := resp.Header.Get(fiber.HeaderLocation)
		assert.Equal(t, tc.want, location, "path %q", tc.path)

		valid := false
		for _, prefix := range []string{"/zh", "/ja", "/en", "/it"} {
			if location == prefix || len(location) > len(prefix) && location[:len(prefix)+1] == prefix+"/" {
				valid = true
			}
		}
		assert.True(t, valid, "redirect %q must carry a locale prefix", location)
	}
}

func TestCategoryPageUnknownSlugIs404(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/zh/wines/rose", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListCategoriesOrderedBySortOrder(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/categories", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []models.Category `json:"data"`
	}
	decodeBody(t, resp, &body)
	require.Len(t, body.Data, 3)
	assert.Equal(t, "red", body.Data[0].Slug)
	assert.Equal(t, "white", body.Data[1].Slug)
	assert.Equal(t, "sparkling", body.Data[2].Slug)
}
