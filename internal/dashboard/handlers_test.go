package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"realty-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDashboardTest(t *testing.T, salesYear int) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Property{}, &models.Showing{}))

	h := &Handlers{Service: &Service{DB: db}, SalesYear: salesYear}
	app := fiber.New()
	app.Get("/api/dashboard", h.GetSalesSummary)
	return app, db
}

func seedSale(t *testing.T, db *gorm.DB, price float64, saleDate time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.Property{
		Address:  "Sold St",
		Type:     "House",
		Price:    price,
		Sold:     true,
		SaleDate: &saleDate,
	}).Error)
}

func getSummary(t *testing.T, app *fiber.App, path string) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestGetSalesSummary_YearWindow(t *testing.T) {
	app, db := setupDashboardTest(t, 2024)

	seedSale(t, db, 100000, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	seedSale(t, db, 50000, time.Date(2024, 12, 31, 18, 0, 0, 0, time.UTC)) // Dec 31 counts
	seedSale(t, db, 999999, time.Date(2023, 12, 31, 12, 0, 0, 0, time.UTC))
	seedSale(t, db, 999999, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	// Unsold property with a sale date is not a sale
	stray := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Property{
		Address: "Unsold St", Type: "Land", Price: 777, Sold: false, SaleDate: &stray,
	}).Error)

	resp, out := getSummary(t, app, "/api/dashboard")
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, float64(150000), out["totalAmount"])
	assert.Equal(t, float64(2), out["saleCount"])
}

func TestGetSalesSummary_YearParamOverridesConfig(t *testing.T) {
	app, db := setupDashboardTest(t, 2024)
	seedSale(t, db, 300000, time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC))

	resp, out := getSummary(t, app, "/api/dashboard?year=2023")
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, float64(300000), out["totalAmount"])
	assert.Equal(t, float64(1), out["saleCount"])
}

func TestGetSalesSummary_EmptyYear(t *testing.T) {
	app, _ := setupDashboardTest(t, 2024)

	resp, out := getSummary(t, app, "/api/dashboard")
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, float64(0), out["totalAmount"])
	assert.Equal(t, float64(0), out["saleCount"])
}

func TestGetSalesSummary_InvalidYearParam(t *testing.T) {
	app, _ := setupDashboardTest(t, 0)

	resp, out := getSummary(t, app, "/api/dashboard?year=24")
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "Invalid year", out["error"])
}

func TestGetSalesSummary_RejectsUnknownQueryParam(t *testing.T) {
	app, _ := setupDashboardTest(t, 0)

	resp, out := getSummary(t, app, "/api/dashboard?scope=all")
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, `"scope" is not allowed`, out["error"])
}
