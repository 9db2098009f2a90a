package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/repository"
	"github.com/finversity/finversity-backend/internal/service"
	"github.com/finversity/finversity-backend/pkg/utils"
)

func newHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Course{},
		&models.Ebook{},
		&models.Package{},
		&models.PackageInclude{},
		&models.PackageFAQ{},
		&models.CartItem{},
		&models.PackagePurchase{},
	))
	return db
}

// asUser plays the part of the auth middleware for routes under test.
func asUser(userID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	}
}

func newCartApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := newHandlerTestDB(t)

	svc := service.NewCartService(
		repository.NewCartRepository(db),
		repository.NewCourseRepository(db),
		repository.NewEbookRepository(db),
	)
	h := NewCartHandler(svc, utils.NewValidator())

	app := fiber.New()
	cart := app.Group("/api/cart", asUser(1))
	cart.Post("/", h.AddItem)
	cart.Get("/", h.GetCart)
	cart.Get("/count", h.Count)
	cart.Delete("/:id", h.RemoveItem)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeResponse(t *testing.T, resp *http.Response) models.Response {
	t.Helper()
	var out models.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCartAddItemEndpoint(t *testing.T) {
	app, db := newCartApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/cart/", models.CartItemRequest{
		ProductID:   5,
		ProductType: models.ProductTypeCourse,
		Price:       499,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.True(t, decodeResponse(t, resp).Success)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestCartAddItemEndpointDuplicate(t *testing.T) {
	app, db := newCartApp(t)

	body := models.CartItemRequest{ProductID: 5, ProductType: models.ProductTypeCourse, Price: 499}

	resp := doJSON(t, app, http.MethodPost, "/api/cart/", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/cart/", body)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.False(t, decodeResponse(t, resp).Success)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestCartAddItemEndpointValidation(t *testing.T) {
	app, _ := newCartApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/cart/", map[string]interface{}{
		"product_id":   5,
		"product_type": "subscription",
		"price":        499,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCartCountEndpoint(t *testing.T) {
	app, _ := newCartApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/cart/", models.CartItemRequest{
		ProductID: 5, ProductType: models.ProductTypeEbook, Price: 199,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/cart/count", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeResponse(t, resp)
	data, ok := out.Data.(map[string]interface{})
	require.True(t, ok)
	require.EqualValues(t, 1, data["count"])
}
