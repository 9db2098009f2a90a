package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/repository"
	"github.com/finversity/finversity-backend/internal/service"
	"github.com/finversity/finversity-backend/pkg/utils"
)

func newPackageApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := newHandlerTestDB(t)

	svc := service.NewPackageService(
		repository.NewPackageRepository(db),
		repository.NewPackagePurchaseRepository(db),
	)
	h := NewPackageHandler(svc, utils.NewValidator())

	app := fiber.New()
	app.Post("/api/packages/purchases", h.RecordPurchase)
	app.Get("/api/packages/purchases/:userId", h.GetUserPurchases)

	return app, db
}

func TestPackagePurchaseEndpoint(t *testing.T) {
	app, db := newPackageApp(t)

	pkg := models.Package{Title: "Wealth Builder", Price: 4999}
	require.NoError(t, db.Create(&pkg).Error)

	resp := doJSON(t, app, http.MethodPost, "/api/packages/purchases", models.PackagePurchaseRequest{
		UserID:        3,
		PackageID:     pkg.ID,
		Amount:        4999,
		TransactionID: "pay_pkg_9",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.True(t, decodeResponse(t, resp).Success)

	req := httptest.NewRequest(http.MethodGet, "/api/packages/purchases/3", nil)
	listResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	out := decodeResponse(t, listResp)
	rows, ok := out.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, rows, 1)

	row, ok := rows[0].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "Wealth Builder", row["package_title"])
	require.EqualValues(t, 4999, row["package_price"])
	require.Equal(t, "pay_pkg_9", row["transaction_id"])
}

func TestPackagePurchaseEndpointUnknownPackage(t *testing.T) {
	app, _ := newPackageApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/packages/purchases", models.PackagePurchaseRequest{
		UserID:        3,
		PackageID:     42,
		Amount:        100,
		TransactionID: "pay_missing",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPackagePurchaseEndpointValidation(t *testing.T) {
	app, _ := newPackageApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/packages/purchases", map[string]interface{}{
		"user_id":    3,
		"package_id": 1,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
