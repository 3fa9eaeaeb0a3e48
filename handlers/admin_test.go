package handlers_test

import (
	"net/http"
	"testing"

	"dinein-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesReportCountsCompletedRevenue(t *testing.T) {
	r, db, cfg := setupServer(t)
	burger, fries := seedMenu(t, db)
	admin := createStaff(t, db, "admin@test.local", models.RoleAdmin, true)
	adminToken := tokenFor(t, cfg, admin)

	completed := placeOrder(t, r, burger, fries)
	placeOrder(t, r, burger, fries) // stays pending, contributes no revenue

	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", completed["id"]).
		Update("status", models.StatusCompleted).Error)

	w := doJSON(t, r, http.MethodGet, "/api/reports/sales", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)

	assert.Equal(t, 2.0, body["orders"])
	assert.Equal(t, 29.5, body["revenue"])
	counts := body["status_counts"].(map[string]interface{})
	assert.Equal(t, 1.0, counts["completed"])
	assert.Equal(t, 1.0, counts["pending"])

	top := body["top_items"].([]interface{})
	require.NotEmpty(t, top)
	first := top[0].(map[string]interface{})
	assert.Equal(t, "Burger", first["name"])
	assert.Equal(t, 2.0, first["quantity"])
}

func TestReportsRequireCapability(t *testing.T) {
	r, db, cfg := setupServer(t)
	waiter := createStaff(t, db, "waiter@test.local", models.RoleWaiter, true)
	waiterToken := tokenFor(t, cfg, waiter)

	w := doJSON(t, r, http.MethodGet, "/api/reports/sales", waiterToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSettingsChangeOnlyAffectsNewOrders(t *testing.T) {
	r, db, cfg := setupServer(t)
	burger, fries := seedMenu(t, db)
	admin := createStaff(t, db, "admin@test.local", models.RoleAdmin, true)
	adminToken := tokenFor(t, cfg, admin)

	before := placeOrder(t, r, burger, fries)
	assert.Equal(t, 10.0, before["tax_rate"])

	w := doJSON(t, r, http.MethodPut, "/api/settings", adminToken, gin.H{"tax_rate": 20})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	after := placeOrder(t, r, burger, fries)
	assert.Equal(t, 20.0, after["tax_rate"])
	assert.Equal(t, 5.0, after["tax"]) // 25 * 20%

	// the earlier order keeps its snapshotted rate
	var stored models.Order
	require.NoError(t, db.First(&stored, before["id"]).Error)
	assert.Equal(t, 10.0, stored.TaxRate)
	assert.Equal(t, 2.5, stored.Tax)
}

func TestSettingsRequireCapability(t *testing.T) {
	r, db, cfg := setupServer(t)
	manager := createStaff(t, db, "manager@test.local", models.RoleManager, true)
	managerToken := tokenFor(t, cfg, manager)

	w := doJSON(t, r, http.MethodGet, "/api/settings", managerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
