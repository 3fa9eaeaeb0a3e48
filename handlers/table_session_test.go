package handlers_test

import (
	"net/http"
	"testing"

	"dinein-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTable(t *testing.T, r *gin.Engine, token string, number int) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/tables", token, gin.H{
		"number":   number,
		"name":     "Window",
		"capacity": 4,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	table := decode(t, w)["table"].(map[string]interface{})
	return itoa(uint(table["id"].(float64)))
}

func TestTableLink(t *testing.T) {
	r, db, cfg := setupServer(t)
	admin := createStaff(t, db, "admin@test.local", models.RoleAdmin, true)
	adminToken := tokenFor(t, cfg, admin)

	tableID := createTable(t, r, adminToken, 7)

	w := doJSON(t, r, http.MethodGet, "/api/tables/"+tableID+"/link", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "https://example.com/r/la-maison/table/7", body["url"])
	assert.Equal(t, "/r/la-maison/table/7", body["path"])
}

func TestDuplicateTableNumberRejected(t *testing.T) {
	r, db, cfg := setupServer(t)
	admin := createStaff(t, db, "admin@test.local", models.RoleAdmin, true)
	adminToken := tokenFor(t, cfg, admin)

	createTable(t, r, adminToken, 7)
	w := doJSON(t, r, http.MethodPost, "/api/tables", adminToken, gin.H{"number": 7})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSessionLifecycle(t *testing.T) {
	r, db, cfg := setupServer(t)
	burger, fries := seedMenu(t, db)
	admin := createStaff(t, db, "admin@test.local", models.RoleAdmin, true)
	adminToken := tokenFor(t, cfg, admin)

	tableID := createTable(t, r, adminToken, 7)

	// open: zero spend, no orders
	w := doJSON(t, r, http.MethodPost, "/api/tables/"+tableID+"/session", adminToken, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	session := decode(t, w)["session"].(map[string]interface{})
	assert.Equal(t, 0.0, session["total_spent"])
	assert.NotEmpty(t, session["ref"])

	// opening again conflicts
	w = doJSON(t, r, http.MethodPost, "/api/tables/"+tableID+"/session", adminToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// an order placed at the table attaches to the open session
	order := placeOrder(t, r, burger, fries)
	assert.Equal(t, session["id"], order["session_id"])

	w = doJSON(t, r, http.MethodGet, "/api/tables/"+tableID+"/session", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	current := decode(t, w)["session"].(map[string]interface{})
	assert.Len(t, current["orders"], 1)

	// close: total spent computed from the session's orders
	w = doJSON(t, r, http.MethodDelete, "/api/tables/"+tableID+"/session", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	closed := decode(t, w)["session"].(map[string]interface{})
	assert.Equal(t, 29.5, closed["total_spent"])
	assert.NotNil(t, closed["ended_at"])

	var table models.Table
	require.NoError(t, db.First(&table, tableID).Error)
	assert.Equal(t, models.TableCleaning, table.Status)
	assert.Nil(t, table.CurrentOrderID)

	// no open session anymore
	w = doJSON(t, r, http.MethodDelete, "/api/tables/"+tableID+"/session", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionTotalExcludesCancelledOrders(t *testing.T) {
	r, db, cfg := setupServer(t)
	burger, fries := seedMenu(t, db)
	admin := createStaff(t, db, "admin@test.local", models.RoleAdmin, true)
	adminToken := tokenFor(t, cfg, admin)

	tableID := createTable(t, r, adminToken, 7)
	w := doJSON(t, r, http.MethodPost, "/api/tables/"+tableID+"/session", adminToken, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	kept := placeOrder(t, r, burger, fries)
	cancelled := placeOrder(t, r, burger, fries)

	w = doJSON(t, r, http.MethodPut,
		"/api/orders/"+itoa(uint(cancelled["id"].(float64)))+"/status", adminToken,
		gin.H{"status": "cancelled"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodDelete, "/api/tables/"+tableID+"/session", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	closed := decode(t, w)["session"].(map[string]interface{})
	assert.Equal(t, kept["total"], closed["total_spent"])
}

func TestTableMenuRoute(t *testing.T) {
	r, db, _ := setupServer(t)
	seedMenu(t, db)

	w := doJSON(t, r, http.MethodGet, "/r/la-maison/table/7", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, 7.0, body["table_number"])
	restaurant := body["restaurant"].(map[string]interface{})
	assert.Equal(t, "la-maison", restaurant["slug"])
	assert.Len(t, body["menu"], 1)

	w = doJSON(t, r, http.MethodGet, "/r/no-such-place/table/7", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
