package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"dinein-api/config"
	"dinein-api/middleware"
	"dinein-api/models"
	"dinein-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testPassword = "password123"

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func setupServer(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		DBPath:         filepath.Join(t.TempDir(), "test.db"),
		JWTSecret:      []byte("test-secret"),
		JWTTTL:         time.Hour,
		BaseURL:        "https://example.com",
		RestaurantName: "La Maison",
		RestaurantSlug: "la-maison",
	}

	db, err := config.OpenDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = config.CloseDB(db) })

	restaurant, err := config.SeedRestaurant(db, cfg)
	require.NoError(t, err)
	require.NoError(t, db.Model(restaurant).Updates(map[string]interface{}{
		"tax_rate":       10.0,
		"service_charge": 2.0,
	}).Error)

	r := gin.New()
	routes.SetupRoutes(r, db, cfg)
	return r, db, cfg
}

func createStaff(t *testing.T, db *gorm.DB, email string, role models.StaffRole, approved bool) models.Staff {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	var restaurant models.Restaurant
	require.NoError(t, db.First(&restaurant).Error)

	staff := models.Staff{
		RestaurantID: restaurant.ID,
		Email:        email,
		Name:         "Test " + string(role),
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		IsApproved:   approved,
	}
	require.NoError(t, db.Create(&staff).Error)
	return staff
}

func tokenFor(t *testing.T, cfg *config.Config, staff models.Staff) string {
	t.Helper()
	token, err := middleware.GenerateToken(&staff, cfg.JWTSecret, cfg.JWTTTL)
	require.NoError(t, err)
	return token
}

func seedMenu(t *testing.T, db *gorm.DB) (models.MenuItem, models.MenuItem) {
	t.Helper()
	var restaurant models.Restaurant
	require.NoError(t, db.First(&restaurant).Error)

	category := models.Category{RestaurantID: restaurant.ID, Name: "Mains", IsActive: true}
	require.NoError(t, db.Create(&category).Error)

	burger := models.MenuItem{
		RestaurantID: restaurant.ID,
		CategoryID:   category.ID,
		Name:         "Burger",
		Price:        10,
		IsAvailable:  true,
	}
	fries := models.MenuItem{
		RestaurantID: restaurant.ID,
		CategoryID:   category.ID,
		Name:         "Fries",
		Price:        5,
		IsAvailable:  true,
	}
	require.NoError(t, db.Create(&burger).Error)
	require.NoError(t, db.Create(&fries).Error)
	return burger, fries
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// placeOrder posts the standard two-line test order:
// 2x Burger(10) + 1x Fries(5) at 10% tax and a 2 service charge.
func placeOrder(t *testing.T, r *gin.Engine, burger, fries models.MenuItem) map[string]interface{} {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/r/la-maison/table/7/orders", "", gin.H{
		"customer_name": "Alex",
		"items": []gin.H{
			{"menu_item_id": burger.ID, "quantity": 2},
			{"menu_item_id": fries.ID, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)["order"].(map[string]interface{})
}
