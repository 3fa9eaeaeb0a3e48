package handlers

import (
	"net/http"
	"strconv"

	"dinein-api/models"
	"dinein-api/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PublicController struct {
	DB *gorm.DB
}

func NewPublicController(db *gorm.DB) *PublicController {
	return &PublicController{DB: db}
}

// TableMenu resolves the QR-link route /r/:slug/table/:number: the menu
// grouped by category plus the table context the ordering UI needs.
func (ctl *PublicController) TableMenu(c *gin.Context) {
	slug := c.Param("slug")
	tableNumber, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid table number"})
		return
	}

	var restaurant models.Restaurant
	if err := ctl.DB.Where("slug = ?", slug).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	menu, ok := ctl.menuForRestaurant(c, restaurant.ID)
	if !ok {
		return
	}

	response := gin.H{
		"restaurant": gin.H{
			"name":           restaurant.Name,
			"slug":           restaurant.Slug,
			"currency":       restaurant.Currency,
			"tax_rate":       restaurant.TaxRate,
			"service_charge": restaurant.ServiceCharge,
			"is_open":        restaurant.IsOpen,
		},
		"table_number": tableNumber,
		"menu":         menu,
	}

	var table models.Table
	if err := ctl.DB.Where("restaurant_id = ? AND number = ?", restaurant.ID, tableNumber).
		First(&table).Error; err == nil {
		response["table"] = table
	}

	c.JSON(http.StatusOK, response)
}

// Menu returns a restaurant's menu without table context
func (ctl *PublicController) Menu(c *gin.Context) {
	var restaurant models.Restaurant
	if err := ctl.DB.Where("slug = ?", c.Param("slug")).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	menu, ok := ctl.menuForRestaurant(c, restaurant.ID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant.Name, "menu": menu})
}

// GetStateMachineInfo exposes the order lifecycle for docs and clients
func (ctl *PublicController) GetStateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"states": []models.OrderStatus{
			models.StatusPending, models.StatusConfirmed, models.StatusPreparing,
			models.StatusReady, models.StatusServed, models.StatusCompleted,
			models.StatusCancelled,
		},
		"transitions": statemachine.GetAllTransitions(),
	})
}

type menuCategory struct {
	Category models.Category   `json:"category"`
	Items    []models.MenuItem `json:"items"`
}

func (ctl *PublicController) menuForRestaurant(c *gin.Context, restaurantID uint) ([]menuCategory, bool) {
	var categories []models.Category
	if err := ctl.DB.Where("restaurant_id = ? AND is_active = ?", restaurantID, true).
		Order("sort_order asc, name asc").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return nil, false
	}

	menu := make([]menuCategory, 0, len(categories))
	for _, cat := range categories {
		var items []models.MenuItem
		ctl.DB.Where("category_id = ? AND is_available = ?", cat.ID, true).
			Order("name asc").Find(&items)
		if len(items) == 0 {
			continue
		}
		menu = append(menu, menuCategory{Category: cat, Items: items})
	}
	return menu, true
}
