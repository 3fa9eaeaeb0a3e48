package handlers

import (
	"net/http"
	"strconv"
	"time"

	"dinein-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// SalesReport summarizes completed orders over a date range (default:
// last 7 days): revenue, order counts by status, top items by quantity.
func (ctl *AdminController) SalesReport(c *gin.Context) {
	days := 7
	if d := c.Query("days"); d != "" {
		if parsed, err := strconv.Atoi(d); err == nil && parsed > 0 {
			days = parsed
		}
	}
	since := time.Now().AddDate(0, 0, -days)

	var orders []models.Order
	ctl.DB.Where("created_at >= ?", since).Find(&orders)

	var revenue, tax, serviceCharge float64
	statusCounts := map[string]int{}
	for _, o := range orders {
		statusCounts[string(o.Status)]++
		if o.Status == models.StatusCompleted {
			revenue += o.Total
			tax += o.Tax
			serviceCharge += o.ServiceCharge
		}
	}

	type topItem struct {
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
	}
	var top []topItem
	ctl.DB.Model(&models.OrderItem{}).
		Select("order_items.name AS name, SUM(order_items.quantity) AS quantity").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at >= ? AND orders.status = ?", since, models.StatusCompleted).
		Group("order_items.name").
		Order("quantity desc").
		Limit(10).
		Scan(&top)

	c.JSON(http.StatusOK, gin.H{
		"since":          since,
		"orders":         len(orders),
		"status_counts":  statusCounts,
		"revenue":        revenue,
		"tax_collected":  tax,
		"service_charge": serviceCharge,
		"top_items":      top,
	})
}

// GetSettings returns the restaurant record that order pricing reads from
func (ctl *AdminController) GetSettings(c *gin.Context) {
	var restaurant models.Restaurant
	if err := ctl.DB.First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant is not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

type UpdateSettingsRequest struct {
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Address       string   `json:"address"`
	Currency      string   `json:"currency"`
	TaxRate       *float64 `json:"tax_rate"`
	ServiceCharge *float64 `json:"service_charge"`
	IsOpen        *bool    `json:"is_open"`
}

// UpdateSettings edits restaurant settings. Changes only affect orders
// created afterwards; existing orders keep their snapshotted tax rate.
func (ctl *AdminController) UpdateSettings(c *gin.Context) {
	var restaurant models.Restaurant
	if err := ctl.DB.First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant is not configured"})
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Slug != "" {
		updates["slug"] = req.Slug
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.Currency != "" {
		updates["currency"] = req.Currency
	}
	if req.TaxRate != nil {
		updates["tax_rate"] = *req.TaxRate
	}
	if req.ServiceCharge != nil {
		updates["service_charge"] = *req.ServiceCharge
	}
	if req.IsOpen != nil {
		updates["is_open"] = *req.IsOpen
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	if err := ctl.DB.Model(&restaurant).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings updated", "restaurant": restaurant})
}
