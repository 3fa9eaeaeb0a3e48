package handlers

import (
	"net/http"
	"time"

	"dinein-api/config"
	"dinein-api/models"
	"dinein-api/tablelink"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TableController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewTableController(db *gorm.DB, cfg *config.Config) *TableController {
	return &TableController{DB: db, Cfg: cfg}
}

type TableRequest struct {
	Number   int    `json:"number" binding:"required,min=1"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Section  string `json:"section"`
	IsActive *bool  `json:"is_active"`
}

func (ctl *TableController) List(c *gin.Context) {
	query := ctl.DB.Order("number asc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if section := c.Query("section"); section != "" {
		query = query.Where("section = ?", section)
	}
	var tables []models.Table
	query.Find(&tables)
	c.JSON(http.StatusOK, gin.H{"count": len(tables), "tables": tables})
}

func (ctl *TableController) Create(c *gin.Context) {
	var req TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var restaurant models.Restaurant
	if err := ctl.DB.Where("slug = ?", ctl.Cfg.RestaurantSlug).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Restaurant is not configured"})
		return
	}

	var existing models.Table
	if err := ctl.DB.Where("restaurant_id = ? AND number = ?", restaurant.ID, req.Number).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Table number already exists"})
		return
	}

	table := models.Table{
		RestaurantID: restaurant.ID,
		Number:       req.Number,
		Name:         req.Name,
		Capacity:     req.Capacity,
		Section:      req.Section,
		Status:       models.TableAvailable,
		IsActive:     true,
	}
	if table.Capacity == 0 {
		table.Capacity = 2
	}
	if req.IsActive != nil {
		table.IsActive = *req.IsActive
	}
	if err := ctl.DB.Create(&table).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create table"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Table created", "table": table})
}

func (ctl *TableController) Update(c *gin.Context) {
	var table models.Table
	if err := ctl.DB.First(&table, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}

	var req TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"number":   req.Number,
		"name":     req.Name,
		"capacity": req.Capacity,
		"section":  req.Section,
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	ctl.DB.Model(&table).Updates(updates)
	c.JSON(http.StatusOK, gin.H{"message": "Table updated", "table": table})
}

type TableStatusRequest struct {
	Status models.TableStatus `json:"status" binding:"required,oneof=available occupied reserved cleaning"`
}

func (ctl *TableController) UpdateStatus(c *gin.Context) {
	var table models.Table
	if err := ctl.DB.First(&table, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}

	var req TableStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{"status": req.Status}
	// Leaving occupied clears the table's current order pointer
	if req.Status != models.TableOccupied {
		updates["current_order_id"] = nil
	}
	ctl.DB.Model(&table).Updates(updates)
	c.JSON(http.StatusOK, gin.H{"message": "Table status updated", "table": table})
}

// Link returns the customer-facing URL encoded into the table's QR code
func (ctl *TableController) Link(c *gin.Context) {
	var table models.Table
	if err := ctl.DB.First(&table, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}

	var restaurant models.Restaurant
	if err := ctl.DB.First(&restaurant, table.RestaurantID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Restaurant is not configured"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"table_id": table.ID,
		"number":   table.Number,
		"url":      tablelink.MenuURL(ctl.Cfg.BaseURL, restaurant.Slug, table.Number),
		"path":     tablelink.MenuPath(restaurant.Slug, table.Number),
	})
}

// ── Sessions ───────────────────────────────────────────────────

// OpenSession starts a seating at a table: zero spend, no orders yet.
// The table is marked occupied. A table has at most one open session.
func (ctl *TableController) OpenSession(c *gin.Context) {
	var table models.Table
	if err := ctl.DB.First(&table, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}

	var open models.TableSession
	if err := ctl.DB.Where("table_id = ? AND ended_at IS NULL", table.ID).
		First(&open).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Table already has an open session", "session": open})
		return
	}

	session := models.TableSession{
		Ref:          uuid.NewString(),
		TableID:      table.ID,
		RestaurantID: table.RestaurantID,
		StartedAt:    time.Now(),
	}

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&session).Error; err != nil {
			return err
		}
		return tx.Model(&table).Update("status", models.TableOccupied).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Session opened", "session": session})
}

// CloseSession ends the open session. Total spent is computed from the
// session's non-cancelled orders, never supplied by the caller.
func (ctl *TableController) CloseSession(c *gin.Context) {
	var table models.Table
	if err := ctl.DB.First(&table, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}

	var session models.TableSession
	if err := ctl.DB.Where("table_id = ? AND ended_at IS NULL", table.ID).
		First(&session).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No open session for this table"})
		return
	}

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var totalSpent float64
		row := tx.Model(&models.Order{}).
			Where("session_id = ? AND status != ?", session.ID, models.StatusCancelled).
			Select("COALESCE(SUM(total), 0)").Row()
		if err := row.Scan(&totalSpent); err != nil {
			return err
		}

		now := time.Now()
		if err := tx.Model(&session).Updates(map[string]interface{}{
			"ended_at":    now,
			"total_spent": totalSpent,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&table).Updates(map[string]interface{}{
			"status":           models.TableCleaning,
			"current_order_id": nil,
		}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close session"})
		return
	}

	ctl.DB.Preload("Orders").First(&session, session.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Session closed", "session": session})
}

// GetSession returns the table's open session with its orders
func (ctl *TableController) GetSession(c *gin.Context) {
	var table models.Table
	if err := ctl.DB.First(&table, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}

	var session models.TableSession
	if err := ctl.DB.Preload("Orders").
		Where("table_id = ? AND ended_at IS NULL", table.ID).
		First(&session).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No open session for this table"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}
