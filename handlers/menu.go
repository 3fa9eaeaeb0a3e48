package handlers

import (
	"net/http"

	"dinein-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// ── Categories ─────────────────────────────────────────────────

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active"`
}

func (ctl *MenuController) ListCategories(c *gin.Context) {
	var categories []models.Category
	ctl.DB.Order("sort_order asc, name asc").Find(&categories)
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

func (ctl *MenuController) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, ok := ctl.restaurant(c)
	if !ok {
		return
	}

	category := models.Category{
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Description:  req.Description,
		SortOrder:    req.SortOrder,
		IsActive:     true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if err := ctl.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "category": category})
}

func (ctl *MenuController) UpdateCategory(c *gin.Context) {
	var category models.Category
	if err := ctl.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"sort_order":  req.SortOrder,
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	ctl.DB.Model(&category).Updates(updates)
	c.JSON(http.StatusOK, gin.H{"message": "Category updated", "category": category})
}

// DeleteCategory soft-deletes; menu items keep their category reference
func (ctl *MenuController) DeleteCategory(c *gin.Context) {
	var category models.Category
	if err := ctl.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	ctl.DB.Delete(&category)
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

// ── Menu items ─────────────────────────────────────────────────

type MenuItemRequest struct {
	CategoryID  uint             `json:"category_id" binding:"required"`
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Price       float64          `json:"price" binding:"required,gt=0"`
	ImageURL    string           `json:"image_url"`
	IsAvailable *bool            `json:"is_available"`
	IsVeg       bool             `json:"is_veg"`
	Variants    []models.Variant `json:"variants"`
	Addons      []models.Addon   `json:"addons"`
}

func (ctl *MenuController) ListItems(c *gin.Context) {
	query := ctl.DB.Preload("Category").Order("name asc")
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if available := c.Query("available"); available == "true" {
		query = query.Where("is_available = ?", true)
	}
	var items []models.MenuItem
	query.Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

func (ctl *MenuController) CreateItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var category models.Category
	if err := ctl.DB.First(&category, req.CategoryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
		return
	}

	item := models.MenuItem{
		RestaurantID: category.RestaurantID,
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		IsAvailable:  true,
		IsVeg:        req.IsVeg,
		Variants:     req.Variants,
		Addons:       req.Addons,
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if err := ctl.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item created", "item": item})
}

func (ctl *MenuController) UpdateItem(c *gin.Context) {
	var item models.MenuItem
	if err := ctl.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item.CategoryID = req.CategoryID
	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.ImageURL = req.ImageURL
	item.IsVeg = req.IsVeg
	item.Variants = req.Variants
	item.Addons = req.Addons
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if err := ctl.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteItem soft-deletes so past order snapshots keep a valid reference
func (ctl *MenuController) DeleteItem(c *gin.Context) {
	var item models.MenuItem
	if err := ctl.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	ctl.DB.Delete(&item)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

func (ctl *MenuController) restaurant(c *gin.Context) (*models.Restaurant, bool) {
	var restaurant models.Restaurant
	if err := ctl.DB.First(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Restaurant is not configured"})
		return nil, false
	}
	return &restaurant, true
}
