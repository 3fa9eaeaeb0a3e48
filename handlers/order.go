package handlers

import (
	"net/http"
	"strconv"

	"dinein-api/models"
	"dinein-api/pricing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

type PlaceOrderRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Notes         string `json:"notes"`
	Items         []struct {
		MenuItemID uint     `json:"menu_item_id" binding:"required"`
		Quantity   int      `json:"quantity" binding:"required,min=1"`
		Variant    string   `json:"variant"`
		Addons     []string `json:"addons"`
		Notes      string   `json:"notes"`
	} `json:"items" binding:"required,min=1"`
}

// Place creates an order for a table, addressed by restaurant slug and
// table number — the same identifiers the QR link carries.
func (ctl *OrderController) Place(c *gin.Context) {
	slug := c.Param("slug")
	tableNumber, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid table number"})
		return
	}

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var restaurant models.Restaurant
	if err := ctl.DB.Where("slug = ?", slug).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	if !restaurant.IsOpen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant is currently closed"})
		return
	}

	// The table record is optional: orders carry the number either way,
	// but a registered inactive table cannot order.
	var table *models.Table
	var t models.Table
	if err := ctl.DB.Where("restaurant_id = ? AND number = ?", restaurant.ID, tableNumber).
		First(&t).Error; err == nil {
		if !t.IsActive {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Table is not in service"})
			return
		}
		table = &t
	}

	// Build snapshot line items and price them
	var orderItems []models.OrderItem
	for _, reqItem := range req.Items {
		var menuItem models.MenuItem
		if err := ctl.DB.First(&menuItem, reqItem.MenuItemID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item not found"})
			return
		}
		if menuItem.RestaurantID != restaurant.ID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item does not belong to this restaurant"})
			return
		}
		if !menuItem.IsAvailable {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item '" + menuItem.Name + "' is not available"})
			return
		}

		item := models.OrderItem{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			UnitPrice:  menuItem.Price,
			Quantity:   reqItem.Quantity,
			Notes:      reqItem.Notes,
			ImageURL:   menuItem.ImageURL,
			Status:     models.ItemPending,
		}

		if reqItem.Variant != "" {
			found := false
			for _, v := range menuItem.Variants {
				if v.Name == reqItem.Variant {
					item.VariantName = v.Name
					item.VariantModifier = v.PriceModifier
					found = true
					break
				}
			}
			if !found {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown variant '" + reqItem.Variant + "' for '" + menuItem.Name + "'"})
				return
			}
		}
		for _, name := range reqItem.Addons {
			found := false
			for _, a := range menuItem.Addons {
				if a.Name == name {
					item.AddonsPrice += a.Price
					found = true
					break
				}
			}
			if !found {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown addon '" + name + "' for '" + menuItem.Name + "'"})
				return
			}
		}

		item.LineTotal = pricing.LineTotal(item.UnitPrice, item.Quantity, item.VariantModifier, item.AddonsPrice)
		orderItems = append(orderItems, item)
	}

	totals := pricing.OrderTotals(orderItems, restaurant.TaxRate, restaurant.ServiceCharge, 0)

	order := models.Order{
		RestaurantID:  restaurant.ID,
		TableNumber:   tableNumber,
		Items:         orderItems,
		TaxRate:       restaurant.TaxRate,
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentPending,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Notes:         req.Notes,
	}
	totals.Apply(&order)

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if table != nil {
			order.TableID = &table.ID

			// Attach to the table's open session, if one exists
			var session models.TableSession
			if err := tx.Where("table_id = ? AND ended_at IS NULL", table.ID).
				First(&session).Error; err == nil {
				order.SessionID = &session.ID
			}
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		history := models.OrderStatusHistory{
			OrderID:  order.ID,
			ToStatus: models.StatusPending,
			Note:     "Order placed by customer",
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		if table != nil {
			return tx.Model(table).Updates(map[string]interface{}{
				"status":           models.TableOccupied,
				"current_order_id": order.ID,
			}).Error
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	ctl.DB.Preload("Items").First(&order, order.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

// Track returns a single order for customer-side status tracking
func (ctl *OrderController) Track(c *gin.Context) {
	var order models.Order
	if err := ctl.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// List returns orders for the dashboard, with filters and a per-status
// summary for the board header
func (ctl *OrderController) List(c *gin.Context) {
	query := ctl.DB.Preload("Items").Order("created_at desc")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if table := c.Query("table"); table != "" {
		query = query.Where("table_number = ?", table)
	}
	if c.Query("active") == "true" {
		query = query.Where("status NOT IN ?", []models.OrderStatus{models.StatusCompleted, models.StatusCancelled})
	}

	var orders []models.Order
	query.Find(&orders)

	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"count":         len(orders),
		"order_summary": summary,
		"orders":        orders,
	})
}

// Detail returns an order with items and full status history
func (ctl *OrderController) Detail(c *gin.Context) {
	var order models.Order
	if err := ctl.DB.Preload("Items").Preload("StatusHistory").
		First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}
