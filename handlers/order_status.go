package handlers

import (
	"net/http"
	"strconv"
	"time"

	"dinein-api/middleware"
	"dinein-api/models"
	"dinein-api/permissions"
	"dinein-api/pricing"
	"dinein-api/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
	Note   string             `json:"note"`
}

// UpdateStatus moves an order through its lifecycle. Invalid transitions
// are rejected by the state machine; valid ones stamp their transition
// timestamp exactly once and append to the audit history.
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	staffID := middleware.GetStaffID(c)

	var order models.Order
	if err := ctl.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	prevStatus := order.Status
	now := time.Now()

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": req.Status}
		if col, ok := statemachine.TimestampColumn(req.Status); ok {
			updates[col] = now
		}
		if err := tx.Model(&order).Updates(updates).Error; err != nil {
			return err
		}

		history := models.OrderStatusHistory{
			OrderID:    order.ID,
			FromStatus: prevStatus,
			ToStatus:   req.Status,
			ChangedBy:  staffID,
			Note:       req.Note,
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		// A finished order no longer occupies its table slot
		if statemachine.IsTerminal(req.Status) && order.TableID != nil {
			if err := tx.Model(&models.Table{}).
				Where("id = ? AND current_order_id = ?", *order.TableID, order.ID).
				Update("current_order_id", nil).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": string(prevStatus),
		"current_status":  string(req.Status),
	})
}

// RemoveItem removes one line item from a pending order and recomputes the
// derived pricing fields from the tax rate stored on the order.
func (ctl *OrderController) RemoveItem(c *gin.Context) {
	var order models.Order
	if err := ctl.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if order.Status != models.StatusPending {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Items can only be removed while the order is pending",
			"current_status": order.Status,
		})
		return
	}

	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	var target *models.OrderItem
	for i := range order.Items {
		if order.Items[i].ID == uint(itemID) {
			target = &order.Items[i]
			break
		}
	}
	if target == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
		return
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.OrderItem{}, target.ID).Error; err != nil {
			return err
		}

		remaining := make([]models.OrderItem, 0, len(order.Items)-1)
		for _, it := range order.Items {
			if it.ID != target.ID {
				remaining = append(remaining, it)
			}
		}

		// An order emptied of items keeps zero totals; that's accepted.
		totals := pricing.OrderTotals(remaining, order.TaxRate, order.ServiceCharge, order.Discount)
		return tx.Model(&order).Updates(map[string]interface{}{
			"subtotal": totals.Subtotal,
			"tax":      totals.Tax,
			"total":    totals.Total,
		}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
		return
	}

	ctl.DB.Preload("Items").First(&order, order.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Item removed", "order": order})
}

type UpdateItemStatusRequest struct {
	Status models.ItemStatus `json:"status" binding:"required,oneof=pending preparing ready"`
}

// UpdateItemStatus sets the kitchen-side state of one line item,
// independent of the order-level status
func (ctl *OrderController) UpdateItemStatus(c *gin.Context) {
	var order models.Order
	if err := ctl.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var item models.OrderItem
	if err := ctl.DB.Where("order_id = ?", order.ID).
		First(&item, c.Param("itemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
		return
	}

	var req UpdateItemStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctl.DB.Model(&item).Update("status", req.Status)
	c.JSON(http.StatusOK, gin.H{"message": "Item status updated", "item": item})
}

type UpdatePaymentRequest struct {
	PaymentStatus models.PaymentStatus `json:"payment_status" binding:"required,oneof=pending paid verified refunded"`
}

// UpdatePayment sets the order's payment status. Marking a payment
// verified additionally requires the verify-payments capability.
func (ctl *OrderController) UpdatePayment(c *gin.Context) {
	var order models.Order
	if err := ctl.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.PaymentStatus == models.PaymentVerified {
		if !permissions.HasPermission(middleware.GetRole(c), permissions.CanVerifyPayments) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Required capability: " + string(permissions.CanVerifyPayments)})
			return
		}
	}

	ctl.DB.Model(&order).Update("payment_status", req.PaymentStatus)
	c.JSON(http.StatusOK, gin.H{
		"message":        "Payment status updated",
		"order_id":       order.ID,
		"payment_status": req.PaymentStatus,
	})
}
