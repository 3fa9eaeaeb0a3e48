package handlers

import (
	"net/http"
	"time"

	"dinein-api/middleware"
	"dinein-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffController struct {
	DB *gorm.DB
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db}
}

// List returns all staff accounts, optionally filtered by approval state
func (ctl *StaffController) List(c *gin.Context) {
	query := ctl.DB.Order("created_at desc")
	if pending := c.Query("pending"); pending == "true" {
		query = query.Where("is_approved = ?", false)
	}
	var staff []models.Staff
	query.Find(&staff)
	c.JSON(http.StatusOK, gin.H{"count": len(staff), "staff": staff})
}

// Approve grants dashboard access to a pending account
func (ctl *StaffController) Approve(c *gin.Context) {
	approverID := middleware.GetStaffID(c)

	var staff models.Staff
	if err := ctl.DB.First(&staff, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
		return
	}
	if staff.IsApproved {
		c.JSON(http.StatusOK, gin.H{"message": "Already approved", "staff": staff})
		return
	}

	now := time.Now()
	ctl.DB.Model(&staff).Updates(map[string]interface{}{
		"is_approved": true,
		"approved_by": approverID,
		"approved_at": now,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Staff approved", "staff": staff})
}

type UpdateRoleRequest struct {
	Role models.StaffRole `json:"role" binding:"required"`
}

// UpdateRole changes a staff member's role
func (ctl *StaffController) UpdateRole(c *gin.Context) {
	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: admin, manager, kitchen, or waiter"})
		return
	}

	var staff models.Staff
	if err := ctl.DB.First(&staff, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
		return
	}

	ctl.DB.Model(&staff).Update("role", req.Role)
	c.JSON(http.StatusOK, gin.H{"message": "Role updated", "staff": staff})
}

// Deactivate revokes access without deleting the record. The auth
// middleware rechecks this flag per request, so it applies immediately.
func (ctl *StaffController) Deactivate(c *gin.Context) {
	callerID := middleware.GetStaffID(c)

	var staff models.Staff
	if err := ctl.DB.First(&staff, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
		return
	}
	if staff.ID == callerID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot deactivate your own account"})
		return
	}

	ctl.DB.Model(&staff).Update("is_active", false)
	c.JSON(http.StatusOK, gin.H{"message": "Staff deactivated", "staff": staff})
}

type CreateInviteRequest struct {
	Email string           `json:"email" binding:"required,email"`
	Role  models.StaffRole `json:"role" binding:"required"`
}

// CreateInvite issues an invite token that pre-approves a registration
// for the given email and role. Tokens expire after 7 days.
func (ctl *StaffController) CreateInvite(c *gin.Context) {
	var req CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: admin, manager, kitchen, or waiter"})
		return
	}

	invite := models.StaffInvite{
		Token:     uuid.NewString(),
		Email:     req.Email,
		Role:      req.Role,
		InvitedBy: middleware.GetStaffID(c),
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}
	if err := ctl.DB.Create(&invite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invite"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Invite created", "invite": invite})
}

// ListInvites returns all invites with their redemption state
func (ctl *StaffController) ListInvites(c *gin.Context) {
	var invites []models.StaffInvite
	ctl.DB.Order("created_at desc").Find(&invites)
	c.JSON(http.StatusOK, gin.H{"count": len(invites), "invites": invites})
}
