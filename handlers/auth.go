package handlers

import (
	"net/http"
	"time"

	"dinein-api/config"
	"dinein-api/middleware"
	"dinein-api/models"
	"dinein-api/permissions"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

type RegisterRequest struct {
	Name     string           `json:"name" binding:"required"`
	Email    string           `json:"email" binding:"required,email"`
	Password string           `json:"password" binding:"required,min=6"`
	Role     models.StaffRole `json:"role" binding:"required"`
	// InviteToken, when valid for this email, pre-approves the account
	InviteToken string `json:"invite_token"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a staff account. Accounts start unapproved and cannot
// log in until an admin approves them, unless a valid invite token is
// presented.
func (ctl *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: admin, manager, kitchen, or waiter"})
		return
	}

	var existing models.Staff
	if result := ctl.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	var restaurant models.Restaurant
	if err := ctl.DB.Where("slug = ?", ctl.Cfg.RestaurantSlug).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Restaurant is not configured"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	staff := models.Staff{
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		IsActive:     true,
	}

	// Redeem an invite inside the same transaction as account creation so a
	// token can never be consumed without the account existing.
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if req.InviteToken != "" {
			var invite models.StaffInvite
			if err := tx.Where("token = ? AND email = ? AND used_at IS NULL", req.InviteToken, req.Email).
				First(&invite).Error; err == nil && invite.ExpiresAt.After(time.Now()) {
				now := time.Now()
				staff.Role = invite.Role
				staff.IsApproved = true
				staff.ApprovedBy = &invite.InvitedBy
				staff.ApprovedAt = &now
				if err := tx.Model(&invite).Update("used_at", now).Error; err != nil {
					return err
				}
			}
		}
		return tx.Create(&staff).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created. An admin must approve it before you can log in.",
		"staff": gin.H{
			"id":          staff.ID,
			"name":        staff.Name,
			"email":       staff.Email,
			"role":        staff.Role,
			"is_approved": staff.IsApproved,
		},
	})
}

// Login authenticates a staff member and returns a JWT. Valid credentials
// are not enough: the account must also be active and approved.
func (ctl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var staff models.Staff
	if err := ctl.DB.Where("email = ?", req.Email).First(&staff).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if !staff.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is deactivated"})
		return
	}
	if !staff.IsApproved {
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is pending admin approval"})
		return
	}

	token, err := middleware.GenerateToken(&staff, ctl.Cfg.JWTSecret, ctl.Cfg.JWTTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	ctl.DB.Model(&staff).Update("last_login_at", time.Now())

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"staff": gin.H{
			"id":    staff.ID,
			"name":  staff.Name,
			"email": staff.Email,
			"role":  staff.Role,
		},
		"permissions": permissions.ForRole(staff.Role),
	})
}

// Profile returns the authenticated staff member with their capability set
func (ctl *AuthController) Profile(c *gin.Context) {
	staffID := middleware.GetStaffID(c)
	var staff models.Staff
	if err := ctl.DB.First(&staff, staffID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"staff":       staff,
		"permissions": permissions.ForRole(staff.Role),
	})
}
