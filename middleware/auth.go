package middleware

import (
	"net/http"
	"strings"
	"time"

	"dinein-api/models"
	"dinein-api/permissions"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type Claims struct {
	StaffID uint             `json:"staff_id"`
	Email   string           `json:"email"`
	Role    models.StaffRole `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a staff member
func GenerateToken(staff *models.Staff, secret []byte, ttl time.Duration) (string, error) {
	claims := Claims{
		StaffID: staff.ID,
		Email:   staff.Email,
		Role:    staff.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Auth holds what the middleware needs: the signing secret and a DB handle
// to re-check approval on every request, so revoking a staff member takes
// effect before their token expires.
type Auth struct {
	DB     *gorm.DB
	Secret []byte
}

func NewAuth(db *gorm.DB, secret []byte) *Auth {
	return &Auth{DB: db, Secret: secret}
}

// Required validates the JWT, loads the staff record and injects identity
// into the request context. Unapproved or deactivated accounts are rejected
// even when the token itself is valid.
func (a *Auth) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return a.Secret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		var staff models.Staff
		if err := a.DB.First(&staff, claims.StaffID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account no longer exists"})
			c.Abort()
			return
		}
		if !staff.IsActive || !staff.IsApproved {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is not approved for dashboard access"})
			c.Abort()
			return
		}

		c.Set("staffID", staff.ID)
		c.Set("email", staff.Email)
		c.Set("role", string(staff.Role))
		c.Next()
	}
}

// Permission enforces a single capability from the static role table
func (a *Auth) Permission(cap permissions.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not found in context"})
			c.Abort()
			return
		}
		role := models.StaffRole(roleVal.(string))
		if !permissions.HasPermission(role, cap) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied. Required capability: " + string(cap),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetStaffID extracts the caller's staff ID from context
func GetStaffID(c *gin.Context) uint {
	val, _ := c.Get("staffID")
	return val.(uint)
}

// GetRole extracts the caller's role from context
func GetRole(c *gin.Context) models.StaffRole {
	val, _ := c.Get("role")
	return models.StaffRole(val.(string))
}
