package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/teg-hub/fair-chance-workforce-platform/models"
	"github.com/teg-hub/fair-chance-workforce-platform/utils"
)

// Register creates a tenant-scoped user account. Tenants are provisioned
// out-of-band; the first registration for a tenant id bootstraps it.
func Register(c *gin.Context) {
	var input struct {
		TenantID string `json:"tenant_id"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid JSON body"})
		return
	}
	if input.TenantID == "" || input.Email == "" || input.Password == "" || input.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Missing required fields"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create user"})
		return
	}

	user := models.User{
		ID:        uuid.NewString(),
		TenantID:  input.TenantID,
		Email:     input.Email,
		Password:  string(hash),
		Role:      input.Role,
		CreatedAt: time.Now().UTC(),
	}
	if err := utils.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"detail": "Email already registered"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": user.ID, "tenant_id": user.TenantID, "role": user.Role})
}

// Login verifies email/password and returns a bearer token carrying the
// user's tenant and identity.
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid JSON body"})
		return
	}

	var user models.User
	if err := utils.DB.First(&user, "email = ?", input.Email).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid email or password"})
		return
	}

	tokenString, err := utils.GenerateAccessToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user": gin.H{
			"id":        user.ID,
			"tenant_id": user.TenantID,
			"email":     user.Email,
			"role":      user.Role,
		},
	})
}

// Logout records the sign-out time. Tokens are stateless, so this is
// bookkeeping rather than revocation.
func Logout(c *gin.Context) {
	id, ok := CurrentIdentity(c)
	if ok {
		now := time.Now().UTC()
		utils.DB.Model(&models.User{}).Where("id = ?", id.UserID).
			Update("last_logout_at", now)
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Logout successful"})
}

// Me echoes the resolved identity back to the caller.
func Me(c *gin.Context) {
	id, ok := CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Missing or invalid bearer token"})
		return
	}
	c.JSON(http.StatusOK, id)
}
