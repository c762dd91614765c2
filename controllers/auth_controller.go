package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"wedding-backend/config"
	"wedding-backend/middleware"
	"wedding-backend/utils"
)

type LoginInput struct {
	Password string `json:"password" binding:"required"`
}

var adminPasswordHash []byte

// InitAdminPassword hashes the configured admin password once at startup so
// logins compare against the hash instead of the raw secret.
func InitAdminPassword() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(config.C.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	adminPasswordHash = hash
	return nil
}

// Login godoc
// @Summary Admin login
// @Description Verifies the shared admin password and sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginInput true "Admin password"
// @Success 200 {object} map[string]string "Login successful"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Wrong password"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/admin/login [post]
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	if bcrypt.CompareHashAndPassword(adminPasswordHash, []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	token, err := utils.GenerateAdminToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(utils.AdminSessionDuration.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Login successful"})
}

// Logout godoc
// @Summary Admin logout
// @Description Clears the admin session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string "Logged out"
// @Router /api/admin/logout [post]
func Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
