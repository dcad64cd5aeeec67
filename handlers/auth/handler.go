package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sunnyBaby1024/blog/config"
	"github.com/sunnyBaby1024/blog/db"
	"github.com/sunnyBaby1024/blog/middleware"
	"github.com/sunnyBaby1024/blog/models"
	"github.com/sunnyBaby1024/blog/utils"
)

// @Summary Login entry point
// @Description Target of the guard redirect; tells API clients how to establish a session
// @Tags auth
// @Produce json
// @Success 200 {object} utils.Response
// @Router /admin/login [get]
func LoginPrompt(c *gin.Context) {
	utils.SendSuccess(c, http.StatusOK, "Authentication required, sign in with POST /admin/login", nil)
}

// @Summary Admin login
// @Description Verifies the credentials and sets the session cookie with a fixed expiry
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.AdminLogin true "Admin credentials"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/login [post]
func Login(c *gin.Context) {
	var input models.AdminLogin
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	input.Username = strings.TrimSpace(input.Username)

	var admin models.Admin
	result := db.DB.Where("username = ?", input.Username).First(&admin)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			// Same answer as a wrong password, no user enumeration
			utils.SendError(c, http.StatusUnauthorized, "Invalid username or password")
		} else {
			utils.SendError(c, http.StatusInternalServerError, "Error checking credentials")
		}
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)) != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	lifetime := config.App.SessionLifetime
	token, err := utils.GenerateSessionToken(admin, lifetime)
	if err != nil {
		utils.LogError(err, "Error generating session token")
		utils.SendError(c, http.StatusInternalServerError, "Error creating session")
		return
	}

	now := time.Now()
	if err := db.DB.Model(&admin).UpdateColumn("last_login", now).Error; err != nil {
		utils.LogError(err, "Error updating last login")
	}

	c.SetCookie(middleware.SessionCookieName, token, int(lifetime.Seconds()), "/", "", false, true)

	utils.LogSuccess("Admin logged in: " + admin.Username)
	utils.SendSuccess(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
	})
}

// @Summary Admin logout
// @Description Clears the session cookie unconditionally
// @Tags auth
// @Produce json
// @Success 302
// @Router /admin/logout [get]
func Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// @Summary Change the admin password
// @Description Explicit credential-change procedure; the current password is required
// @Tags auth
// @Accept json
// @Produce json
// @Param passwords body models.PasswordUpdate true "Current and new password"
// @Security AdminSession
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/password [put]
func UpdatePassword(c *gin.Context) {
	adminID, exists := c.Get("admin_id")
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "Admin not found in session")
		return
	}

	var input models.PasswordUpdate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	if len(input.NewPassword) < 6 {
		utils.SendError(c, http.StatusBadRequest, "The new password must contain at least 6 characters")
		return
	}

	hasLower := strings.ContainsAny(input.NewPassword, "abcdefghijklmnopqrstuvwxyz")
	hasUpper := strings.ContainsAny(input.NewPassword, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	hasDigit := strings.ContainsAny(input.NewPassword, "0123456789")
	if !hasLower || !hasUpper || !hasDigit {
		utils.SendError(c, http.StatusBadRequest, "The new password must contain at least one lowercase, one uppercase and one digit")
		return
	}

	var admin models.Admin
	if err := db.DB.First(&admin, "id = ?", adminID).Error; err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Admin account not found")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.CurrentPassword)) != nil {
		utils.SendError(c, http.StatusUnauthorized, "The current password is incorrect")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error hashing the new password")
		return
	}

	if err := db.DB.Model(&admin).UpdateColumn("password_hash", string(hash)).Error; err != nil {
		utils.LogError(err, "Error updating password")
		utils.SendError(c, http.StatusInternalServerError, "Error updating password")
		return
	}

	utils.LogSuccess("Admin password changed: " + admin.Username)
	utils.SendSuccess(c, http.StatusOK, "Password updated successfully", nil)
}
