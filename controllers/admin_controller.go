package controllers

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/foodcity/feedback-server/config"
	"github.com/foodcity/feedback-server/models"
	"github.com/foodcity/feedback-server/utils"
)

type verifyPasscodeReq struct {
	Passcode string `json:"passcode" binding:"required"`
}

// VerifyPasscode checks the admin passcode and issues a session token. The
// passcode hash is seeded on first use from ADMIN_PASSCODE. A separate school
// passcode grants the read-only school role.
func VerifyPasscode(c *gin.Context) {
	var req verifyPasscodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Passcode is required"})
		return
	}

	hash, err := loadOrSeedPasscodeHash()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to verify passcode"})
		return
	}

	role := ""
	switch {
	case utils.CheckPassword(hash, req.Passcode):
		role = utils.RoleAdmin
	case req.Passcode == schoolPasscode():
		role = utils.RoleSchool
	default:
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}

	token, err := utils.GenerateToken(role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "role": role, "token": token})
}

type updatePasscodeReq struct {
	CurrentPasscode string `json:"current_passcode" binding:"required"`
	NewPasscode     string `json:"new_passcode" binding:"required,min=4"`
}

// UpdatePasscode rotates the stored passcode hash (admin only).
func UpdatePasscode(c *gin.Context) {
	var req updatePasscodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	hash, err := loadOrSeedPasscodeHash()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update passcode"})
		return
	}

	if !utils.CheckPassword(hash, req.CurrentPasscode) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Current passcode is incorrect"})
		return
	}

	newHash, err := utils.HashPassword(req.NewPasscode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update passcode"})
		return
	}

	err = config.DB.Model(&models.AdminSetting{}).
		Where("setting_key = ?", models.SettingKeyAdminPasscode).
		Update("setting_value", newHash).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update passcode"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// loadOrSeedPasscodeHash returns the stored bcrypt hash, creating the settings
// row from the environment default the first time.
func loadOrSeedPasscodeHash() (string, error) {
	var setting models.AdminSetting
	err := config.DB.Where("setting_key = ?", models.SettingKeyAdminPasscode).First(&setting).Error
	if err == nil {
		return setting.SettingValue, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	seed := os.Getenv("ADMIN_PASSCODE")
	if seed == "" {
		seed = "54321"
	}
	hash, err := utils.HashPassword(seed)
	if err != nil {
		return "", err
	}

	setting = models.AdminSetting{
		SettingKey:   models.SettingKeyAdminPasscode,
		SettingValue: hash,
	}
	if err := config.DB.Create(&setting).Error; err != nil {
		return "", err
	}
	return hash, nil
}

func schoolPasscode() string {
	if v := os.Getenv("ADMIN_SCHOOL_PASSCODE"); v != "" {
		return v
	}
	return "67890"
}
