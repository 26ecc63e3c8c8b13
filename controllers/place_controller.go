package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/foodcity/feedback-server/config"
	"github.com/foodcity/feedback-server/models"
	"github.com/foodcity/feedback-server/utils"
)

type createPlaceReq struct {
	Name              string `json:"name" binding:"required,min=1"`
	NameAr            string `json:"name_ar"`
	Address           string `json:"address"`
	AddressAr         string `json:"address_ar"`
	QuestionnaireType string `json:"questionnaire_type"`
}

// CreatePlace registers a location with a fresh unguessable slug.
func CreatePlace(c *gin.Context) {
	var req createPlaceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Place name is required", "error": err.Error()})
		return
	}

	slug, err := utils.NewSlug()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create place"})
		return
	}

	qt := req.QuestionnaireType
	if qt == "" {
		qt = "food"
	}

	place := models.Place{
		Name:              req.Name,
		NameAr:            req.NameAr,
		Address:           req.Address,
		AddressAr:         req.AddressAr,
		QuestionnaireType: qt,
		Slug:              slug,
		Active:            true,
	}

	if err := config.DB.Create(&place).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create place"})
		return
	}

	c.JSON(http.StatusCreated, place)
}

// ListPlaces returns all places, newest first.
func ListPlaces(c *gin.Context) {
	var places []models.Place
	if err := config.DB.Order("created_at DESC").Find(&places).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch places"})
		return
	}
	c.JSON(http.StatusOK, places)
}

// GetPlaceBySlug is the public lookup behind feedback links. Inactive places
// are still returned; the submission endpoint is what blocks them.
func GetPlaceBySlug(c *gin.Context) {
	var place models.Place
	err := config.DB.Where("slug = ?", c.Param("slug")).First(&place).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Place not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch place"})
		return
	}
	c.JSON(http.StatusOK, place)
}

type updatePlaceReq struct {
	Name              *string `json:"name"`
	NameAr            *string `json:"name_ar"`
	Address           *string `json:"address"`
	AddressAr         *string `json:"address_ar"`
	Active            *bool   `json:"active"`
	QuestionnaireType *string `json:"questionnaire_type"`
}

// UpdatePlace applies a partial update; last write wins.
func UpdatePlace(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID"})
		return
	}

	var place models.Place
	if err := config.DB.First(&place, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Place not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update place"})
		return
	}

	var req updatePlaceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	update := map[string]any{}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.NameAr != nil {
		update["name_ar"] = *req.NameAr
	}
	if req.Address != nil {
		update["address"] = *req.Address
	}
	if req.AddressAr != nil {
		update["address_ar"] = *req.AddressAr
	}
	if req.Active != nil {
		update["active"] = *req.Active
	}
	if req.QuestionnaireType != nil {
		update["questionnaire_type"] = *req.QuestionnaireType
	}

	if len(update) > 0 {
		if err := config.DB.Model(&place).Updates(update).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update place"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeletePlace removes a place; its feedback history stays.
func DeletePlace(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID"})
		return
	}

	if err := config.DB.Delete(&models.Place{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete place"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
