package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/middleware"
	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/models"
	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/utils"
)

// SettingsHandler serves member portal preferences.
type SettingsHandler struct {
	DB *gorm.DB
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{DB: db}
}

// GetSettings fetches the member's settings, creating the row with defaults
// on first access.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	memberID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var settings models.MemberSetting
	err := h.DB.Where("member_id = ?", memberID).First(&settings).Error
	if err == gorm.ErrRecordNotFound {
		settings = models.DefaultMemberSetting(memberID)
		if err := h.DB.Create(&settings).Error; err != nil {
			utils.InternalServerError(c, "Failed to create settings: "+err.Error())
			return
		}
	} else if err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	utils.Success(c, "Settings fetched successfully", settings)
}

// UpdateSettingsRequest represents the request body for updating settings.
type UpdateSettingsRequest struct {
	Theme              string `json:"theme" binding:"required,oneof=dark light"`
	EmailNotifications *bool  `json:"emailNotifications" binding:"required"`
	SMSNotifications   *bool  `json:"smsNotifications" binding:"required"`
	CalorieGoal        int    `json:"calorieGoal" binding:"required,min=1"`
	ProteinGoalG       int    `json:"proteinGoalG" binding:"required,min=1"`
	WaterGoalMl        int    `json:"waterGoalMl" binding:"required,min=1"`
}

// UpdateSettings overwrites the member's settings.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	memberID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var settings models.MemberSetting
	err := h.DB.Where("member_id = ?", memberID).First(&settings).Error
	if err == gorm.ErrRecordNotFound {
		settings = models.DefaultMemberSetting(memberID)
	} else if err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	settings.Theme = req.Theme
	settings.EmailNotifications = *req.EmailNotifications
	settings.SMSNotifications = *req.SMSNotifications
	settings.CalorieGoal = req.CalorieGoal
	settings.ProteinGoalG = req.ProteinGoalG
	settings.WaterGoalMl = req.WaterGoalMl

	if err := h.DB.Save(&settings).Error; err != nil {
		utils.InternalServerError(c, "Failed to update settings: "+err.Error())
		return
	}

	utils.Success(c, "Settings updated successfully", settings)
}
