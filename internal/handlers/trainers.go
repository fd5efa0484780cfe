package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/models"
	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/utils"
)

// TrainerHandler handles trainer discovery requests.
type TrainerHandler struct {
	DB *gorm.DB
}

// NewTrainerHandler creates a new TrainerHandler.
func NewTrainerHandler(db *gorm.DB) *TrainerHandler {
	return &TrainerHandler{DB: db}
}

// GetTrainers fetches all trainers for the discovery page, optionally
// filtered by specialization.
func (h *TrainerHandler) GetTrainers(c *gin.Context) {
	query := h.DB.Where("role = ?", models.RoleTrainer).Order("first_name asc, last_name asc")
	if spec := c.Query("specialization"); spec != "" {
		query = query.Where("specialization = ?", spec)
	}

	var trainers []models.User
	if err := query.Find(&trainers).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch trainers: "+err.Error())
		return
	}

	sanitized := make([]models.UserSanitized, len(trainers))
	for i, t := range trainers {
		sanitized[i] = t.Sanitize()
	}

	utils.Success(c, "Trainers fetched successfully", sanitized)
}

// GetTrainerByID fetches a single trainer's public profile.
func (h *TrainerHandler) GetTrainerByID(c *gin.Context) {
	trainerID := c.Param("id")

	var trainer models.User
	if err := h.DB.Where("id = ? AND role = ?", trainerID, models.RoleTrainer).First(&trainer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Trainer not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Trainer fetched successfully", trainer.Sanitize())
}
