package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/middleware"
	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/models"
	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/recurrence"
	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/utils"
)

// ProgressHandler handles progress tracker requests.
type ProgressHandler struct {
	DB *gorm.DB
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(db *gorm.DB) *ProgressHandler {
	return &ProgressHandler{DB: db}
}

// CreateProgressEntryRequest represents the request body for a progress entry.
type CreateProgressEntryRequest struct {
	EntryDate  string   `json:"entryDate"` // YYYY-MM-DD, defaults to today
	WeightKg   float64  `json:"weightKg" binding:"required,gt=0"`
	HeightCm   float64  `json:"heightCm" binding:"min=0"`
	BodyFatPct *float64 `json:"bodyFatPct"`
	ChestCm    *float64 `json:"chestCm"`
	WaistCm    *float64 `json:"waistCm"`
	ArmsCm     *float64 `json:"armsCm"`
	Notes      string   `json:"notes"`
}

// CreateProgressEntry records a new measurement for the member.
func (h *ProgressHandler) CreateProgressEntry(c *gin.Context) {
	var req CreateProgressEntryRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	memberID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	entryDate := time.Now()
	if req.EntryDate != "" {
		parsed, err := time.Parse(recurrence.DateLayout, req.EntryDate)
		if err != nil {
			utils.BadRequest(c, "Entry date must be in YYYY-MM-DD format")
			return
		}
		entryDate = parsed
	}

	entry := models.ProgressEntry{
		MemberID:   memberID,
		EntryDate:  entryDate,
		WeightKg:   req.WeightKg,
		HeightCm:   req.HeightCm,
		BodyFatPct: req.BodyFatPct,
		ChestCm:    req.ChestCm,
		WaistCm:    req.WaistCm,
		ArmsCm:     req.ArmsCm,
		Notes:      req.Notes,
	}
	if err := h.DB.Create(&entry).Error; err != nil {
		utils.InternalServerError(c, "Failed to save progress entry: "+err.Error())
		return
	}

	utils.Created(c, "Progress entry saved successfully", entry)
}

// GetProgressEntries lists the member's entries, newest first.
func (h *ProgressHandler) GetProgressEntries(c *gin.Context) {
	memberID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var entries []models.ProgressEntry
	err := h.DB.Where("member_id = ?", memberID).
		Order("entry_date desc, created_at desc").
		Find(&entries).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch progress entries: "+err.Error())
		return
	}

	utils.Success(c, "Progress entries fetched successfully", entries)
}

// ProgressSummary is the headline block on the progress page.
type ProgressSummary struct {
	Latest        *models.ProgressEntry `json:"latest,omitempty"`
	BMI           float64               `json:"bmi"`
	BMICategory   string                `json:"bmiCategory"`
	WeightChange  float64               `json:"weightChangeKg"`
	EntriesLogged int64                 `json:"entriesLogged"`
}

// GetProgressSummary returns the latest entry with computed BMI and the
// weight delta since the member's first recorded entry.
func (h *ProgressHandler) GetProgressSummary(c *gin.Context) {
	memberID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var latest models.ProgressEntry
	err := h.DB.Where("member_id = ?", memberID).
		Order("entry_date desc, created_at desc").
		First(&latest).Error
	if err == gorm.ErrRecordNotFound {
		utils.Success(c, "Progress summary fetched successfully", ProgressSummary{})
		return
	}
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch progress summary: "+err.Error())
		return
	}

	var first models.ProgressEntry
	if err := h.DB.Where("member_id = ?", memberID).
		Order("entry_date asc, created_at asc").
		First(&first).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch progress summary: "+err.Error())
		return
	}

	var count int64
	h.DB.Model(&models.ProgressEntry{}).Where("member_id = ?", memberID).Count(&count)

	bmi := models.BMI(latest.WeightKg, latest.HeightCm)
	utils.Success(c, "Progress summary fetched successfully", ProgressSummary{
		Latest:        &latest,
		BMI:           bmi,
		BMICategory:   models.BMICategory(bmi),
		WeightChange:  latest.WeightKg - first.WeightKg,
		EntriesLogged: count,
	})
}

// DeleteProgressEntry removes one of the member's own entries.
func (h *ProgressHandler) DeleteProgressEntry(c *gin.Context) {
	entryID := c.Param("id")

	memberID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var entry models.ProgressEntry
	if err := h.DB.Where("id = ? AND member_id = ?", entryID, memberID).First(&entry).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Entry not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&entry).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete entry: "+err.Error())
		return
	}

	utils.Success(c, "Entry deleted successfully", nil)
}
