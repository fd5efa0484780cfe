package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/middleware"
	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/models"
	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/utils"
)

// AppointmentHandler handles training session requests.
type AppointmentHandler struct {
	DB *gorm.DB
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(db *gorm.DB) *AppointmentHandler {
	return &AppointmentHandler{DB: db}
}

// GetAppointmentsForUser fetches sessions for the logged-in user, split into
// upcoming and past. Members see their bookings, trainers their sessions.
func (h *AppointmentHandler) GetAppointmentsForUser(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	userRole, _ := middleware.GetUserRoleFromContext(c)

	query := h.DB.Preload("Member").Preload("Trainer").Order("start_time asc")
	switch userRole {
	case models.RoleTrainer:
		query = query.Where("trainer_id = ?", userID)
	case models.RoleAdmin:
		// Admins see everything
	default:
		query = query.Where("member_id = ?", userID)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	now := time.Now()
	upcoming := make([]models.Appointment, 0)
	past := make([]models.Appointment, 0)
	for _, a := range appointments {
		if a.StartTime.After(now) {
			upcoming = append(upcoming, a)
		} else {
			past = append(past, a)
		}
	}

	utils.Success(c, "Appointments fetched successfully", gin.H{
		"upcoming": upcoming,
		"past":     past,
	})
}

// GetAppointmentByID fetches a single session. Accessible by the involved
// member, the involved trainer, or an admin.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	appointmentID := c.Param("id")

	var appointment models.Appointment
	if err := h.DB.Preload("Member").Preload("Trainer").First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	userRole, _ := middleware.GetUserRoleFromContext(c)

	if userRole != models.RoleAdmin && userID != appointment.MemberID && userID != appointment.TrainerID {
		utils.Forbidden(c, "You are not authorized to view this appointment")
		return
	}

	utils.Success(c, "Appointment fetched successfully", appointment)
}

// CancelAppointment lets a member cancel one of their own upcoming sessions.
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	appointmentID := c.Param("id")

	memberID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var appointment models.Appointment
	if err := h.DB.Where("id = ? AND member_id = ?", appointmentID, memberID).First(&appointment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if appointment.Status == models.StatusCancelled {
		utils.Success(c, "Appointment already cancelled", appointment)
		return
	}
	if !appointment.StartTime.After(time.Now()) {
		utils.BadRequest(c, "Past appointments cannot be cancelled")
		return
	}

	appointment.Status = models.StatusCancelled
	if err := h.DB.Save(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to cancel appointment: "+err.Error())
		return
	}

	notification := models.Notification{
		RecipientID: appointment.TrainerID,
		Message:     "Session cancelled: " + appointment.Title + " on " + appointment.StartTime.Format("Mon Jan 2 15:04"),
		Icon:        "calendar-x",
		Link:        "/trainer/schedule",
	}
	if err := h.DB.Create(&notification).Error; err != nil {
		utils.InternalServerError(c, "Failed to notify trainer: "+err.Error())
		return
	}

	utils.Success(c, "Appointment cancelled successfully", appointment)
}

// ConfirmAppointment lets the involved trainer confirm a pending or
// scheduled session.
func (h *AppointmentHandler) ConfirmAppointment(c *gin.Context) {
	appointmentID := c.Param("id")

	trainerID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var appointment models.Appointment
	if err := h.DB.Where("id = ? AND trainer_id = ?", appointmentID, trainerID).First(&appointment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if appointment.Status != models.StatusPending && appointment.Status != models.StatusScheduled {
		utils.BadRequest(c, "Only pending or scheduled appointments can be confirmed")
		return
	}

	appointment.Status = models.StatusConfirmed
	if err := h.DB.Save(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to confirm appointment: "+err.Error())
		return
	}

	utils.Success(c, "Appointment confirmed successfully", appointment)
}
