package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/middleware"
	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/models"
	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/utils"
)

// MessageHandler handles member/trainer messaging requests.
type MessageHandler struct {
	DB *gorm.DB
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(db *gorm.DB) *MessageHandler {
	return &MessageHandler{DB: db}
}

// SendMessageRequest represents the request body for sending a message.
type SendMessageRequest struct {
	RecipientID string `json:"recipientId" binding:"required,uuid"`
	Subject     string `json:"subject"`
	Content     string `json:"content" binding:"required"`
}

// SendMessage handles sending a new message. Members message trainers and
// vice versa; admins are unrestricted.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	senderID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Sender ID not found in token")
		return
	}
	if senderID == req.RecipientID {
		utils.BadRequest(c, "Cannot send a message to yourself.")
		return
	}

	var recipient models.User
	if err := h.DB.First(&recipient, "id = ?", req.RecipientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Recipient user not found")
		} else {
			utils.InternalServerError(c, "Database error verifying recipient: "+err.Error())
		}
		return
	}

	senderRole, _ := middleware.GetUserRoleFromContext(c)
	allowed := senderRole == models.RoleAdmin || recipient.Role == models.RoleAdmin ||
		(senderRole == models.RoleMember && recipient.Role == models.RoleTrainer) ||
		(senderRole == models.RoleTrainer && recipient.Role == models.RoleMember)
	if !allowed {
		utils.Forbidden(c, "You are not authorized to send a message to this user.")
		return
	}

	message := models.Message{
		SenderID:   senderID,
		ReceiverID: req.RecipientID,
		Subject:    req.Subject,
		Content:    req.Content,
		Status:     models.MessageStatusSent,
	}
	if err := h.DB.Create(&message).Error; err != nil {
		utils.InternalServerError(c, "Failed to send message: "+err.Error())
		return
	}

	notification := models.Notification{
		RecipientID: req.RecipientID,
		Message:     "New message: " + req.Subject,
		Icon:        "envelope",
		Link:        "/messages",
	}
	if err := h.DB.Create(&notification).Error; err != nil {
		utils.InternalServerError(c, "Failed to notify recipient: "+err.Error())
		return
	}

	utils.Created(c, "Message sent successfully", message)
}

// GetMessagesForUser fetches the current user's messages. With the `with`
// query parameter it returns only the conversation with that user.
func (h *MessageHandler) GetMessagesForUser(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	query := h.DB.Preload("Sender").Preload("Receiver").Order("created_at asc")
	if other := c.Query("with"); other != "" {
		query = query.Where(
			"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, other, other, userID)
	} else {
		query = query.Where("sender_id = ? OR receiver_id = ?", userID, userID)
	}

	var messages []models.Message
	if err := query.Find(&messages).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch messages: "+err.Error())
		return
	}

	utils.Success(c, "Messages fetched successfully", messages)
}

// ConversationSummary is one row on the conversations list.
type ConversationSummary struct {
	UserID      string               `json:"userId"`
	User        models.UserSanitized `json:"user"`
	LastMessage models.Message       `json:"lastMessage"`
	UnreadCount int64                `json:"unreadCount"`
}

// GetConversations returns one summary per counterpart the user has
// exchanged messages with, newest conversation first.
func (h *MessageHandler) GetConversations(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var messages []models.Message
	err := h.DB.Preload("Sender").Preload("Receiver").
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at desc").
		Find(&messages).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch conversations: "+err.Error())
		return
	}

	seen := make(map[string]bool)
	conversations := make([]ConversationSummary, 0)
	for _, m := range messages {
		other := m.Sender
		otherID := m.SenderID
		if m.SenderID == userID {
			other = m.Receiver
			otherID = m.ReceiverID
		}
		if seen[otherID] {
			continue
		}
		seen[otherID] = true

		var unread int64
		h.DB.Model(&models.Message{}).
			Where("sender_id = ? AND receiver_id = ? AND status = ?", otherID, userID, models.MessageStatusSent).
			Count(&unread)

		conversations = append(conversations, ConversationSummary{
			UserID:      otherID,
			User:        other.Sanitize(),
			LastMessage: m,
			UnreadCount: unread,
		})
	}

	utils.Success(c, "Conversations fetched successfully", conversations)
}

// MarkMessageAsRead marks one received message as read.
func (h *MessageHandler) MarkMessageAsRead(c *gin.Context) {
	messageID := c.Param("messageId")

	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var message models.Message
	if err := h.DB.Where("id = ? AND receiver_id = ?", messageID, userID).First(&message).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Message not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if message.Status != models.MessageStatusRead {
		now := time.Now()
		message.Status = models.MessageStatusRead
		message.ReadAt = &now
		if err := h.DB.Save(&message).Error; err != nil {
			utils.InternalServerError(c, "Failed to mark message as read: "+err.Error())
			return
		}
	}

	utils.Success(c, "Message marked as read", message)
}
