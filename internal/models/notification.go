package models

// Notification is a lightweight fire-and-forget message shown in a user's
// notification tray. Scheduling flows write these for trainers; nothing in
// this service reads them back except the tray endpoints.
type Notification struct {
	BaseModel
	RecipientID string `gorm:"size:36;index" json:"recipientId"`
	Message     string `gorm:"type:text;not null" json:"message"`
	Icon        string `gorm:"size:50" json:"icon"`
	Link        string `gorm:"size:255" json:"link"`
	IsRead      bool   `gorm:"default:false" json:"isRead"`

	// Relations
	Recipient User `gorm:"foreignKey:RecipientID" json:"-"`
}
