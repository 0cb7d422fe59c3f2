package entity

import (
	"gorm.io/gorm"
)

// Notification types
const (
	NotifOrder   = "order"
	NotifMessage = "message"
	NotifAlert   = "alert"
)

// Notification rows are created only by server-side reactions to order,
// message and admin mutations, never directly by a client request.
type Notification struct {
	gorm.Model
	Type    string `gorm:"not null;default:alert" json:"type"`
	Message string `gorm:"not null" json:"message"`
	Link    string `json:"link"`
	IsRead  bool   `gorm:"default:false" json:"isRead"`

	RecipientID uint `gorm:"index;not null" json:"recipientId"`
	Recipient   User `json:"-"`

	SenderID *uint `json:"senderId,omitempty"`
	Sender   *User `json:"-"`
}
