package entity

import (
	"gorm.io/gorm"
)

// DeletedPlaceholder replaces the content of a message deleted for
// everyone. The original text is not recoverable afterwards.
const DeletedPlaceholder = "🚫 This message was deleted."

type Message struct {
	gorm.Model
	Content string `gorm:"not null" json:"content"`

	// CreatedAt is the send timestamp, UpdatedAt moves on edit and
	// delete-for-everyone and is what the poll endpoint diffs against.

	IsRead            bool `gorm:"default:false" json:"isRead"`
	IsEdited          bool `gorm:"default:false" json:"isEdited"`
	IsDeletedEveryone bool `gorm:"default:false" json:"isDeletedEveryone"`

	RoomID uint     `gorm:"index;not null" json:"roomId"`
	Room   ChatRoom `json:"-"`

	SenderID uint `gorm:"index;not null" json:"senderId"`
	Sender   User `json:"-"`

	Hides []MessageHide `gorm:"foreignKey:MessageID" json:"-"`
}

// MessageHide is a per-viewer tombstone. A row here removes the message
// from that user's view while everyone else keeps seeing it.
type MessageHide struct {
	MessageID uint `gorm:"primaryKey;autoIncrement:false" json:"messageId"`
	UserID    uint `gorm:"primaryKey;autoIncrement:false;index" json:"userId"`
}
