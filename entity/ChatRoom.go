package entity

import (
	"gorm.io/gorm"
)

// ChatRoom is unique per unordered pair of participants. There is no
// canonical slot ordering, lookups must check both (A,B) and (B,A).
type ChatRoom struct {
	gorm.Model
	Participant1ID uint `gorm:"index;not null" json:"participant1Id"`
	Participant1   User `json:"-"`

	Participant2ID uint `gorm:"index;not null" json:"participant2Id"`
	Participant2   User `json:"-"`

	// UpdatedAt is bumped on every new message and drives inbox ordering.

	Messages []Message `gorm:"foreignKey:RoomID" json:"-"`
}

func (r *ChatRoom) HasParticipant(userID uint) bool {
	return r.Participant1ID == userID || r.Participant2ID == userID
}

// OtherParticipant returns the participant who is not userID.
func (r *ChatRoom) OtherParticipant(userID uint) uint {
	if r.Participant1ID == userID {
		return r.Participant2ID
	}
	return r.Participant1ID
}
