package repository

import (
	"time"

	"github.com/biltech1234n/thecoffeelink/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db}
}

// FindRoomBetween resolves the room for an unordered participant pair by
// checking both slot orderings.
func (r *ChatRepository) FindRoomBetween(a, b uint) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	err := r.db.
		Where("(participant1_id = ? AND participant2_id = ?) OR (participant1_id = ? AND participant2_id = ?)",
			a, b, b, a).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *ChatRepository) CreateRoom(room *entity.ChatRoom) error {
	return r.db.Create(room).Error
}

// TouchRoom bumps updated_at so the room floats to the top of the inbox.
func (r *ChatRepository) TouchRoom(roomID uint) error {
	return r.db.Model(&entity.ChatRoom{}).
		Where("id = ?", roomID).
		Update("updated_at", time.Now()).Error
}

func (r *ChatRepository) FindRoom(roomID uint) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	if err := r.db.First(&room, roomID).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *ChatRepository) ListRoomsForUser(userID uint) ([]entity.ChatRoom, error) {
	var rooms []entity.ChatRoom
	err := r.db.
		Preload("Participant1").Preload("Participant2").
		Where("participant1_id = ? OR participant2_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&rooms).Error
	return rooms, err
}

func (r *ChatRepository) CreateMessage(msg *entity.Message) error {
	return r.db.Create(msg).Error
}

func (r *ChatRepository) FindMessage(id uint) (*entity.Message, error) {
	var msg entity.Message
	if err := r.db.First(&msg, id).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *ChatRepository) SaveMessage(msg *entity.Message) error {
	return r.db.Save(msg).Error
}

// notHiddenBy excludes messages the viewer has tombstoned.
func notHiddenBy(viewerID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"messages.id NOT IN (SELECT message_id FROM message_hides WHERE user_id = ?)",
			viewerID,
		)
	}
}

// VisibleMessages is the viewer's view of a room, oldest first.
func (r *ChatRepository) VisibleMessages(roomID, viewerID uint) ([]entity.Message, error) {
	var msgs []entity.Message
	err := r.db.
		Where("room_id = ?", roomID).
		Scopes(notHiddenBy(viewerID)).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

// MarkReadFromSender bulk-marks unread messages from the other
// participant as read when the viewer opens the room. UpdateColumn
// skips the updated_at bump: a read receipt is not a content change and
// must not surface in the sender's changed-message poll.
func (r *ChatRepository) MarkReadFromSender(roomID, senderID uint) error {
	return r.db.Model(&entity.Message{}).
		Where("room_id = ? AND sender_id = ? AND is_read = ?", roomID, senderID, false).
		UpdateColumn("is_read", true).Error
}

func (r *ChatRepository) MarkReadByIDs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&entity.Message{}).
		Where("id IN ?", ids).
		Update("is_read", true).Error
}

// HideMessage adds the user to the message's tombstone set. Inserting
// the same pair twice is a no-op.
func (r *ChatRepository) HideMessage(messageID, userID uint) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entity.MessageHide{MessageID: messageID, UserID: userID}).Error
}

// HideAllInRoom tombstones every message in the room for one user
// ("clear history"); other participants keep their view.
func (r *ChatRepository) HideAllInRoom(roomID, userID uint) error {
	var ids []uint
	if err := r.db.Model(&entity.Message{}).
		Where("room_id = ?", roomID).
		Pluck("id", &ids).Error; err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	hides := make([]entity.MessageHide, 0, len(ids))
	for _, id := range ids {
		hides = append(hides, entity.MessageHide{MessageID: id, UserID: userID})
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&hides).Error
}

func (r *ChatRepository) IsHiddenBy(messageID, userID uint) (bool, error) {
	var n int64
	err := r.db.Model(&entity.MessageHide{}).
		Where("message_id = ? AND user_id = ?", messageID, userID).
		Count(&n).Error
	return n > 0, err
}

// NewMessagesSince returns messages created strictly after t, visible to
// the viewer, oldest first.
func (r *ChatRepository) NewMessagesSince(roomID, viewerID uint, t time.Time) ([]entity.Message, error) {
	var msgs []entity.Message
	err := r.db.
		Where("room_id = ? AND created_at > ?", roomID, t).
		Scopes(notHiddenBy(viewerID)).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

// ChangedMessagesSince returns messages that existed at t but were
// edited or deleted after it, so the client can patch in place instead
// of appending.
func (r *ChatRepository) ChangedMessagesSince(roomID, viewerID uint, t time.Time) ([]entity.Message, error) {
	var msgs []entity.Message
	err := r.db.
		Where("room_id = ? AND updated_at > ? AND created_at <= ?", roomID, t, t).
		Scopes(notHiddenBy(viewerID)).
		Find(&msgs).Error
	return msgs, err
}
