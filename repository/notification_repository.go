package repository

import (
	"github.com/biltech1234n/thecoffeelink/entity"
	"gorm.io/gorm"
)

// NotificationRepository scopes every read and mutation to the recipient
// at the query level. No caller can touch another user's notifications.
type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db}
}

func (r *NotificationRepository) Create(n *entity.Notification) error {
	return r.db.Create(n).Error
}

func (r *NotificationRepository) ListForRecipient(recipientID uint) ([]entity.Notification, error) {
	var notifs []entity.Notification
	err := r.db.
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&notifs).Error
	return notifs, err
}

func (r *NotificationRepository) ListUnread(recipientID uint) ([]entity.Notification, error) {
	var notifs []entity.Notification
	err := r.db.
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Order("created_at DESC").
		Find(&notifs).Error
	return notifs, err
}

func (r *NotificationRepository) CountUnread(recipientID uint) (int64, error) {
	var n int64
	err := r.db.Model(&entity.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&n).Error
	return n, err
}

// MarkRead flips one notification read and returns it so the caller can
// redirect to its stored link. Not-found covers both a missing id and an
// id belonging to someone else.
func (r *NotificationRepository) MarkRead(id, recipientID uint) (*entity.Notification, error) {
	var notif entity.Notification
	err := r.db.
		Where("id = ? AND recipient_id = ?", id, recipientID).
		First(&notif).Error
	if err != nil {
		return nil, err
	}
	notif.IsRead = true
	if err := r.db.Save(&notif).Error; err != nil {
		return nil, err
	}
	return &notif, nil
}

func (r *NotificationRepository) MarkAllRead(recipientID uint) error {
	return r.db.Model(&entity.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true).Error
}

// DeleteAll hard-deletes the recipient's entire notification history.
func (r *NotificationRepository) DeleteAll(recipientID uint) error {
	return r.db.Unscoped().
		Where("recipient_id = ?", recipientID).
		Delete(&entity.Notification{}).Error
}
