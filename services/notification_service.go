package services

import (
	"fmt"

	"github.com/biltech1234n/thecoffeelink/entity"
	"github.com/biltech1234n/thecoffeelink/repository"
)

// Notification links
const (
	linkSellerOrders = "/seller/orders"
	linkBuyerOrders  = "/buyer/orders"
	linkProfile      = "/profile"
	linkHome         = "/"
)

// NotificationService owns every notification the system creates.
// Creation happens synchronously in the request that performed the
// triggering mutation; clients can only read, mark read and clear their
// own rows.
type NotificationService struct {
	repo *repository.NotificationRepository
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo}
}

// OrderCreated notifies the product's seller about a fresh order.
func (s *NotificationService) OrderCreated(order *entity.Order, product *entity.Product) error {
	senderID := order.BuyerID
	return s.repo.Create(&entity.Notification{
		RecipientID: product.SellerID,
		SenderID:    &senderID,
		Type:        entity.NotifOrder,
		Message:     fmt.Sprintf("New Order: %dkg of %s", order.Quantity, product.Name),
		Link:        linkSellerOrders,
	})
}

// OrderStatusChanged is the single notification hook for every status
// transition, whichever code path performed it. Paid fans out to both
// parties; the other statuses notify the buyer only.
func (s *NotificationService) OrderStatusChanged(order *entity.Order, product *entity.Product, buyerName string) error {
	if order.Status == entity.StatusPaid {
		buyerID := order.BuyerID
		if err := s.repo.Create(&entity.Notification{
			RecipientID: order.BuyerID,
			SenderID:    &product.SellerID,
			Type:        entity.NotifOrder,
			Message:     fmt.Sprintf("Payment Successful! Your order for %s is confirmed.", product.Name),
			Link:        linkBuyerOrders,
		}); err != nil {
			return err
		}
		return s.repo.Create(&entity.Notification{
			RecipientID: product.SellerID,
			SenderID:    &buyerID,
			Type:        entity.NotifOrder,
			Message:     fmt.Sprintf("New Sale! %s paid for %dkg of %s.", buyerName, order.Quantity, product.Name),
			Link:        linkSellerOrders,
		})
	}

	var msg string
	switch order.Status {
	case entity.StatusAccepted:
		msg = fmt.Sprintf("Order Accepted! The seller is preparing %s.", product.Name)
	case entity.StatusShipped:
		msg = fmt.Sprintf("On the way! Your order for %s has been Shipped.", product.Name)
	case entity.StatusDelivered:
		msg = fmt.Sprintf("Delivered! Your coffee %s has arrived.", product.Name)
	case entity.StatusDeclined:
		msg = fmt.Sprintf("Order Declined. Please check your order for %s.", product.Name)
	case entity.StatusPending:
		msg = fmt.Sprintf("Order Reset. Your order for %s is back under review.", product.Name)
	default:
		return nil
	}

	return s.repo.Create(&entity.Notification{
		RecipientID: order.BuyerID,
		SenderID:    &product.SellerID,
		Type:        entity.NotifOrder,
		Message:     msg,
		Link:        linkBuyerOrders,
	})
}

// MessageCreated notifies the room participant who is not the sender.
func (s *NotificationService) MessageCreated(msg *entity.Message, room *entity.ChatRoom, senderName string) error {
	recipientID := room.OtherParticipant(msg.SenderID)
	senderID := msg.SenderID
	return s.repo.Create(&entity.Notification{
		RecipientID: recipientID,
		SenderID:    &senderID,
		Type:        entity.NotifMessage,
		Message:     fmt.Sprintf("New message from %s", senderName),
		Link:        fmt.Sprintf("/chat/%d", msg.SenderID),
	})
}

// AdminAction sends a fixed alert to the user an admin acted on.
func (s *NotificationService) AdminAction(recipientID uint, message, link string) error {
	if link == "" {
		link = linkProfile
	}
	return s.repo.Create(&entity.Notification{
		RecipientID: recipientID,
		Type:        entity.NotifAlert,
		Message:     message,
		Link:        link,
	})
}

func (s *NotificationService) ListFor(recipientID uint) ([]entity.Notification, error) {
	return s.repo.ListForRecipient(recipientID)
}

func (s *NotificationService) Unread(recipientID uint) ([]entity.Notification, int64, error) {
	notifs, err := s.repo.ListUnread(recipientID)
	if err != nil {
		return nil, 0, err
	}
	return notifs, int64(len(notifs)), nil
}

// MarkRead returns the link the caller should be redirected to, falling
// back to home when the notification has none.
func (s *NotificationService) MarkRead(id, recipientID uint) (string, error) {
	notif, err := s.repo.MarkRead(id, recipientID)
	if err != nil {
		return "", err
	}
	if notif.Link == "" {
		return linkHome, nil
	}
	return notif.Link, nil
}

func (s *NotificationService) MarkAllRead(recipientID uint) error {
	return s.repo.MarkAllRead(recipientID)
}

func (s *NotificationService) DeleteAll(recipientID uint) error {
	return s.repo.DeleteAll(recipientID)
}
