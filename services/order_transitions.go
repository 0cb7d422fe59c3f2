package services

import (
	"errors"

	"github.com/biltech1234n/thecoffeelink/entity"
	"gorm.io/gorm"
)

// Statuses a seller may set directly. Paid is reserved for the payment
// path; there is deliberately no enforced ordering between the rest:
// the seller has full override on their own orders.
var sellerStatuses = map[string]bool{
	entity.StatusAccepted:  true,
	entity.StatusDeclined:  true,
	entity.StatusShipped:   true,
	entity.StatusDelivered: true,
	entity.StatusPending:   true,
}

// SellerSetStatus applies a seller-chosen transition to one of their
// orders and fires the matching buyer notification.
func (s *OrderService) SellerSetStatus(sellerID, orderID uint, status string) error {
	if !sellerStatuses[status] {
		return errors.New("invalid status")
	}

	seller, err := s.UserRepo.FindByID(sellerID)
	if err != nil {
		return err
	}
	if !seller.IsVerified {
		return errors.New("verification required to manage orders")
	}

	order, err := s.Repo.FindForSeller(orderID, sellerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrForbidden
		}
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatus(tx, order.ID, status)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
		return nil
	})
	if err != nil {
		return err
	}

	order.Status = status
	return s.Notifier.OrderStatusChanged(order, &order.Product, "")
}

// MarkPaid is the single Paid transition handler used by every
// payment-completion path (manual confirmation and both gateway
// callbacks). Paying an already-Paid order is an informational no-op
// and creates no duplicate notifications.
func (s *OrderService) MarkPaid(buyerID, orderID uint) error {
	order, err := s.Repo.FindForBuyer(orderID, buyerID)
	if err != nil {
		return err
	}

	var affected int64
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		affected, err = s.Repo.MarkPaid(tx, order.ID)
		return err
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAlreadyPaid
	}

	buyer, err := s.UserRepo.FindByID(order.BuyerID)
	if err != nil {
		return err
	}
	order.Status = entity.StatusPaid
	return s.Notifier.OrderStatusChanged(order, &order.Product, buyer.Username)
}
