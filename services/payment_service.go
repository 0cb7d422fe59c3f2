package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/biltech1234n/thecoffeelink/entity"
	"github.com/biltech1234n/thecoffeelink/payment"
	"github.com/biltech1234n/thecoffeelink/repository"
)

// PaymentService orchestrates the gateway checkout flow. Completion
// always funnels into OrderService.MarkPaid, so the Paid transition and
// its two notifications happen exactly once no matter which provider
// (or a double-delivered callback) reports success.
type PaymentService struct {
	Repo     *repository.PaymentRepository
	Orders   *OrderService
	UserRepo *repository.UserRepository
	Gateways map[string]payment.Gateway
	BaseURL  string
}

func NewPaymentService(
	repo *repository.PaymentRepository,
	orders *OrderService,
	userRepo *repository.UserRepository,
	gateways map[string]payment.Gateway,
	baseURL string,
) *PaymentService {
	return &PaymentService{
		Repo:     repo,
		Orders:   orders,
		UserRepo: userRepo,
		Gateways: gateways,
		BaseURL:  baseURL,
	}
}

type CheckoutRes struct {
	RedirectURL string `json:"redirectUrl"`
	TxRef       string `json:"txRef"`
}

// Checkout initializes a gateway transaction for the buyer's order and
// returns the provider's redirect URL.
func (s *PaymentService) Checkout(ctx context.Context, buyerID, orderID uint, provider string) (*CheckoutRes, error) {
	gw, ok := s.Gateways[provider]
	if !ok {
		return nil, errors.New("unknown payment provider")
	}

	order, err := s.Orders.Repo.FindForBuyer(orderID, buyerID)
	if err != nil {
		return nil, err
	}
	if order.Status == entity.StatusPaid {
		return nil, ErrAlreadyPaid
	}

	buyer, err := s.UserRepo.FindByID(buyerID)
	if err != nil {
		return nil, err
	}

	txRef := fmt.Sprintf("TCL-%d-%d", order.ID, time.Now().UnixNano())
	res, err := gw.Initialize(ctx, payment.InitRequest{
		Amount:      order.TotalPrice,
		Currency:    "ETB",
		TxRef:       txRef,
		OrderID:     order.ID,
		CallbackURL: fmt.Sprintf("%s/payments/callback/%d?tx_ref=%s", s.BaseURL, order.ID, txRef),
		ReturnURL:   fmt.Sprintf("%s/market/pay/%d", s.BaseURL, order.ID),
		Email:       buyer.Email,
		Name:        buyer.Username,
	})
	if err != nil {
		return nil, err
	}

	record := &entity.Payment{
		Provider: gw.Name(),
		Amount:   order.TotalPrice,
		Currency: "ETB",
		TxRef:    txRef,
		Status:   entity.PaymentInitiated,
		OrderID:  order.ID,
	}
	if err := s.Repo.Create(record); err != nil {
		return nil, err
	}
	return &CheckoutRes{RedirectURL: res.RedirectURL, TxRef: txRef}, nil
}

// CompleteCallback handles the provider's success callback for an
// order. A replayed callback finds the order already Paid and no-ops.
func (s *PaymentService) CompleteCallback(orderID uint, txRef string) error {
	record, err := s.Repo.FindByTxRef(txRef)
	if err != nil {
		return err
	}
	if record.OrderID != orderID {
		return ErrConflict
	}

	order, err := s.Orders.Repo.FindByID(orderID)
	if err != nil {
		return err
	}

	if record.Status != entity.PaymentCompleted {
		now := time.Now()
		record.Status = entity.PaymentCompleted
		record.PaidAt = &now
		if err := s.Repo.Save(record); err != nil {
			return err
		}
	}

	err = s.Orders.MarkPaid(order.BuyerID, order.ID)
	if errors.Is(err, ErrAlreadyPaid) {
		return nil
	}
	return err
}
