package services

import (
	"errors"

	"github.com/biltech1234n/thecoffeelink/entity"
	"github.com/biltech1234n/thecoffeelink/repository"
	"gorm.io/gorm"
)

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	ProductRepo *repository.ProductRepository
	UserRepo    *repository.UserRepository
	Notifier    *NotificationService
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	productRepo *repository.ProductRepository,
	userRepo *repository.UserRepository,
	notifier *NotificationService,
) *OrderService {
	return &OrderService{
		DB:          db,
		Repo:        repo,
		ProductRepo: productRepo,
		UserRepo:    userRepo,
		Notifier:    notifier,
	}
}

type CreateOrderReq struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRes struct {
	ID         uint   `json:"id"`
	Status     string `json:"status"`
	Quantity   int    `json:"quantity"`
	TotalPrice int64  `json:"totalPrice"`
	Updated    bool   `json:"updated"` // true when an existing Pending order absorbed the request
}

// Create places an order, or updates the buyer's existing Pending order
// for the same product. The whole check-then-write runs in one
// transaction so two simultaneous requests cannot produce duplicate
// Pending rows.
func (s *OrderService) Create(buyerID uint, req *CreateOrderReq) (*CreateOrderRes, error) {
	if req.Quantity < 1 {
		return nil, errors.New("quantity must be at least 1kg")
	}

	product, err := s.ProductRepo.FindByID(req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, errors.New("product is no longer available")
	}
	if !product.Seller.IsVerified {
		return nil, errors.New("seller not verified")
	}
	if product.SellerID == buyerID {
		return nil, errors.New("you cannot buy your own product")
	}

	var saved *entity.Order
	var created bool
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.Repo.FindPendingInTx(tx, buyerID, req.ProductID)
		switch {
		case err == nil:
			// at-most-one-pending-order-per-buyer-per-product:
			// absorb the new quantity into the existing row
			order.Quantity = req.Quantity
		case errors.Is(err, gorm.ErrRecordNotFound):
			order = &entity.Order{
				BuyerID:   buyerID,
				ProductID: req.ProductID,
				Status:    entity.StatusPending,
				Quantity:  req.Quantity,
			}
			created = true
		default:
			return err
		}

		if err := s.Repo.Save(tx, order); err != nil {
			return err
		}
		saved = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	// fan-out fires on creation only; a quantity update is silent
	if created {
		if err := s.Notifier.OrderCreated(saved, product); err != nil {
			return nil, err
		}
	}
	return &CreateOrderRes{
		ID:         saved.ID,
		Status:     saved.Status,
		Quantity:   saved.Quantity,
		TotalPrice: saved.TotalPrice,
		Updated:    !created,
	}, nil
}

func (s *OrderService) ListForBuyer(buyerID uint) ([]entity.Order, int64, error) {
	orders, err := s.Repo.ListForBuyer(buyerID)
	if err != nil {
		return nil, 0, err
	}
	spent, err := s.Repo.SumSpentByBuyer(buyerID)
	if err != nil {
		return nil, 0, err
	}
	return orders, spent, nil
}

func (s *OrderService) DetailForBuyer(buyerID, orderID uint) (*entity.Order, error) {
	return s.Repo.FindForBuyer(orderID, buyerID)
}

func (s *OrderService) ListForSeller(sellerID uint) ([]entity.Order, error) {
	return s.Repo.ListForSeller(sellerID)
}

// Cancel hard-deletes the buyer's order, permitted only while Pending.
func (s *OrderService) Cancel(buyerID, orderID uint) error {
	affected, err := s.Repo.DeletePending(orderID, buyerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrConflict
	}
	return nil
}
