package repository

import (
	"github.com/biltech1234n/thecoffeelink/entity"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db}
}

func (r *PaymentRepository) Create(p *entity.Payment) error {
	return r.db.Create(p).Error
}

func (r *PaymentRepository) Save(p *entity.Payment) error {
	return r.db.Save(p).Error
}

func (r *PaymentRepository) FindByTxRef(txRef string) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.db.Where("tx_ref = ?", txRef).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) ListForOrder(orderID uint) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.Where("order_id = ?", orderID).Order("created_at DESC").Find(&payments).Error
	return payments, err
}
