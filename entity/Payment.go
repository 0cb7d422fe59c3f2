package entity

import (
	"time"

	"gorm.io/gorm"
)

// Payment providers
const (
	ProviderChapa  = "chapa"
	ProviderStripe = "stripe"
)

// Payment statuses
const (
	PaymentInitiated = "Initiated"
	PaymentCompleted = "Completed"
	PaymentFailed    = "Failed"
)

type Payment struct {
	gorm.Model
	Provider string     `gorm:"not null" json:"provider"`
	Amount   int64      `gorm:"not null" json:"amount"` // cents
	Currency string     `gorm:"not null;default:ETB" json:"currency"`
	TxRef    string     `gorm:"uniqueIndex" json:"txRef"`
	Status   string     `gorm:"not null;default:Initiated" json:"status"`
	PaidAt   *time.Time `json:"paidAt,omitempty"`

	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"`
}
