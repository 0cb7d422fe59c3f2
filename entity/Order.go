package entity

import (
	"gorm.io/gorm"
)

// Order statuses
const (
	StatusPending   = "Pending"
	StatusAccepted  = "Accepted"
	StatusDeclined  = "Declined"
	StatusPaid      = "Paid"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
)

// RevenueStatuses is the single source of truth for "counts as revenue".
// Every revenue sum, spend total and seller ranking must filter on this set.
var RevenueStatuses = []string{StatusPaid, StatusShipped, StatusDelivered}

var OrderStatuses = []string{
	StatusPending, StatusAccepted, StatusDeclined,
	StatusPaid, StatusShipped, StatusDelivered,
}

func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type Order struct {
	gorm.Model
	Status     string `gorm:"not null;default:Pending;index" json:"status"`
	Quantity   int    `gorm:"not null;default:1" json:"quantity"`
	TotalPrice int64  `json:"totalPrice"` // cents, always product.Price * Quantity

	BuyerID uint `gorm:"index;not null" json:"buyerId"`
	Buyer   User `json:"-"`

	ProductID uint    `gorm:"index;not null" json:"productId"`
	Product   Product `json:"product"`

	Payments []Payment `json:"-"`
}
