package entity

import (
	"gorm.io/gorm"
)

// Product categories
const (
	CategoryGreen     = "Green"
	CategoryRoasted   = "Roasted"
	CategoryGround    = "Ground"
	CategoryEquipment = "Equipment"
)

var ProductCategories = []string{CategoryGreen, CategoryRoasted, CategoryGround, CategoryEquipment}

type Product struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Category    string `gorm:"not null;default:Green" json:"category"`
	Price       int64  `gorm:"not null" json:"price"` // cents per kg
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`

	SellerID uint `gorm:"index;not null" json:"sellerId"`
	Seller   User `json:"-"`

	// never hard-deleted once orders reference it, removal flips IsActive
	Orders []Order `json:"-"`
}
