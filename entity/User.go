package entity

import (
	"gorm.io/gorm"
)

// Roles
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// Package tiers
const (
	TierBasic        = "basic"
	TierPremium      = "premium"
	TierProfessional = "professional"
)

// GuestUsername is the shared synthetic sender for all anonymous
// contact-form inquiries. Created lazily, never able to log in.
const GuestUsername = "Website_Guest"

type User struct {
	gorm.Model
	Username    string `gorm:"uniqueIndex;not null" json:"username"`
	Email       string `gorm:"index" json:"email"`
	Password    string `json:"-"`
	Role        string `gorm:"not null;default:buyer" json:"role"`
	PackageTier string `gorm:"not null;default:basic" json:"packageTier"`
	IsVerified  bool   `gorm:"default:false" json:"isVerified"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
	IsSuperuser bool   `gorm:"default:false" json:"-"`

	Products      []Product      `gorm:"foreignKey:SellerID" json:"-"`
	Orders        []Order        `gorm:"foreignKey:BuyerID" json:"-"`
	Notifications []Notification `gorm:"foreignKey:RecipientID" json:"-"`
	MessagesSent  []Message      `gorm:"foreignKey:SenderID" json:"-"`

	SellerProfile   *SellerProfile   `gorm:"foreignKey:UserID" json:"-"`
	VerificationDoc *VerificationDoc `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) IsSeller() bool {
	return u.Role == RoleSeller
}

// Admins and superusers both count as support staff for guest routing.
func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin || u.IsSuperuser
}
