package entity

import (
	"time"

	"gorm.io/gorm"
)

// Certification names accepted on upload
var CertificationNames = []string{
	"Fair Trade", "USDA Organic", "Rainforest", "UTZ",
	"Bird Friendly", "Import License", "Export License", "C.A.F.E.", "Other",
}

type SellerCertification struct {
	gorm.Model
	Name          string     `gorm:"not null" json:"name"`
	DocumentURL   string     `json:"documentUrl"`
	AuthorityName string     `json:"authorityName"`
	ExpiryDate    *time.Time `json:"expiryDate,omitempty"`
	IsVerified    bool       `gorm:"default:false" json:"isVerified"`

	ProfileID uint          `gorm:"index;not null" json:"profileId"`
	Profile   SellerProfile `json:"-"`
}
