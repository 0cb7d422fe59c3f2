package entity

import (
	"gorm.io/gorm"
)

// VerificationDoc holds references to the identity documents a seller
// uploads for admin review. The binaries live in external storage, only
// the URLs are kept here.
type VerificationDoc struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"`

	BusinessLicenseURL string `json:"businessLicenseUrl"`
	IDCardURL          string `json:"idCardUrl"`
}
