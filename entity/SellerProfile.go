package entity

import (
	"gorm.io/gorm"
)

type SellerProfile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"`

	IsFarmer   bool `gorm:"default:false" json:"isFarmer"`
	IsRoaster  bool `gorm:"default:false" json:"isRoaster"`
	IsExporter bool `gorm:"default:false" json:"isExporter"`
	IsSupplier bool `gorm:"default:false" json:"isSupplier"`

	CompanyName  string `json:"companyName"`
	LogoURL      string `json:"logoUrl"`
	Country      string `json:"country"`
	City         string `json:"city"`
	Description  string `json:"description"`
	CoreProducts string `json:"coreProducts"`

	Certificates []SellerCertification `gorm:"foreignKey:ProfileID" json:"-"`
}
