package repository

import (
	"errors"

	"github.com/biltech1234n/thecoffeelink/entity"
	"gorm.io/gorm"
)

type SellerRepository struct {
	db *gorm.DB
}

func NewSellerRepository(db *gorm.DB) *SellerRepository {
	return &SellerRepository{db}
}

// GetOrCreateProfile returns the seller's business profile, creating an
// empty one on first access.
func (r *SellerRepository) GetOrCreateProfile(userID uint) (*entity.SellerProfile, error) {
	var profile entity.SellerProfile
	err := r.db.
		Where(entity.SellerProfile{UserID: userID}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *SellerRepository) SaveProfile(p *entity.SellerProfile) error {
	return r.db.Save(p).Error
}

func (r *SellerRepository) FindProfileByID(id uint) (*entity.SellerProfile, error) {
	var profile entity.SellerProfile
	if err := r.db.First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *SellerRepository) CreateCert(c *entity.SellerCertification) error {
	return r.db.Create(c).Error
}

func (r *SellerRepository) FindCert(id uint) (*entity.SellerCertification, error) {
	var cert entity.SellerCertification
	if err := r.db.First(&cert, id).Error; err != nil {
		return nil, err
	}
	return &cert, nil
}

func (r *SellerRepository) SaveCert(c *entity.SellerCertification) error {
	return r.db.Save(c).Error
}

func (r *SellerRepository) ListCerts(profileID uint) ([]entity.SellerCertification, error) {
	var certs []entity.SellerCertification
	err := r.db.Where("profile_id = ?", profileID).Find(&certs).Error
	return certs, err
}

// UpsertVerificationDoc replaces the user's identity document refs.
func (r *SellerRepository) UpsertVerificationDoc(doc *entity.VerificationDoc) error {
	var existing entity.VerificationDoc
	err := r.db.Where("user_id = ?", doc.UserID).First(&existing).Error
	if err == nil {
		existing.BusinessLicenseURL = doc.BusinessLicenseURL
		existing.IDCardURL = doc.IDCardURL
		return r.db.Save(&existing).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(doc).Error
}
