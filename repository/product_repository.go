package repository

import (
	"github.com/biltech1234n/thecoffeelink/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db}
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.db.Create(p).Error
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.Preload("Seller").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListMarket returns active products from verified sellers, newest first.
func (r *ProductRepository) ListMarket(limit int) ([]entity.Product, error) {
	var products []entity.Product
	q := r.db.
		Joins("JOIN users ON users.id = products.seller_id").
		Where("products.is_active = ? AND users.is_verified = ?", true, true).
		Order("products.created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&products).Error
	return products, err
}

func (r *ProductRepository) ListActiveBySeller(sellerID uint) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.
		Where("seller_id = ? AND is_active = ?", sellerID, true).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *ProductRepository) CountActiveBySeller(sellerID uint) (int64, error) {
	var n int64
	err := r.db.Model(&entity.Product{}).
		Where("seller_id = ? AND is_active = ?", sellerID, true).
		Count(&n).Error
	return n, err
}

func (r *ProductRepository) CountActive() (int64, error) {
	var n int64
	err := r.db.Model(&entity.Product{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}

func (r *ProductRepository) CountAll() (int64, error) {
	var n int64
	err := r.db.Model(&entity.Product{}).Count(&n).Error
	return n, err
}

// Deactivate soft-deletes a product owned by sellerID. Products are
// never hard-deleted once orders reference them.
func (r *ProductRepository) Deactivate(productID, sellerID uint) (int64, error) {
	res := r.db.Model(&entity.Product{}).
		Where("id = ? AND seller_id = ?", productID, sellerID).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}

func (r *ProductRepository) ListAll() ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.Order("created_at DESC").Find(&products).Error
	return products, err
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

func (r *ProductRepository) CountByCategory() ([]CategoryCount, error) {
	var rows []CategoryCount
	err := r.db.Model(&entity.Product{}).
		Select("category, COUNT(*) as count").
		Group("category").
		Scan(&rows).Error
	return rows, err
}
