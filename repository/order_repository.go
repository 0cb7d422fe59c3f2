package repository

import (
	"time"

	"github.com/biltech1234n/thecoffeelink/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db}
}

// Save is the single persist path for orders. Total price is recomputed
// from the current product price on every save so the invariant
// total_price = price * quantity can never go stale.
func (r *OrderRepository) Save(tx *gorm.DB, o *entity.Order) error {
	var price int64
	if err := tx.Model(&entity.Product{}).
		Where("id = ?", o.ProductID).
		Select("price").Scan(&price).Error; err != nil {
		return err
	}
	o.TotalPrice = price * int64(o.Quantity)
	return tx.Save(o).Error
}

// FindPendingInTx looks up the buyer's Pending order for a product inside
// the caller's transaction. The tx boundary is what serializes the
// check-then-write against a concurrent duplicate create.
func (r *OrderRepository) FindPendingInTx(tx *gorm.DB, buyerID, productID uint) (*entity.Order, error) {
	var o entity.Order
	err := tx.
		Where("buyer_id = ? AND product_id = ? AND status = ?", buyerID, productID, entity.StatusPending).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.db.Preload("Product").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindForBuyer(id, buyerID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.db.Preload("Product").
		Where("id = ? AND buyer_id = ?", id, buyerID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindForSeller(id, sellerID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.db.Preload("Product").
		Joins("JOIN products ON products.id = orders.product_id").
		Where("orders.id = ? AND products.seller_id = ?", id, sellerID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListForBuyer(buyerID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.Preload("Product").
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListForSeller(sellerID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.Preload("Product").
		Joins("JOIN products ON products.id = orders.product_id").
		Where("products.seller_id = ?", sellerID).
		Order("orders.created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.Preload("Product").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// MarkPaid flips a not-yet-paid order to Paid. A second caller sees zero
// rows affected and must treat that as an informational no-op, not an
// error; the conditional update is the idempotency guard against double
// payment confirmations.
func (r *OrderRepository) MarkPaid(tx *gorm.DB, orderID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status <> ?", orderID, entity.StatusPaid).
		Update("status", entity.StatusPaid)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) UpdateStatus(tx *gorm.DB, orderID uint, status string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// DeletePending hard-deletes a buyer's order while it is still Pending.
// Any other status makes this a no-op.
func (r *OrderRepository) DeletePending(orderID, buyerID uint) (int64, error) {
	res := r.db.Unscoped().
		Where("id = ? AND buyer_id = ? AND status = ?", orderID, buyerID, entity.StatusPending).
		Delete(&entity.Order{})
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) CountAll() (int64, error) {
	var n int64
	err := r.db.Model(&entity.Order{}).Count(&n).Error
	return n, err
}

func (r *OrderRepository) CountForSeller(sellerID uint) (int64, error) {
	var n int64
	err := r.db.Model(&entity.Order{}).
		Joins("JOIN products ON products.id = orders.product_id").
		Where("products.seller_id = ?", sellerID).
		Count(&n).Error
	return n, err
}

func (r *OrderRepository) CountRealizedForSeller(sellerID uint) (int64, error) {
	var n int64
	err := r.db.Model(&entity.Order{}).
		Joins("JOIN products ON products.id = orders.product_id").
		Where("products.seller_id = ? AND orders.status IN ?", sellerID, entity.RevenueStatuses).
		Count(&n).Error
	return n, err
}

// SumRevenueForSeller sums total_price over the seller's orders in the
// revenue status set.
func (r *OrderRepository) SumRevenueForSeller(sellerID uint) (int64, error) {
	var sum int64
	err := r.db.Model(&entity.Order{}).
		Joins("JOIN products ON products.id = orders.product_id").
		Where("products.seller_id = ? AND orders.status IN ?", sellerID, entity.RevenueStatuses).
		Select("COALESCE(SUM(orders.total_price), 0)").
		Scan(&sum).Error
	return sum, err
}

// SumRevenueForSellerBetween restricts the revenue sum to orders created
// in [from, to).
func (r *OrderRepository) SumRevenueForSellerBetween(sellerID uint, from, to time.Time) (int64, error) {
	var sum int64
	err := r.db.Model(&entity.Order{}).
		Joins("JOIN products ON products.id = orders.product_id").
		Where("products.seller_id = ? AND orders.status IN ?", sellerID, entity.RevenueStatuses).
		Where("orders.created_at >= ? AND orders.created_at < ?", from, to).
		Select("COALESCE(SUM(orders.total_price), 0)").
		Scan(&sum).Error
	return sum, err
}

// SumTotalRevenue is the platform-wide realized revenue.
func (r *OrderRepository) SumTotalRevenue() (int64, error) {
	var sum int64
	err := r.db.Model(&entity.Order{}).
		Where("status IN ?", entity.RevenueStatuses).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&sum).Error
	return sum, err
}

// SumSpentByBuyer is the buyer's realized spend, same status policy as
// every other revenue figure.
func (r *OrderRepository) SumSpentByBuyer(buyerID uint) (int64, error) {
	var sum int64
	err := r.db.Model(&entity.Order{}).
		Where("buyer_id = ? AND status IN ?", buyerID, entity.RevenueStatuses).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&sum).Error
	return sum, err
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

func (r *OrderRepository) CountByStatusForSeller(sellerID uint) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.Model(&entity.Order{}).
		Joins("JOIN products ON products.id = orders.product_id").
		Where("products.seller_id = ?", sellerID).
		Select("orders.status, COUNT(*) as count").
		Group("orders.status").
		Scan(&rows).Error
	return rows, err
}

func (r *OrderRepository) CountByStatus() ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.Model(&entity.Order{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	return rows, err
}

type SellerRevenue struct {
	SellerID uint  `json:"sellerId"`
	Revenue  int64 `json:"revenue"`
}

// RankSellers annotates every seller with realized revenue (0 when they
// have no sales) sorted highest first. Ties break on the lower user id
// so the ranking is deterministic.
func (r *OrderRepository) RankSellers() ([]SellerRevenue, error) {
	var rows []SellerRevenue
	err := r.db.Table("users").
		Select(`users.id AS seller_id,
			COALESCE(SUM(CASE WHEN orders.status IN ? THEN orders.total_price ELSE 0 END), 0) AS revenue`,
			entity.RevenueStatuses).
		Joins("LEFT JOIN products ON products.seller_id = users.id").
		Joins("LEFT JOIN orders ON orders.product_id = products.id AND orders.deleted_at IS NULL").
		Where("users.role = ?", entity.RoleSeller).
		Group("users.id").
		Order("revenue DESC, users.id ASC").
		Scan(&rows).Error
	return rows, err
}
