package repository

import (
	"github.com/biltech1234n/thecoffeelink/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db}
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) Save(u *entity.User) error {
	return r.db.Save(u).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var u entity.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ListActiveStaff returns every active user holding the admin role or
// superuser privilege, the candidate pool for guest inquiry routing.
func (r *UserRepository) ListActiveStaff() ([]entity.User, error) {
	var staff []entity.User
	err := r.db.
		Where("is_active = ?", true).
		Where("role = ? OR is_superuser = ?", entity.RoleAdmin, true).
		Find(&staff).Error
	return staff, err
}

// GetOrCreateGuest lazily creates the shared guest account. The empty
// password hash makes the account unusable for login.
func (r *UserRepository) GetOrCreateGuest() (*entity.User, error) {
	var guest entity.User
	err := r.db.
		Where(entity.User{Username: entity.GuestUsername}).
		Attrs(entity.User{Role: entity.RoleBuyer, IsActive: true}).
		FirstOrCreate(&guest).Error
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *UserRepository) ListAll() ([]entity.User, error) {
	var users []entity.User
	err := r.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepository) CountAll() (int64, error) {
	var n int64
	err := r.db.Model(&entity.User{}).Count(&n).Error
	return n, err
}

type RoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

func (r *UserRepository) CountByRole() ([]RoleCount, error) {
	var rows []RoleCount
	err := r.db.Model(&entity.User{}).
		Select("role, COUNT(*) as count").
		Group("role").
		Scan(&rows).Error
	return rows, err
}
