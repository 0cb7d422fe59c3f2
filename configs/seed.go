package configs

import (
	"log"

	"github.com/biltech1234n/thecoffeelink/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Username:    "admin",
		Email:       cfg.AdminEmail,
		Password:    string(hash),
		Role:        entity.RoleAdmin,
		IsVerified:  true,
		IsActive:    true,
		IsSuperuser: true,
	}
	return db.Create(&admin).Error
}
