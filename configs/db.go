package configs

import (
	"github.com/biltech1234n/thecoffeelink/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{}, &entity.VerificationDoc{},
		&entity.SellerProfile{}, &entity.SellerCertification{},
		&entity.Product{}, &entity.Order{}, &entity.Payment{},
		&entity.ChatRoom{}, &entity.Message{}, &entity.MessageHide{},
		&entity.Notification{},
	)
}
