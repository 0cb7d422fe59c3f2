package services

import (
	"fmt"
	"testing"

	"github.com/biltech1234n/thecoffeelink/entity"
	"github.com/biltech1234n/thecoffeelink/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database. Pool size is pinned to
// one connection: with sqlite ":memory:" every connection would
// otherwise get its own empty database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.SellerProfile{},
		&entity.SellerCertification{},
		&entity.VerificationDoc{},
		&entity.Product{},
		&entity.Order{},
		&entity.Payment{},
		&entity.ChatRoom{},
		&entity.Message{},
		&entity.MessageHide{},
		&entity.Notification{},
	))
	return db
}

type testEnv struct {
	db *gorm.DB

	userRepo    *repository.UserRepository
	productRepo *repository.ProductRepository
	orderRepo   *repository.OrderRepository
	chatRepo    *repository.ChatRepository
	notifRepo   *repository.NotificationRepository
	paymentRepo *repository.PaymentRepository

	notifier  *NotificationService
	orders    *OrderService
	chat      *ChatService
	dashboard *DashboardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	env := &testEnv{
		db:          db,
		userRepo:    repository.NewUserRepository(db),
		productRepo: repository.NewProductRepository(db),
		orderRepo:   repository.NewOrderRepository(db),
		chatRepo:    repository.NewChatRepository(db),
		notifRepo:   repository.NewNotificationRepository(db),
		paymentRepo: repository.NewPaymentRepository(db),
	}
	env.notifier = NewNotificationService(env.notifRepo)
	env.orders = NewOrderService(db, env.orderRepo, env.productRepo, env.userRepo, env.notifier)
	env.chat = NewChatService(env.chatRepo, env.userRepo, env.notifier)
	env.dashboard = NewDashboardService(env.orderRepo, env.productRepo, env.userRepo)
	return env
}

func (e *testEnv) createUser(t *testing.T, username, role string, verified bool) *entity.User {
	t.Helper()
	u := &entity.User{
		Username:   username,
		Email:      fmt.Sprintf("%s@example.com", username),
		Password:   "x",
		Role:       role,
		IsVerified: verified,
		IsActive:   true,
	}
	require.NoError(t, e.userRepo.Create(u))
	return u
}

func (e *testEnv) createProduct(t *testing.T, seller *entity.User, name string, price int64) *entity.Product {
	t.Helper()
	p := &entity.Product{
		Name:     name,
		Category: entity.CategoryRoasted,
		Price:    price,
		IsActive: true,
		SellerID: seller.ID,
	}
	require.NoError(t, e.productRepo.Create(p))
	return p
}

func (e *testEnv) notificationsFor(t *testing.T, userID uint) []entity.Notification {
	t.Helper()
	notifs, err := e.notifRepo.ListForRecipient(userID)
	require.NoError(t, err)
	return notifs
}
