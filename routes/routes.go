package routes

import (
	"github.com/biltech1234n/thecoffeelink/configs"
	"github.com/biltech1234n/thecoffeelink/controllers"
	"github.com/biltech1234n/thecoffeelink/entity"
	"github.com/biltech1234n/thecoffeelink/middlewares"
	"github.com/biltech1234n/thecoffeelink/payment"
	"github.com/biltech1234n/thecoffeelink/repository"
	"github.com/biltech1234n/thecoffeelink/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and controllers onto the
// engine. Public endpoints first, then role-guarded groups.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	chatRepo := repository.NewChatRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	sellerRepo := repository.NewSellerRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	notifier := services.NewNotificationService(notifRepo)
	authSvc := services.NewAuthService(userRepo, cfg)
	orderSvc := services.NewOrderService(db, orderRepo, productRepo, userRepo, notifier)
	chatSvc := services.NewChatService(chatRepo, userRepo, notifier)
	sellerSvc := services.NewSellerService(sellerRepo, userRepo, productRepo, orderRepo)
	adminSvc := services.NewAdminService(userRepo, sellerRepo, notifier)
	dashSvc := services.NewDashboardService(orderRepo, productRepo, userRepo)

	gateways := map[string]payment.Gateway{
		entity.ProviderChapa:  payment.NewChapaGateway(cfg.ChapaSecretKey),
		entity.ProviderStripe: payment.NewStripeGateway(cfg.StripeSecretKey),
	}
	paymentSvc := services.NewPaymentService(paymentRepo, orderSvc, userRepo, gateways, cfg.BaseURL)

	auth := controllers.NewAuthController(authSvc)
	market := controllers.NewMarketController(productRepo, sellerSvc)
	orders := controllers.NewOrderController(orderSvc)
	payments := controllers.NewPaymentController(paymentSvc)
	seller := controllers.NewSellerController(sellerSvc, orderSvc, dashSvc)
	chat := controllers.NewChatController(chatSvc)
	notifs := controllers.NewNotificationController(notifier)
	admin := controllers.NewAdminController(adminSvc, dashSvc, productRepo, orderRepo)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/auth/register", auth.Register)
	r.POST("/auth/login", auth.Login)

	r.GET("/market/products", market.List)
	r.GET("/market/products/:id", market.Detail)
	r.GET("/market/sellers/:id", market.SellerProfile)

	r.POST("/contact", chat.GuestContact)
	r.GET("/payments/callback/:orderId", payments.Callback)

	authed := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		authed.GET("/auth/me", auth.Me)
		authed.PUT("/auth/me", auth.UpdateMe)
		authed.POST("/auth/change-password", auth.ChangePassword)

		authed.GET("/chat/rooms", chat.Inbox)
		authed.GET("/chat/with/:userId", chat.OpenRoom)
		authed.POST("/chat/rooms/:id/messages", chat.Send)
		authed.GET("/chat/rooms/:id/updates", chat.Updates)
		authed.POST("/chat/rooms/:id/clear", chat.Clear)
		authed.POST("/chat/messages/manage", chat.Manage)
		authed.POST("/chat/contact-admin", chat.ContactAdmin)

		authed.GET("/notifications", notifs.List)
		authed.GET("/notifications/unread", notifs.Unread)
		authed.POST("/notifications/:id/read", notifs.MarkRead)
		authed.POST("/notifications/read-all", notifs.MarkAllRead)
		authed.DELETE("/notifications", notifs.DeleteAll)
	}

	buyer := r.Group("/buyer", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleBuyer))
	{
		buyer.POST("/orders", orders.Create)
		buyer.GET("/orders", orders.ListForMe)
		buyer.GET("/orders/:id", orders.Detail)
		buyer.DELETE("/orders/:id", orders.Cancel)
		buyer.POST("/orders/:id/pay", orders.Pay)
		buyer.POST("/payments/checkout", payments.Checkout)
	}

	sellerGrp := r.Group("/seller", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleSeller))
	{
		sellerGrp.GET("/dashboard", seller.Dashboard)
		sellerGrp.GET("/products", seller.Products)
		sellerGrp.POST("/products", seller.AddProduct)
		sellerGrp.DELETE("/products/:id", seller.RemoveProduct)
		sellerGrp.GET("/orders", seller.Orders)
		sellerGrp.PATCH("/orders/:id/status", seller.UpdateOrderStatus)
		sellerGrp.GET("/business", seller.Business)
		sellerGrp.PUT("/business", seller.UpdateBusiness)
		sellerGrp.POST("/business/certifications", seller.UploadCert)
		sellerGrp.POST("/business/verification-doc", seller.UploadVerificationDoc)
	}

	adminGrp := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		adminGrp.GET("/dashboard", admin.Dashboard)
		adminGrp.GET("/users", admin.Users)
		adminGrp.POST("/users/:id/action", admin.UserAction)
		adminGrp.POST("/certifications/:id/action", admin.CertAction)
		adminGrp.GET("/analytics/products", admin.ProductAnalytics)
		adminGrp.GET("/analytics/orders", admin.OrderAnalytics)
		adminGrp.GET("/analytics/sellers", admin.SellerRanking)
	}
}
