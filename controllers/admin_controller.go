package controllers

import (
	"github.com/biltech1234n/thecoffeelink/pkg/resp"
	"github.com/biltech1234n/thecoffeelink/repository"
	"github.com/biltech1234n/thecoffeelink/services"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	admin     *services.AdminService
	dashboard *services.DashboardService
	products  *repository.ProductRepository
	orders    *repository.OrderRepository
}

func NewAdminController(admin *services.AdminService, dashboard *services.DashboardService, products *repository.ProductRepository, orders *repository.OrderRepository) *AdminController {
	return &AdminController{admin, dashboard, products, orders}
}

// GET /admin/dashboard
func (ctl *AdminController) Dashboard(c *gin.Context) {
	stats, err := ctl.dashboard.ForAdmin()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /admin/users
func (ctl *AdminController) Users(c *gin.Context) {
	users, err := ctl.admin.ListUsers()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, users)
}

// POST /admin/users/:id/action
func (ctl *AdminController) UserAction(c *gin.Context) {
	userID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req struct {
		Action string `json:"action" binding:"required,oneof=suspend unsuspend approve_identity revoke_identity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := ctl.admin.UserAction(req.Action, userID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{
		"id":          user.ID,
		"is_active":   user.IsActive,
		"is_verified": user.IsVerified,
	})
}

// POST /admin/certifications/:id/action
func (ctl *AdminController) CertAction(c *gin.Context) {
	certID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req struct {
		Action string `json:"action" binding:"required,oneof=verify_cert reject_cert"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cert, err := ctl.admin.CertAction(req.Action, certID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": cert.ID, "is_verified": cert.IsVerified})
}

// GET /admin/analytics/products: active product counts per category
func (ctl *AdminController) ProductAnalytics(c *gin.Context) {
	counts, err := ctl.products.CountByCategory()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, counts)
}

// GET /admin/analytics/orders: order counts per status
func (ctl *AdminController) OrderAnalytics(c *gin.Context) {
	counts, err := ctl.orders.CountByStatus()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, counts)
}

// GET /admin/analytics/sellers: sellers ranked by confirmed revenue
func (ctl *AdminController) SellerRanking(c *gin.Context) {
	ranking, err := ctl.orders.RankSellers()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, ranking)
}
