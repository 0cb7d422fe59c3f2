package controllers

import (
	"time"

	"github.com/biltech1234n/thecoffeelink/pkg/resp"
	"github.com/biltech1234n/thecoffeelink/services"
	"github.com/biltech1234n/thecoffeelink/utils"
	"github.com/gin-gonic/gin"
)

type SellerController struct {
	sellers   *services.SellerService
	orders    *services.OrderService
	dashboard *services.DashboardService
}

func NewSellerController(
	sellers *services.SellerService,
	orders *services.OrderService,
	dashboard *services.DashboardService,
) *SellerController {
	return &SellerController{sellers: sellers, orders: orders, dashboard: dashboard}
}

// GET /seller/dashboard
func (ctl *SellerController) Dashboard(c *gin.Context) {
	out, err := ctl.dashboard.ForSeller(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /seller/products
func (ctl *SellerController) Products(c *gin.Context) {
	products, err := ctl.sellers.Products(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, products)
}

// POST /seller/products
func (ctl *SellerController) AddProduct(c *gin.Context) {
	var req services.AddProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	product, err := ctl.sellers.AddProduct(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, product)
}

// DELETE /seller/products/:id: soft removal from the market
func (ctl *SellerController) RemoveProduct(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := ctl.sellers.RemoveProduct(utils.CurrentUserID(c), id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}

// GET /seller/orders
func (ctl *SellerController) Orders(c *gin.Context) {
	orders, err := ctl.orders.ListForSeller(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}

// PATCH /seller/orders/:id/status
func (ctl *SellerController) UpdateOrderStatus(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.orders.SellerSetStatus(utils.CurrentUserID(c), id, req.Status); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"status": req.Status})
}

// GET /seller/business: profile, certificates, revenue windows, rank
func (ctl *SellerController) Business(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	view, err := ctl.sellers.Profile(userID)
	if err != nil {
		fail(c, err)
		return
	}
	stats, err := ctl.dashboard.BusinessStatsFor(userID, time.Now())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"profile": view.Profile, "certificates": view.Certificates, "stats": stats})
}

// PUT /seller/business
func (ctl *SellerController) UpdateBusiness(c *gin.Context) {
	var req services.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	profile, err := ctl.sellers.UpdateProfile(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, profile)
}

// POST /seller/business/certifications
func (ctl *SellerController) UploadCert(c *gin.Context) {
	var req services.UploadCertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cert, err := ctl.sellers.UploadCert(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, cert)
}

// POST /seller/business/verification-doc
func (ctl *SellerController) UploadVerificationDoc(c *gin.Context) {
	var req struct {
		BusinessLicenseURL string `json:"businessLicenseUrl" binding:"required"`
		IDCardURL          string `json:"idCardUrl" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.sellers.UploadVerificationDoc(utils.CurrentUserID(c), req.BusinessLicenseURL, req.IDCardURL); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"uploaded": true})
}
