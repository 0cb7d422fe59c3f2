package controllers

import (
	"errors"

	"github.com/biltech1234n/thecoffeelink/pkg/resp"
	"github.com/biltech1234n/thecoffeelink/services"
	"github.com/biltech1234n/thecoffeelink/utils"
	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	service *services.PaymentService
}

func NewPaymentController(s *services.PaymentService) *PaymentController {
	return &PaymentController{s}
}

// POST /payments/checkout
func (ctl *PaymentController) Checkout(c *gin.Context) {
	var req struct {
		OrderID  uint   `json:"orderId" binding:"required"`
		Provider string `json:"provider" binding:"required,oneof=chapa stripe"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ctl.service.Checkout(c.Request.Context(), utils.CurrentUserID(c), req.OrderID, req.Provider)
	if errors.Is(err, services.ErrAlreadyPaid) {
		resp.OK(c, gin.H{"info": "order was already paid"})
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /payments/callback/:orderId: hit by the provider after checkout.
// Replays are harmless: the Paid transition no-ops the second time.
func (ctl *PaymentController) Callback(c *gin.Context) {
	orderID, ok := paramUint(c, "orderId")
	if !ok {
		return
	}
	txRef := c.Query("tx_ref")
	if txRef == "" {
		resp.BadRequest(c, "missing tx_ref")
		return
	}
	if err := ctl.service.CompleteCallback(orderID, txRef); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"status": "Paid"})
}
