package controllers

import (
	"errors"

	"github.com/biltech1234n/thecoffeelink/pkg/resp"
	"github.com/biltech1234n/thecoffeelink/services"
	"github.com/biltech1234n/thecoffeelink/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{s}
}

// POST /orders
func (ctl *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	buyerID := utils.CurrentUserID(c)
	out, err := ctl.service.Create(buyerID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	if out.Updated {
		resp.OK(c, out)
		return
	}
	resp.Created(c, out)
}

// GET /orders
func (ctl *OrderController) ListForMe(c *gin.Context) {
	buyerID := utils.CurrentUserID(c)
	orders, spent, err := ctl.service.ListForBuyer(buyerID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders, "totalSpent": spent})
}

// GET /orders/:id
func (ctl *OrderController) Detail(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	order, err := ctl.service.DetailForBuyer(utils.CurrentUserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id: buyer cancellation, Pending only
func (ctl *OrderController) Cancel(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := ctl.service.Cancel(utils.CurrentUserID(c), id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"cancelled": true})
}

// POST /orders/:id/pay: direct payment confirmation
func (ctl *OrderController) Pay(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	err := ctl.service.MarkPaid(utils.CurrentUserID(c), id)
	if errors.Is(err, services.ErrAlreadyPaid) {
		// idempotent no-op, surfaced as informational
		resp.OK(c, gin.H{"status": "Paid", "info": "order was already paid"})
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"status": "Paid"})
}
