package controllers

import (
	"github.com/biltech1234n/thecoffeelink/pkg/resp"
	"github.com/biltech1234n/thecoffeelink/repository"
	"github.com/biltech1234n/thecoffeelink/services"
	"github.com/gin-gonic/gin"
)

// MarketController serves the public storefront: active products from
// verified sellers and public seller pages.
type MarketController struct {
	products *repository.ProductRepository
	sellers  *services.SellerService
}

func NewMarketController(products *repository.ProductRepository, sellers *services.SellerService) *MarketController {
	return &MarketController{products: products, sellers: sellers}
}

// GET /market/products
func (ctl *MarketController) List(c *gin.Context) {
	products, err := ctl.products.ListMarket(0)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, products)
}

// GET /market/products/:id
func (ctl *MarketController) Detail(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	product, err := ctl.products.FindByID(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, product)
}

// GET /market/sellers/:id
func (ctl *MarketController) SellerProfile(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	view, err := ctl.sellers.PublicProfile(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, view)
}
