package controllers

import (
	"errors"
	"strconv"

	"github.com/biltech1234n/thecoffeelink/pkg/resp"
	"github.com/biltech1234n/thecoffeelink/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// fail maps service errors onto the response envelope. Unrecognized
// errors are treated as rejected input, the services return sentinel
// errors for everything else.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrForbidden), errors.Is(err, services.ErrDenied):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, err.Error())
	default:
		resp.BadRequest(c, err.Error())
	}
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil || n < 1 {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(n), true
}
