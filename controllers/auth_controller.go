package controllers

import (
	"github.com/biltech1234n/thecoffeelink/pkg/resp"
	"github.com/biltech1234n/thecoffeelink/services"
	"github.com/biltech1234n/thecoffeelink/utils"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{s}
}

// POST /auth/register
func (ctl *AuthController) Register(c *gin.Context) {
	var req services.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, token, err := ctl.service.Register(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"user": user, "token": token})
}

// POST /auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req services.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, token, err := ctl.service.Login(&req)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"user": user, "token": token})
}

// GET /auth/me
func (ctl *AuthController) Me(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	user, err := ctl.service.Repo.FindByID(userID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, user)
}

// PUT /auth/me
func (ctl *AuthController) UpdateMe(c *gin.Context) {
	var req services.UpdateMeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := ctl.service.UpdateMe(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, user)
}

// POST /auth/change-password
func (ctl *AuthController) ChangePassword(c *gin.Context) {
	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	userID := utils.CurrentUserID(c)
	if err := ctl.service.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"changed": true})
}
