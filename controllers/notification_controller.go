package controllers

import (
	"github.com/biltech1234n/thecoffeelink/pkg/resp"
	"github.com/biltech1234n/thecoffeelink/services"
	"github.com/biltech1234n/thecoffeelink/utils"
	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	service *services.NotificationService
}

func NewNotificationController(s *services.NotificationService) *NotificationController {
	return &NotificationController{s}
}

// GET /notifications
func (ctl *NotificationController) List(c *gin.Context) {
	notifs, err := ctl.service.ListFor(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, notifs)
}

// GET /notifications/unread
func (ctl *NotificationController) Unread(c *gin.Context) {
	notifs, count, err := ctl.service.Unread(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"count": count, "notifications": notifs})
}

// POST /notifications/:id/read: returns the stored link so the client can follow it
func (ctl *NotificationController) MarkRead(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	link, err := ctl.service.MarkRead(id, utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"redirect": link})
}

// POST /notifications/read-all
func (ctl *NotificationController) MarkAllRead(c *gin.Context) {
	if err := ctl.service.MarkAllRead(utils.CurrentUserID(c)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"status": "ok"})
}

// DELETE /notifications
func (ctl *NotificationController) DeleteAll(c *gin.Context) {
	if err := ctl.service.DeleteAll(utils.CurrentUserID(c)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"status": "ok"})
}
