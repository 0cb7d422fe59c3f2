package controllers

import (
	"github.com/biltech1234n/thecoffeelink/pkg/resp"
	"github.com/biltech1234n/thecoffeelink/services"
	"github.com/biltech1234n/thecoffeelink/utils"
	"github.com/gin-gonic/gin"
)

type ChatController struct {
	service *services.ChatService
}

func NewChatController(s *services.ChatService) *ChatController {
	return &ChatController{s}
}

// GET /chat/rooms: inbox, most recently active first
func (ctl *ChatController) Inbox(c *gin.Context) {
	rooms, err := ctl.service.Inbox(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rooms)
}

// GET /chat/with/:userId: open (or create) the room with another user
func (ctl *ChatController) OpenRoom(c *gin.Context) {
	otherID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	view, err := ctl.service.OpenRoom(utils.CurrentUserID(c), otherID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /chat/rooms/:id/messages
func (ctl *ChatController) Send(c *gin.Context) {
	roomID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	msg, err := ctl.service.Send(utils.CurrentUserID(c), roomID, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{
		"status":     "success",
		"message_id": msg.ID,
		"content":    msg.Content,
		"time":       msg.CreatedAt.Format("15:04"),
	})
}

// GET /chat/rooms/:id/updates?last_check=<epoch ms>: incremental poll
func (ctl *ChatController) Updates(c *gin.Context) {
	roomID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	out, err := ctl.service.Updates(utils.CurrentUserID(c), roomID, c.Query("last_check"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /chat/rooms/:id/clear: hide the whole room for the requester
func (ctl *ChatController) Clear(c *gin.Context) {
	roomID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := ctl.service.ClearHistory(utils.CurrentUserID(c), roomID); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"status": "cleared"})
}

// POST /chat/messages/manage: edit / delete_me / delete_everyone
func (ctl *ChatController) Manage(c *gin.Context) {
	var req struct {
		Action     string `json:"action" binding:"required"`
		MessageID  uint   `json:"message_id" binding:"required"`
		NewContent string `json:"new_content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := ctl.service.Manage(utils.CurrentUserID(c), req.Action, req.MessageID, req.NewContent)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /chat/contact-admin: route the caller to a random support agent
func (ctl *ChatController) ContactAdmin(c *gin.Context) {
	agent, err := ctl.service.PickSupportAgent()
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"userId": agent.ID, "username": agent.Username})
}

// POST /contact: public contact form, sent as the shared guest account
func (ctl *ChatController) GuestContact(c *gin.Context) {
	var req services.GuestInquiry
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if _, err := ctl.service.SubmitGuestInquiry(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"sent": true})
}
