package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/biltech1234n/thecoffeelink/entity"
	"github.com/biltech1234n/thecoffeelink/repository"
	"gorm.io/gorm"
)

// fallbackWindow is the sync lookback used when the client sends a
// missing or malformed last-check timestamp.
const fallbackWindow = 10 * time.Second

type ChatService struct {
	Repo     *repository.ChatRepository
	UserRepo *repository.UserRepository
	Notifier *NotificationService
}

func NewChatService(
	repo *repository.ChatRepository,
	userRepo *repository.UserRepository,
	notifier *NotificationService,
) *ChatService {
	return &ChatService{Repo: repo, UserRepo: userRepo, Notifier: notifier}
}

// ResolveRoom finds the room for the unordered pair, creating it when
// absent.
func (s *ChatService) ResolveRoom(userID, otherID uint) (*entity.ChatRoom, error) {
	room, err := s.Repo.FindRoomBetween(userID, otherID)
	if err == nil {
		return room, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	room = &entity.ChatRoom{Participant1ID: userID, Participant2ID: otherID}
	if err := s.Repo.CreateRoom(room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *ChatService) Inbox(userID uint) ([]entity.ChatRoom, error) {
	return s.Repo.ListRoomsForUser(userID)
}

type RoomView struct {
	Room     *entity.ChatRoom `json:"room"`
	Other    *entity.User     `json:"otherUser"`
	Messages []entity.Message `json:"messages"`
}

// OpenRoom resolves the room with another user, returns the viewer's
// visible messages and bulk-marks the other participant's unread ones
// as read.
func (s *ChatService) OpenRoom(userID, otherID uint) (*RoomView, error) {
	other, err := s.UserRepo.FindByID(otherID)
	if err != nil {
		return nil, err
	}

	room, err := s.ResolveRoom(userID, otherID)
	if err != nil {
		return nil, err
	}

	msgs, err := s.Repo.VisibleMessages(room.ID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.MarkReadFromSender(room.ID, otherID); err != nil {
		return nil, err
	}
	return &RoomView{Room: room, Other: other, Messages: msgs}, nil
}

// Send creates a message, bumps the room's recency stamp and notifies
// the other participant.
func (s *ChatService) Send(userID, roomID uint, content string) (*entity.Message, error) {
	if content == "" {
		return nil, errors.New("message content is required")
	}
	room, err := s.Repo.FindRoom(roomID)
	if err != nil {
		return nil, err
	}
	if !room.HasParticipant(userID) {
		return nil, ErrDenied
	}

	msg := &entity.Message{RoomID: room.ID, SenderID: userID, Content: content}
	if err := s.Repo.CreateMessage(msg); err != nil {
		return nil, err
	}
	if err := s.Repo.TouchRoom(room.ID); err != nil {
		return nil, err
	}

	sender, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if err := s.Notifier.MessageCreated(msg, room, sender.Username); err != nil {
		return nil, err
	}
	return msg, nil
}

// ClearHistory tombstones every message in the room for the requester
// only. The other participant's view is untouched.
func (s *ChatService) ClearHistory(userID, roomID uint) error {
	room, err := s.Repo.FindRoom(roomID)
	if err != nil {
		return err
	}
	if !room.HasParticipant(userID) {
		return ErrDenied
	}
	return s.Repo.HideAllInRoom(room.ID, userID)
}

// Manage message actions
const (
	ActionDeleteMe       = "delete_me"
	ActionDeleteEveryone = "delete_everyone"
	ActionEdit           = "edit"
)

type ManageResult struct {
	Status     string `json:"status"`
	NewContent string `json:"newContent,omitempty"`
}

// Manage applies delete-for-me, delete-for-everyone or edit to a
// message. Anyone may hide a message from their own view; only the
// sender may edit or delete for everyone, anyone else gets a denied
// status rather than an error.
func (s *ChatService) Manage(userID uint, action string, messageID uint, newContent string) (*ManageResult, error) {
	msg, err := s.Repo.FindMessage(messageID)
	if err != nil {
		return nil, err
	}

	if action == ActionDeleteMe {
		if err := s.Repo.HideMessage(msg.ID, userID); err != nil {
			return nil, err
		}
		return &ManageResult{Status: "hidden"}, nil
	}

	if msg.SenderID != userID {
		return &ManageResult{Status: "denied"}, nil
	}

	switch action {
	case ActionDeleteEveryone:
		msg.IsDeletedEveryone = true
		msg.Content = entity.DeletedPlaceholder
		if err := s.Repo.SaveMessage(msg); err != nil { // save bumps updated_at
			return nil, err
		}
		return &ManageResult{Status: "deleted", NewContent: msg.Content}, nil

	case ActionEdit:
		if newContent == "" {
			return nil, errors.New("new content is required")
		}
		msg.Content = newContent
		msg.IsEdited = true
		if err := s.Repo.SaveMessage(msg); err != nil {
			return nil, err
		}
		return &ManageResult{Status: "edited", NewContent: newContent}, nil
	}

	return nil, errors.New("unknown action")
}

type NewMessageOut struct {
	ID        uint   `json:"id"`
	SenderID  uint   `json:"sender_id"`
	Content   string `json:"content"`
	Time      string `json:"time"`
	IsMe      bool   `json:"is_me"`
	IsDeleted bool   `json:"is_deleted"`
}

type UpdatedMessageOut struct {
	ID        uint   `json:"id"`
	Content   string `json:"content"`
	IsDeleted bool   `json:"is_deleted"`
	IsEdited  bool   `json:"is_edited"`
}

type UpdatesOut struct {
	NewMessages     []NewMessageOut     `json:"new_messages"`
	UpdatedMessages []UpdatedMessageOut `json:"updated_messages"`
	ServerTime      float64             `json:"server_time"`
}

// parseLastCheck interprets the client's last-check value as epoch
// milliseconds (the unit browsers produce). Malformed or absent input
// falls back to a short lookback window instead of failing the poll.
func parseLastCheck(raw string, now time.Time) time.Time {
	ms, err := strconv.ParseFloat(raw, 64)
	if err != nil || ms <= 0 {
		return now.Add(-fallbackWindow)
	}
	return time.UnixMilli(int64(ms))
}

// Updates is the incremental poll. It returns two disjoint sets: brand
// new messages to append, and previously-seen messages whose content
// changed (edit or delete-for-everyone) to patch in place. Returned new
// messages from the other participant are marked read as a side effect.
// The response carries the server clock so the client anchors its next
// poll to it instead of its own.
func (s *ChatService) Updates(userID, roomID uint, lastCheckRaw string) (*UpdatesOut, error) {
	room, err := s.Repo.FindRoom(roomID)
	if err != nil {
		return nil, err
	}
	if !room.HasParticipant(userID) {
		return nil, ErrDenied
	}

	now := time.Now()
	since := parseLastCheck(lastCheckRaw, now)

	newMsgs, err := s.Repo.NewMessagesSince(room.ID, userID, since)
	if err != nil {
		return nil, err
	}
	changed, err := s.Repo.ChangedMessagesSince(room.ID, userID, since)
	if err != nil {
		return nil, err
	}

	out := &UpdatesOut{
		NewMessages:     make([]NewMessageOut, 0, len(newMsgs)),
		UpdatedMessages: make([]UpdatedMessageOut, 0, len(changed)),
		ServerTime:      float64(now.UnixMilli()) / 1000,
	}

	var toMarkRead []uint
	for _, msg := range newMsgs {
		out.NewMessages = append(out.NewMessages, NewMessageOut{
			ID:        msg.ID,
			SenderID:  msg.SenderID,
			Content:   msg.Content,
			Time:      msg.CreatedAt.Format("15:04"),
			IsMe:      msg.SenderID == userID,
			IsDeleted: msg.IsDeletedEveryone,
		})
		if msg.SenderID != userID && !msg.IsRead {
			toMarkRead = append(toMarkRead, msg.ID)
		}
	}
	if err := s.Repo.MarkReadByIDs(toMarkRead); err != nil {
		return nil, err
	}

	for _, msg := range changed {
		out.UpdatedMessages = append(out.UpdatedMessages, UpdatedMessageOut{
			ID:        msg.ID,
			Content:   msg.Content,
			IsDeleted: msg.IsDeletedEveryone,
			IsEdited:  msg.IsEdited,
		})
	}
	return out, nil
}

// PickSupportAgent selects one active admin (or superuser) uniformly at
// random. Consecutive inquiries may land on different agents; there is
// deliberately no session affinity.
func (s *ChatService) PickSupportAgent() (*entity.User, error) {
	staff, err := s.UserRepo.ListActiveStaff()
	if err != nil {
		return nil, err
	}
	if len(staff) == 0 {
		return nil, errors.New("no support agents are currently available")
	}
	return &staff[rand.Intn(len(staff))], nil
}

type GuestInquiry struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Country string `json:"country"`
	Body    string `json:"body" binding:"required"`
}

// SubmitGuestInquiry routes an anonymous contact-form submission into
// chat: the shared guest account sends a formatted message to one
// randomly chosen support agent, who is notified like any other chat
// recipient.
func (s *ChatService) SubmitGuestInquiry(in *GuestInquiry) (*entity.Message, error) {
	guest, err := s.UserRepo.GetOrCreateGuest()
	if err != nil {
		return nil, err
	}
	agent, err := s.PickSupportAgent()
	if err != nil {
		return nil, err
	}

	room, err := s.ResolveRoom(guest.ID, agent.ID)
	if err != nil {
		return nil, err
	}

	content := fmt.Sprintf(
		"NEW CONTACT INQUIRY\nName: %s\nEmail: %s\nPhone: %s\nCountry: %s\n----------------------\n%s",
		in.Name, in.Email, in.Phone, in.Country, in.Body,
	)

	msg := &entity.Message{RoomID: room.ID, SenderID: guest.ID, Content: content}
	if err := s.Repo.CreateMessage(msg); err != nil {
		return nil, err
	}
	if err := s.Repo.TouchRoom(room.ID); err != nil {
		return nil, err
	}
	if err := s.Notifier.MessageCreated(msg, room, guest.Username); err != nil {
		return nil, err
	}
	return msg, nil
}
