package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rentport/rentport/internal/apiserver/middleware"
	"github.com/rentport/rentport/internal/storage"
)

type Message struct {
	store storage.Store
}

func NewMessage(store storage.Store) *Message {
	return &Message{store: store}
}

func (h *Message) HandleSend(c *gin.Context) {
	var m storage.Message
	if err := c.ShouldBindJSON(&m); err != nil {
		badRequest(c, err)
		return
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.SenderID == "" {
		m.SenderID = middleware.CallerID(c)
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	out, err := h.store.AddMessage(c.Request.Context(), &m)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, out)
}

// HandleConversation returns both directions between the caller and the
// other user, oldest first
func (h *Message) HandleConversation(c *gin.Context) {
	msgs, err := h.store.ListMessagesBetween(c.Request.Context(), middleware.CallerID(c), c.Param("userId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, msgs)
}

func (h *Message) HandleListMine(c *gin.Context) {
	msgs, err := h.store.ListMessagesForUser(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, msgs)
}

// HandleMarkRead marks everything the given user sent to the caller as read
func (h *Message) HandleMarkRead(c *gin.Context) {
	if err := h.store.MarkMessagesRead(c.Request.Context(), c.Param("userId"), middleware.CallerID(c)); err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"marked": true})
}

func (h *Message) HandleUnreadCount(c *gin.Context) {
	count, err := h.store.CountUnreadForUser(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"unread": count})
}

func (h *Message) HandleUnreadBySender(c *gin.Context) {
	counts, err := h.store.CountUnreadBySender(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, counts)
}
