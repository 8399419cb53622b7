package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rentport/rentport/internal/apiserver/middleware"
	"github.com/rentport/rentport/internal/common/cnst"
	"github.com/rentport/rentport/internal/storage"
)

type Notification struct {
	store storage.Store
}

func NewNotification(store storage.Store) *Notification {
	return &Notification{store: store}
}

func (h *Notification) HandleListMine(c *gin.Context) {
	notes, err := h.store.ListNotificationsByUser(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, notes)
}

func (h *Notification) HandleAdd(c *gin.Context) {
	var n storage.Notification
	if err := c.ShouldBindJSON(&n); err != nil {
		badRequest(c, err)
		return
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Type == "" {
		n.Type = cnst.NotifyGeneral
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	out, err := h.store.AddNotification(c.Request.Context(), &n)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, out)
}

func (h *Notification) HandleUpdate(c *gin.Context) {
	var patch storage.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}

	n, err := h.store.UpdateNotification(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		fail(c, err)
		return
	}
	notFoundOr(c, n, n == nil)
}

func (h *Notification) HandleMarkAllRead(c *gin.Context) {
	if err := h.store.MarkAllNotificationsRead(c.Request.Context(), middleware.CallerID(c)); err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"marked": true})
}
