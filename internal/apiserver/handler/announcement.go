package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rentport/rentport/internal/storage"
)

type Announcement struct {
	store storage.Store
}

func NewAnnouncement(store storage.Store) *Announcement {
	return &Announcement{store: store}
}

func (h *Announcement) HandleList(c *gin.Context) {
	items, err := h.store.ListAnnouncements(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, items)
}

func (h *Announcement) HandleAdd(c *gin.Context) {
	var a storage.Announcement
	if err := c.ShouldBindJSON(&a); err != nil {
		badRequest(c, err)
		return
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Date.IsZero() {
		a.Date = time.Now()
	}

	out, err := h.store.AddAnnouncement(c.Request.Context(), &a)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, out)
}
