package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rentport/rentport/internal/apiserver/middleware"
	"github.com/rentport/rentport/internal/storage"
)

type Support struct {
	store storage.Store
}

func NewSupport(store storage.Store) *Support {
	return &Support{store: store}
}

func (h *Support) HandleListArticles(c *gin.Context) {
	articles, err := h.store.ListSupportArticles(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, articles)
}

func (h *Support) HandleAddTicket(c *gin.Context) {
	var t storage.SupportTicket
	if err := c.ShouldBindJSON(&t); err != nil {
		badRequest(c, err)
		return
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.LandlordID == "" {
		t.LandlordID = middleware.CallerID(c)
	}
	if t.Status == "" {
		t.Status = "open"
	}
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	out, err := h.store.AddSupportTicket(c.Request.Context(), &t)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, out)
}

func (h *Support) HandleListTickets(c *gin.Context) {
	tickets, err := h.store.ListTickets(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, tickets)
}

func (h *Support) HandleListMyTickets(c *gin.Context) {
	tickets, err := h.store.ListTicketsByLandlord(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, tickets)
}

func (h *Support) HandleGetTicket(c *gin.Context) {
	t, err := h.store.GetTicket(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	notFoundOr(c, t, t == nil)
}

func (h *Support) HandleUpdateTicket(c *gin.Context) {
	var patch storage.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}

	t, err := h.store.UpdateTicket(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		fail(c, err)
		return
	}
	notFoundOr(c, t, t == nil)
}
