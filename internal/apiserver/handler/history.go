package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rentport/rentport/internal/derive"
	"github.com/rentport/rentport/internal/storage"
)

type History struct {
	store storage.Store
}

func NewHistory(store storage.Store) *History {
	return &History{store: store}
}

func (h *History) HandleAdd(c *gin.Context) {
	var rec storage.History
	if err := c.ShouldBindJSON(&rec); err != nil {
		badRequest(c, err)
		return
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Date.IsZero() {
		rec.Date = time.Now()
	}

	out, err := h.store.AddHistory(c.Request.Context(), &rec)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, out)
}

func (h *History) HandleListByTenant(c *gin.Context) {
	recs, err := h.store.ListHistoryByTenant(c.Request.Context(), c.Param("tenantId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, recs)
}

// HandleTrustScore computes the tenant's trust score from their history
func (h *History) HandleTrustScore(c *gin.Context) {
	recs, err := h.store.ListHistoryByTenant(c.Request.Context(), c.Param("tenantId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"tenantId": c.Param("tenantId"), "score": derive.TrustScore(recs)})
}
