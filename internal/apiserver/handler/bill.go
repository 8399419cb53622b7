package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rentport/rentport/internal/common/cnst"
	"github.com/rentport/rentport/internal/storage"
)

type Bill struct {
	store storage.Store
}

func NewBill(store storage.Store) *Bill {
	return &Bill{store: store}
}

func (h *Bill) HandleAdd(c *gin.Context) {
	var b storage.Bill
	if err := c.ShouldBindJSON(&b); err != nil {
		badRequest(c, err)
		return
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = cnst.BillPending
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}

	out, err := h.store.AddBill(c.Request.Context(), &b)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, out)
}

func (h *Bill) HandleListByLandlord(c *gin.Context) {
	bills, err := h.store.ListBillsByLandlord(c.Request.Context(), c.Param("landlordId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, bills)
}

func (h *Bill) HandleListByTenant(c *gin.Context) {
	bills, err := h.store.ListBillsByTenant(c.Request.Context(), c.Param("tenantId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, bills)
}

func (h *Bill) HandleMarkPaid(c *gin.Context) {
	b, err := h.store.MarkBillPaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	notFoundOr(c, b, b == nil)
}

func (h *Bill) HandleDelete(c *gin.Context) {
	if err := h.store.DeleteBill(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"deleted": true})
}
