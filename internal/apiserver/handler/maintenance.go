package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rentport/rentport/internal/storage"
)

type Maintenance struct {
	store storage.Store
}

func NewMaintenance(store storage.Store) *Maintenance {
	return &Maintenance{store: store}
}

func (h *Maintenance) HandleAdd(c *gin.Context) {
	var m storage.MaintenanceRequest
	if err := c.ShouldBindJSON(&m); err != nil {
		badRequest(c, err)
		return
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Status == "" {
		m.Status = "open"
	}
	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = now
	}

	out, err := h.store.AddMaintenanceRequest(c.Request.Context(), &m)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, out)
}

func (h *Maintenance) HandleListByTenant(c *gin.Context) {
	recs, err := h.store.ListMaintenanceByTenant(c.Request.Context(), c.Param("tenantId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, recs)
}

func (h *Maintenance) HandleListByLandlord(c *gin.Context) {
	recs, err := h.store.ListMaintenanceByLandlord(c.Request.Context(), c.Param("landlordId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, recs)
}

func (h *Maintenance) HandleGet(c *gin.Context) {
	m, err := h.store.GetMaintenanceRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	notFoundOr(c, m, m == nil)
}

func (h *Maintenance) HandleUpdate(c *gin.Context) {
	var patch storage.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}

	m, err := h.store.UpdateMaintenanceRequest(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		fail(c, err)
		return
	}
	notFoundOr(c, m, m == nil)
}
