package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rentport/rentport/internal/apiserver/middleware"
	"github.com/rentport/rentport/internal/storage"
)

type Property struct {
	store storage.Store
}

func NewProperty(store storage.Store) *Property {
	return &Property{store: store}
}

func (h *Property) HandleList(c *gin.Context) {
	props, err := h.store.ListProperties(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, props)
}

func (h *Property) HandleListMine(c *gin.Context) {
	props, err := h.store.ListPropertiesByLandlord(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, props)
}

func (h *Property) HandleGet(c *gin.Context) {
	p, err := h.store.GetProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	notFoundOr(c, p, p == nil)
}

func (h *Property) HandleAdd(c *gin.Context) {
	var p storage.Property
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.LandlordID == "" {
		p.LandlordID = middleware.CallerID(c)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	out, err := h.store.AddProperty(c.Request.Context(), &p)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, out)
}

func (h *Property) HandleUpdate(c *gin.Context) {
	var patch storage.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}

	p, err := h.store.UpdateProperty(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		fail(c, err)
		return
	}
	notFoundOr(c, p, p == nil)
}

func (h *Property) HandleDelete(c *gin.Context) {
	if err := h.store.DeleteProperty(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"deleted": true})
}
