package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rentport/rentport/internal/apiserver/middleware"
	"github.com/rentport/rentport/internal/storage"
)

type Document struct {
	store storage.Store
}

func NewDocument(store storage.Store) *Document {
	return &Document{store: store}
}

// HandleListMine returns every document visible to the caller, whether
// they appear as its tenant or its landlord
func (h *Document) HandleListMine(c *gin.Context) {
	docs, err := h.store.ListDocumentsByUser(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, docs)
}

func (h *Document) HandleListByLandlord(c *gin.Context) {
	docs, err := h.store.ListDocumentsByLandlord(c.Request.Context(), c.Param("landlordId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, docs)
}

func (h *Document) HandleListByTenant(c *gin.Context) {
	docs, err := h.store.ListDocumentsByTenant(c.Request.Context(), c.Param("tenantId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, docs)
}

func (h *Document) HandleGet(c *gin.Context) {
	d, err := h.store.GetDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	notFoundOr(c, d, d == nil)
}

func (h *Document) HandleAdd(c *gin.Context) {
	var d storage.Document
	if err := c.ShouldBindJSON(&d); err != nil {
		badRequest(c, err)
		return
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.UploadedAt.IsZero() {
		d.UploadedAt = time.Now()
	}

	out, err := h.store.AddDocument(c.Request.Context(), &d)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, out)
}

func (h *Document) HandleDelete(c *gin.Context) {
	if err := h.store.DeleteDocument(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"deleted": true})
}
