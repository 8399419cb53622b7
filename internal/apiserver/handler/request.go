package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rentport/rentport/internal/common/cnst"
	"github.com/rentport/rentport/internal/storage"
)

type Request struct {
	store storage.Store
}

func NewRequest(store storage.Store) *Request {
	return &Request{store: store}
}

func (h *Request) HandleList(c *gin.Context) {
	reqs, err := h.store.ListRequests(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, reqs)
}

func (h *Request) HandleGet(c *gin.Context) {
	r, err := h.store.GetRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	notFoundOr(c, r, r == nil)
}

func (h *Request) HandleLatestByTenant(c *gin.Context) {
	r, err := h.store.GetLatestRequestByTenant(c.Request.Context(), c.Param("tenantId"))
	if err != nil {
		fail(c, err)
		return
	}
	notFoundOr(c, r, r == nil)
}

func (h *Request) HandleAdd(c *gin.Context) {
	var r storage.VerificationRequest
	if err := c.ShouldBindJSON(&r); err != nil {
		badRequest(c, err)
		return
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Status == "" {
		r.Status = cnst.RequestPending
	}
	now := time.Now()
	if r.SubmittedAt.IsZero() {
		r.SubmittedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}

	out, err := h.store.AddRequest(c.Request.Context(), &r)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, out)
}

func (h *Request) HandleUpdate(c *gin.Context) {
	var patch storage.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}

	r, err := h.store.UpdateRequest(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		fail(c, err)
		return
	}
	notFoundOr(c, r, r == nil)
}

type statusUpdateBody struct {
	Status         cnst.RequestStatus `json:"status" binding:"required"`
	Remarks        *string            `json:"remarks"`
	JoiningDate    *string            `json:"joiningDate"`
	RentNotes      *string            `json:"rentNotes"`
	UtilityDetails *string            `json:"utilityDetails"`
}

func (h *Request) HandleUpdateStatus(c *gin.Context) {
	var body statusUpdateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}

	r, err := h.store.UpdateRequestStatus(c.Request.Context(), c.Param("id"), body.Status, storage.RequestStatusUpdate{
		Remarks:        body.Remarks,
		JoiningDate:    body.JoiningDate,
		RentNotes:      body.RentNotes,
		UtilityDetails: body.UtilityDetails,
	})
	if err != nil {
		fail(c, err)
		return
	}
	notFoundOr(c, r, r == nil)
}
