package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rentport/rentport/internal/apiserver/middleware"
	"github.com/rentport/rentport/internal/storage"
)

type Review struct {
	store storage.Store
}

func NewReview(store storage.Store) *Review {
	return &Review{store: store}
}

func (h *Review) HandleList(c *gin.Context) {
	reviews, err := h.store.ListReviews(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, reviews)
}

func (h *Review) HandleListByReviewee(c *gin.Context) {
	reviews, err := h.store.ListReviewsByReviewee(c.Request.Context(), c.Param("userId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, reviews)
}

func (h *Review) HandleAdd(c *gin.Context) {
	var r storage.Review
	if err := c.ShouldBindJSON(&r); err != nil {
		badRequest(c, err)
		return
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.ReviewerID == "" {
		r.ReviewerID = middleware.CallerID(c)
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	out, err := h.store.AddReview(c.Request.Context(), &r)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, out)
}
