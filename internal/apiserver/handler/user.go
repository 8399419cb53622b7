package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rentport/rentport/internal/storage"
)

type User struct {
	store storage.Store
}

func NewUser(store storage.Store) *User {
	return &User{store: store}
}

func (h *User) HandleList(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, users)
}

func (h *User) HandleAdd(c *gin.Context) {
	var u storage.User
	if err := c.ShouldBindJSON(&u); err != nil {
		badRequest(c, err)
		return
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}

	out, err := h.store.AddUser(c.Request.Context(), &u)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, out)
}

func (h *User) HandleGet(c *gin.Context) {
	u, err := h.store.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	notFoundOr(c, u, u == nil)
}

func (h *User) HandleFindByEmail(c *gin.Context) {
	u, err := h.store.GetUserByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		fail(c, err)
		return
	}
	notFoundOr(c, u, u == nil)
}

func (h *User) HandleListLandlords(c *gin.Context) {
	refs, err := h.store.ListLandlords(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, refs)
}

func (h *User) HandleUpdate(c *gin.Context) {
	var patch storage.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}

	u, err := h.store.UpdateUser(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		fail(c, err)
		return
	}
	notFoundOr(c, u, u == nil)
}
