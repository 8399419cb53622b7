package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rentport/rentport/internal/apiserver/middleware"
	"github.com/rentport/rentport/internal/common/cnst"
	"github.com/rentport/rentport/internal/derive"
	"github.com/rentport/rentport/internal/storage"
)

type Stay struct {
	store storage.Store
}

func NewStay(store storage.Store) *Stay {
	return &Stay{store: store}
}

func (h *Stay) HandleAdd(c *gin.Context) {
	var st storage.TenantStay
	if err := c.ShouldBindJSON(&st); err != nil {
		badRequest(c, err)
		return
	}
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	if st.Status == "" {
		st.Status = cnst.StayActive
	}
	if st.JoinDate.IsZero() {
		st.JoinDate = time.Now()
	}

	out, err := h.store.AddStay(c.Request.Context(), &st)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, out)
}

func (h *Stay) HandleActiveByTenant(c *gin.Context) {
	st, err := h.store.GetActiveStayByTenant(c.Request.Context(), c.Param("tenantId"))
	if err != nil {
		fail(c, err)
		return
	}
	notFoundOr(c, st, st == nil)
}

func (h *Stay) HandleEndByTenant(c *gin.Context) {
	st, err := h.store.EndActiveStayByTenant(c.Request.Context(), c.Param("tenantId"))
	if err != nil {
		fail(c, err)
		return
	}
	notFoundOr(c, st, st == nil)
}

// HandleListMine returns the landlord's current tenants with the stay
// duration bucket resolved per tenant
func (h *Stay) HandleListMine(c *gin.Context) {
	tenants, err := h.store.ListLandlordTenants(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		fail(c, err)
		return
	}

	type tenantView struct {
		*storage.LandlordTenant
		StayDuration string `json:"stayDuration"`
	}
	now := time.Now()
	views := make([]tenantView, 0, len(tenants))
	for _, lt := range tenants {
		views = append(views, tenantView{
			LandlordTenant: lt,
			StayDuration:   derive.StayDuration(lt.Stay.JoinDate, now),
		})
	}
	ok(c, views)
}
