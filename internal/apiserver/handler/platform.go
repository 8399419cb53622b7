package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentport/rentport/internal/apiserver/middleware"
	"github.com/rentport/rentport/internal/notify"
	"github.com/rentport/rentport/internal/storage"
	"github.com/rentport/rentport/pkg/version"
)

type Platform struct {
	store   storage.Store
	trigger *notify.Trigger
}

func NewPlatform(store storage.Store, trigger *notify.Trigger) *Platform {
	return &Platform{store: store, trigger: trigger}
}

// HandleStats returns the aggregate dashboard counts along with the
// current durability of the backing store, so the UI can warn when writes
// are only reaching the in-memory cache.
func (h *Platform) HandleStats(c *gin.Context) {
	stats, err := h.store.GetPlatformStats(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{
		"stats":      stats,
		"durability": h.store.Durability(c.Request.Context()),
	})
}

// HandleRunAlerts runs the notification triggers for the calling landlord.
// Invoked by the dashboard on load; there is no background scheduler.
func (h *Platform) HandleRunAlerts(c *gin.Context) {
	if err := h.trigger.RunForLandlord(c.Request.Context(), middleware.CallerID(c)); err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"ran": true})
}

func (h *Platform) HandleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version.Get()})
}
