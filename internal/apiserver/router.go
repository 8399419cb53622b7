// Package apiserver wires the HTTP surface over the persistence facade.
package apiserver

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/rentport/rentport/internal/apiserver/handler"
	"github.com/rentport/rentport/internal/apiserver/middleware"
	"github.com/rentport/rentport/internal/common/config"
	"github.com/rentport/rentport/internal/notify"
	"github.com/rentport/rentport/internal/storage"
	"github.com/rentport/rentport/pkg/metrics"
)

// NewRouter builds the gin engine with all entity routes registered
func NewRouter(logger *zap.Logger, cfg *config.Config, store storage.Store, trigger *notify.Trigger, m *metrics.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.AccessLog(logger))
	if cfg.Trace.Enabled {
		router.Use(otelgin.Middleware(cfg.Trace.ServiceName))
	}
	if cfg.Metrics.Enabled && m != nil {
		router.Use(m.Middleware())
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	platform := handler.NewPlatform(store, trigger)
	router.GET("/healthz", platform.HandleHealthz)

	users := handler.NewUser(store)
	props := handler.NewProperty(store)
	reqs := handler.NewRequest(store)
	stays := handler.NewStay(store)
	bills := handler.NewBill(store)
	docs := handler.NewDocument(store)
	msgs := handler.NewMessage(store)
	notes := handler.NewNotification(store)
	maint := handler.NewMaintenance(store)
	reviews := handler.NewReview(store)
	support := handler.NewSupport(store)
	ann := handler.NewAnnouncement(store)
	hist := handler.NewHistory(store)

	// Registration happens before a caller has an account
	router.POST("/api/users", users.HandleAdd)
	router.GET("/api/users/lookup", users.HandleFindByEmail)

	api := router.Group("/api", middleware.RequireUser(store))
	{
		api.GET("/users", users.HandleList)
		api.GET("/users/landlords", users.HandleListLandlords)
		api.GET("/users/:id", users.HandleGet)
		api.PATCH("/users/:id", users.HandleUpdate)

		api.GET("/properties", props.HandleList)
		api.GET("/properties/mine", props.HandleListMine)
		api.GET("/properties/:id", props.HandleGet)
		api.POST("/properties", props.HandleAdd)
		api.PATCH("/properties/:id", props.HandleUpdate)
		api.DELETE("/properties/:id", props.HandleDelete)

		api.GET("/requests", reqs.HandleList)
		api.GET("/requests/latest/:tenantId", reqs.HandleLatestByTenant)
		api.GET("/requests/:id", reqs.HandleGet)
		api.POST("/requests", reqs.HandleAdd)
		api.PATCH("/requests/:id", reqs.HandleUpdate)
		api.POST("/requests/:id/status", reqs.HandleUpdateStatus)

		api.POST("/stays", stays.HandleAdd)
		api.GET("/stays/active/:tenantId", stays.HandleActiveByTenant)
		api.POST("/stays/end/:tenantId", stays.HandleEndByTenant)
		api.GET("/stays/tenants", stays.HandleListMine)

		api.POST("/bills", bills.HandleAdd)
		api.GET("/bills/landlord/:landlordId", bills.HandleListByLandlord)
		api.GET("/bills/tenant/:tenantId", bills.HandleListByTenant)
		api.POST("/bills/:id/pay", bills.HandleMarkPaid)
		api.DELETE("/bills/:id", bills.HandleDelete)

		api.GET("/documents", docs.HandleListMine)
		api.GET("/documents/landlord/:landlordId", docs.HandleListByLandlord)
		api.GET("/documents/tenant/:tenantId", docs.HandleListByTenant)
		api.GET("/documents/:id", docs.HandleGet)
		api.POST("/documents", docs.HandleAdd)
		api.DELETE("/documents/:id", docs.HandleDelete)

		api.POST("/messages", msgs.HandleSend)
		api.GET("/messages", msgs.HandleListMine)
		api.GET("/messages/with/:userId", msgs.HandleConversation)
		api.POST("/messages/read/:userId", msgs.HandleMarkRead)
		api.GET("/messages/unread", msgs.HandleUnreadCount)
		api.GET("/messages/unread/by-sender", msgs.HandleUnreadBySender)

		api.GET("/notifications", notes.HandleListMine)
		api.POST("/notifications", notes.HandleAdd)
		api.PATCH("/notifications/:id", notes.HandleUpdate)
		api.POST("/notifications/read-all", notes.HandleMarkAllRead)

		api.POST("/maintenance", maint.HandleAdd)
		api.GET("/maintenance/tenant/:tenantId", maint.HandleListByTenant)
		api.GET("/maintenance/landlord/:landlordId", maint.HandleListByLandlord)
		api.GET("/maintenance/:id", maint.HandleGet)
		api.PATCH("/maintenance/:id", maint.HandleUpdate)

		api.GET("/reviews", reviews.HandleList)
		api.GET("/reviews/user/:userId", reviews.HandleListByReviewee)
		api.POST("/reviews", reviews.HandleAdd)

		api.GET("/support/articles", support.HandleListArticles)
		api.POST("/support/tickets", support.HandleAddTicket)
		api.GET("/support/tickets", support.HandleListTickets)
		api.GET("/support/tickets/mine", support.HandleListMyTickets)
		api.GET("/support/tickets/:id", support.HandleGetTicket)
		api.PATCH("/support/tickets/:id", support.HandleUpdateTicket)

		api.GET("/announcements", ann.HandleList)
		api.POST("/announcements", ann.HandleAdd)

		api.POST("/history", hist.HandleAdd)
		api.GET("/history/:tenantId", hist.HandleListByTenant)
		api.GET("/history/:tenantId/trust", hist.HandleTrustScore)

		api.GET("/stats", platform.HandleStats)
		api.POST("/system/alerts", platform.HandleRunAlerts)
	}

	return router
}
