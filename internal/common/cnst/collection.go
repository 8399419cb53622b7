package cnst

// Collection names shared by both storage backends. The flat-file backend
// uses them as top-level JSON keys, the remote backend as key prefixes.
const (
	ColUsers           = "users"
	ColProperties      = "properties"
	ColRequests        = "verificationRequests"
	ColStays           = "tenantStays"
	ColBills           = "bills"
	ColDocuments       = "documents"
	ColMessages        = "messages"
	ColNotifications   = "notifications"
	ColReviews         = "reviews"
	ColMaintenance     = "maintenanceRequests"
	ColSupportTickets  = "supportTickets"
	ColSupportArticles = "supportArticles"
	ColAnnouncements   = "announcements"
	ColHistory         = "history"
)

// Notification types emitted by the trigger service and alert helpers
const (
	NotifyLeaseExpiry  = "lease_expiry"
	NotifyRentDue      = "rent_due"
	NotifyAnniversary  = "anniversary"
	NotifyBillingCycle = "billing_cycle"
	NotifyGeneral      = "general"
)
