package storage

import (
	"context"

	"github.com/rentport/rentport/internal/common/cnst"
)

// Durability reports whether writes are reaching durable storage or only
// the in-process cache. The flat-file backend degrades to DurabilityCache
// after its first failed save (read-only filesystem) and stays there for
// the process lifetime.
type Durability string

const (
	DurabilityDurable Durability = "durable"
	DurabilityCache   Durability = "cache-only"
)

// Patch is a partial update applied as a field-level merge. Nested objects
// merge key-by-key into the stored sub-object; top-level fields replace.
type Patch = map[string]any

// RequestStatusUpdate carries the optional fields the compound status
// transition may merge alongside the new status.
type RequestStatusUpdate struct {
	Remarks        *string
	JoiningDate    *string
	RentNotes      *string
	UtilityDetails *string
}

// Store is the persistence facade. Every caller holds this interface; the
// backend is selected once at construction and never per call.
//
// Contract shared by all implementations: single-record lookups return
// (nil, nil) when nothing matches, collection lookups return an empty
// slice; updates are merges against an existing record and return
// (nil, nil) when the id does not exist (never upsert); every mutation
// echoes the resulting record so callers need no follow-up read.
type Store interface {
	// Users
	ListUsers(ctx context.Context) ([]*User, error)
	AddUser(ctx context.Context, u *User) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
	ListLandlords(ctx context.Context) ([]*LandlordRef, error)
	UpdateUser(ctx context.Context, id string, patch Patch) (*User, error)

	// Properties
	GetProperty(ctx context.Context, id string) (*Property, error)
	ListProperties(ctx context.Context) ([]*Property, error)
	ListPropertiesByLandlord(ctx context.Context, landlordID string) ([]*Property, error)
	AddProperty(ctx context.Context, p *Property) (*Property, error)
	UpdateProperty(ctx context.Context, id string, patch Patch) (*Property, error)
	DeleteProperty(ctx context.Context, id string) error

	// Verification requests
	ListRequests(ctx context.Context) ([]*VerificationRequest, error)
	GetLatestRequestByTenant(ctx context.Context, tenantID string) (*VerificationRequest, error)
	GetRequest(ctx context.Context, id string) (*VerificationRequest, error)
	AddRequest(ctx context.Context, r *VerificationRequest) (*VerificationRequest, error)
	UpdateRequest(ctx context.Context, id string, patch Patch) (*VerificationRequest, error)
	UpdateRequestStatus(ctx context.Context, id string, status cnst.RequestStatus, upd RequestStatusUpdate) (*VerificationRequest, error)

	// History
	AddHistory(ctx context.Context, h *History) (*History, error)
	ListHistoryByTenant(ctx context.Context, tenantID string) ([]*History, error)

	// Notifications
	ListNotificationsByUser(ctx context.Context, userID string) ([]*Notification, error)
	AddNotification(ctx context.Context, n *Notification) (*Notification, error)
	UpdateNotification(ctx context.Context, id string, patch Patch) (*Notification, error)
	MarkAllNotificationsRead(ctx context.Context, userID string) error

	// Tenant stays
	AddStay(ctx context.Context, s *TenantStay) (*TenantStay, error)
	GetActiveStayByTenant(ctx context.Context, tenantID string) (*TenantStay, error)
	EndActiveStayByTenant(ctx context.Context, tenantID string) (*TenantStay, error)
	ListLandlordTenants(ctx context.Context, landlordID string) ([]*LandlordTenant, error)

	// Bills
	AddBill(ctx context.Context, b *Bill) (*Bill, error)
	ListBillsByLandlord(ctx context.Context, landlordID string) ([]*Bill, error)
	ListBillsByTenant(ctx context.Context, tenantID string) ([]*Bill, error)
	MarkBillPaid(ctx context.Context, id string) (*Bill, error)
	DeleteBill(ctx context.Context, id string) error

	// Documents
	ListDocumentsByUser(ctx context.Context, userID string) ([]*Document, error)
	ListDocumentsByLandlord(ctx context.Context, landlordID string) ([]*Document, error)
	ListDocumentsByTenant(ctx context.Context, tenantID string) ([]*Document, error)
	GetDocument(ctx context.Context, id string) (*Document, error)
	AddDocument(ctx context.Context, d *Document) (*Document, error)
	DeleteDocument(ctx context.Context, id string) error

	// Messages
	AddMessage(ctx context.Context, m *Message) (*Message, error)
	ListMessagesBetween(ctx context.Context, userA, userB string) ([]*Message, error)
	ListMessagesForUser(ctx context.Context, userID string) ([]*Message, error)
	MarkMessagesRead(ctx context.Context, senderID, receiverID string) error
	CountUnreadForUser(ctx context.Context, userID string) (int, error)
	CountUnreadBySender(ctx context.Context, userID string) (map[string]int, error)

	// Maintenance
	AddMaintenanceRequest(ctx context.Context, m *MaintenanceRequest) (*MaintenanceRequest, error)
	ListMaintenanceByTenant(ctx context.Context, tenantID string) ([]*MaintenanceRequest, error)
	ListMaintenanceByLandlord(ctx context.Context, landlordID string) ([]*MaintenanceRequest, error)
	GetMaintenanceRequest(ctx context.Context, id string) (*MaintenanceRequest, error)
	UpdateMaintenanceRequest(ctx context.Context, id string, patch Patch) (*MaintenanceRequest, error)

	// Reviews
	ListReviewsByReviewee(ctx context.Context, revieweeID string) ([]*Review, error)
	ListReviews(ctx context.Context) ([]*Review, error)
	AddReview(ctx context.Context, r *Review) (*Review, error)

	// Support
	ListSupportArticles(ctx context.Context) ([]*SupportArticle, error)
	AddSupportTicket(ctx context.Context, t *SupportTicket) (*SupportTicket, error)
	ListTicketsByLandlord(ctx context.Context, landlordID string) ([]*SupportTicket, error)
	ListTickets(ctx context.Context) ([]*SupportTicket, error)
	GetTicket(ctx context.Context, id string) (*SupportTicket, error)
	UpdateTicket(ctx context.Context, id string, patch Patch) (*SupportTicket, error)

	// Announcements
	ListAnnouncements(ctx context.Context) ([]*Announcement, error)
	AddAnnouncement(ctx context.Context, a *Announcement) (*Announcement, error)

	// Aggregates
	GetPlatformStats(ctx context.Context) (*PlatformStats, error)

	// SeedSupportArticles inserts the built-in help articles when the
	// collection is empty. Explicit startup bootstrap, idempotent.
	SeedSupportArticles(ctx context.Context) error

	// Durability reports whether writes are currently durable
	Durability(ctx context.Context) Durability

	// Close releases backend resources
	Close() error
}
