package storage

import (
	"time"

	"github.com/rentport/rentport/internal/common/cnst"
)

// NotificationSettings holds per-channel notification preferences
type NotificationSettings struct {
	Email     bool `json:"email"`
	SMS       bool `json:"sms"`
	RentAlert bool `json:"rentAlert"`
	Marketing bool `json:"marketing"`
}

// PortalSettings holds tenant/landlord portal display preferences
type PortalSettings struct {
	Language string `json:"language,omitempty"`
	Theme    string `json:"theme,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

// SecuritySettings holds account security preferences
type SecuritySettings struct {
	TwoFactor    bool `json:"twoFactor"`
	LoginAlerts  bool `json:"loginAlerts"`
	SessionHours int  `json:"sessionHours,omitempty"`
}

// FinancialSettings holds billing preferences
type FinancialSettings struct {
	Currency  string `json:"currency,omitempty"`
	AutoPay   bool   `json:"autoPay"`
	DueDay    int    `json:"dueDay,omitempty"`
	LateFee   int    `json:"lateFee,omitempty"`
	Reminders bool   `json:"reminders"`
}

// IntegrationSettings holds external service preferences
type IntegrationSettings struct {
	CalendarSync bool   `json:"calendarSync"`
	ExportFormat string `json:"exportFormat,omitempty"`
}

// UserSettings groups the nested preference sub-objects. Partial updates
// merge into the existing sub-objects; they never replace them wholesale.
type UserSettings struct {
	Notifications *NotificationSettings `json:"notifications,omitempty"`
	Portal        *PortalSettings       `json:"portal,omitempty"`
	Security      *SecuritySettings     `json:"security,omitempty"`
	Financial     *FinancialSettings    `json:"financial,omitempty"`
	Integrations  *IntegrationSettings  `json:"integrations,omitempty"`
}

// User represents a platform account. Email is unique and normalized
// (lower-cased, trimmed) at lookup time, not at rest.
type User struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone,omitempty"`
	Role      cnst.UserRole   `json:"role"`
	Status    cnst.UserStatus `json:"status"`
	AvatarURL string          `json:"avatarUrl,omitempty"`
	Settings  *UserSettings   `json:"settings,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Property represents a rental property owned by exactly one landlord
type Property struct {
	ID            string    `json:"id"`
	LandlordID    string    `json:"landlordId"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Units         int       `json:"units"`
	OccupiedUnits int       `json:"occupiedUnits"`
	Rent          float64   `json:"rent,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// VerificationRequest is a tenant's application to a landlord. A tenant may
// accumulate many over time; the one with the greatest SubmittedAt is current.
type VerificationRequest struct {
	ID             string             `json:"id"`
	TenantID       string             `json:"tenantId"`
	LandlordID     string             `json:"landlordId"`
	PropertyID     string             `json:"propertyId,omitempty"`
	Status         cnst.RequestStatus `json:"status"`
	Remarks        string             `json:"remarks,omitempty"`
	JoiningDate    string             `json:"joiningDate,omitempty"`
	RentNotes      string             `json:"rentNotes,omitempty"`
	UtilityDetails string             `json:"utilityDetails,omitempty"`
	SubmittedAt    time.Time          `json:"submittedAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
	VerifiedAt     *time.Time         `json:"verifiedAt,omitempty"`
}

// TenantStay links a tenant, a landlord and a property. At most one stay
// per tenant has status ACTIVE at any time.
type TenantStay struct {
	ID          string          `json:"id"`
	TenantID    string          `json:"tenantId"`
	LandlordID  string          `json:"landlordId"`
	PropertyID  string          `json:"propertyId"`
	Status      cnst.StayStatus `json:"status"`
	JoinDate    time.Time       `json:"joinDate"`
	MoveOutDate *time.Time      `json:"moveOutDate,omitempty"`
	LeaseEnd    *time.Time      `json:"leaseEnd,omitempty"`
	RentDueDay  int             `json:"rentDueDay,omitempty"`
}

// Bill belongs to a tenant/landlord/stay triple
type Bill struct {
	ID         string          `json:"id"`
	StayID     string          `json:"stayId,omitempty"`
	TenantID   string          `json:"tenantId"`
	LandlordID string          `json:"landlordId"`
	Amount     float64         `json:"amount"`
	Category   string          `json:"category,omitempty"`
	Status     cnst.BillStatus `json:"status"`
	DueDate    time.Time       `json:"dueDate"`
	PaidAt     *time.Time      `json:"paidAt,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Document is a stored file reference scoped to a tenant, a landlord, or both
type Document struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenantId,omitempty"`
	LandlordID string    `json:"landlordId,omitempty"`
	Name       string    `json:"name"`
	URL        string    `json:"url,omitempty"`
	Category   string    `json:"category,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Message is a directed message between two users
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Content    string    `json:"content"`
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Notification is addressed to one user. The tuple (type, title, message,
// userId) is the idempotency key the trigger service dedupes on.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// Review is left by one user about another
type Review struct {
	ID         string    `json:"id"`
	ReviewerID string    `json:"reviewerId"`
	RevieweeID string    `json:"revieweeId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MaintenanceRequest is filed by a tenant against a landlord's property
type MaintenanceRequest struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenantId"`
	LandlordID string    `json:"landlordId"`
	PropertyID string    `json:"propertyId,omitempty"`
	Title      string    `json:"title"`
	Detail     string    `json:"detail,omitempty"`
	Priority   string    `json:"priority,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SupportTicket is filed by a landlord against the platform
type SupportTicket struct {
	ID         string    `json:"id"`
	LandlordID string    `json:"landlordId"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SupportArticle is a built-in or authored help article
type SupportArticle struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category,omitempty"`
}

// Announcement is a platform-wide notice
type Announcement struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Body    string    `json:"body,omitempty"`
	Date    time.Time `json:"date"`
	Author  string    `json:"author,omitempty"`
	Pinned  bool      `json:"pinned,omitempty"`
	Expires time.Time `json:"expires,omitzero"`
}

// History is an event in a tenant's record, consumed by the trust-score
// and stay-duration helpers
type History struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenantId"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
}

// LandlordTenant is the joined view of an active stay with the referenced
// tenant and property names resolved
type LandlordTenant struct {
	Stay         *TenantStay `json:"stay"`
	TenantName   string      `json:"tenantName"`
	TenantEmail  string      `json:"tenantEmail"`
	PropertyName string      `json:"propertyName"`
}

// LandlordRef is the id+name projection of a landlord account
type LandlordRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PlatformStats is the aggregate dashboard view. Counts come from
// backend-native counting where the backend supports it.
type PlatformStats struct {
	Users           int64   `json:"users"`
	Properties      int64   `json:"properties"`
	OpenTickets     int64   `json:"openTickets"`
	PendingRequests int64   `json:"pendingRequests"`
	PaidRevenue     float64 `json:"paidRevenue"`
}
