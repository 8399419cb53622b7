package derive

import (
	"fmt"
	"time"

	"github.com/rentport/rentport/internal/common/cnst"
	"github.com/rentport/rentport/internal/storage"
)

// Alert is a date-driven fact with a derived idempotency key. The key
// doubles as the Notification id, so "already emitted" is an id-existence
// check against the user's notifications.
type Alert struct {
	Key     string
	UserID  string
	Type    string
	Title   string
	Message string
}

// BillingCycleAlert fires once per calendar month per landlord; the key
// carries month and year so a month boundary re-arms it.
func BillingCycleAlert(landlordID string, now time.Time) Alert {
	return Alert{
		Key:     fmt.Sprintf("billing-cycle-%s-%s", landlordID, now.Format("2006-01")),
		UserID:  landlordID,
		Type:    cnst.NotifyBillingCycle,
		Title:   "New billing cycle",
		Message: fmt.Sprintf("A new billing cycle started for %s.", now.Format("January 2006")),
	}
}

// AnniversaryAlert fires once per tenant per year on the join date's
// month and day; nil on every other day.
func AnniversaryAlert(stay *storage.TenantStay, now time.Time) *Alert {
	if stay.JoinDate.Month() != now.Month() || stay.JoinDate.Day() != now.Day() {
		return nil
	}
	years := now.Year() - stay.JoinDate.Year()
	if years < 1 {
		return nil
	}
	return &Alert{
		Key:     fmt.Sprintf("anniversary-%s-%d", stay.TenantID, now.Year()),
		UserID:  stay.LandlordID,
		Type:    cnst.NotifyAnniversary,
		Title:   "Tenant anniversary",
		Message: fmt.Sprintf("A tenant reaches %s with you today.", StayDuration(stay.JoinDate, now)),
	}
}

// ToNotification converts an alert into the record the trigger service
// persists. The derived key becomes the record id.
func (a Alert) ToNotification(now time.Time) *storage.Notification {
	return &storage.Notification{
		ID:        a.Key,
		UserID:    a.UserID,
		Type:      a.Type,
		Title:     a.Title,
		Message:   a.Message,
		CreatedAt: now,
	}
}
