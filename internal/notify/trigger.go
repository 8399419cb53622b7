// Package notify converts time-based facts about stays and bills into
// Notification records. Triggers are invoked synchronously by whichever
// route happens to run them; there is no scheduler here.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rentport/rentport/internal/common/cnst"
	"github.com/rentport/rentport/internal/common/config"
	"github.com/rentport/rentport/internal/derive"
	"github.com/rentport/rentport/internal/storage"
)

// Trigger emits notifications through the facade with a best-effort
// duplicate guard: before writing, the target user's existing
// notifications are scanned for the same id (derived-key alerts) or the
// same unread (type, title, message) tuple. Read-then-write, so two
// concurrent triggers can still double-insert; accepted under the
// single-writer-per-process assumption.
type Trigger struct {
	store       storage.Store
	logger      *zap.Logger
	leaseWindow time.Duration
	rentWindow  time.Duration
	now         func() time.Time
}

func NewTrigger(logger *zap.Logger, store storage.Store, cfg *config.NotifyConfig) *Trigger {
	leaseDays := cfg.LeaseExpiryDays
	if leaseDays <= 0 {
		leaseDays = 30
	}
	rentDays := cfg.RentDueDays
	if rentDays <= 0 {
		rentDays = 3
	}
	return &Trigger{
		store:       store,
		logger:      logger.Named("notify"),
		leaseWindow: time.Duration(leaseDays) * 24 * time.Hour,
		rentWindow:  time.Duration(rentDays) * 24 * time.Hour,
		now:         time.Now,
	}
}

// RunForLandlord evaluates every trigger condition for one landlord's
// tenants. Idempotent: re-running without state changes emits nothing new.
func (t *Trigger) RunForLandlord(ctx context.Context, landlordID string) error {
	now := t.now()

	tenants, err := t.store.ListLandlordTenants(ctx, landlordID)
	if err != nil {
		return err
	}

	if err := t.emit(ctx, derive.BillingCycleAlert(landlordID, now).ToNotification(now)); err != nil {
		return err
	}

	for _, lt := range tenants {
		if err := t.checkLeaseExpiry(ctx, lt.Stay, now); err != nil {
			return err
		}
		if a := derive.AnniversaryAlert(lt.Stay, now); a != nil {
			if err := t.emit(ctx, a.ToNotification(now)); err != nil {
				return err
			}
		}
	}

	return t.checkRentDue(ctx, landlordID, now)
}

func (t *Trigger) checkLeaseExpiry(ctx context.Context, stay *storage.TenantStay, now time.Time) error {
	if stay.LeaseEnd == nil {
		return nil
	}
	until := stay.LeaseEnd.Sub(now)
	if until < 0 || until > t.leaseWindow {
		return nil
	}

	days := int(until.Hours() / 24)
	n := &storage.Notification{
		ID:        uuid.NewString(),
		UserID:    stay.LandlordID,
		Type:      cnst.NotifyLeaseExpiry,
		Title:     "Lease expiring soon",
		Message:   fmt.Sprintf("A lease at your property expires in %d days (%s).", days, stay.LeaseEnd.Format("2006-01-02")),
		CreatedAt: now,
	}
	return t.emit(ctx, n)
}

func (t *Trigger) checkRentDue(ctx context.Context, landlordID string, now time.Time) error {
	bills, err := t.store.ListBillsByLandlord(ctx, landlordID)
	if err != nil {
		return err
	}

	for _, b := range bills {
		if b.Status != cnst.BillPending {
			continue
		}
		until := b.DueDate.Sub(now)
		if until < 0 || until > t.rentWindow {
			continue
		}
		n := &storage.Notification{
			ID:        uuid.NewString(),
			UserID:    b.TenantID,
			Type:      cnst.NotifyRentDue,
			Title:     "Rent due soon",
			Message:   fmt.Sprintf("A payment of %.2f is due on %s.", b.Amount, b.DueDate.Format("2006-01-02")),
			CreatedAt: now,
		}
		if err := t.emit(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

// emit writes the notification unless an equivalent one already exists:
// same id, or an unread record with the same (type, title, message) for
// the same user.
func (t *Trigger) emit(ctx context.Context, n *storage.Notification) error {
	existing, err := t.store.ListNotificationsByUser(ctx, n.UserID)
	if err != nil {
		return err
	}
	for _, e := range existing {
		if e.ID == n.ID {
			return nil
		}
		if !e.IsRead && e.Type == n.Type && e.Title == n.Title && e.Message == n.Message {
			return nil
		}
	}

	if _, err := t.store.AddNotification(ctx, n); err != nil {
		return err
	}
	t.logger.Debug("notification emitted",
		zap.String("user", n.UserID),
		zap.String("type", n.Type))
	return nil
}
