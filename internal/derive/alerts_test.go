package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentport/rentport/internal/common/cnst"
	"github.com/rentport/rentport/internal/storage"
)

func TestBillingCycleAlert_KeyCarriesMonth(t *testing.T) {
	may := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	june := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

	a := BillingCycleAlert("l1", may)
	assert.Equal(t, "billing-cycle-l1-2026-05", a.Key)
	assert.Equal(t, "l1", a.UserID)
	assert.Equal(t, cnst.NotifyBillingCycle, a.Type)

	// same month, different day: same key
	assert.Equal(t, a.Key, BillingCycleAlert("l1", may.AddDate(0, 0, 20)).Key)
	// month boundary re-arms
	assert.NotEqual(t, a.Key, BillingCycleAlert("l1", june).Key)
}

func TestAnniversaryAlert(t *testing.T) {
	stay := &storage.TenantStay{
		TenantID:   "t1",
		LandlordID: "l1",
		JoinDate:   time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC),
	}

	onDay := time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC)
	a := AnniversaryAlert(stay, onDay)
	require.NotNil(t, a)
	assert.Equal(t, "anniversary-t1-2026", a.Key)
	assert.Equal(t, "l1", a.UserID, "addressed to the landlord")
	assert.Equal(t, cnst.NotifyAnniversary, a.Type)

	assert.Nil(t, AnniversaryAlert(stay, onDay.AddDate(0, 0, 1)), "only on the join month and day")
	assert.Nil(t, AnniversaryAlert(stay, time.Date(2024, 9, 1, 7, 0, 0, 0, time.UTC)), "no alert in the join year")
}

func TestAlert_ToNotification(t *testing.T) {
	now := time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC)
	a := BillingCycleAlert("l1", now)

	n := a.ToNotification(now)
	assert.Equal(t, a.Key, n.ID, "derived key becomes the record id")
	assert.Equal(t, "l1", n.UserID)
	assert.Equal(t, a.Title, n.Title)
	assert.False(t, n.IsRead)
	assert.Equal(t, now, n.CreatedAt)
}
