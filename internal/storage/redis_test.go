package storage

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rentport/rentport/internal/common/cnst"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	s, err := NewRedisStore(zap.NewNop(), mr.Addr(), "", "", 0, "test")
	if err != nil {
		mr.Close()
		t.Fatalf("failed to create RedisStore: %v", err)
	}
	return s, mr
}

func TestRedisStore_UserCRUD(t *testing.T) {
	s, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	_, err := s.AddUser(ctx, &User{ID: "u1", Name: "Ada", Email: "Ada@Example.com", Role: cnst.RoleLandlord, Status: cnst.UserActive})
	require.NoError(t, err)

	got, err := s.GetUserByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ada", got.Name)

	missing, err := s.GetUserByID(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, missing)

	// email index holds the normalized form
	byEmail, err := s.GetUserByEmail(ctx, " ADA@example.com ")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, "u1", byEmail.ID)

	landlords, err := s.ListLandlords(ctx)
	require.NoError(t, err)
	require.Len(t, landlords, 1)
	assert.Equal(t, "Ada", landlords[0].Name)
}

func TestRedisStore_UpdateMissingReturnsNil(t *testing.T) {
	s, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	u, err := s.UpdateUser(ctx, "ghost", Patch{"name": "Nobody"})
	assert.NoError(t, err)
	assert.Nil(t, u)

	r, err := s.UpdateRequestStatus(ctx, "ghost", cnst.RequestApproved, RequestStatusUpdate{})
	assert.NoError(t, err)
	assert.Nil(t, r)
}

func TestRedisStore_UpdateUserMergesNestedSettings(t *testing.T) {
	s, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	_, err := s.AddUser(ctx, &User{
		ID: "u1", Email: "ada@example.com",
		Settings: &UserSettings{
			Notifications: &NotificationSettings{Email: true, SMS: true},
			Portal:        &PortalSettings{Theme: "dark"},
		},
	})
	require.NoError(t, err)

	updated, err := s.UpdateUser(ctx, "u1", Patch{
		"settings": map[string]any{
			"notifications": map[string]any{"sms": false},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.Settings.Notifications.Email)
	assert.False(t, updated.Settings.Notifications.SMS)
	assert.Equal(t, "dark", updated.Settings.Portal.Theme)
}

func TestRedisStore_IndexFollowsUpdate(t *testing.T) {
	s, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	_, err := s.AddProperty(ctx, &Property{ID: "p1", LandlordID: "l1", Name: "Elm Street 4"})
	require.NoError(t, err)

	_, err = s.UpdateProperty(ctx, "p1", Patch{"landlordId": "l2"})
	require.NoError(t, err)

	forL1, err := s.ListPropertiesByLandlord(ctx, "l1")
	require.NoError(t, err)
	assert.Empty(t, forL1, "stale index entry must be removed")

	forL2, err := s.ListPropertiesByLandlord(ctx, "l2")
	require.NoError(t, err)
	require.Len(t, forL2, 1)
	assert.Equal(t, "p1", forL2[0].ID)
}

func TestRedisStore_DeleteCleansIndexes(t *testing.T) {
	s, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	_, err := s.AddProperty(ctx, &Property{ID: "p1", LandlordID: "l1"})
	require.NoError(t, err)
	require.NoError(t, s.DeleteProperty(ctx, "p1"))

	p, err := s.GetProperty(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, p)
	props, err := s.ListPropertiesByLandlord(ctx, "l1")
	require.NoError(t, err)
	assert.Empty(t, props)

	// deleting a missing record is not an error
	assert.NoError(t, s.DeleteProperty(ctx, "p1"))
}

func TestRedisStore_LatestRequestByTenant(t *testing.T) {
	s, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	_, err := s.AddRequest(ctx, &VerificationRequest{ID: "r1", TenantID: "t1", Status: cnst.RequestRejected, SubmittedAt: base})
	require.NoError(t, err)
	_, err = s.AddRequest(ctx, &VerificationRequest{ID: "r2", TenantID: "t1", Status: cnst.RequestPending, SubmittedAt: base.Add(2 * time.Hour)})
	require.NoError(t, err)
	_, err = s.AddRequest(ctx, &VerificationRequest{ID: "r3", TenantID: "t1", Status: cnst.RequestPending, SubmittedAt: base.Add(time.Hour)})
	require.NoError(t, err)
	_, err = s.AddRequest(ctx, &VerificationRequest{ID: "other", TenantID: "t2", SubmittedAt: base.Add(24 * time.Hour)})
	require.NoError(t, err)

	latest, err := s.GetLatestRequestByTenant(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "r2", latest.ID)

	none, err := s.GetLatestRequestByTenant(ctx, "t9")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestRedisStore_ApproveStampsVerifiedAtOnce(t *testing.T) {
	s, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	_, err := s.AddRequest(ctx, &VerificationRequest{ID: "r1", TenantID: "t1", Status: cnst.RequestPending, SubmittedAt: time.Now().UTC()})
	require.NoError(t, err)

	joining := "2026-06-01"
	approved, err := s.UpdateRequestStatus(ctx, "r1", cnst.RequestApproved, RequestStatusUpdate{JoiningDate: &joining})
	require.NoError(t, err)
	require.NotNil(t, approved)
	assert.Equal(t, cnst.RequestApproved, approved.Status)
	assert.Equal(t, "2026-06-01", approved.JoiningDate)
	require.NotNil(t, approved.VerifiedAt)
	first := *approved.VerifiedAt

	time.Sleep(5 * time.Millisecond)
	again, err := s.UpdateRequestStatus(ctx, "r1", cnst.RequestApproved, RequestStatusUpdate{})
	require.NoError(t, err)
	require.NotNil(t, again.VerifiedAt)
	assert.True(t, first.Equal(*again.VerifiedAt), "verifiedAt must be stamped exactly once")

	// status transitions move the request out of the pending index
	pending, err := docsByIndex[VerificationRequest](ctx, s, cnst.ColRequests, "status", string(cnst.RequestPending))
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRedisStore_ActiveStayLifecycle(t *testing.T) {
	s, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	_, err := s.AddStay(ctx, &TenantStay{ID: "s1", TenantID: "t1", LandlordID: "l1", PropertyID: "p1", Status: cnst.StayMovedOut, JoinDate: time.Now().AddDate(-2, 0, 0)})
	require.NoError(t, err)
	_, err = s.AddStay(ctx, &TenantStay{ID: "s2", TenantID: "t1", LandlordID: "l1", PropertyID: "p1", Status: cnst.StayActive, JoinDate: time.Now().AddDate(-1, 0, 0)})
	require.NoError(t, err)

	active, err := s.GetActiveStayByTenant(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "s2", active.ID)

	ended, err := s.EndActiveStayByTenant(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, ended)
	assert.Equal(t, cnst.StayMovedOut, ended.Status)
	require.NotNil(t, ended.MoveOutDate)

	active, err = s.GetActiveStayByTenant(ctx, "t1")
	require.NoError(t, err)
	assert.Nil(t, active)

	none, err := s.EndActiveStayByTenant(ctx, "t1")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestRedisStore_ListLandlordTenantsJoinsNames(t *testing.T) {
	s, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	_, err := s.AddUser(ctx, &User{ID: "t1", Name: "Tenant One", Email: "t1@example.com", Role: cnst.RoleTenant})
	require.NoError(t, err)
	_, err = s.AddProperty(ctx, &Property{ID: "p1", LandlordID: "l1", Name: "Elm Street 4"})
	require.NoError(t, err)
	_, err = s.AddStay(ctx, &TenantStay{ID: "s1", TenantID: "t1", LandlordID: "l1", PropertyID: "p1", Status: cnst.StayActive})
	require.NoError(t, err)
	_, err = s.AddStay(ctx, &TenantStay{ID: "s2", TenantID: "t2", LandlordID: "l2", PropertyID: "p1", Status: cnst.StayActive})
	require.NoError(t, err)

	tenants, err := s.ListLandlordTenants(ctx, "l1")
	require.NoError(t, err)
	require.Len(t, tenants, 1)
	assert.Equal(t, "Tenant One", tenants[0].TenantName)
	assert.Equal(t, "Elm Street 4", tenants[0].PropertyName)
}

func TestRedisStore_DocumentsByUserMergesBothScopes(t *testing.T) {
	s, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	now := time.Now().UTC()
	_, err := s.AddDocument(ctx, &Document{ID: "d1", TenantID: "u1", Name: "lease", UploadedAt: now})
	require.NoError(t, err)
	_, err = s.AddDocument(ctx, &Document{ID: "d2", LandlordID: "u1", Name: "deed", UploadedAt: now.Add(time.Minute)})
	require.NoError(t, err)
	_, err = s.AddDocument(ctx, &Document{ID: "d3", TenantID: "u1", LandlordID: "u1", Name: "both", UploadedAt: now.Add(2 * time.Minute)})
	require.NoError(t, err)
	_, err = s.AddDocument(ctx, &Document{ID: "d4", TenantID: "someone-else", Name: "other", UploadedAt: now})
	require.NoError(t, err)

	docs, err := s.ListDocumentsByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, docs, 3, "a document indexed under both scopes appears once")
	assert.Equal(t, "d3", docs[0].ID, "newest first")
}

func TestRedisStore_MessagingFanOut(t *testing.T) {
	s, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	msgs := []*Message{
		{ID: "m1", SenderID: "a", ReceiverID: "b", Content: "hi", CreatedAt: base},
		{ID: "m2", SenderID: "b", ReceiverID: "a", Content: "hello", CreatedAt: base.Add(time.Minute)},
		{ID: "m3", SenderID: "a", ReceiverID: "b", Content: "rent?", CreatedAt: base.Add(2 * time.Minute)},
		{ID: "m4", SenderID: "c", ReceiverID: "b", Content: "unrelated", CreatedAt: base.Add(3 * time.Minute)},
		{ID: "m5", SenderID: "b", ReceiverID: "b", Content: "note to self", CreatedAt: base.Add(4 * time.Minute)},
	}
	for _, m := range msgs {
		_, err := s.AddMessage(ctx, m)
		require.NoError(t, err)
	}

	conv, err := s.ListMessagesBetween(ctx, "a", "b")
	require.NoError(t, err)
	require.Len(t, conv, 3)
	assert.Equal(t, "m1", conv[0].ID, "conversation is oldest first")
	assert.Equal(t, "m3", conv[2].ID)

	forB, err := s.ListMessagesForUser(ctx, "b")
	require.NoError(t, err)
	assert.Len(t, forB, 5, "self-addressed message appears once")

	unread, err := s.CountUnreadForUser(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, 4, unread)

	bySender, err := s.CountUnreadBySender(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 2, "c": 1, "b": 1}, bySender)

	require.NoError(t, s.MarkMessagesRead(ctx, "a", "b"))
	unread, err = s.CountUnreadForUser(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, 2, unread)
}

func TestRedisStore_NotificationsMarkAllRead(t *testing.T) {
	s, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	_, err := s.AddNotification(ctx, &Notification{ID: "n1", UserID: "u1", Type: cnst.NotifyGeneral, Title: "a", CreatedAt: time.Now().UTC()})
	require.NoError(t, err)
	_, err = s.AddNotification(ctx, &Notification{ID: "n2", UserID: "u1", Type: cnst.NotifyGeneral, Title: "b", CreatedAt: time.Now().UTC()})
	require.NoError(t, err)
	_, err = s.AddNotification(ctx, &Notification{ID: "n3", UserID: "u2", Type: cnst.NotifyGeneral, Title: "c", CreatedAt: time.Now().UTC()})
	require.NoError(t, err)

	require.NoError(t, s.MarkAllNotificationsRead(ctx, "u1"))

	forU1, err := s.ListNotificationsByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, forU1, 2)
	for _, n := range forU1 {
		assert.True(t, n.IsRead)
	}
	forU2, err := s.ListNotificationsByUser(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, forU2, 1)
	assert.False(t, forU2[0].IsRead)
}

func TestRedisStore_PlatformStatsUsesNativeCounts(t *testing.T) {
	s, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	_, err := s.AddUser(ctx, &User{ID: "u1", Email: "a@example.com"})
	require.NoError(t, err)
	_, err = s.AddUser(ctx, &User{ID: "u2", Email: "b@example.com"})
	require.NoError(t, err)
	_, err = s.AddProperty(ctx, &Property{ID: "p1", LandlordID: "u1"})
	require.NoError(t, err)
	_, err = s.AddSupportTicket(ctx, &SupportTicket{ID: "tk1", LandlordID: "u1", Status: "open"})
	require.NoError(t, err)
	_, err = s.AddSupportTicket(ctx, &SupportTicket{ID: "tk2", LandlordID: "u1", Status: "closed"})
	require.NoError(t, err)
	_, err = s.AddRequest(ctx, &VerificationRequest{ID: "r1", TenantID: "t1", Status: cnst.RequestPending})
	require.NoError(t, err)
	_, err = s.AddBill(ctx, &Bill{ID: "b1", TenantID: "t1", LandlordID: "u1", Amount: 900, Status: cnst.BillPaid})
	require.NoError(t, err)
	_, err = s.AddBill(ctx, &Bill{ID: "b2", TenantID: "t1", LandlordID: "u1", Amount: 500, Status: cnst.BillPending})
	require.NoError(t, err)

	stats, err := s.GetPlatformStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Users)
	assert.Equal(t, int64(1), stats.Properties)
	assert.Equal(t, int64(1), stats.OpenTickets)
	assert.Equal(t, int64(1), stats.PendingRequests)
	assert.Equal(t, 900.0, stats.PaidRevenue)
}

func TestRedisStore_SeedOnlyWhenEmpty(t *testing.T) {
	s, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	require.NoError(t, s.SeedSupportArticles(ctx))
	articles, err := s.ListSupportArticles(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, articles)
	seeded := len(articles)

	require.NoError(t, s.SeedSupportArticles(ctx))
	articles, err = s.ListSupportArticles(ctx)
	require.NoError(t, err)
	assert.Len(t, articles, seeded)
}

func TestRedisStore_OpaqueIDsDoNotCollideWithSetKeys(t *testing.T) {
	s, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	// ids are caller-supplied opaque strings; these would land on the
	// membership-set and index-set keys without a distinct doc namespace
	_, err := s.AddUser(ctx, &User{ID: "ids", Email: "ids@example.com"})
	require.NoError(t, err)
	_, err = s.AddUser(ctx, &User{ID: "ix:email:x", Email: "ix@example.com"})
	require.NoError(t, err)

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	got, err := s.GetUserByID(ctx, "ids")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ids@example.com", got.Email)

	require.NoError(t, s.deleteDoc(ctx, cnst.ColUsers, "ids"))
	users, err = s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestRedisStore_MarkBillPaidStampsOnce(t *testing.T) {
	s, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	_, err := s.AddBill(ctx, &Bill{ID: "b1", TenantID: "t1", LandlordID: "l1", Amount: 900, Status: cnst.BillPending, CreatedAt: time.Now().UTC()})
	require.NoError(t, err)

	paid, err := s.MarkBillPaid(ctx, "b1")
	require.NoError(t, err)
	require.NotNil(t, paid)
	assert.Equal(t, cnst.BillPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)
	first := *paid.PaidAt

	time.Sleep(5 * time.Millisecond)
	again, err := s.MarkBillPaid(ctx, "b1")
	require.NoError(t, err)
	require.NotNil(t, again.PaidAt)
	assert.True(t, first.Equal(*again.PaidAt), "paidAt marks the transition into PAID, stamped once")
}

func TestRedisStore_UpdateMaintenanceStampsUpdatedAt(t *testing.T) {
	s, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	created := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	_, err := s.AddMaintenanceRequest(ctx, &MaintenanceRequest{
		ID: "m1", TenantID: "t1", LandlordID: "l1", Title: "Leaky tap",
		Status: "open", CreatedAt: created, UpdatedAt: created,
	})
	require.NoError(t, err)

	updated, err := s.UpdateMaintenanceRequest(ctx, "m1", Patch{"status": "in_progress"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "in_progress", updated.Status)
	assert.Equal(t, "Leaky tap", updated.Title)
	assert.True(t, updated.UpdatedAt.After(created))

	tk, err := s.AddSupportTicket(ctx, &SupportTicket{ID: "tk1", LandlordID: "l1", Subject: "help", Status: "open", CreatedAt: created, UpdatedAt: created})
	require.NoError(t, err)
	require.NotNil(t, tk)
	uptk, err := s.UpdateTicket(ctx, "tk1", Patch{"status": "closed"})
	require.NoError(t, err)
	require.NotNil(t, uptk)
	assert.Equal(t, "closed", uptk.Status)
	assert.True(t, uptk.UpdatedAt.After(created))
}

func TestRedisStore_Durability(t *testing.T) {
	s, mr := newTestRedisStore(t)
	defer mr.Close()
	assert.Equal(t, DurabilityDurable, s.Durability(context.Background()))
}
