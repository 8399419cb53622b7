package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/rentport/rentport/internal/common/cnst"
)

// indexedFields lists, per collection, the fields maintained as equality
// index sets. Single-field equality is a set read, conjunctions are a
// server-side intersection. Anything disjunctive has no native form and
// must fan out (see mergeByID).
var indexedFields = map[string][]string{
	cnst.ColUsers:          {"email", "role"},
	cnst.ColProperties:     {"landlordId"},
	cnst.ColRequests:       {"tenantId", "status"},
	cnst.ColStays:          {"tenantId", "landlordId", "status"},
	cnst.ColBills:          {"tenantId", "landlordId", "status"},
	cnst.ColDocuments:      {"tenantId", "landlordId"},
	cnst.ColMessages:       {"senderId", "receiverId"},
	cnst.ColNotifications:  {"userId"},
	cnst.ColReviews:        {"revieweeId"},
	cnst.ColMaintenance:    {"tenantId", "landlordId"},
	cnst.ColSupportTickets: {"landlordId", "status"},
	cnst.ColHistory:        {"tenantId"},
}

// RedisStore is the remote document store adapter: one JSON document per
// record, a membership set per collection for listing and native counts,
// and equality index sets kept in step with every write.
type RedisStore struct {
	logger *zap.Logger
	rdb    *redis.Client
	prefix string
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore connects to the remote store and verifies the connection
func NewRedisStore(logger *zap.Logger, addr, username, password string, db int, prefix string) (*RedisStore, error) {
	logger = logger.Named("storage.redis")

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	if prefix == "" {
		prefix = "rentport"
	}
	return &RedisStore{
		logger: logger,
		rdb:    rdb,
		prefix: prefix,
	}, nil
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

// The remote path is always durable; degradation is a flat-file concern.
func (s *RedisStore) Durability(_ context.Context) Durability {
	return DurabilityDurable
}

// Record ids are caller-supplied opaque strings, so document keys get
// their own "doc" segment; ids like "ids" or "ix:..." must not land on
// the membership-set or index-set keys.
func (s *RedisStore) docKey(col, id string) string {
	return s.prefix + ":" + col + ":doc:" + id
}

func (s *RedisStore) idsKey(col string) string {
	return s.prefix + ":" + col + ":ids"
}

func (s *RedisStore) ixKey(col, field, value string) string {
	return s.prefix + ":" + col + ":ix:" + field + ":" + value
}

// indexValue extracts the indexed field from the raw document. Emails are
// indexed in normalized form so lookup-time normalization hits the set.
func indexValue(col, field string, raw []byte) string {
	v := gjson.GetBytes(raw, field).String()
	if col == cnst.ColUsers && field == "email" {
		v = normalizeEmail(v)
	}
	return v
}

// writeDoc stores the document and reconciles every index set against the
// previous raw form (nil for creates). Pipelined so a write is one round
// trip.
func (s *RedisStore) writeDoc(ctx context.Context, col, id string, oldRaw, newRaw []byte) error {
	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, s.docKey(col, id), newRaw, 0)
	pipe.SAdd(ctx, s.idsKey(col), id)
	for _, field := range indexedFields[col] {
		oldVal := ""
		if oldRaw != nil {
			oldVal = indexValue(col, field, oldRaw)
		}
		newVal := indexValue(col, field, newRaw)
		if oldVal == newVal {
			continue
		}
		if oldVal != "" {
			pipe.SRem(ctx, s.ixKey(col, field, oldVal), id)
		}
		if newVal != "" {
			pipe.SAdd(ctx, s.ixKey(col, field, newVal), id)
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}

// rawDoc fetches the raw document, (nil, nil) when absent
func (s *RedisStore) rawDoc(ctx context.Context, col, id string) ([]byte, error) {
	raw, err := s.rdb.Get(ctx, s.docKey(col, id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (s *RedisStore) deleteDoc(ctx context.Context, col, id string) error {
	raw, err := s.rawDoc(ctx, col, id)
	if err != nil || raw == nil {
		return err
	}

	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, s.docKey(col, id))
	pipe.SRem(ctx, s.idsKey(col), id)
	for _, field := range indexedFields[col] {
		if v := indexValue(col, field, raw); v != "" {
			pipe.SRem(ctx, s.ixKey(col, field, v), id)
		}
	}
	_, err = pipe.Exec(ctx)
	return err
}

func addDoc[T any](ctx context.Context, s *RedisStore, col, id string, doc *T) (*T, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	if err := s.writeDoc(ctx, col, id, nil, raw); err != nil {
		return nil, err
	}
	return doc, nil
}

func getDoc[T any](ctx context.Context, s *RedisStore, col, id string) (*T, error) {
	raw, err := s.rawDoc(ctx, col, id)
	if err != nil || raw == nil {
		return nil, err
	}
	out := new(T)
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

// docsByIDs multi-gets a batch of documents, skipping ids whose document
// vanished between the index read and the fetch
func docsByIDs[T any](ctx context.Context, s *RedisStore, col string, ids []string) ([]*T, error) {
	out := make([]*T, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.docKey(col, id)
	}
	vals, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for _, v := range vals {
		str, ok := v.(string)
		if !ok {
			continue
		}
		rec := new(T)
		if err := json.Unmarshal([]byte(str), rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func allDocs[T any](ctx context.Context, s *RedisStore, col string) ([]*T, error) {
	ids, err := s.rdb.SMembers(ctx, s.idsKey(col)).Result()
	if err != nil {
		return nil, err
	}
	return docsByIDs[T](ctx, s, col, ids)
}

// docsByIndex answers a single-field equality predicate from its index set
func docsByIndex[T any](ctx context.Context, s *RedisStore, col, field, value string) ([]*T, error) {
	ids, err := s.rdb.SMembers(ctx, s.ixKey(col, field, value)).Result()
	if err != nil {
		return nil, err
	}
	return docsByIDs[T](ctx, s, col, ids)
}

// docsWhere answers a conjunction of equality predicates with a
// server-side intersection of the index sets
func docsWhere[T any](ctx context.Context, s *RedisStore, col string, where map[string]string) ([]*T, error) {
	keys := make([]string, 0, len(where))
	for field, value := range where {
		keys = append(keys, s.ixKey(col, field, value))
	}
	ids, err := s.rdb.SInter(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	return docsByIDs[T](ctx, s, col, ids)
}

// updateDoc applies a merge patch to an existing document. A missing id is
// (nil, nil): update never creates.
func updateDoc[T any](ctx context.Context, s *RedisStore, col, id string, patch Patch) (*T, error) {
	raw, err := s.rawDoc(ctx, col, id)
	if err != nil || raw == nil {
		return nil, err
	}

	rec := new(T)
	if err := json.Unmarshal(raw, rec); err != nil {
		return nil, err
	}
	merged, err := patchRecord(rec, patch)
	if err != nil {
		return nil, err
	}

	newRaw, err := json.Marshal(merged)
	if err != nil {
		return nil, err
	}
	if err := s.writeDoc(ctx, col, id, raw, newRaw); err != nil {
		return nil, err
	}
	return merged, nil
}

// mutateDoc fetches, applies a typed mutation, and writes back with index
// reconciliation. Missing id is (nil, nil).
func mutateDoc[T any](ctx context.Context, s *RedisStore, col, id string, mutate func(*T)) (*T, error) {
	raw, err := s.rawDoc(ctx, col, id)
	if err != nil || raw == nil {
		return nil, err
	}

	rec := new(T)
	if err := json.Unmarshal(raw, rec); err != nil {
		return nil, err
	}
	mutate(rec)

	newRaw, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	if err := s.writeDoc(ctx, col, id, raw, newRaw); err != nil {
		return nil, err
	}
	return rec, nil
}

// Users

func (s *RedisStore) ListUsers(ctx context.Context) ([]*User, error) {
	return allDocs[User](ctx, s, cnst.ColUsers)
}

func (s *RedisStore) AddUser(ctx context.Context, u *User) (*User, error) {
	return addDoc(ctx, s, cnst.ColUsers, u.ID, u)
}

func (s *RedisStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	users, err := docsByIndex[User](ctx, s, cnst.ColUsers, "email", normalizeEmail(email))
	if err != nil || len(users) == 0 {
		return nil, err
	}
	return users[0], nil
}

func (s *RedisStore) GetUserByID(ctx context.Context, id string) (*User, error) {
	return getDoc[User](ctx, s, cnst.ColUsers, id)
}

func (s *RedisStore) ListLandlords(ctx context.Context) ([]*LandlordRef, error) {
	users, err := docsByIndex[User](ctx, s, cnst.ColUsers, "role", string(cnst.RoleLandlord))
	if err != nil {
		return nil, err
	}
	refs := make([]*LandlordRef, 0, len(users))
	for _, u := range users {
		refs = append(refs, &LandlordRef{ID: u.ID, Name: u.Name})
	}
	return refs, nil
}

func (s *RedisStore) UpdateUser(ctx context.Context, id string, patch Patch) (*User, error) {
	return updateDoc[User](ctx, s, cnst.ColUsers, id, patch)
}

// Properties

func (s *RedisStore) GetProperty(ctx context.Context, id string) (*Property, error) {
	return getDoc[Property](ctx, s, cnst.ColProperties, id)
}

func (s *RedisStore) ListProperties(ctx context.Context) ([]*Property, error) {
	return allDocs[Property](ctx, s, cnst.ColProperties)
}

func (s *RedisStore) ListPropertiesByLandlord(ctx context.Context, landlordID string) ([]*Property, error) {
	return docsByIndex[Property](ctx, s, cnst.ColProperties, "landlordId", landlordID)
}

func (s *RedisStore) AddProperty(ctx context.Context, p *Property) (*Property, error) {
	return addDoc(ctx, s, cnst.ColProperties, p.ID, p)
}

func (s *RedisStore) UpdateProperty(ctx context.Context, id string, patch Patch) (*Property, error) {
	return updateDoc[Property](ctx, s, cnst.ColProperties, id, patch)
}

func (s *RedisStore) DeleteProperty(ctx context.Context, id string) error {
	return s.deleteDoc(ctx, cnst.ColProperties, id)
}

// Verification requests

func (s *RedisStore) ListRequests(ctx context.Context) ([]*VerificationRequest, error) {
	return allDocs[VerificationRequest](ctx, s, cnst.ColRequests)
}

// GetLatestRequestByTenant selects the request with the greatest
// SubmittedAt client-side; the backend cannot order without an index.
func (s *RedisStore) GetLatestRequestByTenant(ctx context.Context, tenantID string) (*VerificationRequest, error) {
	reqs, err := docsByIndex[VerificationRequest](ctx, s, cnst.ColRequests, "tenantId", tenantID)
	if err != nil || len(reqs) == 0 {
		return nil, err
	}
	latest := reqs[0]
	for _, r := range reqs[1:] {
		if r.SubmittedAt.After(latest.SubmittedAt) {
			latest = r
		}
	}
	return latest, nil
}

func (s *RedisStore) GetRequest(ctx context.Context, id string) (*VerificationRequest, error) {
	return getDoc[VerificationRequest](ctx, s, cnst.ColRequests, id)
}

func (s *RedisStore) AddRequest(ctx context.Context, r *VerificationRequest) (*VerificationRequest, error) {
	return addDoc(ctx, s, cnst.ColRequests, r.ID, r)
}

func (s *RedisStore) UpdateRequest(ctx context.Context, id string, patch Patch) (*VerificationRequest, error) {
	return updateDoc[VerificationRequest](ctx, s, cnst.ColRequests, id, patch)
}

func (s *RedisStore) UpdateRequestStatus(ctx context.Context, id string, status cnst.RequestStatus, upd RequestStatusUpdate) (*VerificationRequest, error) {
	return mutateDoc(ctx, s, cnst.ColRequests, id, func(r *VerificationRequest) {
		applyStatusUpdate(r, status, upd, time.Now())
	})
}

// History

func (s *RedisStore) AddHistory(ctx context.Context, h *History) (*History, error) {
	return addDoc(ctx, s, cnst.ColHistory, h.ID, h)
}

func (s *RedisStore) ListHistoryByTenant(ctx context.Context, tenantID string) ([]*History, error) {
	recs, err := docsByIndex[History](ctx, s, cnst.ColHistory, "tenantId", tenantID)
	if err != nil {
		return nil, err
	}
	sortByTime(recs, func(h *History) time.Time { return h.Date }, true)
	return recs, nil
}

// Notifications

func (s *RedisStore) ListNotificationsByUser(ctx context.Context, userID string) ([]*Notification, error) {
	recs, err := docsByIndex[Notification](ctx, s, cnst.ColNotifications, "userId", userID)
	if err != nil {
		return nil, err
	}
	sortByTime(recs, func(n *Notification) time.Time { return n.CreatedAt }, true)
	return recs, nil
}

func (s *RedisStore) AddNotification(ctx context.Context, n *Notification) (*Notification, error) {
	return addDoc(ctx, s, cnst.ColNotifications, n.ID, n)
}

func (s *RedisStore) UpdateNotification(ctx context.Context, id string, patch Patch) (*Notification, error) {
	return updateDoc[Notification](ctx, s, cnst.ColNotifications, id, patch)
}

func (s *RedisStore) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	recs, err := docsByIndex[Notification](ctx, s, cnst.ColNotifications, "userId", userID)
	if err != nil {
		return err
	}
	for _, n := range recs {
		if n.IsRead {
			continue
		}
		if _, err := mutateDoc(ctx, s, cnst.ColNotifications, n.ID, func(n *Notification) {
			n.IsRead = true
		}); err != nil {
			return err
		}
	}
	return nil
}

// Tenant stays

func (s *RedisStore) AddStay(ctx context.Context, st *TenantStay) (*TenantStay, error) {
	return addDoc(ctx, s, cnst.ColStays, st.ID, st)
}

func (s *RedisStore) GetActiveStayByTenant(ctx context.Context, tenantID string) (*TenantStay, error) {
	stays, err := docsWhere[TenantStay](ctx, s, cnst.ColStays, map[string]string{
		"tenantId": tenantID,
		"status":   string(cnst.StayActive),
	})
	if err != nil || len(stays) == 0 {
		return nil, err
	}
	return stays[0], nil
}

func (s *RedisStore) EndActiveStayByTenant(ctx context.Context, tenantID string) (*TenantStay, error) {
	active, err := s.GetActiveStayByTenant(ctx, tenantID)
	if err != nil || active == nil {
		return nil, err
	}
	return mutateDoc(ctx, s, cnst.ColStays, active.ID, func(st *TenantStay) {
		st.Status = cnst.StayMovedOut
		now := time.Now()
		st.MoveOutDate = &now
	})
}

// ListLandlordTenants joins each active stay with the referenced user and
// property record. Per-stay follow-up gets are acceptable at this data
// scale; replace with a batched multi-get if the stay count grows.
func (s *RedisStore) ListLandlordTenants(ctx context.Context, landlordID string) ([]*LandlordTenant, error) {
	stays, err := docsWhere[TenantStay](ctx, s, cnst.ColStays, map[string]string{
		"landlordId": landlordID,
		"status":     string(cnst.StayActive),
	})
	if err != nil {
		return nil, err
	}

	out := make([]*LandlordTenant, 0, len(stays))
	for _, st := range stays {
		lt := &LandlordTenant{Stay: st}
		u, err := getDoc[User](ctx, s, cnst.ColUsers, st.TenantID)
		if err != nil {
			return nil, err
		}
		if u != nil {
			lt.TenantName = u.Name
			lt.TenantEmail = u.Email
		}
		p, err := getDoc[Property](ctx, s, cnst.ColProperties, st.PropertyID)
		if err != nil {
			return nil, err
		}
		if p != nil {
			lt.PropertyName = p.Name
		}
		out = append(out, lt)
	}
	return out, nil
}

// Bills

func (s *RedisStore) AddBill(ctx context.Context, b *Bill) (*Bill, error) {
	return addDoc(ctx, s, cnst.ColBills, b.ID, b)
}

func (s *RedisStore) ListBillsByLandlord(ctx context.Context, landlordID string) ([]*Bill, error) {
	bills, err := docsByIndex[Bill](ctx, s, cnst.ColBills, "landlordId", landlordID)
	if err != nil {
		return nil, err
	}
	sortByTime(bills, func(b *Bill) time.Time { return b.CreatedAt }, true)
	return bills, nil
}

func (s *RedisStore) ListBillsByTenant(ctx context.Context, tenantID string) ([]*Bill, error) {
	bills, err := docsByIndex[Bill](ctx, s, cnst.ColBills, "tenantId", tenantID)
	if err != nil {
		return nil, err
	}
	sortByTime(bills, func(b *Bill) time.Time { return b.CreatedAt }, true)
	return bills, nil
}

func (s *RedisStore) MarkBillPaid(ctx context.Context, id string) (*Bill, error) {
	return mutateDoc(ctx, s, cnst.ColBills, id, func(b *Bill) {
		// paidAt marks the transition into PAID; re-marking keeps it
		if b.Status == cnst.BillPaid {
			return
		}
		b.Status = cnst.BillPaid
		now := time.Now()
		b.PaidAt = &now
	})
}

func (s *RedisStore) DeleteBill(ctx context.Context, id string) error {
	return s.deleteDoc(ctx, cnst.ColBills, id)
}

// Documents

// ListDocumentsByUser needs "tenantId = u OR landlordId = u", which the
// backend cannot express. Two independent index reads, merged and deduped
// by id.
func (s *RedisStore) ListDocumentsByUser(ctx context.Context, userID string) ([]*Document, error) {
	asTenant, err := docsByIndex[Document](ctx, s, cnst.ColDocuments, "tenantId", userID)
	if err != nil {
		return nil, err
	}
	asLandlord, err := docsByIndex[Document](ctx, s, cnst.ColDocuments, "landlordId", userID)
	if err != nil {
		return nil, err
	}

	docs := mergeByID(func(d *Document) string { return d.ID }, asTenant, asLandlord)
	sortByTime(docs, func(d *Document) time.Time { return d.UploadedAt }, true)
	return docs, nil
}

func (s *RedisStore) ListDocumentsByLandlord(ctx context.Context, landlordID string) ([]*Document, error) {
	docs, err := docsByIndex[Document](ctx, s, cnst.ColDocuments, "landlordId", landlordID)
	if err != nil {
		return nil, err
	}
	sortByTime(docs, func(d *Document) time.Time { return d.UploadedAt }, true)
	return docs, nil
}

func (s *RedisStore) ListDocumentsByTenant(ctx context.Context, tenantID string) ([]*Document, error) {
	docs, err := docsByIndex[Document](ctx, s, cnst.ColDocuments, "tenantId", tenantID)
	if err != nil {
		return nil, err
	}
	sortByTime(docs, func(d *Document) time.Time { return d.UploadedAt }, true)
	return docs, nil
}

func (s *RedisStore) GetDocument(ctx context.Context, id string) (*Document, error) {
	return getDoc[Document](ctx, s, cnst.ColDocuments, id)
}

func (s *RedisStore) AddDocument(ctx context.Context, d *Document) (*Document, error) {
	return addDoc(ctx, s, cnst.ColDocuments, d.ID, d)
}

func (s *RedisStore) DeleteDocument(ctx context.Context, id string) error {
	return s.deleteDoc(ctx, cnst.ColDocuments, id)
}

// Messages

func (s *RedisStore) AddMessage(ctx context.Context, m *Message) (*Message, error) {
	return addDoc(ctx, s, cnst.ColMessages, m.ID, m)
}

// ListMessagesBetween covers both directions of the conversation: each
// direction is a native conjunction, the disjunction between them is a
// fan-out merged by id.
func (s *RedisStore) ListMessagesBetween(ctx context.Context, userA, userB string) ([]*Message, error) {
	aToB, err := docsWhere[Message](ctx, s, cnst.ColMessages, map[string]string{
		"senderId":   userA,
		"receiverId": userB,
	})
	if err != nil {
		return nil, err
	}
	bToA, err := docsWhere[Message](ctx, s, cnst.ColMessages, map[string]string{
		"senderId":   userB,
		"receiverId": userA,
	})
	if err != nil {
		return nil, err
	}

	msgs := mergeByID(func(m *Message) string { return m.ID }, aToB, bToA)
	sortByTime(msgs, func(m *Message) time.Time { return m.CreatedAt }, false)
	return msgs, nil
}

// ListMessagesForUser is "senderId = u OR receiverId = u": fan out and
// merge by id. A self-addressed message appears once.
func (s *RedisStore) ListMessagesForUser(ctx context.Context, userID string) ([]*Message, error) {
	sent, err := docsByIndex[Message](ctx, s, cnst.ColMessages, "senderId", userID)
	if err != nil {
		return nil, err
	}
	received, err := docsByIndex[Message](ctx, s, cnst.ColMessages, "receiverId", userID)
	if err != nil {
		return nil, err
	}

	msgs := mergeByID(func(m *Message) string { return m.ID }, sent, received)
	sortByTime(msgs, func(m *Message) time.Time { return m.CreatedAt }, false)
	return msgs, nil
}

func (s *RedisStore) MarkMessagesRead(ctx context.Context, senderID, receiverID string) error {
	msgs, err := docsWhere[Message](ctx, s, cnst.ColMessages, map[string]string{
		"senderId":   senderID,
		"receiverId": receiverID,
	})
	if err != nil {
		return err
	}
	for _, m := range msgs {
		if m.IsRead {
			continue
		}
		if _, err := mutateDoc(ctx, s, cnst.ColMessages, m.ID, func(m *Message) {
			m.IsRead = true
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s *RedisStore) CountUnreadForUser(ctx context.Context, userID string) (int, error) {
	counts, err := s.CountUnreadBySender(ctx, userID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	return total, nil
}

// CountUnreadBySender runs the same sender-or-receiver fan-out as
// ListMessagesForUser and filters to unread inbound messages client-side;
// read state is not indexed.
func (s *RedisStore) CountUnreadBySender(ctx context.Context, userID string) (map[string]int, error) {
	msgs, err := s.ListMessagesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, m := range msgs {
		if m.ReceiverID == userID && !m.IsRead {
			counts[m.SenderID]++
		}
	}
	return counts, nil
}

// Maintenance

func (s *RedisStore) AddMaintenanceRequest(ctx context.Context, m *MaintenanceRequest) (*MaintenanceRequest, error) {
	return addDoc(ctx, s, cnst.ColMaintenance, m.ID, m)
}

func (s *RedisStore) ListMaintenanceByTenant(ctx context.Context, tenantID string) ([]*MaintenanceRequest, error) {
	recs, err := docsByIndex[MaintenanceRequest](ctx, s, cnst.ColMaintenance, "tenantId", tenantID)
	if err != nil {
		return nil, err
	}
	sortByTime(recs, func(m *MaintenanceRequest) time.Time { return m.CreatedAt }, true)
	return recs, nil
}

func (s *RedisStore) ListMaintenanceByLandlord(ctx context.Context, landlordID string) ([]*MaintenanceRequest, error) {
	recs, err := docsByIndex[MaintenanceRequest](ctx, s, cnst.ColMaintenance, "landlordId", landlordID)
	if err != nil {
		return nil, err
	}
	sortByTime(recs, func(m *MaintenanceRequest) time.Time { return m.CreatedAt }, true)
	return recs, nil
}

func (s *RedisStore) GetMaintenanceRequest(ctx context.Context, id string) (*MaintenanceRequest, error) {
	return getDoc[MaintenanceRequest](ctx, s, cnst.ColMaintenance, id)
}

func (s *RedisStore) UpdateMaintenanceRequest(ctx context.Context, id string, patch Patch) (*MaintenanceRequest, error) {
	return updateDoc[MaintenanceRequest](ctx, s, cnst.ColMaintenance, id, withUpdatedAt(patch))
}

// Reviews

func (s *RedisStore) ListReviewsByReviewee(ctx context.Context, revieweeID string) ([]*Review, error) {
	recs, err := docsByIndex[Review](ctx, s, cnst.ColReviews, "revieweeId", revieweeID)
	if err != nil {
		return nil, err
	}
	sortByTime(recs, func(r *Review) time.Time { return r.CreatedAt }, true)
	return recs, nil
}

func (s *RedisStore) ListReviews(ctx context.Context) ([]*Review, error) {
	recs, err := allDocs[Review](ctx, s, cnst.ColReviews)
	if err != nil {
		return nil, err
	}
	sortByTime(recs, func(r *Review) time.Time { return r.CreatedAt }, true)
	return recs, nil
}

func (s *RedisStore) AddReview(ctx context.Context, r *Review) (*Review, error) {
	return addDoc(ctx, s, cnst.ColReviews, r.ID, r)
}

// Support

func (s *RedisStore) ListSupportArticles(ctx context.Context) ([]*SupportArticle, error) {
	return allDocs[SupportArticle](ctx, s, cnst.ColSupportArticles)
}

func (s *RedisStore) AddSupportTicket(ctx context.Context, t *SupportTicket) (*SupportTicket, error) {
	return addDoc(ctx, s, cnst.ColSupportTickets, t.ID, t)
}

func (s *RedisStore) ListTicketsByLandlord(ctx context.Context, landlordID string) ([]*SupportTicket, error) {
	recs, err := docsByIndex[SupportTicket](ctx, s, cnst.ColSupportTickets, "landlordId", landlordID)
	if err != nil {
		return nil, err
	}
	sortByTime(recs, func(t *SupportTicket) time.Time { return t.CreatedAt }, true)
	return recs, nil
}

func (s *RedisStore) ListTickets(ctx context.Context) ([]*SupportTicket, error) {
	recs, err := allDocs[SupportTicket](ctx, s, cnst.ColSupportTickets)
	if err != nil {
		return nil, err
	}
	sortByTime(recs, func(t *SupportTicket) time.Time { return t.CreatedAt }, true)
	return recs, nil
}

func (s *RedisStore) GetTicket(ctx context.Context, id string) (*SupportTicket, error) {
	return getDoc[SupportTicket](ctx, s, cnst.ColSupportTickets, id)
}

func (s *RedisStore) UpdateTicket(ctx context.Context, id string, patch Patch) (*SupportTicket, error) {
	return updateDoc[SupportTicket](ctx, s, cnst.ColSupportTickets, id, withUpdatedAt(patch))
}

// Announcements

func (s *RedisStore) ListAnnouncements(ctx context.Context) ([]*Announcement, error) {
	recs, err := allDocs[Announcement](ctx, s, cnst.ColAnnouncements)
	if err != nil {
		return nil, err
	}
	sortByTime(recs, func(a *Announcement) time.Time { return a.Date }, true)
	return recs, nil
}

func (s *RedisStore) AddAnnouncement(ctx context.Context, a *Announcement) (*Announcement, error) {
	return addDoc(ctx, s, cnst.ColAnnouncements, a.ID, a)
}

// Aggregates

// GetPlatformStats counts via set cardinality, never by fetching the
// documents. Only the revenue sum touches document bodies, and only the
// paid subset.
func (s *RedisStore) GetPlatformStats(ctx context.Context) (*PlatformStats, error) {
	stats := &PlatformStats{}

	var err error
	if stats.Users, err = s.rdb.SCard(ctx, s.idsKey(cnst.ColUsers)).Result(); err != nil {
		return nil, err
	}
	if stats.Properties, err = s.rdb.SCard(ctx, s.idsKey(cnst.ColProperties)).Result(); err != nil {
		return nil, err
	}
	if stats.OpenTickets, err = s.rdb.SCard(ctx, s.ixKey(cnst.ColSupportTickets, "status", "open")).Result(); err != nil {
		return nil, err
	}
	if stats.PendingRequests, err = s.rdb.SCard(ctx, s.ixKey(cnst.ColRequests, "status", string(cnst.RequestPending))).Result(); err != nil {
		return nil, err
	}

	paid, err := docsByIndex[Bill](ctx, s, cnst.ColBills, "status", string(cnst.BillPaid))
	if err != nil {
		return nil, err
	}
	for _, b := range paid {
		stats.PaidRevenue += b.Amount
	}
	return stats, nil
}

// SeedSupportArticles installs the built-in articles when the collection
// is empty. Startup bootstrap, idempotent.
func (s *RedisStore) SeedSupportArticles(ctx context.Context) error {
	n, err := s.rdb.SCard(ctx, s.idsKey(cnst.ColSupportArticles)).Result()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, a := range seedArticles() {
		if _, err := addDoc(ctx, s, cnst.ColSupportArticles, a.ID, a); err != nil {
			return err
		}
	}
	return nil
}
