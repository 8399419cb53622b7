package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rentport/rentport/internal/common/cnst"
)

// fileData is the on-disk layout: one JSON object keyed by collection
// name, each value an array of that entity's records.
type fileData struct {
	Users           []*User                `json:"users"`
	Properties      []*Property            `json:"properties"`
	Requests        []*VerificationRequest `json:"verificationRequests"`
	Stays           []*TenantStay          `json:"tenantStays"`
	Bills           []*Bill                `json:"bills"`
	Documents       []*Document            `json:"documents"`
	Messages        []*Message             `json:"messages"`
	Notifications   []*Notification        `json:"notifications"`
	Reviews         []*Review              `json:"reviews"`
	Maintenance     []*MaintenanceRequest  `json:"maintenanceRequests"`
	SupportTickets  []*SupportTicket       `json:"supportTickets"`
	SupportArticles []*SupportArticle      `json:"supportArticles"`
	Announcements   []*Announcement        `json:"announcements"`
	History         []*History             `json:"history"`
}

// FileStore is the embedded fallback backend: one flat JSON file with an
// in-memory cache on top. It is a single-instance store; the file is the
// unit of mutation and there is no cross-process locking, so it must never
// be shared between writers.
//
// Read paths hand out pointers into the cache, so a record is never
// mutated in place once stored: every mutation copies the record and swaps
// the slice element. Results from earlier reads stay stable snapshots.
type FileStore struct {
	logger  *zap.Logger
	path    string
	mu      sync.RWMutex
	data    *fileData
	durable bool
}

var _ Store = (*FileStore)(nil)

// NewFileStore opens (or initializes) the flat-file backend. A missing or
// unreadable file is first-run behavior, not an error: the store starts
// from an empty dataset.
func NewFileStore(logger *zap.Logger, path string) (*FileStore, error) {
	logger = logger.Named("storage.file")

	s := &FileStore{
		logger:  logger,
		path:    path,
		data:    &fileData{},
		durable: true,
	}

	raw, err := os.ReadFile(path)
	switch {
	case err != nil:
		logger.Info("data file not readable, starting empty",
			zap.String("path", path),
			zap.Error(err))
	default:
		if err := json.Unmarshal(raw, s.data); err != nil {
			logger.Warn("data file corrupt, starting empty",
				zap.String("path", path),
				zap.Error(err))
			s.data = &fileData{}
		}
	}

	return s, nil
}

// save serializes the entire dataset back to disk. Callers hold the write
// lock. A failed write (read-only filesystem) is logged once and flips the
// store to cache-only for the rest of the process lifetime; the in-memory
// state stays authoritative.
func (s *FileStore) save() {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		s.logger.Error("failed to marshal data file", zap.Error(err))
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err == nil {
		err = os.WriteFile(s.path, raw, 0644)
		if err == nil {
			return
		}
	}

	if s.durable {
		s.durable = false
		s.logger.Warn("data file not writable, continuing on in-memory cache only",
			zap.String("path", s.path))
	}
}

func (s *FileStore) Durability(_ context.Context) Durability {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.durable {
		return DurabilityDurable
	}
	return DurabilityCache
}

func (s *FileStore) Close() error {
	return nil
}

// Users

func (s *FileStore) ListUsers(_ context.Context) ([]*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*User(nil), s.data.Users...), nil
}

func (s *FileStore) AddUser(_ context.Context, u *User) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Users = append(s.data.Users, u)
	s.save()
	return u, nil
}

func (s *FileStore) GetUserByEmail(_ context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	email = normalizeEmail(email)
	for _, u := range s.data.Users {
		if normalizeEmail(u.Email) == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *FileStore) GetUserByID(_ context.Context, id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.data.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (s *FileStore) ListLandlords(_ context.Context) ([]*LandlordRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	refs := make([]*LandlordRef, 0)
	for _, u := range s.data.Users {
		if u.Role == cnst.RoleLandlord {
			refs = append(refs, &LandlordRef{ID: u.ID, Name: u.Name})
		}
	}
	return refs, nil
}

func (s *FileStore) UpdateUser(_ context.Context, id string, patch Patch) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.data.Users {
		if u.ID != id {
			continue
		}
		merged, err := patchRecord(u, patch)
		if err != nil {
			return nil, err
		}
		s.data.Users[i] = merged
		s.save()
		return merged, nil
	}
	return nil, nil
}

// Properties

func (s *FileStore) GetProperty(_ context.Context, id string) (*Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.data.Properties {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (s *FileStore) ListProperties(_ context.Context) ([]*Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*Property(nil), s.data.Properties...), nil
}

func (s *FileStore) ListPropertiesByLandlord(_ context.Context, landlordID string) ([]*Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Property, 0)
	for _, p := range s.data.Properties {
		if p.LandlordID == landlordID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *FileStore) AddProperty(_ context.Context, p *Property) (*Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Properties = append(s.data.Properties, p)
	s.save()
	return p, nil
}

func (s *FileStore) UpdateProperty(_ context.Context, id string, patch Patch) (*Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.data.Properties {
		if p.ID != id {
			continue
		}
		merged, err := patchRecord(p, patch)
		if err != nil {
			return nil, err
		}
		s.data.Properties[i] = merged
		s.save()
		return merged, nil
	}
	return nil, nil
}

func (s *FileStore) DeleteProperty(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.data.Properties {
		if p.ID == id {
			s.data.Properties = append(s.data.Properties[:i], s.data.Properties[i+1:]...)
			s.save()
			return nil
		}
	}
	return nil
}

// Verification requests

func (s *FileStore) ListRequests(_ context.Context) ([]*VerificationRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*VerificationRequest(nil), s.data.Requests...), nil
}

func (s *FileStore) GetLatestRequestByTenant(_ context.Context, tenantID string) (*VerificationRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var latest *VerificationRequest
	for _, r := range s.data.Requests {
		if r.TenantID != tenantID {
			continue
		}
		if latest == nil || r.SubmittedAt.After(latest.SubmittedAt) {
			latest = r
		}
	}
	return latest, nil
}

func (s *FileStore) GetRequest(_ context.Context, id string) (*VerificationRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.data.Requests {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (s *FileStore) AddRequest(_ context.Context, r *VerificationRequest) (*VerificationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Requests = append(s.data.Requests, r)
	s.save()
	return r, nil
}

func (s *FileStore) UpdateRequest(_ context.Context, id string, patch Patch) (*VerificationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.data.Requests {
		if r.ID != id {
			continue
		}
		merged, err := patchRecord(r, patch)
		if err != nil {
			return nil, err
		}
		s.data.Requests[i] = merged
		s.save()
		return merged, nil
	}
	return nil, nil
}

func (s *FileStore) UpdateRequestStatus(_ context.Context, id string, status cnst.RequestStatus, upd RequestStatusUpdate) (*VerificationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.data.Requests {
		if r.ID != id {
			continue
		}
		updated := *r
		applyStatusUpdate(&updated, status, upd, time.Now())
		s.data.Requests[i] = &updated
		s.save()
		return &updated, nil
	}
	return nil, nil
}

// History

func (s *FileStore) AddHistory(_ context.Context, h *History) (*History, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.History = append(s.data.History, h)
	s.save()
	return h, nil
}

func (s *FileStore) ListHistoryByTenant(_ context.Context, tenantID string) ([]*History, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*History, 0)
	for _, h := range s.data.History {
		if h.TenantID == tenantID {
			out = append(out, h)
		}
	}
	sortByTime(out, func(h *History) time.Time { return h.Date }, true)
	return out, nil
}

// Notifications

func (s *FileStore) ListNotificationsByUser(_ context.Context, userID string) ([]*Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Notification, 0)
	for _, n := range s.data.Notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sortByTime(out, func(n *Notification) time.Time { return n.CreatedAt }, true)
	return out, nil
}

func (s *FileStore) AddNotification(_ context.Context, n *Notification) (*Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Notifications = append(s.data.Notifications, n)
	s.save()
	return n, nil
}

func (s *FileStore) UpdateNotification(_ context.Context, id string, patch Patch) (*Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.data.Notifications {
		if n.ID != id {
			continue
		}
		merged, err := patchRecord(n, patch)
		if err != nil {
			return nil, err
		}
		s.data.Notifications[i] = merged
		s.save()
		return merged, nil
	}
	return nil, nil
}

func (s *FileStore) MarkAllNotificationsRead(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := false
	for i, n := range s.data.Notifications {
		if n.UserID == userID && !n.IsRead {
			updated := *n
			updated.IsRead = true
			s.data.Notifications[i] = &updated
			changed = true
		}
	}
	if changed {
		s.save()
	}
	return nil
}

// Tenant stays

func (s *FileStore) AddStay(_ context.Context, st *TenantStay) (*TenantStay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Stays = append(s.data.Stays, st)
	s.save()
	return st, nil
}

func (s *FileStore) GetActiveStayByTenant(_ context.Context, tenantID string) (*TenantStay, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.data.Stays {
		if st.TenantID == tenantID && st.Status == cnst.StayActive {
			return st, nil
		}
	}
	return nil, nil
}

func (s *FileStore) EndActiveStayByTenant(_ context.Context, tenantID string) (*TenantStay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, st := range s.data.Stays {
		if st.TenantID == tenantID && st.Status == cnst.StayActive {
			updated := *st
			updated.Status = cnst.StayMovedOut
			now := time.Now()
			updated.MoveOutDate = &now
			s.data.Stays[i] = &updated
			s.save()
			return &updated, nil
		}
	}
	return nil, nil
}

func (s *FileStore) ListLandlordTenants(_ context.Context, landlordID string) ([]*LandlordTenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make(map[string]*User, len(s.data.Users))
	for _, u := range s.data.Users {
		users[u.ID] = u
	}
	props := make(map[string]*Property, len(s.data.Properties))
	for _, p := range s.data.Properties {
		props[p.ID] = p
	}

	out := make([]*LandlordTenant, 0)
	for _, st := range s.data.Stays {
		if st.LandlordID != landlordID || st.Status != cnst.StayActive {
			continue
		}
		lt := &LandlordTenant{Stay: st}
		if u := users[st.TenantID]; u != nil {
			lt.TenantName = u.Name
			lt.TenantEmail = u.Email
		}
		if p := props[st.PropertyID]; p != nil {
			lt.PropertyName = p.Name
		}
		out = append(out, lt)
	}
	return out, nil
}

// Bills

func (s *FileStore) AddBill(_ context.Context, b *Bill) (*Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Bills = append(s.data.Bills, b)
	s.save()
	return b, nil
}

func (s *FileStore) ListBillsByLandlord(_ context.Context, landlordID string) ([]*Bill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Bill, 0)
	for _, b := range s.data.Bills {
		if b.LandlordID == landlordID {
			out = append(out, b)
		}
	}
	sortByTime(out, func(b *Bill) time.Time { return b.CreatedAt }, true)
	return out, nil
}

func (s *FileStore) ListBillsByTenant(_ context.Context, tenantID string) ([]*Bill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Bill, 0)
	for _, b := range s.data.Bills {
		if b.TenantID == tenantID {
			out = append(out, b)
		}
	}
	sortByTime(out, func(b *Bill) time.Time { return b.CreatedAt }, true)
	return out, nil
}

func (s *FileStore) MarkBillPaid(_ context.Context, id string) (*Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.data.Bills {
		if b.ID == id {
			// paidAt marks the transition into PAID; re-marking keeps it
			if b.Status == cnst.BillPaid {
				return b, nil
			}
			updated := *b
			updated.Status = cnst.BillPaid
			now := time.Now()
			updated.PaidAt = &now
			s.data.Bills[i] = &updated
			s.save()
			return &updated, nil
		}
	}
	return nil, nil
}

func (s *FileStore) DeleteBill(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.data.Bills {
		if b.ID == id {
			s.data.Bills = append(s.data.Bills[:i], s.data.Bills[i+1:]...)
			s.save()
			return nil
		}
	}
	return nil
}

// Documents

func (s *FileStore) ListDocumentsByUser(_ context.Context, userID string) ([]*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Document, 0)
	for _, d := range s.data.Documents {
		if d.TenantID == userID || d.LandlordID == userID {
			out = append(out, d)
		}
	}
	sortByTime(out, func(d *Document) time.Time { return d.UploadedAt }, true)
	return out, nil
}

func (s *FileStore) ListDocumentsByLandlord(_ context.Context, landlordID string) ([]*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Document, 0)
	for _, d := range s.data.Documents {
		if d.LandlordID == landlordID {
			out = append(out, d)
		}
	}
	sortByTime(out, func(d *Document) time.Time { return d.UploadedAt }, true)
	return out, nil
}

func (s *FileStore) ListDocumentsByTenant(_ context.Context, tenantID string) ([]*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Document, 0)
	for _, d := range s.data.Documents {
		if d.TenantID == tenantID {
			out = append(out, d)
		}
	}
	sortByTime(out, func(d *Document) time.Time { return d.UploadedAt }, true)
	return out, nil
}

func (s *FileStore) GetDocument(_ context.Context, id string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.data.Documents {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

func (s *FileStore) AddDocument(_ context.Context, d *Document) (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Documents = append(s.data.Documents, d)
	s.save()
	return d, nil
}

func (s *FileStore) DeleteDocument(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.data.Documents {
		if d.ID == id {
			s.data.Documents = append(s.data.Documents[:i], s.data.Documents[i+1:]...)
			s.save()
			return nil
		}
	}
	return nil
}

// Messages

func (s *FileStore) AddMessage(_ context.Context, m *Message) (*Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Messages = append(s.data.Messages, m)
	s.save()
	return m, nil
}

func (s *FileStore) ListMessagesBetween(_ context.Context, userA, userB string) ([]*Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Message, 0)
	for _, m := range s.data.Messages {
		if (m.SenderID == userA && m.ReceiverID == userB) ||
			(m.SenderID == userB && m.ReceiverID == userA) {
			out = append(out, m)
		}
	}
	sortByTime(out, func(m *Message) time.Time { return m.CreatedAt }, false)
	return out, nil
}

func (s *FileStore) ListMessagesForUser(_ context.Context, userID string) ([]*Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Message, 0)
	for _, m := range s.data.Messages {
		if m.SenderID == userID || m.ReceiverID == userID {
			out = append(out, m)
		}
	}
	sortByTime(out, func(m *Message) time.Time { return m.CreatedAt }, false)
	return out, nil
}

func (s *FileStore) MarkMessagesRead(_ context.Context, senderID, receiverID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := false
	for i, m := range s.data.Messages {
		if m.SenderID == senderID && m.ReceiverID == receiverID && !m.IsRead {
			updated := *m
			updated.IsRead = true
			s.data.Messages[i] = &updated
			changed = true
		}
	}
	if changed {
		s.save()
	}
	return nil
}

func (s *FileStore) CountUnreadForUser(_ context.Context, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, m := range s.data.Messages {
		if m.ReceiverID == userID && !m.IsRead {
			count++
		}
	}
	return count, nil
}

func (s *FileStore) CountUnreadBySender(_ context.Context, userID string) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[string]int)
	for _, m := range s.data.Messages {
		if m.ReceiverID == userID && !m.IsRead {
			counts[m.SenderID]++
		}
	}
	return counts, nil
}

// Maintenance

func (s *FileStore) AddMaintenanceRequest(_ context.Context, m *MaintenanceRequest) (*MaintenanceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Maintenance = append(s.data.Maintenance, m)
	s.save()
	return m, nil
}

func (s *FileStore) ListMaintenanceByTenant(_ context.Context, tenantID string) ([]*MaintenanceRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*MaintenanceRequest, 0)
	for _, m := range s.data.Maintenance {
		if m.TenantID == tenantID {
			out = append(out, m)
		}
	}
	sortByTime(out, func(m *MaintenanceRequest) time.Time { return m.CreatedAt }, true)
	return out, nil
}

func (s *FileStore) ListMaintenanceByLandlord(_ context.Context, landlordID string) ([]*MaintenanceRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*MaintenanceRequest, 0)
	for _, m := range s.data.Maintenance {
		if m.LandlordID == landlordID {
			out = append(out, m)
		}
	}
	sortByTime(out, func(m *MaintenanceRequest) time.Time { return m.CreatedAt }, true)
	return out, nil
}

func (s *FileStore) GetMaintenanceRequest(_ context.Context, id string) (*MaintenanceRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.data.Maintenance {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (s *FileStore) UpdateMaintenanceRequest(_ context.Context, id string, patch Patch) (*MaintenanceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.data.Maintenance {
		if m.ID != id {
			continue
		}
		merged, err := patchRecord(m, patch)
		if err != nil {
			return nil, err
		}
		merged.UpdatedAt = time.Now()
		s.data.Maintenance[i] = merged
		s.save()
		return merged, nil
	}
	return nil, nil
}

// Reviews

func (s *FileStore) ListReviewsByReviewee(_ context.Context, revieweeID string) ([]*Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Review, 0)
	for _, r := range s.data.Reviews {
		if r.RevieweeID == revieweeID {
			out = append(out, r)
		}
	}
	sortByTime(out, func(r *Review) time.Time { return r.CreatedAt }, true)
	return out, nil
}

func (s *FileStore) ListReviews(_ context.Context) ([]*Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]*Review(nil), s.data.Reviews...)
	sortByTime(out, func(r *Review) time.Time { return r.CreatedAt }, true)
	return out, nil
}

func (s *FileStore) AddReview(_ context.Context, r *Review) (*Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Reviews = append(s.data.Reviews, r)
	s.save()
	return r, nil
}

// Support

func (s *FileStore) ListSupportArticles(_ context.Context) ([]*SupportArticle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*SupportArticle(nil), s.data.SupportArticles...), nil
}

func (s *FileStore) AddSupportTicket(_ context.Context, t *SupportTicket) (*SupportTicket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.SupportTickets = append(s.data.SupportTickets, t)
	s.save()
	return t, nil
}

func (s *FileStore) ListTicketsByLandlord(_ context.Context, landlordID string) ([]*SupportTicket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*SupportTicket, 0)
	for _, t := range s.data.SupportTickets {
		if t.LandlordID == landlordID {
			out = append(out, t)
		}
	}
	sortByTime(out, func(t *SupportTicket) time.Time { return t.CreatedAt }, true)
	return out, nil
}

func (s *FileStore) ListTickets(_ context.Context) ([]*SupportTicket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]*SupportTicket(nil), s.data.SupportTickets...)
	sortByTime(out, func(t *SupportTicket) time.Time { return t.CreatedAt }, true)
	return out, nil
}

func (s *FileStore) GetTicket(_ context.Context, id string) (*SupportTicket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.data.SupportTickets {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (s *FileStore) UpdateTicket(_ context.Context, id string, patch Patch) (*SupportTicket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.data.SupportTickets {
		if t.ID != id {
			continue
		}
		merged, err := patchRecord(t, patch)
		if err != nil {
			return nil, err
		}
		merged.UpdatedAt = time.Now()
		s.data.SupportTickets[i] = merged
		s.save()
		return merged, nil
	}
	return nil, nil
}

// Announcements

func (s *FileStore) ListAnnouncements(_ context.Context) ([]*Announcement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]*Announcement(nil), s.data.Announcements...)
	sortByTime(out, func(a *Announcement) time.Time { return a.Date }, true)
	return out, nil
}

func (s *FileStore) AddAnnouncement(_ context.Context, a *Announcement) (*Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Announcements = append(s.data.Announcements, a)
	s.save()
	return a, nil
}

// Aggregates

func (s *FileStore) GetPlatformStats(_ context.Context) (*PlatformStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &PlatformStats{
		Users:      int64(len(s.data.Users)),
		Properties: int64(len(s.data.Properties)),
	}
	for _, t := range s.data.SupportTickets {
		if t.Status == "open" {
			stats.OpenTickets++
		}
	}
	for _, r := range s.data.Requests {
		if r.Status == cnst.RequestPending {
			stats.PendingRequests++
		}
	}
	for _, b := range s.data.Bills {
		if b.Status == cnst.BillPaid {
			stats.PaidRevenue += b.Amount
		}
	}
	return stats, nil
}

// SeedSupportArticles installs the built-in articles when the collection
// is empty. Invoked once at startup, never from the read path.
func (s *FileStore) SeedSupportArticles(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.data.SupportArticles) > 0 {
		return nil
	}
	s.data.SupportArticles = seedArticles()
	s.save()
	return nil
}
