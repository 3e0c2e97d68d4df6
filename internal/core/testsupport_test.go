package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"petcare-backend-go/internal/db"
	"petcare-backend-go/internal/models"
)

// -------------------------
// In-memory appointment repo
// -------------------------

type testApptRepo struct {
	mu   sync.Mutex
	byID map[string]*models.Appointment
	seq  int

	now func() time.Time
}

func newTestApptRepo() *testApptRepo {
	return &testApptRepo{
		byID: map[string]*models.Appointment{},
		now:  time.Now,
	}
}

// put inserts an appointment verbatim, without touching timestamps. Tests
// use it to control UpdatedAt directly.
func (r *testApptRepo) put(appt *models.Appointment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if appt.ID == "" {
		r.seq++
		appt.ID = "appt-" + strconv.Itoa(r.seq)
	}
	cp := *appt
	r.byID[appt.ID] = &cp
}

func (r *testApptRepo) Create(ctx context.Context, appt *models.Appointment) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	appt.ID = "appt-" + strconv.Itoa(r.seq)
	appt.CreatedAt = r.now()
	appt.UpdatedAt = r.now()
	cp := *appt
	r.byID[appt.ID] = &cp
	return appt.ID, nil
}

func (r *testApptRepo) GetByID(ctx context.Context, apptID string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.byID[apptID]
	if !ok {
		return nil, fmt.Errorf("appointment '%s': %w", apptID, db.ErrNotFound)
	}
	cp := *appt
	return &cp, nil
}

func (r *testApptRepo) Update(ctx context.Context, appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[appt.ID]; !ok {
		return fmt.Errorf("appointment '%s': %w", appt.ID, db.ErrNotFound)
	}
	appt.UpdatedAt = r.now()
	cp := *appt
	r.byID[appt.ID] = &cp
	return nil
}

func (r *testApptRepo) Delete(ctx context.Context, apptID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[apptID]; !ok {
		return fmt.Errorf("appointment '%s': %w", apptID, db.ErrNotFound)
	}
	delete(r.byID, apptID)
	return nil
}

func (r *testApptRepo) ListByFilter(ctx context.Context, filter db.AppointmentFilter) ([]*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*models.Appointment
	for _, appt := range r.byID {
		if filter.OwnerID != "" && appt.OwnerID != filter.OwnerID {
			continue
		}
		if filter.Clinic != 0 && appt.Clinic != filter.Clinic {
			continue
		}
		if filter.Service != "" {
			found := false
			for _, s := range appt.Services {
				if s == filter.Service {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		if len(filter.Statuses) > 0 {
			match := false
			for _, s := range filter.Statuses {
				if appt.Status == s {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		cp := *appt
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (r *testApptRepo) SetRead(ctx context.Context, apptID string, read bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.byID[apptID]
	if !ok {
		return fmt.Errorf("appointment '%s': %w", apptID, db.ErrNotFound)
	}
	appt.IsRead = read
	return nil
}

// -------------------------
// In-memory profile repo
// -------------------------

type testProfileRepo struct {
	byID map[string]*models.Profile
}

func newTestProfileRepo() *testProfileRepo {
	return &testProfileRepo{byID: map[string]*models.Profile{}}
}

func (r *testProfileRepo) GetByID(ctx context.Context, userID string) (*models.Profile, error) {
	p, ok := r.byID[userID]
	if !ok {
		return nil, fmt.Errorf("profile '%s': %w", userID, db.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (r *testProfileRepo) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	for _, p := range r.byID {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("profile email '%s': %w", email, db.ErrNotFound)
}

func (r *testProfileRepo) Create(ctx context.Context, profile *models.Profile) error {
	if profile.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[profile.ID]; ok {
		return errors.New("repo: already exists")
	}
	cp := *profile
	r.byID[profile.ID] = &cp
	return nil
}

func (r *testProfileRepo) Update(ctx context.Context, profile *models.Profile) error {
	if _, ok := r.byID[profile.ID]; !ok {
		return fmt.Errorf("profile '%s': %w", profile.ID, db.ErrNotFound)
	}
	cp := *profile
	r.byID[profile.ID] = &cp
	return nil
}

func (r *testProfileRepo) Delete(ctx context.Context, userID string) error {
	if _, ok := r.byID[userID]; !ok {
		return fmt.Errorf("profile '%s': %w", userID, db.ErrNotFound)
	}
	delete(r.byID, userID)
	return nil
}

func (r *testProfileRepo) List(ctx context.Context) ([]*models.Profile, error) {
	out := make([]*models.Profile, 0, len(r.byID))
	for _, p := range r.byID {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// -------------------------
// In-memory room repo
// -------------------------

type testRoomRepo struct {
	byKey map[string]*models.Room
}

func newTestRoomRepo() *testRoomRepo {
	return &testRoomRepo{byKey: map[string]*models.Room{}}
}

func roomKey(clinic int, label string) string {
	return strconv.Itoa(clinic) + ":" + label
}

func (r *testRoomRepo) Get(ctx context.Context, clinic int, label string) (*models.Room, error) {
	room, ok := r.byKey[roomKey(clinic, label)]
	if !ok {
		return nil, fmt.Errorf("room '%s': %w", label, db.ErrNotFound)
	}
	cp := *room
	return &cp, nil
}

func (r *testRoomRepo) Upsert(ctx context.Context, room *models.Room) error {
	cp := *room
	r.byKey[roomKey(room.Clinic, room.Label)] = &cp
	return nil
}

func (r *testRoomRepo) ListByClinic(ctx context.Context, clinic int) ([]*models.Room, error) {
	var out []*models.Room
	for _, room := range r.byKey {
		if room.Clinic == clinic {
			cp := *room
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out, nil
}

func (r *testRoomRepo) Delete(ctx context.Context, clinic int, label string) error {
	key := roomKey(clinic, label)
	if _, ok := r.byKey[key]; !ok {
		return fmt.Errorf("room '%s': %w", label, db.ErrNotFound)
	}
	delete(r.byKey, key)
	return nil
}

// -------------------------
// In-memory feedback repo
// -------------------------

type testFeedbackRepo struct {
	entries []*models.Feedback
	seq     int
}

func newTestFeedbackRepo() *testFeedbackRepo {
	return &testFeedbackRepo{}
}

func (r *testFeedbackRepo) Create(ctx context.Context, fb *models.Feedback) (string, error) {
	r.seq++
	fb.ID = "fb-" + strconv.Itoa(r.seq)
	cp := *fb
	r.entries = append(r.entries, &cp)
	return fb.ID, nil
}

func (r *testFeedbackRepo) List(ctx context.Context) ([]*models.Feedback, error) {
	out := make([]*models.Feedback, 0, len(r.entries))
	for _, fb := range r.entries {
		cp := *fb
		out = append(out, &cp)
	}
	return out, nil
}

// -------------------------
// Fake auth accounts
// -------------------------

type testAccounts struct {
	uidByEmail map[string]string
	seq        int
	createErr  error
}

func newTestAccounts() *testAccounts {
	return &testAccounts{uidByEmail: map[string]string{}}
}

func (a *testAccounts) GetUIDByEmail(ctx context.Context, email string) (string, error) {
	uid, ok := a.uidByEmail[email]
	if !ok {
		return "", fmt.Errorf("email '%s': %w", email, db.ErrAccountNotFound)
	}
	return uid, nil
}

func (a *testAccounts) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	if a.createErr != nil {
		return "", a.createErr
	}
	a.seq++
	uid := "uid-" + strconv.Itoa(a.seq)
	a.uidByEmail[email] = uid
	return uid, nil
}

func (a *testAccounts) DeleteAccount(ctx context.Context, uid string) error {
	for email, id := range a.uidByEmail {
		if id == uid {
			delete(a.uidByEmail, email)
			return nil
		}
	}
	return fmt.Errorf("uid '%s': %w", uid, db.ErrAccountNotFound)
}

// -------------------------
// Fake uploader and mailer
// -------------------------

type testUploader struct {
	fail    bool
	uploads int
}

func (u *testUploader) Upload(ctx context.Context, kind string, data []byte, contentType string) (string, error) {
	if u.fail {
		return "", errors.New("upload failed")
	}
	u.uploads++
	return fmt.Sprintf("https://storage.example.com/%s/%d", kind, u.uploads), nil
}

type sentMail struct {
	Recipient string
	Subject   string
	Body      string
}

type testMailer struct {
	fail bool
	sent []sentMail
}

func (m *testMailer) Send(ctx context.Context, recipient, subject, body string) error {
	if m.fail {
		return errors.New("mail endpoint unreachable")
	}
	m.sent = append(m.sent, sentMail{Recipient: recipient, Subject: subject, Body: body})
	return nil
}

// -------------------------
// Fake cache
// -------------------------

type testCache struct {
	values map[string]string
	sets   int
	gets   int
}

func newTestCache() *testCache {
	return &testCache{values: map[string]string{}}
}

func (c *testCache) Get(ctx context.Context, key string) (string, error) {
	c.gets++
	return c.values[key], nil
}

func (c *testCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	c.sets++
	c.values[key] = fmt.Sprint(value)
	return nil
}

func (c *testCache) Delete(ctx context.Context, key string) error {
	delete(c.values, key)
	return nil
}
