package core

import (
	"context"

	"petcare-backend-go/internal/models"
)

// ProfileService defines the interface for user profile operations.
type ProfileService interface {
	// GetOrCreate retrieves a profile by UID, creating an owner profile with
	// default values when none exists yet.
	GetOrCreate(ctx context.Context, userID, email, displayName, photoURL string) (*models.Profile, bool, error)
	GetByID(ctx context.Context, userID string) (*models.Profile, error)
	Update(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.Profile, error)
	// SetRole assigns a dashboard role to a user. Admin path; only values that
	// resolve to the closed Role enum are accepted.
	SetRole(ctx context.Context, userID, role string) (*models.Profile, error)
	List(ctx context.Context) ([]*models.Profile, error)
	// Delete removes both the profile document and the auth account. Admin path.
	Delete(ctx context.Context, userID string) error
	// RecordLogin appends a login event; failures are logged, not surfaced.
	RecordLogin(ctx context.Context, event models.LoginEvent)
}

// BookingService defines the interface for the booking workflow.
type BookingService interface {
	// Book runs the public multi-step booking: validation, account creation
	// (an existing account for the email aborts with ErrAccountExists),
	// profile get-or-create, photo upload (placeholder fallback), static
	// pricing, and one Pending appointment write.
	Book(ctx context.Context, req models.BookingRequest) (*models.Appointment, error)
	// CreateForOwner creates an appointment for an existing owner from the
	// staff appointment modal, through the same pricing path.
	CreateForOwner(ctx context.Context, req models.StaffAppointmentRequest) (*models.Appointment, error)
}

// AppointmentService defines the interface for the status workflow and
// role-scoped listing.
type AppointmentService interface {
	List(ctx context.Context, viewer Viewer, history bool) ([]*models.Appointment, error)
	GetByID(ctx context.Context, viewer Viewer, apptID string) (*models.Appointment, error)
	Accept(ctx context.Context, viewer Viewer, apptID string) (*models.Appointment, error)
	Decline(ctx context.Context, viewer Viewer, apptID, reason string) (*models.Appointment, error)
	MarkDone(ctx context.Context, viewer Viewer, apptID, notes string) (*models.Appointment, error)
	Delete(ctx context.Context, viewer Viewer, apptID string) error
}

// Notification is one derived feed entry: an appointment plus its freshness
// flag. Nothing is stored for the feed itself.
type Notification struct {
	Appointment *models.Appointment `json:"appointment"`
	IsNew       bool                `json:"isNew"`
}

// NotificationService defines the interface for the derived notification feed.
type NotificationService interface {
	Feed(ctx context.Context, viewer Viewer) ([]Notification, error)
	MarkRead(ctx context.Context, viewer Viewer, apptID string) error
}

// MonthStat is one month bucket of the analytics snapshot.
type MonthStat struct {
	Month        string `json:"month"`
	Appointments int    `json:"appointments"`
	Revenue      int    `json:"revenue"`
}

// Snapshot is the in-memory aggregation over the viewer's appointment set.
type Snapshot struct {
	TotalAppointments   int                   `json:"totalAppointments"`
	UniquePets          int                   `json:"uniquePets"`
	UniqueOwners        int                   `json:"uniqueOwners"`
	TotalRevenue        int                   `json:"totalRevenue"`
	Monthly             []MonthStat           `json:"monthly"`
	SpeciesDistribution map[string]int        `json:"speciesDistribution"`
	RoomOccupancy       map[string]int        `json:"roomOccupancy"`
	StatusCounts        map[models.Status]int `json:"statusCounts"`
}

// AnalyticsService defines the interface for dashboard aggregations.
type AnalyticsService interface {
	Snapshot(ctx context.Context, viewer Viewer) (*Snapshot, error)
}

// RoomService defines the interface for room management.
type RoomService interface {
	List(ctx context.Context, clinic int) ([]*models.Room, error)
	// Seed creates the fixed initial room set for a clinic, skipping rooms
	// that already exist.
	Seed(ctx context.Context, clinic int) ([]*models.Room, error)
	// SetStatus updates a room's status, lazily creating the record when it
	// does not exist yet (upsert-by-identifier).
	SetStatus(ctx context.Context, clinic int, label string, status models.RoomStatus) (*models.Room, error)
	SetImage(ctx context.Context, clinic int, label string, image []byte, contentType string) (*models.Room, error)
	Delete(ctx context.Context, clinic int, label string) error
}

// FeedbackService defines the interface for post-appointment feedback.
type FeedbackService interface {
	Submit(ctx context.Context, userID string, req models.FeedbackRequest) (*models.Feedback, error)
	List(ctx context.Context) ([]*models.Feedback, error)
}
