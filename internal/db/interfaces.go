package db

import (
	"context"

	"petcare-backend-go/internal/models"
)

// ProfileRepository defines the interface for user profile storage operations.
type ProfileRepository interface {
	GetByID(ctx context.Context, userID string) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Update(ctx context.Context, profile *models.Profile) error
	Delete(ctx context.Context, userID string) error
	List(ctx context.Context) ([]*models.Profile, error)
}

// AppointmentFilter narrows appointment queries. Zero values mean "no
// constraint" for that dimension.
type AppointmentFilter struct {
	OwnerID  string
	Clinic   int
	Service  models.Service
	Statuses []models.Status
}

// AppointmentRepository defines the interface for appointment storage
// operations.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) (string, error) // Returns new document ID
	GetByID(ctx context.Context, apptID string) (*models.Appointment, error)
	Update(ctx context.Context, appt *models.Appointment) error
	Delete(ctx context.Context, apptID string) error
	ListByFilter(ctx context.Context, filter AppointmentFilter) ([]*models.Appointment, error)
	SetRead(ctx context.Context, apptID string, read bool) error
}

// RoomRepository defines the interface for room storage operations.
// Rooms are addressed by (clinic, label); Upsert must collapse concurrent
// lazy creates for the same pair onto one record.
type RoomRepository interface {
	Get(ctx context.Context, clinic int, label string) (*models.Room, error)
	Upsert(ctx context.Context, room *models.Room) error
	ListByClinic(ctx context.Context, clinic int) ([]*models.Room, error)
	Delete(ctx context.Context, clinic int, label string) error
}

// FeedbackRepository defines the interface for feedback storage operations.
// Feedback is write-once: no update or delete.
type FeedbackRepository interface {
	Create(ctx context.Context, fb *models.Feedback) (string, error)
	List(ctx context.Context) ([]*models.Feedback, error)
}

// LoginEventRepository defines the interface for the login_events collection.
type LoginEventRepository interface {
	Create(ctx context.Context, event models.LoginEvent) error
}
