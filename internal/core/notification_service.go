package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"petcare-backend-go/internal/db"
)

// newWindow is the freshness window of the feed: a document updated within
// the last 24 hours is flagged new.
const newWindow = 24 * time.Hour

// notificationService implements the NotificationService interface. The feed
// is derived on every call by re-querying the appointment collection; read
// state is the persisted isRead field on the document, nothing is held in
// memory.
type notificationService struct {
	apptRepo db.AppointmentRepository

	now func() time.Time
}

// NewNotificationService creates a new NotificationService instance.
func NewNotificationService(ar db.AppointmentRepository) NotificationService {
	return &notificationService{
		apptRepo: ar,
		now:      time.Now,
	}
}

// Feed re-queries the viewer's role-scoped appointments and flags each entry
// new iff now - updatedAt <= 24h.
func (s *notificationService) Feed(ctx context.Context, viewer Viewer) ([]Notification, error) {
	appts, err := s.apptRepo.ListByFilter(ctx, filterFor(viewer))
	if err != nil {
		return nil, fmt.Errorf("failed to build notification feed: %w", err)
	}

	now := s.now()
	feed := make([]Notification, 0, len(appts))
	for _, appt := range appts {
		feed = append(feed, Notification{
			Appointment: appt,
			IsNew:       now.Sub(appt.UpdatedAt) <= newWindow,
		})
	}
	return feed, nil
}

// MarkRead persists the read flag on the appointment document, within the
// viewer's scope.
func (s *notificationService) MarkRead(ctx context.Context, viewer Viewer, apptID string) error {
	appt, err := s.apptRepo.GetByID(ctx, apptID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: '%s'", ErrAppointmentNotFound, apptID)
		}
		return fmt.Errorf("failed to get appointment '%s': %w", apptID, err)
	}
	if !inScope(viewer, appt) {
		return ErrForbiddenScope
	}
	if err := s.apptRepo.SetRead(ctx, apptID, true); err != nil {
		return fmt.Errorf("failed to mark appointment '%s' read: %w", apptID, err)
	}
	return nil
}
