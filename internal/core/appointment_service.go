package core

import (
	"context"
	"errors"
	"fmt"
	"log"

	"petcare-backend-go/internal/db"
	"petcare-backend-go/internal/models"
	"petcare-backend-go/pkg/mailer"
)

// Custom errors for the AppointmentService.
var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrEmptyDeclineReason  = errors.New("decline reason is required")
)

// appointmentService implements the AppointmentService interface.
type appointmentService struct {
	apptRepo db.AppointmentRepository
	mail     mailer.Mailer // nil disables outbound email
}

// NewAppointmentService creates a new AppointmentService instance. mail may
// be nil, in which case transitions skip the owner notification.
func NewAppointmentService(ar db.AppointmentRepository, mail mailer.Mailer) AppointmentService {
	return &appointmentService{
		apptRepo: ar,
		mail:     mail,
	}
}

// List retrieves the viewer's role-scoped appointments. Staff dashboards
// show Pending documents; history shows Accepted and Done. Owners always see
// all of their own.
func (s *appointmentService) List(ctx context.Context, viewer Viewer, history bool) ([]*models.Appointment, error) {
	filter := filterFor(viewer)
	if viewer.Role.IsStaff() {
		if history {
			filter.Statuses = []models.Status{models.StatusAccepted, models.StatusDone}
		} else {
			filter.Statuses = []models.Status{models.StatusPending}
		}
	}
	appts, err := s.apptRepo.ListByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

// GetByID retrieves one appointment, enforcing the viewer's scope.
func (s *appointmentService) GetByID(ctx context.Context, viewer Viewer, apptID string) (*models.Appointment, error) {
	return s.getScoped(ctx, viewer, apptID)
}

// Accept moves a Pending appointment to Accepted and notifies the owner.
func (s *appointmentService) Accept(ctx context.Context, viewer Viewer, apptID string) (*models.Appointment, error) {
	appt, err := s.transition(ctx, viewer, apptID, models.StatusAccepted, func(a *models.Appointment) {})
	if err != nil {
		return nil, err
	}
	s.notify(ctx, appt, "Your appointment was accepted",
		fmt.Sprintf("Hi %s, your appointment for %s on %s has been accepted.",
			appt.OwnerName, appt.PetName, appt.ScheduledAt.Format("Jan 2, 2006 3:04 PM")))
	return appt, nil
}

// Decline moves a Pending appointment to Declined, persisting the mandatory
// reason, and notifies the owner.
func (s *appointmentService) Decline(ctx context.Context, viewer Viewer, apptID, reason string) (*models.Appointment, error) {
	if reason == "" {
		return nil, ErrEmptyDeclineReason
	}
	appt, err := s.transition(ctx, viewer, apptID, models.StatusDeclined, func(a *models.Appointment) {
		a.DeclineReason = reason
	})
	if err != nil {
		return nil, err
	}
	s.notify(ctx, appt, "Your appointment was declined",
		fmt.Sprintf("Hi %s, your appointment for %s was declined. Reason: %s",
			appt.OwnerName, appt.PetName, reason))
	return appt, nil
}

// MarkDone moves an Accepted appointment to Done with optional notes, and
// notifies the owner.
func (s *appointmentService) MarkDone(ctx context.Context, viewer Viewer, apptID, notes string) (*models.Appointment, error) {
	appt, err := s.transition(ctx, viewer, apptID, models.StatusDone, func(a *models.Appointment) {
		a.DoneNotes = notes
	})
	if err != nil {
		return nil, err
	}
	body := fmt.Sprintf("Hi %s, the appointment for %s is complete.", appt.OwnerName, appt.PetName)
	if notes != "" {
		body += " Notes: " + notes
	}
	s.notify(ctx, appt, "Your appointment is done", body)
	return appt, nil
}

// Delete removes an appointment within the viewer's scope.
func (s *appointmentService) Delete(ctx context.Context, viewer Viewer, apptID string) error {
	if _, err := s.getScoped(ctx, viewer, apptID); err != nil {
		return err
	}
	if err := s.apptRepo.Delete(ctx, apptID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: '%s'", ErrAppointmentNotFound, apptID)
		}
		return fmt.Errorf("failed to delete appointment '%s': %w", apptID, err)
	}
	return nil
}

// transition applies one status move. The status graph is enforced here; the
// store itself never rejects a write. The document is marked unread so the
// owner's feed picks the change up.
func (s *appointmentService) transition(ctx context.Context, viewer Viewer, apptID string, next models.Status, mutate func(*models.Appointment)) (*models.Appointment, error) {
	appt, err := s.getScoped(ctx, viewer, apptID)
	if err != nil {
		return nil, err
	}

	if !appt.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, next)
	}

	appt.Status = next
	mutate(appt)
	appt.IsRead = false

	if err := s.apptRepo.Update(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to update appointment '%s': %w", apptID, err)
	}
	return appt, nil
}

// notify sends the transition email after the status write has committed. A
// mail failure is logged and never rolls back or blocks the transition.
func (s *appointmentService) notify(ctx context.Context, appt *models.Appointment, subject, body string) {
	if s.mail == nil || appt.OwnerEmail == "" {
		return
	}
	if err := s.mail.Send(ctx, appt.OwnerEmail, subject, body); err != nil {
		log.Printf("Appointment %s: transition email to '%s' failed: %v", appt.ID, appt.OwnerEmail, err)
	}
}

func (s *appointmentService) getScoped(ctx context.Context, viewer Viewer, apptID string) (*models.Appointment, error) {
	appt, err := s.apptRepo.GetByID(ctx, apptID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrAppointmentNotFound, apptID)
		}
		return nil, fmt.Errorf("failed to get appointment '%s': %w", apptID, err)
	}
	if !inScope(viewer, appt) {
		return nil, ErrForbiddenScope
	}
	return appt, nil
}
