package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"petcare-backend-go/internal/models"
)

func TestFeedFlagsRecentUpdates(t *testing.T) {
	repo := newTestApptRepo()
	svc := NewNotificationService(repo).(*notificationService)
	svc.now = fixedTime

	seedAppointment(repo, "fresh", models.StatusAccepted, func(a *models.Appointment) {
		a.UpdatedAt = fixedTime().Add(-1 * time.Hour)
	})
	seedAppointment(repo, "boundary", models.StatusAccepted, func(a *models.Appointment) {
		a.UpdatedAt = fixedTime().Add(-24 * time.Hour)
	})
	seedAppointment(repo, "stale", models.StatusAccepted, func(a *models.Appointment) {
		a.UpdatedAt = fixedTime().Add(-24*time.Hour - time.Second)
	})

	feed, err := svc.Feed(context.Background(), ownerViewer())
	if err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	if len(feed) != 3 {
		t.Fatalf("feed length = %d, want 3", len(feed))
	}

	isNew := map[string]bool{}
	for _, n := range feed {
		isNew[n.Appointment.ID] = n.IsNew
	}
	if !isNew["fresh"] {
		t.Error("an update one hour old must be flagged new")
	}
	if !isNew["boundary"] {
		t.Error("an update exactly 24 hours old must still be flagged new")
	}
	if isNew["stale"] {
		t.Error("an update older than 24 hours must not be flagged new")
	}
}

func TestStatusTransitionRefreshesFeed(t *testing.T) {
	repo := newTestApptRepo()
	repo.now = fixedTime
	apptSvc := NewAppointmentService(repo, nil)
	feedSvc := NewNotificationService(repo).(*notificationService)
	feedSvc.now = fixedTime

	// Booked long ago; the pending entry has aged out of the feed window.
	seedAppointment(repo, "appt-1", models.StatusPending, func(a *models.Appointment) {
		a.UpdatedAt = fixedTime().Add(-72 * time.Hour)
	})

	if _, err := apptSvc.Accept(context.Background(), clinicViewer(1), "appt-1"); err != nil {
		t.Fatalf("Accept() error = %v", err)
	}

	stored, _ := repo.GetByID(context.Background(), "appt-1")
	if !stored.UpdatedAt.Equal(fixedTime()) {
		t.Fatalf("transition must bump updatedAt, got %v", stored.UpdatedAt)
	}

	feed, err := feedSvc.Feed(context.Background(), ownerViewer())
	if err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	if len(feed) != 1 || !feed[0].IsNew {
		t.Error("a fresh status transition must surface as a new notification")
	}
}

func TestFeedIsScopedToViewer(t *testing.T) {
	repo := newTestApptRepo()
	svc := NewNotificationService(repo).(*notificationService)
	svc.now = fixedTime

	seedAppointment(repo, "mine", models.StatusPending, nil)
	seedAppointment(repo, "theirs", models.StatusPending, func(a *models.Appointment) {
		a.OwnerID = "uid-other"
		a.Clinic = 2
	})

	feed, err := svc.Feed(context.Background(), ownerViewer())
	if err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	if len(feed) != 1 || feed[0].Appointment.ID != "mine" {
		t.Errorf("owner feed should carry only owned appointments, got %d entries", len(feed))
	}
}

func TestMarkReadPersists(t *testing.T) {
	repo := newTestApptRepo()
	svc := NewNotificationService(repo).(*notificationService)
	svc.now = fixedTime

	seedAppointment(repo, "appt-1", models.StatusAccepted, func(a *models.Appointment) {
		a.IsRead = false
	})

	if err := svc.MarkRead(context.Background(), ownerViewer(), "appt-1"); err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}
	stored, _ := repo.GetByID(context.Background(), "appt-1")
	if !stored.IsRead {
		t.Error("the read flag must be persisted")
	}
}

func TestMarkReadOutsideScope(t *testing.T) {
	repo := newTestApptRepo()
	svc := NewNotificationService(repo)

	seedAppointment(repo, "appt-1", models.StatusAccepted, nil) // clinic 1, uid-owner

	other := Viewer{UserID: "uid-other", Role: models.RoleOwner}
	if err := svc.MarkRead(context.Background(), other, "appt-1"); !errors.Is(err, ErrForbiddenScope) {
		t.Errorf("MarkRead() error = %v, want ErrForbiddenScope", err)
	}
	if err := svc.MarkRead(context.Background(), ownerViewer(), "missing"); !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("MarkRead() error = %v, want ErrAppointmentNotFound", err)
	}
}
