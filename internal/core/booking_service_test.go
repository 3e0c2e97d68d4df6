package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"petcare-backend-go/internal/models"
)

const testPlaceholderURL = "https://storage.example.com/placeholders/pet.png"

func fixedTime() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func validBookingRequest() models.BookingRequest {
	return models.BookingRequest{
		OwnerName:   "Jane Cruz",
		Email:       "jane@example.com",
		Password:    "hunter2hunter2",
		Phone:       "09171234567",
		PetName:     "Bantay",
		PetType:     "Dog",
		PetBreed:    "Aspin",
		PetAge:      3,
		Services:    []models.Service{models.ServiceGrooming, models.ServiceVeterinary},
		Clinic:      1,
		ScheduledAt: fixedTime().Add(48 * time.Hour),
	}
}

func newBookingFixture() (*bookingService, *testApptRepo, *testProfileRepo, *testAccounts, *testUploader) {
	apptRepo := newTestApptRepo()
	profileRepo := newTestProfileRepo()
	accounts := newTestAccounts()
	uploader := &testUploader{}
	svc := NewBookingService(apptRepo, profileRepo, accounts, uploader, testPlaceholderURL).(*bookingService)
	svc.now = fixedTime
	return svc, apptRepo, profileRepo, accounts, uploader
}

func TestBookCreatesAccountProfileAndAppointment(t *testing.T) {
	svc, apptRepo, profileRepo, accounts, _ := newBookingFixture()

	appt, err := svc.Book(context.Background(), validBookingRequest())
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}

	if appt.Status != models.StatusPending {
		t.Errorf("new appointment status = %s, want Pending", appt.Status)
	}
	if appt.Payment != 1200 {
		t.Errorf("grooming + veterinary payment = %d, want 1200", appt.Payment)
	}
	if appt.IsRead {
		t.Error("new appointment should be unread")
	}

	uid, err := accounts.GetUIDByEmail(context.Background(), "jane@example.com")
	if err != nil {
		t.Fatalf("expected an auth account for the owner: %v", err)
	}
	if appt.OwnerID != uid {
		t.Errorf("appointment ownerId = %q, want %q", appt.OwnerID, uid)
	}

	profile, err := profileRepo.GetByID(context.Background(), uid)
	if err != nil {
		t.Fatalf("expected a profile for the owner: %v", err)
	}
	if profile.Role != string(models.RoleOwner) {
		t.Errorf("new profile role = %q, want owner", profile.Role)
	}

	stored, err := apptRepo.GetByID(context.Background(), appt.ID)
	if err != nil {
		t.Fatalf("appointment was not persisted: %v", err)
	}
	if stored.OwnerName != "Jane Cruz" || stored.PetName != "Bantay" {
		t.Errorf("persisted appointment lost fields: %+v", stored)
	}
}

func TestBookRejectsExistingAccount(t *testing.T) {
	svc, apptRepo, _, accounts, _ := newBookingFixture()
	accounts.uidByEmail["jane@example.com"] = "uid-existing"

	// The caller has not proven they own this account; knowing the email
	// must not be enough to attach an appointment to it.
	if _, err := svc.Book(context.Background(), validBookingRequest()); !errors.Is(err, ErrAccountExists) {
		t.Fatalf("Book() error = %v, want ErrAccountExists", err)
	}
	if len(apptRepo.byID) != 0 {
		t.Error("no appointment may be created for an account the caller does not own")
	}
	if accounts.seq != 0 {
		t.Errorf("no new account should have been created, got %d", accounts.seq)
	}
}

func TestBookWithoutPhotoUsesPlaceholder(t *testing.T) {
	svc, _, _, _, uploader := newBookingFixture()

	appt, err := svc.Book(context.Background(), validBookingRequest())
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if appt.PhotoURL != testPlaceholderURL {
		t.Errorf("photoURL = %q, want placeholder", appt.PhotoURL)
	}
	if uploader.uploads != 0 {
		t.Errorf("uploader should not have been called, got %d uploads", uploader.uploads)
	}
}

func TestBookFallsBackToPlaceholderWhenUploadFails(t *testing.T) {
	svc, _, _, _, uploader := newBookingFixture()
	uploader.fail = true

	req := validBookingRequest()
	req.Photo = []byte{0xff, 0xd8}
	req.PhotoContentType = "image/jpeg"

	appt, err := svc.Book(context.Background(), req)
	if err != nil {
		t.Fatalf("a failed photo upload must not fail the booking, got %v", err)
	}
	if appt.PhotoURL != testPlaceholderURL {
		t.Errorf("photoURL = %q, want placeholder after failed upload", appt.PhotoURL)
	}
}

func TestBookStoresUploadedPhotoURL(t *testing.T) {
	svc, _, _, _, _ := newBookingFixture()

	req := validBookingRequest()
	req.Photo = []byte{0xff, 0xd8}
	req.PhotoContentType = "image/jpeg"

	appt, err := svc.Book(context.Background(), req)
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if appt.PhotoURL == testPlaceholderURL || appt.PhotoURL == "" {
		t.Errorf("photoURL = %q, want the uploaded object URL", appt.PhotoURL)
	}
}

func TestBookRejectsInvalidRequests(t *testing.T) {
	svc, apptRepo, _, accounts, _ := newBookingFixture()

	req := validBookingRequest()
	req.Phone = "12345"

	if _, err := svc.Book(context.Background(), req); !errors.Is(err, ErrInvalidPhone) {
		t.Fatalf("Book() error = %v, want ErrInvalidPhone", err)
	}
	// Validation failures must happen before any write.
	if accounts.seq != 0 {
		t.Error("no account should be created for an invalid request")
	}
	if len(apptRepo.byID) != 0 {
		t.Error("no appointment should be created for an invalid request")
	}
}

func TestCreateForOwner(t *testing.T) {
	svc, _, profileRepo, _, _ := newBookingFixture()
	profileRepo.byID["uid-owner"] = &models.Profile{
		ID:    "uid-owner",
		Name:  "Jane Cruz",
		Email: "jane@example.com",
		Phone: "09171234567",
		Role:  string(models.RoleOwner),
	}

	req := models.StaffAppointmentRequest{
		OwnerID:     "uid-owner",
		PetName:     "Muning",
		PetType:     "Cat",
		Services:    []models.Service{models.ServiceBoarding},
		ScheduledAt: fixedTime().Add(24 * time.Hour),
	}
	appt, err := svc.CreateForOwner(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateForOwner() error = %v", err)
	}
	if appt.Status != models.StatusPending || appt.Payment != 900 {
		t.Errorf("appointment = status %s payment %d, want Pending 900", appt.Status, appt.Payment)
	}
	if appt.OwnerEmail != "jane@example.com" {
		t.Errorf("owner contact fields should come from the profile, got %q", appt.OwnerEmail)
	}
}

func TestCreateForOwnerUnknownOwner(t *testing.T) {
	svc, _, _, _, _ := newBookingFixture()

	req := models.StaffAppointmentRequest{
		OwnerID:     "uid-missing",
		PetName:     "Muning",
		PetType:     "Cat",
		Services:    []models.Service{models.ServiceBoarding},
		ScheduledAt: fixedTime().Add(24 * time.Hour),
	}
	if _, err := svc.CreateForOwner(context.Background(), req); !errors.Is(err, ErrOwnerNotFound) {
		t.Errorf("CreateForOwner() error = %v, want ErrOwnerNotFound", err)
	}
}
