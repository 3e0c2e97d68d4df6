package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"petcare-backend-go/internal/db"
	"petcare-backend-go/internal/models"
	"petcare-backend-go/internal/storage"
)

// Custom errors for the BookingService.
var (
	// ErrOwnerNotFound is returned when a staff-created appointment references
	// a missing owner profile.
	ErrOwnerNotFound = errors.New("owner profile not found")
	// ErrAccountExists is returned when the public booking email already has
	// an auth account. The admin SDK cannot check the submitted password, so
	// the booking is never attached to an account the caller has not proven
	// they own.
	ErrAccountExists = errors.New("an account already exists for this email")
)

// bookingService implements the BookingService interface.
type bookingService struct {
	apptRepo       db.AppointmentRepository
	profileRepo    db.ProfileRepository
	accounts       db.AuthAccounts
	uploader       storage.Uploader
	placeholderURL string

	now func() time.Time
}

// NewBookingService creates a new BookingService instance. placeholderURL is
// stored on bookings whose photo is absent or whose upload fails.
func NewBookingService(
	ar db.AppointmentRepository,
	pr db.ProfileRepository,
	accounts db.AuthAccounts,
	uploader storage.Uploader,
	placeholderURL string,
) BookingService {
	return &bookingService{
		apptRepo:       ar,
		profileRepo:    pr,
		accounts:       accounts,
		uploader:       uploader,
		placeholderURL: placeholderURL,
		now:            time.Now,
	}
}

// Book runs the public booking workflow. The account step is create-only: an
// email that already has an auth account aborts with ErrAccountExists, and
// that owner books through an authenticated session instead. Profile creation
// stays get-or-create keyed by UID, so a retried booking after a partial
// failure past account creation does not duplicate the profile. The
// appointment write itself is the last step; no cross-document transaction is
// attempted.
func (s *bookingService) Book(ctx context.Context, req models.BookingRequest) (*models.Appointment, error) {
	now := s.now().UTC()
	if err := validateBooking(req, now); err != nil {
		return nil, err
	}

	// Create the owner account. An existing one belongs to somebody who can
	// log in; never book against it on an unauthenticated request.
	_, err := s.accounts.GetUIDByEmail(ctx, req.Email)
	if err == nil {
		return nil, fmt.Errorf("%w: '%s'", ErrAccountExists, req.Email)
	}
	if !errors.Is(err, db.ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to resolve account for '%s': %w", req.Email, err)
	}
	uid, err := s.accounts.CreateAccount(ctx, req.Email, req.Password, req.OwnerName)
	if err != nil {
		return nil, fmt.Errorf("failed to create account for '%s': %w", req.Email, err)
	}

	// Ensure the profile document exists for the account.
	if _, err := s.profileRepo.GetByID(ctx, uid); err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("failed to load profile '%s': %w", uid, err)
		}
		profile := &models.Profile{
			ID:        uid,
			Name:      req.OwnerName,
			Email:     req.Email,
			Phone:     req.Phone,
			Role:      string(models.RoleOwner),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, fmt.Errorf("failed to create profile '%s': %w", uid, err)
		}
	}

	photoURL := s.uploadPhotoOrPlaceholder(ctx, req.Photo, req.PhotoContentType)

	payment, ok := models.PriceFor(req.Services)
	if !ok {
		return nil, ErrUnknownService
	}

	appt := &models.Appointment{
		OwnerID:     uid,
		OwnerName:   req.OwnerName,
		OwnerEmail:  req.Email,
		OwnerPhone:  req.Phone,
		PetName:     req.PetName,
		PetType:     req.PetType,
		PetBreed:    req.PetBreed,
		PetAge:      req.PetAge,
		PhotoURL:    photoURL,
		Services:    req.Services,
		Clinic:      req.Clinic,
		Room:        req.Room,
		ScheduledAt: req.ScheduledAt,
		Payment:     payment,
		Status:      models.StatusPending,
		IsRead:      false,
	}
	if _, err := s.apptRepo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return appt, nil
}

// CreateForOwner creates a Pending appointment for an existing owner. Staff
// path: no account creation, no password, same pricing table.
func (s *bookingService) CreateForOwner(ctx context.Context, req models.StaffAppointmentRequest) (*models.Appointment, error) {
	if req.PetName == "" {
		return nil, ErrMissingPetName
	}
	if err := validateServices(req.Services); err != nil {
		return nil, err
	}
	if err := validateSchedule(req.ScheduledAt, s.now().UTC()); err != nil {
		return nil, err
	}

	owner, err := s.profileRepo.GetByID(ctx, req.OwnerID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrOwnerNotFound, req.OwnerID)
		}
		return nil, fmt.Errorf("failed to load owner profile '%s': %w", req.OwnerID, err)
	}

	payment, ok := models.PriceFor(req.Services)
	if !ok {
		return nil, ErrUnknownService
	}

	appt := &models.Appointment{
		OwnerID:     owner.ID,
		OwnerName:   owner.Name,
		OwnerEmail:  owner.Email,
		OwnerPhone:  owner.Phone,
		PetName:     req.PetName,
		PetType:     req.PetType,
		PetBreed:    req.PetBreed,
		PetAge:      req.PetAge,
		PhotoURL:    s.placeholderURL,
		Services:    req.Services,
		Clinic:      req.Clinic,
		Room:        req.Room,
		ScheduledAt: req.ScheduledAt,
		Payment:     payment,
		Status:      models.StatusPending,
		IsRead:      false,
	}
	if _, err := s.apptRepo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return appt, nil
}

// uploadPhotoOrPlaceholder uploads the pet photo when present. Absence or a
// failed upload falls back to the placeholder reference; the booking goes
// through either way.
func (s *bookingService) uploadPhotoOrPlaceholder(ctx context.Context, photo []byte, contentType string) string {
	if len(photo) == 0 || s.uploader == nil {
		return s.placeholderURL
	}
	url, err := s.uploader.Upload(ctx, "pets", photo, contentType)
	if err != nil {
		log.Printf("Booking: pet photo upload failed, using placeholder: %v", err)
		return s.placeholderURL
	}
	return url
}
