package core

import (
	"errors"
	"regexp"
	"time"

	"petcare-backend-go/internal/models"
)

// Validation errors surfaced by the booking workflow. Handlers map these to
// 400 responses.
var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrWeakPassword    = errors.New("password must be at least 8 characters")
	ErrInvalidPhone    = errors.New("invalid Philippine mobile number")
	ErrPastSchedule    = errors.New("requested schedule is in the past")
	ErrNoServices      = errors.New("at least one service must be selected")
	ErrUnknownService  = errors.New("unknown service selected")
	ErrMissingPetName  = errors.New("pet name is required")
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// phonePattern accepts 09XXXXXXXXX or +63XXXXXXXXX, nothing else.
	phonePattern = regexp.MustCompile(`^(09\d{9}|\+63\d{10})$`)
)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPhone reports whether s is a Philippine mobile number in either the
// local (09XXXXXXXXX) or international (+63XXXXXXXXX) form.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// validateServices checks the selection is non-empty and every entry is a
// known offering.
func validateServices(services []models.Service) error {
	if len(services) == 0 {
		return ErrNoServices
	}
	for _, s := range services {
		if !models.KnownService(s) {
			return ErrUnknownService
		}
	}
	return nil
}

// validateSchedule rejects dates in the past, and times in the past when the
// requested date is today.
func validateSchedule(scheduledAt, now time.Time) error {
	if scheduledAt.Before(now) {
		return ErrPastSchedule
	}
	return nil
}

// validateBooking runs the full public-booking validation set.
func validateBooking(req models.BookingRequest, now time.Time) error {
	if !ValidEmail(req.Email) {
		return ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return ErrWeakPassword
	}
	if !ValidPhone(req.Phone) {
		return ErrInvalidPhone
	}
	if req.PetName == "" {
		return ErrMissingPetName
	}
	if err := validateServices(req.Services); err != nil {
		return err
	}
	return validateSchedule(req.ScheduledAt, now)
}
