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

// Custom errors for the ProfileService.
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrUnknownRole     = errors.New("unknown role")
)

// profileService implements the ProfileService interface.
type profileService struct {
	profileRepo db.ProfileRepository
	loginRepo   db.LoginEventRepository
	accounts    db.AuthAccounts
	uploader    storage.Uploader
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(
	pr db.ProfileRepository,
	lr db.LoginEventRepository,
	accounts db.AuthAccounts,
	uploader storage.Uploader,
) ProfileService {
	return &profileService{
		profileRepo: pr,
		loginRepo:   lr,
		accounts:    accounts,
		uploader:    uploader,
	}
}

// GetOrCreate retrieves a profile by UID. If none exists, it creates an
// owner profile seeded from the auth token claims. Returns the profile and
// whether it was created.
func (s *profileService) GetOrCreate(ctx context.Context, userID, email, displayName, photoURL string) (*models.Profile, bool, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			newProfile := &models.Profile{
				ID:        userID, // Auth UID is the document ID
				Name:      displayName,
				Email:     email,
				AvatarURL: photoURL,
				Role:      string(models.RoleOwner),
				CreatedAt: time.Now().UTC(),
				UpdatedAt: time.Now().UTC(),
			}
			if createErr := s.profileRepo.Create(ctx, newProfile); createErr != nil {
				return nil, false, fmt.Errorf("failed to create profile (id: %s) after not found: %w", userID, createErr)
			}
			return newProfile, true, nil
		}
		return nil, false, fmt.Errorf("failed to get profile by ID '%s' from repository: %w", userID, err)
	}
	return profile, false, nil
}

// GetByID retrieves a profile by its UID.
func (s *profileService) GetByID(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: profile with ID '%s'", ErrProfileNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get profile by ID '%s' from repository: %w", userID, err)
	}
	return profile, nil
}

// Update applies the provided fields to the caller's profile. A provided
// avatar image is uploaded first and its URL stored on the document.
func (s *profileService) Update(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Phone != nil {
		if *req.Phone != "" && !ValidPhone(*req.Phone) {
			return nil, ErrInvalidPhone
		}
		profile.Phone = *req.Phone
	}
	if len(req.Avatar) > 0 && s.uploader != nil {
		url, upErr := s.uploader.Upload(ctx, "avatars", req.Avatar, req.AvatarContentType)
		if upErr != nil {
			return nil, fmt.Errorf("failed to upload avatar for '%s': %w", userID, upErr)
		}
		profile.AvatarURL = url
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile '%s': %w", userID, err)
	}
	return profile, nil
}

// SetRole assigns a dashboard role to a user's profile. The stored value is
// the canonical enum string, so legacy forms like "clinic 2" normalize on
// assignment instead of at every session load.
func (s *profileService) SetRole(ctx context.Context, userID, role string) (*models.Profile, error) {
	canonical, ok := models.CanonicalRole(role)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	profile, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.Role = string(canonical)

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to set role on profile '%s': %w", userID, err)
	}
	return profile, nil
}

// List retrieves all profiles. Admin path.
func (s *profileService) List(ctx context.Context) ([]*models.Profile, error) {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// Delete removes the profile document and the backing auth account. The
// profile goes first; a dangling auth account is recoverable, a dangling
// profile is not.
func (s *profileService) Delete(ctx context.Context, userID string) error {
	if err := s.profileRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: profile with ID '%s'", ErrProfileNotFound, userID)
		}
		return fmt.Errorf("failed to delete profile '%s': %w", userID, err)
	}
	if s.accounts != nil {
		if err := s.accounts.DeleteAccount(ctx, userID); err != nil && !errors.Is(err, db.ErrAccountNotFound) {
			return fmt.Errorf("profile deleted but auth account removal failed for '%s': %w", userID, err)
		}
	}
	return nil
}

// RecordLogin appends a login event to the login_events collection. A failed
// write is logged and swallowed; login auditing never blocks a session.
func (s *profileService) RecordLogin(ctx context.Context, event models.LoginEvent) {
	if s.loginRepo == nil {
		return
	}
	if err := s.loginRepo.Create(ctx, event); err != nil {
		log.Printf("RecordLogin: failed to store login event for user '%s': %v", event.UserID, err)
	}
}
