package core

import (
	"context"
	"errors"
	"fmt"

	"petcare-backend-go/internal/db"
	"petcare-backend-go/internal/models"
	"petcare-backend-go/internal/storage"
)

// Custom errors for the RoomService.
var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrInvalidRoomStatus = errors.New("invalid room status")
	ErrEmptyRoomLabel    = errors.New("room label is required")
)

// defaultRoomLabels is the fixed initial room set seeded per clinic.
var defaultRoomLabels = []string{"A", "B", "C", "D", "E"}

// roomService implements the RoomService interface.
type roomService struct {
	roomRepo db.RoomRepository
	uploader storage.Uploader
}

// NewRoomService creates a new RoomService instance.
func NewRoomService(rr db.RoomRepository, uploader storage.Uploader) RoomService {
	return &roomService{
		roomRepo: rr,
		uploader: uploader,
	}
}

// List retrieves all rooms of a clinic.
func (s *roomService) List(ctx context.Context, clinic int) ([]*models.Room, error) {
	rooms, err := s.roomRepo.ListByClinic(ctx, clinic)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms for clinic %d: %w", clinic, err)
	}
	return rooms, nil
}

// Seed creates the fixed initial room set for a clinic, all Available.
// Labels that already have a record are left untouched.
func (s *roomService) Seed(ctx context.Context, clinic int) ([]*models.Room, error) {
	for _, label := range defaultRoomLabels {
		_, err := s.roomRepo.Get(ctx, clinic, label)
		if err == nil {
			continue
		}
		if !errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("failed to check room '%s' in clinic %d: %w", label, clinic, err)
		}
		room := &models.Room{
			Clinic: clinic,
			Label:  label,
			Status: models.RoomAvailable,
		}
		if err := s.roomRepo.Upsert(ctx, room); err != nil {
			return nil, fmt.Errorf("failed to seed room '%s' in clinic %d: %w", label, clinic, err)
		}
	}
	return s.List(ctx, clinic)
}

// SetStatus updates a room's status, creating the record lazily when absent.
// The status enum is enforced here; the store never sees free-text values.
func (s *roomService) SetStatus(ctx context.Context, clinic int, label string, status models.RoomStatus) (*models.Room, error) {
	if label == "" {
		return nil, ErrEmptyRoomLabel
	}
	if !models.ValidRoomStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRoomStatus, status)
	}

	room, err := s.roomRepo.Get(ctx, clinic, label)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("failed to get room '%s' in clinic %d: %w", label, clinic, err)
		}
		room = &models.Room{Clinic: clinic, Label: label}
	}
	room.Status = status

	if err := s.roomRepo.Upsert(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to upsert room '%s' in clinic %d: %w", label, clinic, err)
	}
	return room, nil
}

// SetImage uploads the room image and stores its URL, creating the record
// lazily when absent (new rooms start Available).
func (s *roomService) SetImage(ctx context.Context, clinic int, label string, image []byte, contentType string) (*models.Room, error) {
	if label == "" {
		return nil, ErrEmptyRoomLabel
	}
	if s.uploader == nil {
		return nil, errors.New("media uploader is not configured")
	}

	url, err := s.uploader.Upload(ctx, "rooms", image, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image for room '%s': %w", label, err)
	}

	room, err := s.roomRepo.Get(ctx, clinic, label)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("failed to get room '%s' in clinic %d: %w", label, clinic, err)
		}
		room = &models.Room{Clinic: clinic, Label: label, Status: models.RoomAvailable}
	}
	room.ImageURL = url

	if err := s.roomRepo.Upsert(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to upsert room '%s' in clinic %d: %w", label, clinic, err)
	}
	return room, nil
}

// Delete removes a room record.
func (s *roomService) Delete(ctx context.Context, clinic int, label string) error {
	if label == "" {
		return ErrEmptyRoomLabel
	}
	if err := s.roomRepo.Delete(ctx, clinic, label); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: '%s' in clinic %d", ErrRoomNotFound, label, clinic)
		}
		return fmt.Errorf("failed to delete room '%s' in clinic %d: %w", label, clinic, err)
	}
	return nil
}
