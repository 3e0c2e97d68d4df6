package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"petcare-backend-go/internal/models"
)

const roomsCollection = "rooms"

// roomDocID derives a deterministic document ID from the (clinic, label)
// pair. Two clients lazily creating the same room therefore race on one
// document instead of creating duplicates.
func roomDocID(clinic int, label string) string {
	return fmt.Sprintf("clinic%d-%s", clinic, strings.ToUpper(strings.TrimSpace(label)))
}

// firestoreRoomRepository implements the RoomRepository interface using Firestore.
type firestoreRoomRepository struct {
	client *firestore.Client
}

// NewFirestoreRoomRepository creates a new instance of firestoreRoomRepository.
func NewFirestoreRoomRepository(client *firestore.Client) RoomRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for RoomRepository.")
	}
	return &firestoreRoomRepository{client: client}
}

// Get retrieves the room record for (clinic, label).
func (r *firestoreRoomRepository) Get(ctx context.Context, clinic int, label string) (*models.Room, error) {
	if label == "" {
		return nil, errors.New("label cannot be empty for Get operation")
	}
	docSnap, err := r.client.Collection(roomsCollection).Doc(roomDocID(clinic, label)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("room '%s' in clinic %d not found: %w", label, clinic, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get room '%s' in clinic %d: %w", label, clinic, err)
	}

	var room models.Room
	if err := docSnap.DataTo(&room); err != nil {
		return nil, fmt.Errorf("failed to decode room data for '%s': %w", docSnap.Ref.ID, err)
	}
	room.ID = docSnap.Ref.ID

	return &room, nil
}

// Upsert writes the room record at its deterministic document ID, creating
// it when absent. The merge is map-based so only the carried fields are
// touched; updatedAt is bumped server-side, and createdAt is stamped once on
// first creation.
func (r *firestoreRoomRepository) Upsert(ctx context.Context, room *models.Room) error {
	if room.Label == "" {
		return errors.New("room label cannot be empty for Upsert operation")
	}
	docID := roomDocID(room.Clinic, room.Label)
	room.ID = docID

	data := map[string]interface{}{
		"clinic":    room.Clinic,
		"label":     room.Label,
		"status":    string(room.Status),
		"updatedAt": firestore.ServerTimestamp,
	}
	if room.ImageURL != "" {
		data["imageURL"] = room.ImageURL
	}
	if room.CreatedAt.IsZero() {
		data["createdAt"] = firestore.ServerTimestamp
	}

	_, err := r.client.Collection(roomsCollection).Doc(docID).Set(ctx, data, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to upsert room '%s': %w", docID, err)
	}
	return nil
}

// ListByClinic retrieves all room records for a clinic, ordered by label.
func (r *firestoreRoomRepository) ListByClinic(ctx context.Context, clinic int) ([]*models.Room, error) {
	iter := r.client.Collection(roomsCollection).
		Where("clinic", "==", clinic).
		OrderBy("label", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var rooms []*models.Room
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate rooms for clinic %d: %w", clinic, err)
		}

		var room models.Room
		if err := doc.DataTo(&room); err != nil {
			log.Printf("Error decoding room data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		room.ID = doc.Ref.ID
		rooms = append(rooms, &room)
	}

	return rooms, nil
}

// Delete removes the room record for (clinic, label). The Exists
// precondition makes a delete of a missing document report ErrNotFound.
func (r *firestoreRoomRepository) Delete(ctx context.Context, clinic int, label string) error {
	if label == "" {
		return errors.New("label cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(roomsCollection).Doc(roomDocID(clinic, label)).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("room '%s' in clinic %d not found for deletion: %w", label, clinic, ErrNotFound)
		}
		return fmt.Errorf("failed to delete room '%s' in clinic %d: %w", label, clinic, err)
	}
	return nil
}
