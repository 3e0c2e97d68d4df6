package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"petcare-backend-go/internal/models"
)

const loginEventsCollection = "login_events"

// firestoreLoginEventRepository implements the LoginEventRepository
// interface using Firestore.
type firestoreLoginEventRepository struct {
	client *firestore.Client
}

// NewFirestoreLoginEventRepository creates a new instance of firestoreLoginEventRepository.
func NewFirestoreLoginEventRepository(client *firestore.Client) LoginEventRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for LoginEventRepository.")
	}
	return &firestoreLoginEventRepository{client: client}
}

// Create appends one login event document. The Timestamp field is populated
// server-side via its serverTimestamp tag.
func (r *firestoreLoginEventRepository) Create(ctx context.Context, event models.LoginEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	_, err := r.client.Collection(loginEventsCollection).Doc(event.ID).Create(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to create login event for user '%s': %w", event.UserID, err)
	}
	return nil
}
