package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"petcare-backend-go/internal/models"
)

const feedbackCollection = "feedback"

// firestoreFeedbackRepository implements the FeedbackRepository interface
// using Firestore.
type firestoreFeedbackRepository struct {
	client *firestore.Client
}

// NewFirestoreFeedbackRepository creates a new instance of firestoreFeedbackRepository.
func NewFirestoreFeedbackRepository(client *firestore.Client) FeedbackRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for FeedbackRepository.")
	}
	return &firestoreFeedbackRepository{client: client}
}

// Create adds a feedback document with an auto-generated ID. Feedback is
// write-once; there is no update path.
func (r *firestoreFeedbackRepository) Create(ctx context.Context, fb *models.Feedback) (string, error) {
	docRef := r.client.Collection(feedbackCollection).NewDoc()
	fb.ID = docRef.ID

	_, err := docRef.Create(ctx, fb)
	if err != nil {
		return "", fmt.Errorf("failed to create feedback: %w", err)
	}
	return docRef.ID, nil
}

// List retrieves all feedback documents, newest first.
func (r *firestoreFeedbackRepository) List(ctx context.Context) ([]*models.Feedback, error) {
	iter := r.client.Collection(feedbackCollection).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var entries []*models.Feedback
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate feedback: %w", err)
		}

		var fb models.Feedback
		if err := doc.DataTo(&fb); err != nil {
			log.Printf("Error decoding feedback data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		fb.ID = doc.Ref.ID
		entries = append(entries, &fb)
	}

	return entries, nil
}
