package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"petcare-backend-go/internal/models"
)

const usersCollection = "users"

// ErrNotFound is the common error for when a document is not found in Firestore.
var ErrNotFound = errors.New("document not found")

// firestoreProfileRepository implements the ProfileRepository interface using Firestore.
type firestoreProfileRepository struct {
	client *firestore.Client
}

// NewFirestoreProfileRepository creates a new instance of firestoreProfileRepository.
func NewFirestoreProfileRepository(client *firestore.Client) ProfileRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ProfileRepository.")
	}
	return &firestoreProfileRepository{client: client}
}

// Create adds a new profile document. The profile.ID (Firebase Auth UID) is
// used as the Firestore document ID, which enforces one profile per account.
// CreatedAt/UpdatedAt are populated server-side via the serverTimestamp tags.
func (r *firestoreProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if profile.ID == "" {
		return errors.New("profile ID cannot be empty for Create operation")
	}
	_, err := r.client.Collection(usersCollection).Doc(profile.ID).Create(ctx, profile)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("profile with ID '%s' already exists: %w", profile.ID, err)
		}
		return fmt.Errorf("failed to create profile with ID '%s': %w", profile.ID, err)
	}
	return nil
}

// GetByID retrieves a profile document by its ID (Firebase Auth UID).
func (r *firestoreProfileRepository) GetByID(ctx context.Context, userID string) (*models.Profile, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(usersCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("profile with ID '%s' not found: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get profile with ID '%s': %w", userID, err)
	}

	var profile models.Profile
	if err := docSnap.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile data for ID '%s': %w", userID, err)
	}
	profile.ID = docSnap.Ref.ID

	return &profile, nil
}

// GetByEmail retrieves a profile document by its email field. Returns
// ErrNotFound when no profile carries the email.
func (r *firestoreProfileRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	if email == "" {
		return nil, errors.New("email cannot be empty for GetByEmail operation")
	}
	iter := r.client.Collection(usersCollection).Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("profile with email '%s' not found: %w", email, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query profile by email '%s': %w", email, err)
	}

	var profile models.Profile
	if err := doc.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile data for email '%s': %w", email, err)
	}
	profile.ID = doc.Ref.ID

	return &profile, nil
}

// Update persists the profile's mutable fields (name, phone, avatar, role)
// via field-path updates and bumps updatedAt with a server timestamp.
func (r *firestoreProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	if profile.ID == "" {
		return errors.New("profile ID cannot be empty for Update operation")
	}
	_, err := r.client.Collection(usersCollection).Doc(profile.ID).Update(ctx, []firestore.Update{
		{Path: "name", Value: profile.Name},
		{Path: "phone", Value: profile.Phone},
		{Path: "avatarURL", Value: profile.AvatarURL},
		{Path: "role", Value: profile.Role},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("profile with ID '%s' not found: %w", profile.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to update profile with ID '%s': %w", profile.ID, err)
	}
	return nil
}

// Delete removes a profile document. Admin-only path. The Exists precondition
// makes a delete of a missing document report ErrNotFound.
func (r *firestoreProfileRepository) Delete(ctx context.Context, userID string) error {
	if userID == "" {
		return errors.New("userID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(usersCollection).Doc(userID).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("profile with ID '%s' not found for deletion: %w", userID, ErrNotFound)
		}
		return fmt.Errorf("failed to delete profile with ID '%s': %w", userID, err)
	}
	return nil
}

// List retrieves all profile documents, ordered by creation time.
func (r *firestoreProfileRepository) List(ctx context.Context) ([]*models.Profile, error) {
	iter := r.client.Collection(usersCollection).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var profiles []*models.Profile
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate profiles: %w", err)
		}

		var profile models.Profile
		if err := doc.DataTo(&profile); err != nil {
			log.Printf("Error decoding profile data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		profile.ID = doc.Ref.ID
		profiles = append(profiles, &profile)
	}

	return profiles, nil
}
