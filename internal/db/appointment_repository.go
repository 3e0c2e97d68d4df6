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

const appointmentsCollection = "appointments"

// firestoreAppointmentRepository implements the AppointmentRepository
// interface using Firestore.
type firestoreAppointmentRepository struct {
	client *firestore.Client
}

// NewFirestoreAppointmentRepository creates a new instance of firestoreAppointmentRepository.
func NewFirestoreAppointmentRepository(client *firestore.Client) AppointmentRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for AppointmentRepository.")
	}
	return &firestoreAppointmentRepository{client: client}
}

// Create adds a new appointment document with an auto-generated ID and sets
// appt.ID with that ID before the write. CreatedAt/UpdatedAt are handled by
// serverTimestamp tags.
func (r *firestoreAppointmentRepository) Create(ctx context.Context, appt *models.Appointment) (string, error) {
	docRef := r.client.Collection(appointmentsCollection).NewDoc()
	appt.ID = docRef.ID

	_, err := docRef.Create(ctx, appt)
	if err != nil {
		return "", fmt.Errorf("failed to create appointment: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves an appointment document by its ID.
func (r *firestoreAppointmentRepository) GetByID(ctx context.Context, apptID string) (*models.Appointment, error) {
	if apptID == "" {
		return nil, errors.New("apptID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(appointmentsCollection).Doc(apptID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("appointment with ID '%s' not found: %w", apptID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get appointment with ID '%s': %w", apptID, err)
	}

	var appt models.Appointment
	if err := docSnap.DataTo(&appt); err != nil {
		return nil, fmt.Errorf("failed to decode appointment data for ID '%s': %w", apptID, err)
	}
	appt.ID = docSnap.Ref.ID

	return &appt, nil
}

// Update persists the appointment's workflow fields (status, decline reason,
// done notes, read flag) via field-path updates and bumps updatedAt with a
// server timestamp. Writes are last-write-wins; there is no optimistic
// concurrency control, per the store's model.
func (r *firestoreAppointmentRepository) Update(ctx context.Context, appt *models.Appointment) error {
	if appt.ID == "" {
		return errors.New("appointment ID cannot be empty for Update operation")
	}
	_, err := r.client.Collection(appointmentsCollection).Doc(appt.ID).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(appt.Status)},
		{Path: "declineReason", Value: appt.DeclineReason},
		{Path: "doneNotes", Value: appt.DoneNotes},
		{Path: "isRead", Value: appt.IsRead},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("appointment with ID '%s' not found: %w", appt.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to update appointment with ID '%s': %w", appt.ID, err)
	}
	return nil
}

// Delete removes an appointment document. The Exists precondition makes a
// delete of a missing document report ErrNotFound instead of succeeding
// silently.
func (r *firestoreAppointmentRepository) Delete(ctx context.Context, apptID string) error {
	if apptID == "" {
		return errors.New("apptID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(appointmentsCollection).Doc(apptID).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("appointment with ID '%s' not found for deletion: %w", apptID, ErrNotFound)
		}
		return fmt.Errorf("failed to delete appointment with ID '%s': %w", apptID, err)
	}
	return nil
}

// ListByFilter retrieves appointments matching the filter, newest first.
// Each filter dimension maps onto one Firestore Where clause; zero values
// add no clause.
func (r *firestoreAppointmentRepository) ListByFilter(ctx context.Context, filter AppointmentFilter) ([]*models.Appointment, error) {
	query := r.client.Collection(appointmentsCollection).Query

	if filter.OwnerID != "" {
		query = query.Where("ownerId", "==", filter.OwnerID)
	}
	if filter.Clinic != 0 {
		query = query.Where("clinic", "==", filter.Clinic)
	}
	if filter.Service != "" {
		query = query.Where("services", "array-contains", string(filter.Service))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		query = query.Where("status", "in", statuses)
	}
	query = query.OrderBy("updatedAt", firestore.Desc)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var appts []*models.Appointment
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate appointments: %w", err)
		}

		var appt models.Appointment
		if err := doc.DataTo(&appt); err != nil {
			log.Printf("Error decoding appointment data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		appt.ID = doc.Ref.ID
		appts = append(appts, &appt)
	}

	return appts, nil
}

// SetRead flips the persisted read flag on an appointment document without
// touching the rest of the document.
func (r *firestoreAppointmentRepository) SetRead(ctx context.Context, apptID string, read bool) error {
	if apptID == "" {
		return errors.New("apptID cannot be empty for SetRead operation")
	}
	_, err := r.client.Collection(appointmentsCollection).Doc(apptID).Update(ctx, []firestore.Update{
		{Path: "isRead", Value: read},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("appointment with ID '%s' not found for SetRead: %w", apptID, ErrNotFound)
		}
		return fmt.Errorf("failed to set read flag on appointment '%s': %w", apptID, err)
	}
	return nil
}
