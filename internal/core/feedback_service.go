package core

import (
	"context"
	"errors"
	"fmt"

	"petcare-backend-go/internal/db"
	"petcare-backend-go/internal/models"
)

// ErrInvalidRating is returned when a sub-rating falls outside the 1..5 scale.
var ErrInvalidRating = errors.New("ratings must be between 1 and 5")

// feedbackService implements the FeedbackService interface.
type feedbackService struct {
	feedbackRepo db.FeedbackRepository
}

// NewFeedbackService creates a new FeedbackService instance.
func NewFeedbackService(fr db.FeedbackRepository) FeedbackService {
	return &feedbackService{feedbackRepo: fr}
}

// Submit stores one feedback document for the submitting user. Every
// sub-rating of the fixed schema must be on the 1..5 scale.
func (s *feedbackService) Submit(ctx context.Context, userID string, req models.FeedbackRequest) (*models.Feedback, error) {
	for _, rating := range []int{
		req.Ratings.Overall,
		req.Ratings.Handling,
		req.Ratings.Friendliness,
		req.Ratings.BookingEase,
		req.Ratings.Cleanliness,
	} {
		if rating < 1 || rating > 5 {
			return nil, ErrInvalidRating
		}
	}
	if err := validateServices(req.Services); err != nil && !errors.Is(err, ErrNoServices) {
		// Service tags are optional on feedback, but present ones must be known.
		return nil, err
	}

	fb := &models.Feedback{
		UserID:   userID,
		Ratings:  req.Ratings,
		Comment:  req.Comment,
		Services: req.Services,
	}
	if _, err := s.feedbackRepo.Create(ctx, fb); err != nil {
		return nil, fmt.Errorf("failed to store feedback: %w", err)
	}
	return fb, nil
}

// List retrieves all feedback entries, newest first.
func (s *feedbackService) List(ctx context.Context) ([]*models.Feedback, error) {
	entries, err := s.feedbackRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return entries, nil
}
