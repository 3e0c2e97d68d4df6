package core

import (
	"context"
	"errors"
	"testing"

	"petcare-backend-go/internal/models"
)

func validRatings() models.Ratings {
	return models.Ratings{
		Overall:      5,
		Handling:     4,
		Friendliness: 5,
		BookingEase:  3,
		Cleanliness:  4,
	}
}

func TestSubmitFeedback(t *testing.T) {
	repo := newTestFeedbackRepo()
	svc := NewFeedbackService(repo)

	fb, err := svc.Submit(context.Background(), "uid-1", models.FeedbackRequest{
		Ratings:  validRatings(),
		Comment:  "smooth visit",
		Services: []models.Service{models.ServiceGrooming},
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if fb.UserID != "uid-1" || fb.Comment != "smooth visit" {
		t.Errorf("stored feedback = %+v", fb)
	}

	entries, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("feedback count = %d, want 1", len(entries))
	}
}

func TestSubmitFeedbackRatingBounds(t *testing.T) {
	repo := newTestFeedbackRepo()
	svc := NewFeedbackService(repo)

	for _, bad := range []int{0, 6, -1} {
		ratings := validRatings()
		ratings.Cleanliness = bad
		if _, err := svc.Submit(context.Background(), "uid-1", models.FeedbackRequest{Ratings: ratings}); !errors.Is(err, ErrInvalidRating) {
			t.Errorf("Submit() with cleanliness %d: error = %v, want ErrInvalidRating", bad, err)
		}
	}
	if len(repo.entries) != 0 {
		t.Error("invalid feedback must not be stored")
	}
}

func TestSubmitFeedbackServiceTags(t *testing.T) {
	svc := NewFeedbackService(newTestFeedbackRepo())

	// No tags is fine; an unknown tag is not.
	if _, err := svc.Submit(context.Background(), "uid-1", models.FeedbackRequest{Ratings: validRatings()}); err != nil {
		t.Errorf("Submit() without service tags: error = %v", err)
	}
	req := models.FeedbackRequest{
		Ratings:  validRatings(),
		Services: []models.Service{"Pet Massage"},
	}
	if _, err := svc.Submit(context.Background(), "uid-1", req); !errors.Is(err, ErrUnknownService) {
		t.Errorf("Submit() with unknown tag: error = %v, want ErrUnknownService", err)
	}
}
