package models

import "time"

// Ratings holds the fixed sub-rating schema of a feedback submission.
// Each value is on a 1..5 scale.
type Ratings struct {
	Overall      int `json:"overall" firestore:"overall"`
	Handling     int `json:"handling" firestore:"handling"`
	Friendliness int `json:"friendliness" firestore:"friendliness"`
	BookingEase  int `json:"bookingEase" firestore:"bookingEase"`
	Cleanliness  int `json:"cleanliness" firestore:"cleanliness"`
}

// Feedback is one submission event. Feedback documents are write-once: they
// are never mutated or deleted after creation.
type Feedback struct {
	ID        string    `json:"id" firestore:"-"`
	UserID    string    `json:"userId" firestore:"userId"`
	Ratings   Ratings   `json:"ratings" firestore:"ratings"`
	Comment   string    `json:"comment,omitempty" firestore:"comment,omitempty"`
	Services  []Service `json:"services,omitempty" firestore:"services,omitempty"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
