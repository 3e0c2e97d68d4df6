package models

import "time"

// Service is one of the fixed offering types. Prices are static: the payment
// on an appointment is computed from this table at creation time and never
// recomputed afterwards.
type Service string

const (
	ServiceGrooming   Service = "Pet Grooming"
	ServiceVeterinary Service = "Pet Veterinary"
	ServiceBoarding   Service = "Pet Boarding"
	ServiceTraining   Service = "Pet Training"
)

// servicePrices is the static per-service price table (PHP).
var servicePrices = map[Service]int{
	ServiceGrooming:   500,
	ServiceVeterinary: 700,
	ServiceBoarding:   900,
	ServiceTraining:   1000,
}

// KnownService reports whether s is one of the supported offerings.
func KnownService(s Service) bool {
	_, ok := servicePrices[s]
	return ok
}

// PriceFor returns the total payment for the selected services, summing the
// static price table. The second return value is false if any service is
// unknown.
func PriceFor(services []Service) (int, bool) {
	total := 0
	for _, s := range services {
		price, ok := servicePrices[s]
		if !ok {
			return 0, false
		}
		total += price
	}
	return total, true
}

// Status is the appointment lifecycle field. Transitions are one-directional:
// Pending -> {Accepted, Declined}; Accepted -> Done. Declined and Done are
// terminal.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusAccepted Status = "Accepted"
	StatusDeclined Status = "Declined"
	StatusDone     Status = "Done"
)

// Terminal reports whether no further transition is allowed out of s.
func (s Status) Terminal() bool {
	return s == StatusDeclined || s == StatusDone
}

// CanTransitionTo reports whether the move from s to next is allowed by the
// status graph.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusAccepted || next == StatusDeclined
	case StatusAccepted:
		return next == StatusDone
	}
	return false
}

// Appointment is the merged pet/appointment document: one booking for one pet.
type Appointment struct {
	ID string `json:"id" firestore:"-"` // Document ID, auto-generated

	OwnerID    string `json:"ownerId" firestore:"ownerId"` // Firebase Auth UID of the owner
	OwnerName  string `json:"ownerName" firestore:"ownerName"`
	OwnerEmail string `json:"ownerEmail" firestore:"ownerEmail"`
	OwnerPhone string `json:"ownerPhone" firestore:"ownerPhone"`

	PetName  string `json:"petName" firestore:"petName"`
	PetType  string `json:"petType" firestore:"petType"` // species: Dog, Cat, ...
	PetBreed string `json:"petBreed,omitempty" firestore:"petBreed,omitempty"`
	PetAge   int    `json:"petAge" firestore:"petAge"`
	PhotoURL string `json:"photoURL,omitempty" firestore:"photoURL,omitempty"`

	Services    []Service `json:"services" firestore:"services"`
	Clinic      int       `json:"clinic,omitempty" firestore:"clinic,omitempty"` // 0 when not clinic-scoped
	Room        string    `json:"room,omitempty" firestore:"room,omitempty"`
	ScheduledAt time.Time `json:"scheduledAt" firestore:"scheduledAt"`
	Payment     int       `json:"payment" firestore:"payment"`

	Status        Status `json:"status" firestore:"status"`
	DeclineReason string `json:"declineReason,omitempty" firestore:"declineReason,omitempty"`
	DoneNotes     string `json:"doneNotes,omitempty" firestore:"doneNotes,omitempty"`
	IsRead        bool   `json:"isRead" firestore:"isRead"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
