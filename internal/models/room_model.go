package models

import "time"

// RoomStatus is the closed status enum for a room. Free-text values are
// rejected at the service layer; the store never sees anything outside this
// set.
type RoomStatus string

const (
	RoomAvailable RoomStatus = "Available"
	RoomOccupied  RoomStatus = "Occupied"
	RoomReserved  RoomStatus = "Reserved"
	RoomCleaning  RoomStatus = "Cleaning"
)

// ValidRoomStatus reports whether s is one of the four allowed values.
func ValidRoomStatus(s RoomStatus) bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomReserved, RoomCleaning:
		return true
	}
	return false
}

// Room is one clinic-scoped room record. One document per (clinic, label);
// the repository derives the document ID from that pair so concurrent lazy
// creates for the same label collapse onto one document.
type Room struct {
	ID        string     `json:"id" firestore:"-"`
	Clinic    int        `json:"clinic" firestore:"clinic"`
	Label     string     `json:"label" firestore:"label"` // letter or number identifier
	Status    RoomStatus `json:"status" firestore:"status"`
	ImageURL  string     `json:"imageURL,omitempty" firestore:"imageURL,omitempty"`
	CreatedAt time.Time  `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time  `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
