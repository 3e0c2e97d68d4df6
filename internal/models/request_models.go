package models

import "time"

// BookingRequest is the public booking form: owner personal info, pet info,
// selected services and schedule, plus an optional inline photo.
type BookingRequest struct {
	OwnerName string `json:"ownerName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Phone     string `json:"phone" binding:"required"`

	PetName  string `json:"petName" binding:"required"`
	PetType  string `json:"petType" binding:"required"`
	PetBreed string `json:"petBreed,omitempty"`
	PetAge   int    `json:"petAge"`

	Services    []Service `json:"services" binding:"required"`
	Clinic      int       `json:"clinic,omitempty"`
	Room        string    `json:"room,omitempty"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`

	// Photo is base64-decoded by the JSON codec; empty means no photo.
	Photo            []byte `json:"photo,omitempty"`
	PhotoContentType string `json:"photoContentType,omitempty"`
}

// StaffAppointmentRequest creates an appointment on behalf of an existing
// owner, from the staff appointment modal.
type StaffAppointmentRequest struct {
	OwnerID     string    `json:"ownerId" binding:"required"`
	PetName     string    `json:"petName" binding:"required"`
	PetType     string    `json:"petType" binding:"required"`
	PetBreed    string    `json:"petBreed,omitempty"`
	PetAge      int       `json:"petAge"`
	Services    []Service `json:"services" binding:"required"`
	Clinic      int       `json:"clinic,omitempty"`
	Room        string    `json:"room,omitempty"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
}

// DeclineRequest carries the mandatory decline reason.
type DeclineRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// DoneRequest carries the optional completion notes.
type DoneRequest struct {
	Notes string `json:"notes,omitempty"`
}

// UpdateProfileRequest updates the caller's own profile document.
// Pointers distinguish fields not provided from fields cleared.
type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`

	// Avatar replaces the stored avatar image when provided.
	Avatar            []byte `json:"avatar,omitempty"`
	AvatarContentType string `json:"avatarContentType,omitempty"`
}

// SetRoleRequest assigns a dashboard role to a user. Admin path; the value
// must resolve to one of the closed Role enum values.
type SetRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// SetRoomStatusRequest sets a room's status, lazily creating the room record
// when it does not exist yet.
type SetRoomStatusRequest struct {
	Status RoomStatus `json:"status" binding:"required"`
}

// SetRoomImageRequest replaces a room's photo.
type SetRoomImageRequest struct {
	Image            []byte `json:"image" binding:"required"`
	ImageContentType string `json:"imageContentType,omitempty"`
}

// FeedbackRequest is the post-appointment feedback form.
type FeedbackRequest struct {
	Ratings  Ratings   `json:"ratings" binding:"required"`
	Comment  string    `json:"comment,omitempty"`
	Services []Service `json:"services,omitempty"`
}
