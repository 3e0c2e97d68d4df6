package models

import "time"

// Profile is a user's profile document. The Firebase Auth UID is the
// document ID, which keeps the one-profile-per-account invariant for free.
type Profile struct {
	ID        string    `json:"id" firestore:"-"`
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Phone     string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	AvatarURL string    `json:"avatarURL,omitempty" firestore:"avatarURL,omitempty"`
	Role      string    `json:"role" firestore:"role"` // stored form; parsed via ParseRole
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// ParsedRole resolves the stored role string to the Role enum.
func (p *Profile) ParsedRole() Role {
	return ParseRole(p.Role)
}

// LoginEvent records a session initialization against the login_events
// collection.
type LoginEvent struct {
	ID        string    `json:"id" firestore:"-"`
	UserID    string    `json:"userId" firestore:"userId"`
	Email     string    `json:"email,omitempty" firestore:"email,omitempty"`
	Role      string    `json:"role,omitempty" firestore:"role,omitempty"`
	IPAddress string    `json:"ipAddress,omitempty" firestore:"ipAddress,omitempty"`
	UserAgent string    `json:"userAgent,omitempty" firestore:"userAgent,omitempty"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp,serverTimestamp"`
}
