package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"firebase.google.com/go/v4/auth"
)

// ErrAccountNotFound is returned when no auth account exists for a lookup.
var ErrAccountNotFound = errors.New("auth account not found")

// AuthAccounts wraps the Firebase Auth admin operations the booking workflow
// needs, so services can depend on an interface instead of *auth.Client.
type AuthAccounts interface {
	// GetUIDByEmail returns the UID of the account registered under email,
	// or ErrAccountNotFound.
	GetUIDByEmail(ctx context.Context, email string) (string, error)
	// CreateAccount creates a new email/password account and returns its UID.
	CreateAccount(ctx context.Context, email, password, displayName string) (string, error)
	// DeleteAccount removes an account by UID. Admin-only path.
	DeleteAccount(ctx context.Context, uid string) error
}

// firebaseAuthAccounts implements AuthAccounts over the Firebase Auth client.
type firebaseAuthAccounts struct {
	client *auth.Client
}

// NewFirebaseAuthAccounts creates a new AuthAccounts backed by the Firebase
// Auth admin client.
func NewFirebaseAuthAccounts(client *auth.Client) AuthAccounts {
	if client == nil {
		log.Fatal("Firebase Auth client is not initialized for AuthAccounts.")
	}
	return &firebaseAuthAccounts{client: client}
}

func (a *firebaseAuthAccounts) GetUIDByEmail(ctx context.Context, email string) (string, error) {
	record, err := a.client.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return "", fmt.Errorf("no account for email '%s': %w", email, ErrAccountNotFound)
		}
		return "", fmt.Errorf("failed to look up account by email '%s': %w", email, err)
	}
	return record.UID, nil
}

func (a *firebaseAuthAccounts) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)
	record, err := a.client.CreateUser(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to create auth account for '%s': %w", email, err)
	}
	return record.UID, nil
}

func (a *firebaseAuthAccounts) DeleteAccount(ctx context.Context, uid string) error {
	if err := a.client.DeleteUser(ctx, uid); err != nil {
		if auth.IsUserNotFound(err) {
			return fmt.Errorf("no account for uid '%s': %w", uid, ErrAccountNotFound)
		}
		return fmt.Errorf("failed to delete auth account '%s': %w", uid, err)
	}
	return nil
}
