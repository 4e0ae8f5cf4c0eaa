// Package storage defines the persistence capability shared by both backends
// and its two implementations: Cloud Firestore and an in-process fallback.
package storage

import (
	"context"
	"errors"

	"earlybirds/internal/model"
)

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
)

// Store is the capability both backends implement. Handlers and the service
// layer never know which backend is active; backend-specific behavior lives
// entirely behind this interface.
type Store interface {
	// CreateUser persists a new user keyed by email. Returns ErrUserExists
	// if the email is already registered.
	CreateUser(ctx context.Context, user model.User) error

	// FindUser returns the user registered under email, or ErrUserNotFound.
	FindUser(ctx context.Context, email string) (model.User, error)

	// AppendOrder persists an order. The backend assigns the timestamp at
	// write time; any Timestamp value on the argument is ignored.
	AppendOrder(ctx context.Context, order model.Order) error

	// OrdersByEmail returns every order whose owning email equals email.
	// The Firestore backend returns them most-recent-first; the memory
	// backend makes no ordering guarantee.
	OrdersByEmail(ctx context.Context, email string) ([]model.Order, error)
}

// GuestProvider is implemented by backends that allow logins for emails that
// were never registered. Only the in-memory fallback implements it: in
// fallback mode an unknown email logs in as an auto-generated guest, while
// the Firestore backend stays strict.
type GuestProvider interface {
	GuestUser(email string) model.User
}
