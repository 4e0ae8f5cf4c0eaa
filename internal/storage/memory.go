package storage

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode"

	"earlybirds/internal/model"
)

// MemoryStore is the in-process fallback backend. State lives for the
// process lifetime only and is lost on restart. Unlike the Firestore
// backend it is permissive on login: see GuestUser.
type MemoryStore struct {
	mu     sync.RWMutex
	users  map[string]model.User
	orders []model.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]model.User),
	}
}

func (s *MemoryStore) CreateUser(_ context.Context, user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return ErrUserExists
	}
	user.CreatedAt = time.Now()
	s.users[user.Email] = user
	return nil
}

func (s *MemoryStore) FindUser(_ context.Context, email string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *MemoryStore) AppendOrder(_ context.Context, order model.Order) error {
	order.Timestamp = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
	return nil
}

// OrdersByEmail is a linear scan in insertion order; the fallback makes no
// recency-ordering guarantee.
func (s *MemoryStore) OrdersByEmail(_ context.Context, email string) ([]model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []model.Order
	for _, o := range s.orders {
		if o.Email == email {
			result = append(result, o)
		}
	}
	return result, nil
}

// GuestUser synthesizes a user for an email that was never registered,
// naming it after the capitalized local part of the address. Nothing is
// persisted.
func (s *MemoryStore) GuestUser(email string) model.User {
	local, _, _ := strings.Cut(email, "@")
	return model.User{
		Email: email,
		Name:  capitalize(local),
	}
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
