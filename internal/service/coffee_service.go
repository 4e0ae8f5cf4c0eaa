package service

import (
	"context"
	"errors"
	"fmt"

	"earlybirds/internal/model"
	"earlybirds/internal/storage"
)

var ErrInvalidPasscode = errors.New("invalid passcode")

type CoffeeService struct {
	store storage.Store
}

func NewCoffeeService(store storage.Store) *CoffeeService {
	return &CoffeeService{store: store}
}

// Register creates a new user. The passcode is stored exactly as received;
// this is a demo and applies no hashing.
func (s *CoffeeService) Register(ctx context.Context, email, name, passcode string) error {
	return s.store.CreateUser(ctx, model.User{
		Email:    email,
		Name:     name,
		Passcode: passcode,
	})
}

// LoginResult reports who logged in and whether the identity was synthesized
// by a permissive backend rather than read from a stored record.
type LoginResult struct {
	User          model.User
	AutoGenerated bool
}

// Login checks the passcode against the stored record. When the active
// backend allows guest logins, an unknown email succeeds with a synthesized
// user and any passcode; otherwise an unknown email is ErrUserNotFound.
func (s *CoffeeService) Login(ctx context.Context, email, passcode string) (LoginResult, error) {
	user, err := s.store.FindUser(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			if gp, ok := s.store.(storage.GuestProvider); ok {
				return LoginResult{User: gp.GuestUser(email), AutoGenerated: true}, nil
			}
		}
		return LoginResult{}, err
	}

	if user.Passcode != passcode {
		return LoginResult{}, ErrInvalidPasscode
	}
	return LoginResult{User: user}, nil
}

// PlaceOrder appends the order as-is. Neither the owning email nor the total
// is checked against existing users or the menu; the backend stamps the
// order at write time.
func (s *CoffeeService) PlaceOrder(ctx context.Context, order model.Order) error {
	if err := s.store.AppendOrder(ctx, order); err != nil {
		return fmt.Errorf("failed to place order: %w", err)
	}
	return nil
}

// OrderHistory returns every order for email. The result is never nil, so
// an empty history serializes as an empty JSON array.
func (s *CoffeeService) OrderHistory(ctx context.Context, email string) ([]model.Order, error) {
	orders, err := s.store.OrdersByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to load order history: %w", err)
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}
