package storage

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"earlybirds/internal/model"
)

const (
	usersCollection  = "users"
	ordersCollection = "orders"
)

// FirestoreStore is the document-store backend. Users are documents keyed by
// email in the users collection; orders are auto-ID documents in the orders
// collection. Timestamps are assigned server-side via serverTimestamp tags
// on the models.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore connects to the named database in the given project. An
// empty projectID lets the client library detect the project from the
// environment.
func NewFirestoreStore(ctx context.Context, projectID, databaseID string) (*FirestoreStore, error) {
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return &FirestoreStore{client: client}, nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

func (s *FirestoreStore) CreateUser(ctx context.Context, user model.User) error {
	ref := s.client.Collection(usersCollection).Doc(user.Email)

	snap, err := ref.Get(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if err == nil && snap.Exists() {
		return ErrUserExists
	}

	// Zero CreatedAt becomes a server timestamp on write.
	user.CreatedAt = time.Time{}
	if _, err := ref.Set(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *FirestoreStore) FindUser(ctx context.Context, email string) (model.User, error) {
	snap, err := s.client.Collection(usersCollection).Doc(email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	var user model.User
	if err := snap.DataTo(&user); err != nil {
		return model.User{}, fmt.Errorf("failed to decode user: %w", err)
	}
	return user, nil
}

func (s *FirestoreStore) AppendOrder(ctx context.Context, order model.Order) error {
	// Zero Timestamp becomes a server timestamp on write.
	order.Timestamp = time.Time{}
	if _, _, err := s.client.Collection(ordersCollection).Add(ctx, order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// OrdersByEmail runs an equality filter plus a descending sort on the server,
// so results come back most-recent-first.
func (s *FirestoreStore) OrdersByEmail(ctx context.Context, email string) ([]model.Order, error) {
	iter := s.client.Collection(ordersCollection).
		Where("email", "==", email).
		OrderBy("timestamp", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var orders []model.Order
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query orders: %w", err)
		}

		var order model.Order
		if err := snap.DataTo(&order); err != nil {
			return nil, fmt.Errorf("failed to decode order: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, nil
}
