package repositories

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tuningapp/notification-service/internal/models"
)

// UserRepository defines the read-only user lookups the dispatcher needs
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	ListWithTokens(ctx context.Context) ([]models.User, error)
}

type firestoreUserRepository struct {
	client *firestore.Client
}

// NewFirestoreUserRepository creates a UserRepository backed by the users collection
func NewFirestoreUserRepository(client *firestore.Client) UserRepository {
	return &firestoreUserRepository{client: client}
}

// GetByID returns the user document, or (nil, nil) when it does not exist.
func (r *firestoreUserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	snap, err := r.client.Collection("users").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var user models.User
	if err := snap.DataTo(&user); err != nil {
		return nil, err
	}
	user.ID = snap.Ref.ID
	return &user, nil
}

// ListWithTokens returns every user carrying a registration token, in
// enumeration order.
func (r *firestoreUserRepository) ListWithTokens(ctx context.Context) ([]models.User, error) {
	iter := r.client.Collection("users").Where("fcmToken", "!=", "").Documents(ctx)
	defer iter.Stop()

	var users []models.User
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var user models.User
		if err := snap.DataTo(&user); err != nil {
			continue // malformed document, skip it
		}
		user.ID = snap.Ref.ID
		if user.FCMToken == "" {
			continue
		}
		users = append(users, user)
	}
	return users, nil
}
