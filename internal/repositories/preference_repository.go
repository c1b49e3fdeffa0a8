package repositories

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tuningapp/notification-service/internal/models"
)

// PreferenceRepository is the read-only lookup of per-user notification settings
type PreferenceRepository interface {
	// Get returns (nil, nil) when the user has no settings document, in
	// which case all defaults apply.
	Get(ctx context.Context, userID string) (*models.UserPreferences, error)
}

type firestorePreferenceRepository struct {
	client *firestore.Client
}

// NewFirestorePreferenceRepository creates a PreferenceRepository backed by
// the user_settings collection
func NewFirestorePreferenceRepository(client *firestore.Client) PreferenceRepository {
	return &firestorePreferenceRepository{client: client}
}

func (r *firestorePreferenceRepository) Get(ctx context.Context, userID string) (*models.UserPreferences, error) {
	snap, err := r.client.Collection("user_settings").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var prefs models.UserPreferences
	if err := snap.DataTo(&prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}
