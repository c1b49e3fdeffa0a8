package repositories

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/tuningapp/notification-service/internal/models"
)

// QueueRepository defines the terminal status writes for queue records
type QueueRepository interface {
	MarkSent(ctx context.Context, recordID, messageID string, sentToCount int) error
	MarkSkipped(ctx context.Context, recordID, reason string) error
	MarkFailed(ctx context.Context, recordID, errMsg string) error
}

type firestoreQueueRepository struct {
	client     *firestore.Client
	collection string
}

// NewFirestoreQueueRepository creates a QueueRepository backed by the given
// notification queue collection
func NewFirestoreQueueRepository(client *firestore.Client, collection string) QueueRepository {
	return &firestoreQueueRepository{client: client, collection: collection}
}

func (r *firestoreQueueRepository) MarkSent(ctx context.Context, recordID, messageID string, sentToCount int) error {
	updates := []firestore.Update{
		{Path: "status", Value: models.StatusSent},
		{Path: "sentAt", Value: firestore.ServerTimestamp},
	}
	if messageID != "" {
		updates = append(updates, firestore.Update{Path: "messageId", Value: messageID})
	}
	if sentToCount > 0 {
		updates = append(updates, firestore.Update{Path: "sentToCount", Value: sentToCount})
	}
	_, err := r.client.Collection(r.collection).Doc(recordID).Update(ctx, updates)
	return err
}

func (r *firestoreQueueRepository) MarkSkipped(ctx context.Context, recordID, reason string) error {
	_, err := r.client.Collection(r.collection).Doc(recordID).Update(ctx, []firestore.Update{
		{Path: "status", Value: models.StatusSkipped},
		{Path: "skippedAt", Value: firestore.ServerTimestamp},
		{Path: "reason", Value: reason},
	})
	return err
}

func (r *firestoreQueueRepository) MarkFailed(ctx context.Context, recordID, errMsg string) error {
	_, err := r.client.Collection(r.collection).Doc(recordID).Update(ctx, []firestore.Update{
		{Path: "status", Value: models.StatusFailed},
		{Path: "failedAt", Value: firestore.ServerTimestamp},
		{Path: "error", Value: errMsg},
	})
	return err
}
