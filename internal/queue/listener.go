package queue

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"

	"github.com/tuningapp/notification-service/internal/dispatch"
	"github.com/tuningapp/notification-service/internal/models"
)

// Listener watches the notification queue collection and hands every newly
// created pending record to the orchestrator. It is the trigger source: one
// invocation per created document, delivered with its field snapshot.
type Listener struct {
	client       *firestore.Client
	collection   string
	orchestrator *dispatch.Orchestrator
}

func NewListener(client *firestore.Client, collection string, orchestrator *dispatch.Orchestrator) *Listener {
	return &Listener{client: client, collection: collection, orchestrator: orchestrator}
}

// Run blocks on the snapshot stream until the context is cancelled or the
// stream breaks. Per-record failures are logged and do not stop the stream.
func (l *Listener) Run(ctx context.Context) error {
	snapshots := l.client.Collection(l.collection).
		Where("status", "==", models.StatusPending).
		Snapshots(ctx)
	defer snapshots.Stop()

	log.Printf("listening on %s for pending notifications", l.collection)

	for {
		snap, err := snapshots.Next()
		if err != nil {
			return err
		}

		for _, change := range snap.Changes {
			if change.Kind != firestore.DocumentAdded {
				continue
			}

			var record models.NotificationRecord
			if err := change.Doc.DataTo(&record); err != nil {
				log.Printf("record %s: malformed document: %v", change.Doc.Ref.ID, err)
				continue
			}
			record.ID = change.Doc.Ref.ID

			if err := l.orchestrator.ProcessRecord(ctx, &record); err != nil {
				log.Printf("record %s: status write failed: %v", record.ID, err)
			}
		}
	}
}
