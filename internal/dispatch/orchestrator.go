package dispatch

import (
	"context"
	"log"

	"github.com/tuningapp/notification-service/internal/models"
	"github.com/tuningapp/notification-service/internal/repositories"
)

// Orchestrator drives one notification record from pending to a terminal
// status, and serves the synchronous send entry points. All collaborators
// are injected; there is no global SDK state in here.
type Orchestrator struct {
	resolver  *RecipientResolver
	batcher   *BatchDispatcher
	messenger Messenger
	queue     repositories.QueueRepository
	users     repositories.UserRepository
	logs      repositories.DispatchLogRepository
}

func NewOrchestrator(
	resolver *RecipientResolver,
	batcher *BatchDispatcher,
	messenger Messenger,
	queue repositories.QueueRepository,
	users repositories.UserRepository,
	logs repositories.DispatchLogRepository,
) *Orchestrator {
	return &Orchestrator{
		resolver:  resolver,
		batcher:   batcher,
		messenger: messenger,
		queue:     queue,
		users:     users,
		logs:      logs,
	}
}

// ProcessRecord handles one newly created queue record. It never returns a
// delivery error to the trigger: every path ends in exactly one terminal
// status write, so the record's lifecycle always completes and the trigger
// is never retried. The returned error covers only status-write failures.
func (o *Orchestrator) ProcessRecord(ctx context.Context, record *models.NotificationRecord) error {
	if record.Status != models.StatusPending {
		log.Printf("record %s has status %q, ignoring", record.ID, record.Status)
		return nil
	}

	resolution := o.resolver.Resolve(ctx, record)

	switch resolution.Outcome {
	case OutcomeSkip:
		o.audit(record, models.StatusSkipped, "", 0, resolution.Reason)
		return o.queue.MarkSkipped(ctx, record.ID, resolution.Reason)

	case OutcomeFail:
		o.audit(record, models.StatusFailed, "", 0, resolution.Reason)
		return o.queue.MarkFailed(ctx, record.ID, resolution.Reason)

	case OutcomeSingle:
		message := buildMessage(recordPayload(record))
		message.Token = resolution.Token

		messageID, err := o.messenger.Send(ctx, message)
		if err != nil {
			log.Printf("record %s: send failed: %v", record.ID, err)
			o.audit(record, models.StatusFailed, "", 0, err.Error())
			return o.queue.MarkFailed(ctx, record.ID, err.Error())
		}
		o.audit(record, models.StatusSent, messageID, 1, "")
		return o.queue.MarkSent(ctx, record.ID, messageID, 0)

	case OutcomeBroadcast:
		report := o.batcher.Dispatch(ctx, resolution.Tokens, recordPayload(record))
		log.Printf("record %s: broadcast to %d tokens in %d batches (%d ok, %d failed)",
			record.ID, report.Attempted, report.Batches, report.Succeeded, report.Failed)
		o.audit(record, models.StatusSent, "", report.Attempted, "")
		return o.queue.MarkSent(ctx, record.ID, "", report.Attempted)
	}

	return nil
}

// SendDirect delivers one notification to a token or a named user,
// synchronously. Callers get classified errors: invalid-argument for missing
// fields, not-found when the user has no token, internal on provider failure.
func (o *Orchestrator) SendDirect(ctx context.Context, req *models.SendNotificationRequest) (string, error) {
	if req.FCMToken == "" && req.UserID == "" {
		return "", invalidArgument("fcmToken or userId is required")
	}
	if req.Title == "" || req.Body == "" {
		return "", invalidArgument("title and body are required")
	}

	token := req.FCMToken
	if token == "" {
		user, err := o.users.GetByID(ctx, req.UserID)
		if err != nil {
			return "", internalError("user lookup failed", err)
		}
		if user == nil || user.FCMToken == "" {
			return "", notFound("no registration token for user")
		}
		token = user.FCMToken
	}

	message := buildMessage(payload{
		Title: req.Title,
		Body:  req.Body,
		Type:  req.Type,
		Data:  req.NotificationData,
	})
	message.Token = token

	messageID, err := o.messenger.Send(ctx, message)
	if err != nil {
		return "", internalError("notification could not be sent", err)
	}

	o.audit(&models.NotificationRecord{UserID: req.UserID, Type: req.Type},
		models.StatusSent, messageID, 1, "")
	return messageID, nil
}

// SendToTopic delivers one notification to a provider-side topic.
func (o *Orchestrator) SendToTopic(ctx context.Context, req *models.SendTopicRequest) (string, error) {
	if req.Topic == "" || req.Title == "" || req.Body == "" {
		return "", invalidArgument("topic, title and body are required")
	}

	message := buildMessage(payload{
		Title: req.Title,
		Body:  req.Body,
		Type:  req.Type,
		Data:  req.NotificationData,
	})
	message.Topic = req.Topic

	messageID, err := o.messenger.Send(ctx, message)
	if err != nil {
		return "", internalError("notification could not be sent", err)
	}
	return messageID, nil
}

// audit writes one best-effort row to the dispatch log. Log failures never
// affect the dispatch outcome.
func (o *Orchestrator) audit(record *models.NotificationRecord, status, messageID string, sentTo int, detail string) {
	if o.logs == nil {
		return
	}
	entry := &models.DispatchLog{
		RecordID:    record.ID,
		UserID:      record.UserID,
		Type:        record.Type,
		Status:      status,
		MessageID:   messageID,
		SentToCount: sentTo,
		Detail:      detail,
	}
	if err := o.logs.Create(entry); err != nil {
		log.Printf("dispatch log write failed: %v", err)
	}
}

func recordPayload(record *models.NotificationRecord) payload {
	return payload{
		Title: record.Title,
		Body:  record.Body,
		Type:  record.Type,
		Data:  record.Data,
	}
}
