package dispatch

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"

	"github.com/tuningapp/notification-service/internal/models"
)

func boolPtr(v bool) *bool { return &v }

type fakeUserRepo struct {
	users   map[string]*models.User
	list    []models.User
	getErr  error
	listErr error
}

func (f *fakeUserRepo) GetByID(_ context.Context, userID string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.users[userID], nil
}

func (f *fakeUserRepo) ListWithTokens(_ context.Context) ([]models.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

type fakePrefRepo struct {
	prefs map[string]*models.UserPreferences
	errs  map[string]error
	calls []string
}

func (f *fakePrefRepo) Get(_ context.Context, userID string) (*models.UserPreferences, error) {
	f.calls = append(f.calls, userID)
	if err := f.errs[userID]; err != nil {
		return nil, err
	}
	return f.prefs[userID], nil
}

type fakeMessenger struct {
	sendErr   error
	messageID string
	sent      []*messaging.Message
	multicast []*messaging.MulticastMessage
	batchErr  map[int]error // keyed by multicast call index
}

func (f *fakeMessenger) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = append(f.sent, message)
	if f.sendErr != nil {
		return "", f.sendErr
	}
	if f.messageID != "" {
		return f.messageID, nil
	}
	return "projects/demo/messages/1", nil
}

func (f *fakeMessenger) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	idx := len(f.multicast)
	f.multicast = append(f.multicast, message)
	if err := f.batchErr[idx]; err != nil {
		return nil, err
	}
	return &messaging.BatchResponse{SuccessCount: len(message.Tokens)}, nil
}

type statusWrite struct {
	status   string
	recordID string
	detail   string
	count    int
}

type fakeQueueRepo struct {
	writes []statusWrite
	err    error
}

func (f *fakeQueueRepo) MarkSent(_ context.Context, recordID, messageID string, sentToCount int) error {
	f.writes = append(f.writes, statusWrite{status: models.StatusSent, recordID: recordID, detail: messageID, count: sentToCount})
	return f.err
}

func (f *fakeQueueRepo) MarkSkipped(_ context.Context, recordID, reason string) error {
	f.writes = append(f.writes, statusWrite{status: models.StatusSkipped, recordID: recordID, detail: reason})
	return f.err
}

func (f *fakeQueueRepo) MarkFailed(_ context.Context, recordID, errMsg string) error {
	f.writes = append(f.writes, statusWrite{status: models.StatusFailed, recordID: recordID, detail: errMsg})
	return f.err
}

type fakeLogRepo struct {
	entries []*models.DispatchLog
}

func (f *fakeLogRepo) Create(entry *models.DispatchLog) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeLogRepo) GetByRecordID(string) ([]models.DispatchLog, error) { return nil, nil }
func (f *fakeLogRepo) GetRecent(int) ([]models.DispatchLog, error)        { return nil, nil }

// manyUsers builds n users with tokens in enumeration order.
func manyUsers(n int) []models.User {
	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, models.User{
			ID:       fmt.Sprintf("user-%04d", i),
			FCMToken: fmt.Sprintf("token-%04d", i),
		})
	}
	return users
}
