package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuningapp/notification-service/internal/models"
)

func TestResolveDirectToken(t *testing.T) {
	resolver := NewRecipientResolver(&fakeUserRepo{}, &fakePrefRepo{})

	res := resolver.Resolve(context.Background(), &models.NotificationRecord{
		FCMToken: "tok-1",
		Type:     "order",
	})

	assert.Equal(t, OutcomeSingle, res.Outcome)
	assert.Equal(t, "tok-1", res.Token)
}

func TestResolveDirectTokenWithIneligibleUser(t *testing.T) {
	prefs := &fakePrefRepo{prefs: map[string]*models.UserPreferences{
		"u1": {PushNotifications: boolPtr(false)},
	}}
	resolver := NewRecipientResolver(&fakeUserRepo{}, prefs)

	res := resolver.Resolve(context.Background(), &models.NotificationRecord{
		FCMToken: "tok-1",
		UserID:   "u1",
		Type:     "order",
	})

	assert.Equal(t, OutcomeSkip, res.Outcome)
	assert.Equal(t, "user preference", res.Reason)
}

func TestResolveDirectTokenPrefLookupErrorUsesDefaults(t *testing.T) {
	prefs := &fakePrefRepo{errs: map[string]error{"u1": errors.New("unavailable")}}
	resolver := NewRecipientResolver(&fakeUserRepo{}, prefs)

	// Defaults allow order updates, so the lookup error must not block it.
	res := resolver.Resolve(context.Background(), &models.NotificationRecord{
		FCMToken: "tok-1",
		UserID:   "u1",
		Type:     "order",
	})
	assert.Equal(t, OutcomeSingle, res.Outcome)

	// But defaults turn promotions off.
	res = resolver.Resolve(context.Background(), &models.NotificationRecord{
		FCMToken: "tok-1",
		UserID:   "u1",
		Type:     "promotion",
	})
	assert.Equal(t, OutcomeSkip, res.Outcome)
}

func TestResolveTargetedUserWithToken(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*models.User{
		"u1": {ID: "u1", FCMToken: "tok-u1"},
	}}
	resolver := NewRecipientResolver(users, &fakePrefRepo{})

	res := resolver.Resolve(context.Background(), &models.NotificationRecord{
		UserID: "u1",
		Type:   "security",
	})

	assert.Equal(t, OutcomeSingle, res.Outcome)
	assert.Equal(t, "tok-u1", res.Token)
}

func TestResolveTargetedUserWithoutTokenFallsBackToBroadcast(t *testing.T) {
	// The named user has no token; the record degrades to an all-user broadcast.
	users := &fakeUserRepo{
		users: map[string]*models.User{"u1": {ID: "u1"}},
		list:  manyUsers(3),
	}
	resolver := NewRecipientResolver(users, &fakePrefRepo{})

	res := resolver.Resolve(context.Background(), &models.NotificationRecord{
		UserID: "u1",
		Type:   "order",
	})

	require.Equal(t, OutcomeBroadcast, res.Outcome)
	assert.Equal(t, []string{"token-0000", "token-0001", "token-0002"}, res.Tokens)
	assert.Equal(t, []string{"user-0000", "user-0001", "user-0002"}, res.UserIDs)
}

func TestResolveBroadcastFiltersByPreference(t *testing.T) {
	users := &fakeUserRepo{list: manyUsers(3)}
	prefs := &fakePrefRepo{prefs: map[string]*models.UserPreferences{
		"user-0001": {OrderUpdates: boolPtr(false)},
	}}
	resolver := NewRecipientResolver(users, prefs)

	res := resolver.Resolve(context.Background(), &models.NotificationRecord{Type: "order"})

	require.Equal(t, OutcomeBroadcast, res.Outcome)
	assert.Equal(t, []string{"token-0000", "token-0002"}, res.Tokens)
	assert.Equal(t, []string{"user-0000", "user-0002"}, res.UserIDs)
}

func TestResolveBroadcastFailsOpenOnPrefError(t *testing.T) {
	users := &fakeUserRepo{list: manyUsers(2)}
	prefs := &fakePrefRepo{
		prefs: map[string]*models.UserPreferences{
			"user-0000": {PushNotifications: boolPtr(false)},
		},
		errs: map[string]error{"user-0001": errors.New("unavailable")},
	}
	resolver := NewRecipientResolver(users, prefs)

	res := resolver.Resolve(context.Background(), &models.NotificationRecord{Type: "promotion"})

	// user-0000 opted out; user-0001's lookup failed and is kept.
	require.Equal(t, OutcomeBroadcast, res.Outcome)
	assert.Equal(t, []string{"token-0001"}, res.Tokens)
}

func TestResolveBroadcastEmptyIsFailure(t *testing.T) {
	resolver := NewRecipientResolver(&fakeUserRepo{}, &fakePrefRepo{})

	res := resolver.Resolve(context.Background(), &models.NotificationRecord{Type: "order"})

	assert.Equal(t, OutcomeFail, res.Outcome)
	assert.Equal(t, "no tokens available", res.Reason)
}

func TestResolveBroadcastListErrorIsFailure(t *testing.T) {
	users := &fakeUserRepo{listErr: errors.New("scan failed")}
	resolver := NewRecipientResolver(users, &fakePrefRepo{})

	res := resolver.Resolve(context.Background(), &models.NotificationRecord{Type: "order"})

	assert.Equal(t, OutcomeFail, res.Outcome)
	assert.Equal(t, "no tokens available", res.Reason)
}
