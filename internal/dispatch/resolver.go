package dispatch

import (
	"context"
	"log"

	"github.com/tuningapp/notification-service/internal/models"
	"github.com/tuningapp/notification-service/internal/repositories"
)

// Outcome is the result kind of recipient resolution.
type Outcome int

const (
	OutcomeSingle Outcome = iota
	OutcomeBroadcast
	OutcomeSkip
	OutcomeFail
)

// Resolution is the explicit result of resolving a record's recipients.
// Exactly one outcome applies: a single token, a broadcast token list, a
// preference-based skip, or a failure with no recipients.
type Resolution struct {
	Outcome Outcome
	Token   string   // set for OutcomeSingle
	Tokens  []string // set for OutcomeBroadcast, in user enumeration order
	UserIDs []string // parallel to Tokens
	Reason  string   // skip reason or failure message
}

// RecipientResolver turns a notification record into the set of tokens
// eligible to receive it.
type RecipientResolver struct {
	users repositories.UserRepository
	prefs repositories.PreferenceRepository
}

func NewRecipientResolver(users repositories.UserRepository, prefs repositories.PreferenceRepository) *RecipientResolver {
	return &RecipientResolver{users: users, prefs: prefs}
}

const skipReasonPreference = "user preference"

// Resolve applies the recipient rules:
//  1. A record token is used directly; if a user is also named, their
//     preferences still gate delivery.
//  2. A named user without a token falls through to the broadcast path.
//  3. Broadcast enumerates every user with a token, filtered by preferences.
//
// Preference lookup errors never block delivery: the single-user path falls
// back to defaults, the broadcast path fails open.
func (r *RecipientResolver) Resolve(ctx context.Context, record *models.NotificationRecord) Resolution {
	if record.FCMToken != "" {
		if record.UserID != "" && !r.eligibleWithDefaults(ctx, record.UserID, record.Type) {
			return Resolution{Outcome: OutcomeSkip, Reason: skipReasonPreference}
		}
		return Resolution{Outcome: OutcomeSingle, Token: record.FCMToken}
	}

	if record.UserID != "" {
		user, err := r.users.GetByID(ctx, record.UserID)
		if err != nil {
			log.Printf("user lookup failed for %s: %v", record.UserID, err)
		}
		if user != nil && user.FCMToken != "" {
			if !r.eligibleWithDefaults(ctx, record.UserID, record.Type) {
				return Resolution{Outcome: OutcomeSkip, Reason: skipReasonPreference}
			}
			return Resolution{Outcome: OutcomeSingle, Token: user.FCMToken}
		}
		// No token for the named user: degrade to broadcast.
	}

	return r.resolveBroadcast(ctx, record.Type)
}

func (r *RecipientResolver) resolveBroadcast(ctx context.Context, notificationType string) Resolution {
	users, err := r.users.ListWithTokens(ctx)
	if err != nil {
		return Resolution{Outcome: OutcomeFail, Reason: "no tokens available"}
	}

	var tokens []string
	var userIDs []string
	for _, user := range users {
		prefs, err := r.prefs.Get(ctx, user.ID)
		if err != nil {
			// fail open: a broken settings lookup must not mute the user
			log.Printf("preference lookup failed for %s: %v", user.ID, err)
		} else if !Eligible(prefs, notificationType) {
			continue
		}
		tokens = append(tokens, user.FCMToken)
		userIDs = append(userIDs, user.ID)
	}

	if len(tokens) == 0 {
		return Resolution{Outcome: OutcomeFail, Reason: "no tokens available"}
	}
	return Resolution{Outcome: OutcomeBroadcast, Tokens: tokens, UserIDs: userIDs}
}

// eligibleWithDefaults checks one user's preferences; a failed lookup is
// treated as "no settings found" so the defaults decide.
func (r *RecipientResolver) eligibleWithDefaults(ctx context.Context, userID, notificationType string) bool {
	prefs, err := r.prefs.Get(ctx, userID)
	if err != nil {
		log.Printf("preference lookup failed for %s: %v", userID, err)
		prefs = nil
	}
	return Eligible(prefs, notificationType)
}
