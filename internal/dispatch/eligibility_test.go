package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuningapp/notification-service/internal/models"
)

func TestEligibleDefaults(t *testing.T) {
	// No settings document: everything on except promotional offers.
	cases := map[string]bool{
		"promotion":   false,
		"order":       true,
		"product":     true,
		"new_product": true,
		"price":       true,
		"security":    true,
		"system":      true,
		"whatever":    true,
	}

	for notificationType, want := range cases {
		assert.Equal(t, want, Eligible(nil, notificationType), "type %q", notificationType)
	}
}

func TestEligibleMasterSwitch(t *testing.T) {
	prefs := &models.UserPreferences{
		PushNotifications: boolPtr(false),
		PromotionalOffers: boolPtr(true),
		OrderUpdates:      boolPtr(true),
		SecurityAlerts:    boolPtr(true),
	}

	for _, notificationType := range []string{"promotion", "order", "product", "price", "security", "system"} {
		assert.False(t, Eligible(prefs, notificationType), "type %q", notificationType)
	}
}

func TestEligiblePerCategoryOverrides(t *testing.T) {
	prefs := &models.UserPreferences{
		PromotionalOffers: boolPtr(true),
		OrderUpdates:      boolPtr(false),
		NewProductAlerts:  boolPtr(false),
		PriceAlerts:       boolPtr(false),
		SecurityAlerts:    boolPtr(false),
	}

	assert.True(t, Eligible(prefs, "promotion"))
	assert.False(t, Eligible(prefs, "order"))
	assert.False(t, Eligible(prefs, "product"))
	assert.False(t, Eligible(prefs, "new_product"))
	assert.False(t, Eligible(prefs, "price"))
	assert.False(t, Eligible(prefs, "security"))
	// master switch unset defaults to on, so system types still go out
	assert.True(t, Eligible(prefs, "system"))
}

func TestEligiblePartialSettingsKeepDefaults(t *testing.T) {
	// A document that only sets one flag keeps the defaults for the rest.
	prefs := &models.UserPreferences{OrderUpdates: boolPtr(false)}

	assert.False(t, Eligible(prefs, "order"))
	assert.False(t, Eligible(prefs, "promotion"))
	assert.True(t, Eligible(prefs, "price"))
	assert.True(t, Eligible(prefs, "security"))
}
