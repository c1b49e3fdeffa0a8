package models

// User is the Firestore user document. Only the fields the dispatcher needs
// are mapped; the app owns the rest.
type User struct {
	ID          string `firestore:"-"`
	Email       string `firestore:"email"`
	DisplayName string `firestore:"displayName"`
	FCMToken    string `firestore:"fcmToken"`
}

// UserPreferences is the per-user user_settings document. Booleans are
// pointers so an absent field keeps its documented default instead of
// collapsing to false. A missing document means all defaults apply.
type UserPreferences struct {
	PushNotifications *bool `firestore:"pushNotifications"` // master switch, default true
	PromotionalOffers *bool `firestore:"promotionalOffers"` // default false
	OrderUpdates      *bool `firestore:"orderUpdates"`      // default true
	NewProductAlerts  *bool `firestore:"newProductAlerts"`  // default true
	PriceAlerts       *bool `firestore:"priceAlerts"`       // default true
	SecurityAlerts    *bool `firestore:"securityAlerts"`    // default true
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// PushEnabled reports the master switch. Safe on a nil receiver.
func (p *UserPreferences) PushEnabled() bool {
	if p == nil {
		return true
	}
	return boolOr(p.PushNotifications, true)
}

func (p *UserPreferences) AllowsPromotions() bool {
	if p == nil {
		return false
	}
	return boolOr(p.PromotionalOffers, false)
}

func (p *UserPreferences) AllowsOrderUpdates() bool {
	if p == nil {
		return true
	}
	return boolOr(p.OrderUpdates, true)
}

func (p *UserPreferences) AllowsNewProductAlerts() bool {
	if p == nil {
		return true
	}
	return boolOr(p.NewProductAlerts, true)
}

func (p *UserPreferences) AllowsPriceAlerts() bool {
	if p == nil {
		return true
	}
	return boolOr(p.PriceAlerts, true)
}

func (p *UserPreferences) AllowsSecurityAlerts() bool {
	if p == nil {
		return true
	}
	return boolOr(p.SecurityAlerts, true)
}
