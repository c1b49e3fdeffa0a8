package dispatch

import "github.com/tuningapp/notification-service/internal/models"

// Eligible decides whether a user should receive a notification of the given
// type under their stored preferences. A nil prefs means no settings document
// exists and the defaults apply: everything on except promotional offers.
func Eligible(prefs *models.UserPreferences, notificationType string) bool {
	if !prefs.PushEnabled() {
		return false
	}

	switch notificationType {
	case "promotion":
		return prefs.AllowsPromotions()
	case "order":
		return prefs.AllowsOrderUpdates()
	case "product", "new_product":
		return prefs.AllowsNewProductAlerts()
	case "price":
		return prefs.AllowsPriceAlerts()
	case "security":
		return prefs.AllowsSecurityAlerts()
	default:
		// system and unrecognized types ride on the master switch alone
		return true
	}
}
