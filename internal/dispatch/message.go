package dispatch

import (
	"fmt"

	"firebase.google.com/go/v4/messaging"
)

// ChannelID maps a notification type to the Android channel the client app
// registers for it. Unrecognized types land on the system channel.
func ChannelID(notificationType string) string {
	switch notificationType {
	case "promotion":
		return "promotion_notifications"
	case "order":
		return "order_notifications"
	case "shipping":
		return "shipping_notifications"
	case "payment":
		return "payment_notifications"
	default:
		return "system_notifications"
	}
}

// payload carries the provider-independent message content.
type payload struct {
	Title string
	Body  string
	Type  string
	Data  map[string]interface{}
}

// dataMap builds the FCM data map: the reserved "type" key plus the record's
// custom payload, values stringified (FCM only carries string values).
func (p payload) dataMap() map[string]string {
	notificationType := p.Type
	if notificationType == "" {
		notificationType = "system"
	}

	data := map[string]string{"type": notificationType}
	for key, value := range p.Data {
		if key == "type" {
			continue
		}
		switch v := value.(type) {
		case string:
			data[key] = v
		default:
			data[key] = fmt.Sprint(v)
		}
	}
	return data
}

func (p payload) androidConfig() *messaging.AndroidConfig {
	return &messaging.AndroidConfig{
		Priority: "high",
		Notification: &messaging.AndroidNotification{
			ChannelID: ChannelID(p.Type),
			Sound:     "default",
			Icon:      "@mipmap/ic_launcher",
		},
	}
}

func (p payload) apnsConfig() *messaging.APNSConfig {
	badge := 1
	return &messaging.APNSConfig{
		Payload: &messaging.APNSPayload{
			Aps: &messaging.Aps{
				Sound: "default",
				Badge: &badge,
			},
		},
	}
}

// buildMessage assembles an FCM message without a target; the caller sets
// Token or Topic.
func buildMessage(p payload) *messaging.Message {
	return &messaging.Message{
		Notification: &messaging.Notification{
			Title: p.Title,
			Body:  p.Body,
		},
		Data:    p.dataMap(),
		Android: p.androidConfig(),
		APNS:    p.apnsConfig(),
	}
}

// buildMulticastMessage assembles the batched variant for a token list.
func buildMulticastMessage(p payload, tokens []string) *messaging.MulticastMessage {
	return &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: p.Title,
			Body:  p.Body,
		},
		Data:    p.dataMap(),
		Android: p.androidConfig(),
		APNS:    p.apnsConfig(),
	}
}
