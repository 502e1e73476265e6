package models

import "time"

// Subscription is one browser's push registration: the opaque push-service
// endpoint plus the two keys needed to encrypt payloads for it. Unique per
// (clientId, endpoint); re-subscribing the same endpoint updates the
// existing record.
type Subscription struct {
	ID           string    `bson:"id" json:"id"`
	ClientID     string    `bson:"clientId" json:"clientId"`
	Endpoint     string    `bson:"endpoint" json:"endpoint"`
	P256dh       string    `bson:"p256dh" json:"p256dh"`
	Auth         string    `bson:"auth" json:"auth"`
	Domain       string    `bson:"domain,omitempty" json:"domain,omitempty"`
	UserAgent    string    `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	SubscribedAt time.Time `bson:"subscribedAt" json:"subscribedAt"`
}

// SubscriptionKeys mirrors the "keys" object of the browser
// PushSubscription JSON shape.
type SubscriptionKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// SubscriptionPayload is the wire shape third-party sites submit when
// registering a subscriber.
type SubscriptionPayload struct {
	ClientID  string           `json:"clientId"`
	Endpoint  string           `json:"endpoint"`
	Keys      SubscriptionKeys `json:"keys"`
	Domain    string           `json:"domain"`
	UserAgent string           `json:"userAgent"`
}
