package models

import "time"

// Client is a tenant account. Each client owns its own domains,
// subscribers and notifications. An inactive client cannot register
// new subscriptions, domains or notifications.
type Client struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	LogoURL   string    `bson:"logoUrl,omitempty" json:"logoUrl,omitempty"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
