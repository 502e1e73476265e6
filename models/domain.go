package models

import "time"

// Domain is a registered origin (hostname[:port], "localhost" or an IP)
// belonging to one client. Unique per (clientId, name). Domains are an
// informational ownership association for subscriptions; dispatch is
// always tenant-wide.
type Domain struct {
	ID        string    `bson:"id" json:"id"`
	ClientID  string    `bson:"clientId" json:"clientId"`
	Name      string    `bson:"name" json:"name"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
