package models

import "time"

// Panel user roles. A master user administers client tenants; a client
// user is scoped to exactly one client.
const (
	RoleMaster = "master"
	RoleClient = "client"
)

// User is a panel account (admin UI login), not a push subscriber.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	ClientID     string    `bson:"clientId,omitempty" json:"clientId,omitempty"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	Active       bool      `bson:"active" json:"active"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
