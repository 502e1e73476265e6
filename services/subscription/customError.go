package subscription

import "errors"

var (
	// ErrInvalidPayload is returned when the subscription object is missing
	// endpoint or either encryption key.
	ErrInvalidPayload = errors.New("subscription payload must contain endpoint, keys.p256dh and keys.auth")
	// ErrClientInactive is returned when the owning client is deactivated.
	ErrClientInactive = errors.New("client account is inactive")
)
