package push

import (
	"context"
	"errors"

	"pushhub/models"
)

// Outcome classifies the result of one delivery attempt.
type Outcome int

const (
	// OutcomeDelivered means the push service accepted the message.
	OutcomeDelivered Outcome = iota
	// OutcomeTransient means delivery failed but the endpoint may still be
	// valid (timeout, 5xx, rate limit). The subscription is retained.
	OutcomeTransient
	// OutcomeGone means the push service reported the endpoint permanently
	// gone (404/410). The subscription should be removed.
	OutcomeGone
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDelivered:
		return "delivered"
	case OutcomeGone:
		return "gone"
	default:
		return "transient"
	}
}

// ErrMissingVAPIDConfig is returned when the deliverer is constructed
// without a complete VAPID credential set.
var ErrMissingVAPIDConfig = errors.New("incomplete VAPID configuration: public key, private key and subscriber are required")

// Deliverer sends one encrypted push message to one subscription endpoint.
// Implementations must not retry internally; retry policy belongs to the
// dispatch engine.
type Deliverer interface {
	Deliver(ctx context.Context, sub models.Subscription, payload []byte) (Outcome, error)
}
