package push

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"pushhub/models"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// VAPIDConfig holds the keypair and contact identity that authenticate
// this server to browser push services.
type VAPIDConfig struct {
	PublicKey  string
	PrivateKey string
	Subscriber string
}

// DefaultTTL is how long push services may queue an undelivered message.
const DefaultTTL = 60 * 60 * 24

// WebPushDeliverer delivers messages over the Web Push protocol with
// VAPID-signed requests.
type WebPushDeliverer struct {
	cfg VAPIDConfig
	ttl int
}

// NewWebPushDeliverer builds a deliverer from explicit VAPID credentials.
// It fails fast when any credential is absent; the caller must disable
// send functionality rather than attempt unauthenticated delivery.
func NewWebPushDeliverer(cfg VAPIDConfig) (*WebPushDeliverer, error) {
	if cfg.PublicKey == "" || cfg.PrivateKey == "" || cfg.Subscriber == "" {
		return nil, ErrMissingVAPIDConfig
	}
	return &WebPushDeliverer{cfg: cfg, ttl: DefaultTTL}, nil
}

// Deliver performs one push-service HTTP exchange for one subscription and
// classifies the response. It never retries.
func (d *WebPushDeliverer) Deliver(ctx context.Context, sub models.Subscription, payload []byte) (Outcome, error) {
	s := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}

	resp, err := webpush.SendNotificationWithContext(ctx, payload, s, &webpush.Options{
		Subscriber:      d.cfg.Subscriber,
		VAPIDPublicKey:  d.cfg.PublicKey,
		VAPIDPrivateKey: d.cfg.PrivateKey,
		TTL:             d.ttl,
	})
	if err != nil {
		return OutcomeTransient, fmt.Errorf("push exchange failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return OutcomeGone, fmt.Errorf("push endpoint gone: status %d", resp.StatusCode)
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return OutcomeDelivered, nil
	default:
		return OutcomeTransient, fmt.Errorf("push service returned status %d", resp.StatusCode)
	}
}
