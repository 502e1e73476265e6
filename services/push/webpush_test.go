package push

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"pushhub/models"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVAPIDConfig(t *testing.T) VAPIDConfig {
	t.Helper()
	priv, pub, err := webpush.GenerateVAPIDKeys()
	require.NoError(t, err)
	return VAPIDConfig{
		PublicKey:  pub,
		PrivateKey: priv,
		Subscriber: "ops@pushhub.test",
	}
}

// browserKeys fabricates a valid subscriber keypair the way a browser
// would: an uncompressed P-256 public point and a 16-byte auth secret.
func browserKeys(t *testing.T) (p256dh, auth string) {
	t.Helper()
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	pub := elliptic.Marshal(elliptic.P256(), priv.PublicKey.X, priv.PublicKey.Y)

	secret := make([]byte, 16)
	_, err = rand.Read(secret)
	require.NoError(t, err)

	return base64.RawURLEncoding.EncodeToString(pub),
		base64.RawURLEncoding.EncodeToString(secret)
}

func subscriptionFor(t *testing.T, endpoint string) models.Subscription {
	t.Helper()
	p256dh, auth := browserKeys(t)
	return models.Subscription{
		ID:       "sub-1",
		ClientID: "tenant-1",
		Endpoint: endpoint,
		P256dh:   p256dh,
		Auth:     auth,
	}
}

func TestNewWebPushDelivererRequiresFullConfig(t *testing.T) {
	valid := testVAPIDConfig(t)

	tests := []struct {
		name string
		cfg  VAPIDConfig
	}{
		{"missing public key", VAPIDConfig{PrivateKey: valid.PrivateKey, Subscriber: valid.Subscriber}},
		{"missing private key", VAPIDConfig{PublicKey: valid.PublicKey, Subscriber: valid.Subscriber}},
		{"missing subscriber", VAPIDConfig{PublicKey: valid.PublicKey, PrivateKey: valid.PrivateKey}},
		{"empty", VAPIDConfig{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWebPushDeliverer(tt.cfg)
			assert.ErrorIs(t, err, ErrMissingVAPIDConfig)
		})
	}

	d, err := NewWebPushDeliverer(valid)
	require.NoError(t, err)
	assert.NotNil(t, d)
}

func TestDeliverClassifiesPushServiceResponses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		want    Outcome
		wantErr bool
	}{
		{"created", http.StatusCreated, OutcomeDelivered, false},
		{"ok", http.StatusOK, OutcomeDelivered, false},
		{"gone", http.StatusGone, OutcomeGone, true},
		{"not found", http.StatusNotFound, OutcomeGone, true},
		{"server error", http.StatusInternalServerError, OutcomeTransient, true},
		{"rate limited", http.StatusTooManyRequests, OutcomeTransient, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			d, err := NewWebPushDeliverer(testVAPIDConfig(t))
			require.NoError(t, err)

			outcome, err := d.Deliver(context.Background(), subscriptionFor(t, srv.URL), []byte(`{"title":"hi"}`))
			assert.Equal(t, tt.want, outcome)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDeliverUnreachableEndpointIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	d, err := NewWebPushDeliverer(testVAPIDConfig(t))
	require.NoError(t, err)

	outcome, err := d.Deliver(context.Background(), subscriptionFor(t, srv.URL), []byte(`{}`))
	assert.Equal(t, OutcomeTransient, outcome)
	assert.Error(t, err)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "delivered", OutcomeDelivered.String())
	assert.Equal(t, "gone", OutcomeGone.String())
	assert.Equal(t, "transient", OutcomeTransient.String())
}
