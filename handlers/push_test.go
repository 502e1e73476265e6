package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pushhub/models"
	subscriptionSvc "pushhub/services/subscription"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSubscriptionService struct {
	registerResult *models.Subscription
	registerErr    error
	lastPayload    models.SubscriptionPayload

	unsubscribeErr  error
	lastUnsubClient string
	lastUnsubEndpt  string
}

func (s *stubSubscriptionService) Register(ctx context.Context, payload models.SubscriptionPayload) (*models.Subscription, error) {
	s.lastPayload = payload
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return s.registerResult, nil
}

func (s *stubSubscriptionService) Unsubscribe(ctx context.Context, clientID, endpoint string) error {
	s.lastUnsubClient = clientID
	s.lastUnsubEndpt = endpoint
	return s.unsubscribeErr
}

func (s *stubSubscriptionService) List(ctx context.Context, clientID string) ([]models.Subscription, error) {
	return nil, nil
}

func (s *stubSubscriptionService) Count(ctx context.Context, clientID string) (int64, error) {
	return 0, nil
}

func (s *stubSubscriptionService) Remove(ctx context.Context, clientID, subscriptionID string) error {
	return nil
}

func pushRouter(svc subscriptionSvc.SubscriptionService, vapidKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPushHandler(svc, vapidKey)
	r.GET("/api/push/vapid-public-key", h.VAPIDPublicKeyHandler)
	r.POST("/api/push/subscribe", h.SubscribeHandler)
	r.POST("/api/push/unsubscribe", h.UnsubscribeHandler)
	return r
}

func TestVAPIDPublicKeyExposed(t *testing.T) {
	r := pushRouter(&stubSubscriptionService{}, "BPublicKey")

	req := httptest.NewRequest(http.MethodGet, "/api/push/vapid-public-key", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "BPublicKey", resp["publicKey"])
}

func TestVAPIDPublicKeyUnavailableWhenPushDisabled(t *testing.T) {
	r := pushRouter(&stubSubscriptionService{}, "")

	req := httptest.NewRequest(http.MethodGet, "/api/push/vapid-public-key", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSubscribeFallsBackToClientIDHeader(t *testing.T) {
	svc := &stubSubscriptionService{registerResult: &models.Subscription{ID: "sub-1"}}
	r := pushRouter(svc, "key")

	body, _ := json.Marshal(models.SubscriptionPayload{
		Endpoint: "https://push.test/e1",
		Keys:     models.SubscriptionKeys{P256dh: "p", Auth: "a"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/push/subscribe", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Client-ID", "tenant-1")
	req.Header.Set("User-Agent", "test-browser/1.0")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tenant-1", svc.lastPayload.ClientID)
	assert.Equal(t, "test-browser/1.0", svc.lastPayload.UserAgent)
}

func TestSubscribeInvalidPayloadIs400(t *testing.T) {
	svc := &stubSubscriptionService{registerErr: subscriptionSvc.ErrInvalidPayload}
	r := pushRouter(svc, "key")

	body, _ := json.Marshal(models.SubscriptionPayload{ClientID: "tenant-1"})
	req := httptest.NewRequest(http.MethodPost, "/api/push/subscribe", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubscribeInactiveClientIs403(t *testing.T) {
	svc := &stubSubscriptionService{registerErr: subscriptionSvc.ErrClientInactive}
	r := pushRouter(svc, "key")

	body, _ := json.Marshal(models.SubscriptionPayload{
		ClientID: "tenant-2",
		Endpoint: "https://push.test/e1",
		Keys:     models.SubscriptionKeys{P256dh: "p", Auth: "a"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/push/subscribe", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUnsubscribe(t *testing.T) {
	svc := &stubSubscriptionService{}
	r := pushRouter(svc, "key")

	body, _ := json.Marshal(map[string]string{
		"clientId": "tenant-1",
		"endpoint": "https://push.test/e1",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/push/unsubscribe", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tenant-1", svc.lastUnsubClient)
	assert.Equal(t, "https://push.test/e1", svc.lastUnsubEndpt)
}

func TestUnsubscribeRequiresEndpoint(t *testing.T) {
	svc := &stubSubscriptionService{}
	r := pushRouter(svc, "key")

	body, _ := json.Marshal(map[string]string{"clientId": "tenant-1"})
	req := httptest.NewRequest(http.MethodPost, "/api/push/unsubscribe", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.lastUnsubEndpt)
}
