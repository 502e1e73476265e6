package subscription

import (
	"context"
	"errors"
	"testing"

	clientRepo "pushhub/database/repository/client"
	subscriptionRepo "pushhub/database/repository/subscription"
	"pushhub/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSubscriptionRepo mirrors the store's upsert semantics: one record
// per (clientId, endpoint).
type fakeSubscriptionRepo struct {
	byKey map[string]*models.Subscription
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{byKey: make(map[string]*models.Subscription)}
}

func key(clientID, endpoint string) string { return clientID + "|" + endpoint }

func (r *fakeSubscriptionRepo) Upsert(ctx context.Context, sub *models.Subscription) (*models.Subscription, error) {
	k := key(sub.ClientID, sub.Endpoint)
	if existing, ok := r.byKey[k]; ok {
		existing.P256dh = sub.P256dh
		existing.Auth = sub.Auth
		existing.Domain = sub.Domain
		existing.UserAgent = sub.UserAgent
		return existing, nil
	}
	stored := *sub
	stored.ID = uuid.New().String()
	r.byKey[k] = &stored
	return &stored, nil
}

func (r *fakeSubscriptionRepo) GetAllByClientID(ctx context.Context, clientID string) ([]models.Subscription, error) {
	var out []models.Subscription
	for _, s := range r.byKey {
		if s.ClientID == clientID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) CountByClientID(ctx context.Context, clientID string) (int64, error) {
	subs, _ := r.GetAllByClientID(ctx, clientID)
	return int64(len(subs)), nil
}

func (r *fakeSubscriptionRepo) DeleteByID(ctx context.Context, clientID, id string) error {
	for k, s := range r.byKey {
		if s.ID == id && s.ClientID == clientID {
			delete(r.byKey, k)
			return nil
		}
	}
	return subscriptionRepo.ErrSubscriptionNotFound
}

func (r *fakeSubscriptionRepo) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	var n int64
	for _, id := range ids {
		for k, s := range r.byKey {
			if s.ID == id {
				delete(r.byKey, k)
				n++
			}
		}
	}
	return n, nil
}

func (r *fakeSubscriptionRepo) DeleteByEndpoint(ctx context.Context, clientID, endpoint string) error {
	k := key(clientID, endpoint)
	if _, ok := r.byKey[k]; !ok {
		return subscriptionRepo.ErrSubscriptionNotFound
	}
	delete(r.byKey, k)
	return nil
}

type fakeClientRepo struct {
	clients map[string]*models.Client
}

func (r *fakeClientRepo) Create(ctx context.Context, c *models.Client) (string, error) {
	return c.ID, nil
}

func (r *fakeClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, clientRepo.ErrClientNotFound
	}
	return c, nil
}

func (r *fakeClientRepo) GetAll(ctx context.Context) ([]models.Client, error)         { return nil, nil }
func (r *fakeClientRepo) Update(ctx context.Context, c *models.Client) error          { return nil }
func (r *fakeClientRepo) SetActive(ctx context.Context, id string, active bool) error { return nil }
func (r *fakeClientRepo) Delete(ctx context.Context, id string) error                 { return nil }

func newTestService(t *testing.T, clients map[string]*models.Client) (*DefaultSubscriptionService, *fakeSubscriptionRepo) {
	t.Helper()
	repo := newFakeSubscriptionRepo()
	svc, err := NewDefaultSubscriptionService(repo, &fakeClientRepo{clients: clients}, nil)
	require.NoError(t, err)
	return svc, repo
}

func activeClients() map[string]*models.Client {
	return map[string]*models.Client{
		"tenant-1": {ID: "tenant-1", Name: "Acme", Active: true},
		"tenant-2": {ID: "tenant-2", Name: "Dormant Co", Active: false},
	}
}

func validPayload() models.SubscriptionPayload {
	return models.SubscriptionPayload{
		ClientID: "tenant-1",
		Endpoint: "https://push.test/endpoint-1",
		Keys:     models.SubscriptionKeys{P256dh: "pubkey", Auth: "secret"},
		Domain:   "shop.example.com",
	}
}

func TestRegisterRejectsMalformedPayload(t *testing.T) {
	svc, _ := newTestService(t, activeClients())

	tests := []struct {
		name   string
		mutate func(*models.SubscriptionPayload)
	}{
		{"missing endpoint", func(p *models.SubscriptionPayload) { p.Endpoint = "" }},
		{"missing p256dh", func(p *models.SubscriptionPayload) { p.Keys.P256dh = "" }},
		{"missing auth", func(p *models.SubscriptionPayload) { p.Keys.Auth = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload()
			tt.mutate(&payload)
			_, err := svc.Register(context.Background(), payload)
			assert.ErrorIs(t, err, ErrInvalidPayload)
		})
	}
}

func TestRegisterRejectsInactiveClient(t *testing.T) {
	svc, _ := newTestService(t, activeClients())

	payload := validPayload()
	payload.ClientID = "tenant-2"
	_, err := svc.Register(context.Background(), payload)
	assert.ErrorIs(t, err, ErrClientInactive)
}

func TestRegisterRejectsUnknownClient(t *testing.T) {
	svc, _ := newTestService(t, activeClients())

	payload := validPayload()
	payload.ClientID = "nope"
	_, err := svc.Register(context.Background(), payload)
	assert.True(t, errors.Is(err, clientRepo.ErrClientNotFound))
}

func TestResubscribeUpdatesExistingRecord(t *testing.T) {
	svc, repo := newTestService(t, activeClients())

	first, err := svc.Register(context.Background(), validPayload())
	require.NoError(t, err)

	refreshed := validPayload()
	refreshed.Keys.P256dh = "rotated-pubkey"
	second, err := svc.Register(context.Background(), refreshed)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "rotated-pubkey", second.P256dh)

	subs, err := repo.GetAllByClientID(context.Background(), "tenant-1")
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "https://push.test/endpoint-1", subs[0].Endpoint)
}

func TestUnsubscribeRemovesRecord(t *testing.T) {
	svc, repo := newTestService(t, activeClients())

	_, err := svc.Register(context.Background(), validPayload())
	require.NoError(t, err)

	require.NoError(t, svc.Unsubscribe(context.Background(), "tenant-1", "https://push.test/endpoint-1"))

	count, err := repo.CountByClientID(context.Background(), "tenant-1")
	require.NoError(t, err)
	assert.Zero(t, count)

	err = svc.Unsubscribe(context.Background(), "tenant-1", "https://push.test/endpoint-1")
	assert.ErrorIs(t, err, subscriptionRepo.ErrSubscriptionNotFound)
}

func TestCountFallsBackToStoreWithoutCache(t *testing.T) {
	svc, _ := newTestService(t, activeClients())

	_, err := svc.Register(context.Background(), validPayload())
	require.NoError(t, err)

	other := validPayload()
	other.Endpoint = "https://push.test/endpoint-2"
	_, err = svc.Register(context.Background(), other)
	require.NoError(t, err)

	count, err := svc.Count(context.Background(), "tenant-1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestRemoveDeletesOwnedSubscriberOnly(t *testing.T) {
	svc, repo := newTestService(t, activeClients())

	stored, err := svc.Register(context.Background(), validPayload())
	require.NoError(t, err)

	err = svc.Remove(context.Background(), "tenant-2", stored.ID)
	assert.ErrorIs(t, err, subscriptionRepo.ErrSubscriptionNotFound)

	require.NoError(t, svc.Remove(context.Background(), "tenant-1", stored.ID))
	count, err := repo.CountByClientID(context.Background(), "tenant-1")
	require.NoError(t, err)
	assert.Zero(t, count)
}
