package domain

import (
	"context"
	"testing"

	clientRepo "pushhub/database/repository/client"
	domainRepo "pushhub/database/repository/domain"
	"pushhub/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDomainRepo struct {
	byID map[string]*models.Domain
}

func newFakeDomainRepo() *fakeDomainRepo {
	return &fakeDomainRepo{byID: make(map[string]*models.Domain)}
}

func (r *fakeDomainRepo) Create(ctx context.Context, d *models.Domain) (string, error) {
	for _, existing := range r.byID {
		if existing.ClientID == d.ClientID && existing.Name == d.Name {
			return "", domainRepo.ErrDomainExists
		}
	}
	d.ID = uuid.New().String()
	stored := *d
	r.byID[d.ID] = &stored
	return d.ID, nil
}

func (r *fakeDomainRepo) GetByID(ctx context.Context, id string) (*models.Domain, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, domainRepo.ErrDomainNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDomainRepo) GetAllByClientID(ctx context.Context, clientID string) ([]models.Domain, error) {
	var out []models.Domain
	for _, d := range r.byID {
		if d.ClientID == clientID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDomainRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domainRepo.ErrDomainNotFound
	}
	delete(r.byID, id)
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

func newTestService(t *testing.T) (*DefaultDomainService, *fakeDomainRepo) {
	t.Helper()
	repo := newFakeDomainRepo()
	clients := &fakeClientRepo{clients: map[string]*models.Client{
		"tenant-1": {ID: "tenant-1", Name: "Acme", Active: true},
		"tenant-2": {ID: "tenant-2", Name: "Dormant Co", Active: false},
	}}
	svc, err := NewDefaultDomainService(repo, clients)
	require.NoError(t, err)
	return svc, repo
}

func TestValidDomainName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain domain", "example.com", true},
		{"subdomain", "shop.example.co.uk", true},
		{"hyphenated", "my-shop.example.com", true},
		{"with port", "example.com:8443", true},
		{"localhost", "localhost", true},
		{"localhost with port", "localhost:3000", true},
		{"ipv4", "192.168.1.10", true},
		{"ipv4 with port", "192.168.1.10:8080", true},
		{"empty", "", false},
		{"scheme included", "https://example.com", false},
		{"path included", "example.com/shop", false},
		{"no tld", "example", false},
		{"spaces", "exa mple.com", false},
		{"leading hyphen", "-bad.example.com", false},
		{"bare port", ":8080", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidDomainName(tt.input), "input %q", tt.input)
		})
	}
}

func TestRegisterNormalizesAndStores(t *testing.T) {
	svc, repo := newTestService(t)

	d, err := svc.Register(context.Background(), "tenant-1", "  Shop.Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "shop.example.com", d.Name)
	assert.Equal(t, "tenant-1", d.ClientID)

	all, err := repo.GetAllByClientID(context.Background(), "tenant-1")
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestRegisterRejectsInvalidOrigin(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.Register(context.Background(), "tenant-1", "https://example.com")
	assert.ErrorIs(t, err, ErrInvalidDomain)
	assert.Empty(t, repo.byID)
}

func TestRegisterRejectsInactiveClient(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Register(context.Background(), "tenant-2", "example.com")
	assert.ErrorIs(t, err, ErrClientInactive)
}

func TestRegisterDuplicatePerClient(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Register(context.Background(), "tenant-1", "example.com")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "tenant-1", "EXAMPLE.com")
	assert.ErrorIs(t, err, domainRepo.ErrDomainExists)
}

func TestDeleteEnforcesOwnership(t *testing.T) {
	svc, repo := newTestService(t)

	d, err := svc.Register(context.Background(), "tenant-1", "example.com")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(context.Background(), "tenant-2", d.ID), ErrNotOwned)
	require.NoError(t, svc.Delete(context.Background(), "tenant-1", d.ID))
	assert.Empty(t, repo.byID)
}
