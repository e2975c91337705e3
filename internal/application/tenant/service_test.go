package tenant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atriumhq/atrium/internal/application/tenant/dto"
	domaintenant "github.com/atriumhq/atrium/internal/domain/tenant"
	"github.com/atriumhq/atrium/internal/shared/errors"
	"github.com/atriumhq/atrium/internal/shared/logger"
)

// memTenantRepo is an in-memory tenant.Repository for service tests
type memTenantRepo struct {
	tenants map[uint]*domaintenant.Tenant
	nextID  uint
}

func newMemTenantRepo() *memTenantRepo {
	return &memTenantRepo{tenants: make(map[uint]*domaintenant.Tenant), nextID: 1}
}

func (r *memTenantRepo) Create(ctx context.Context, t *domaintenant.Tenant) error {
	if err := t.SetID(r.nextID); err != nil {
		return err
	}
	r.tenants[r.nextID] = t
	r.nextID++
	return nil
}

func (r *memTenantRepo) GetByID(ctx context.Context, id uint) (*domaintenant.Tenant, error) {
	return r.tenants[id], nil
}

func (r *memTenantRepo) GetBySlug(ctx context.Context, slug string) (*domaintenant.Tenant, error) {
	for _, t := range r.tenants {
		if t.Slug() == slug {
			return t, nil
		}
	}
	return nil, nil
}

func (r *memTenantRepo) List(ctx context.Context, page, pageSize int) ([]*domaintenant.Tenant, int64, error) {
	result := make([]*domaintenant.Tenant, 0, len(r.tenants))
	for _, t := range r.tenants {
		result = append(result, t)
	}
	return result, int64(len(result)), nil
}

func (r *memTenantRepo) Update(ctx context.Context, t *domaintenant.Tenant) error {
	r.tenants[t.ID()] = t
	return nil
}

func newTestService() (*Service, *memTenantRepo) {
	repo := newMemTenantRepo()
	return NewService(repo, logger.NewLogger()), repo
}

func TestCreateTenant(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), dto.CreateTenantRequest{
		Name: "Acme Corp",
		Slug: "acme",
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "active", created.Status)
	assert.Nil(t, created.PlanExpiresAt)
}

func TestCreateTenantRejectsDuplicateSlug(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), dto.CreateTenantRequest{Name: "Acme", Slug: "acme"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), dto.CreateTenantRequest{Name: "Other", Slug: "acme"})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestSuspendAndReactivate(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), dto.CreateTenantRequest{Name: "Acme", Slug: "acme"})
	require.NoError(t, err)

	suspended, err := svc.Suspend(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "suspended", suspended.Status)

	reactivated, err := svc.Reactivate(context.Background(), created.ID, dto.ReactivateTenantRequest{})
	require.NoError(t, err)
	assert.Equal(t, "active", reactivated.Status)
}

func TestExpiredTenantCannotBeSuspended(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), dto.CreateTenantRequest{Name: "Acme", Slug: "acme"})
	require.NoError(t, err)

	_, err = svc.MarkExpired(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = svc.Suspend(context.Background(), created.ID)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestGetUnknownTenant(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Get(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
