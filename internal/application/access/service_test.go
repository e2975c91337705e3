package access

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainaccess "github.com/atriumhq/atrium/internal/domain/access"
	"github.com/atriumhq/atrium/internal/domain/catalog"
	"github.com/atriumhq/atrium/internal/domain/rbac"
	"github.com/atriumhq/atrium/internal/domain/tenant"
	vo "github.com/atriumhq/atrium/internal/domain/tenant/valueobjects"
	"github.com/atriumhq/atrium/internal/domain/user"
	"github.com/atriumhq/atrium/internal/shared/errors"
	"github.com/atriumhq/atrium/internal/shared/logger"
)

type stubLoader struct {
	snap *domainaccess.Snapshot
	err  error
}

func (l *stubLoader) LoadForUser(ctx context.Context, userID uint) (*domainaccess.Snapshot, error) {
	return l.snap, l.err
}

func (l *stubLoader) LoadForUserInTenant(ctx context.Context, userID, tenantID uint) (*domainaccess.Snapshot, error) {
	return l.snap, l.err
}

func (l *stubLoader) LoadAnonymous(ctx context.Context, tenantID uint) (*domainaccess.Snapshot, error) {
	return l.snap, l.err
}

func fixedTime() time.Time {
	return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
}

func testSnapshot(t *testing.T) *domainaccess.Snapshot {
	t.Helper()

	now := fixedTime()
	tn, err := tenant.ReconstructTenant(1, "Acme Corp", "acme", vo.StatusActive, nil, nil, 1, now, now)
	require.NoError(t, err)

	tenantID := uint(1)
	u, err := user.ReconstructUser(2, "user@acme.test", "Test User", "hash", &tenantID,
		[]string{rbac.RoleUser}, user.StatusActive, now, now)
	require.NoError(t, err)

	m, err := catalog.ReconstructModule(1, catalog.CodeTaxi, "Taxi", "car", "/taxi", 1, true, nil, now, now)
	require.NoError(t, err)

	return &domainaccess.Snapshot{
		Tenant: tn,
		User:   u,
		Modules: []domainaccess.ModuleEntitlement{
			{
				Module:        m,
				TenantEnabled: true,
				RoleGrants: map[string][]rbac.PermissionName{
					rbac.RoleUser: {"taxi.view"},
				},
				Catalog: []rbac.PermissionName{"taxi.view", "taxi.delete"},
			},
		},
	}
}

func newTestService(loader domainaccess.Loader) *Service {
	svc := NewService(loader, logger.NewLogger())
	svc.now = fixedTime
	return svc
}

func TestService_Decide_Allow(t *testing.T) {
	svc := newTestService(&stubLoader{snap: testSnapshot(t)})

	resp, err := svc.Decide(context.Background(), 2, "TAXI", "view")

	require.NoError(t, err)
	assert.True(t, resp.Allowed)
	assert.Empty(t, resp.Reason)
}

func TestService_Decide_DenyIsNotAnError(t *testing.T) {
	svc := newTestService(&stubLoader{snap: testSnapshot(t)})

	resp, err := svc.Decide(context.Background(), 2, "TAXI", "delete")

	require.NoError(t, err)
	assert.False(t, resp.Allowed)
	assert.Equal(t, "PERMISSION_DENIED", resp.Reason)
}

func TestService_Decide_LoaderFaultPropagates(t *testing.T) {
	svc := newTestService(&stubLoader{err: errors.NewNotFoundError("user not found")})

	_, err := svc.Decide(context.Background(), 99, "TAXI", "view")

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestService_BuildMenu(t *testing.T) {
	svc := newTestService(&stubLoader{snap: testSnapshot(t)})

	resp, err := svc.BuildMenu(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "TAXI", resp.Entries[0].ModuleCode)
}
