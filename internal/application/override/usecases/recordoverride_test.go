package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atriumhq/atrium/internal/application/override/dto"
	"github.com/atriumhq/atrium/internal/domain/catalog"
	"github.com/atriumhq/atrium/internal/domain/rbac"
	"github.com/atriumhq/atrium/internal/domain/user"
	"github.com/atriumhq/atrium/internal/shared/errors"
	"github.com/atriumhq/atrium/internal/shared/logger"
)

type stubUserRepo struct {
	user *user.User
}

func (r *stubUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (r *stubUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if r.user != nil && r.user.ID() == id {
		return r.user, nil
	}
	return nil, nil
}
func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}
func (r *stubUserRepo) ListByTenant(ctx context.Context, tenantID uint, page, pageSize int) ([]*user.User, int64, error) {
	return nil, 0, nil
}
func (r *stubUserRepo) Update(ctx context.Context, u *user.User) error { return nil }

type stubCatalogRepo struct {
	module *catalog.Module
}

func (r *stubCatalogRepo) ListModules(ctx context.Context) ([]*catalog.Module, error) {
	return []*catalog.Module{r.module}, nil
}
func (r *stubCatalogRepo) GetModuleByID(ctx context.Context, id uint) (*catalog.Module, error) {
	return r.module, nil
}
func (r *stubCatalogRepo) GetModuleByCode(ctx context.Context, code catalog.Code) (*catalog.Module, error) {
	if r.module != nil && r.module.Code() == code {
		return r.module, nil
	}
	return nil, nil
}
func (r *stubCatalogRepo) ListTenantModules(ctx context.Context, tenantID uint) ([]*catalog.TenantModule, error) {
	return nil, nil
}
func (r *stubCatalogRepo) GetTenantModule(ctx context.Context, tenantID, moduleID uint) (*catalog.TenantModule, error) {
	return nil, nil
}
func (r *stubCatalogRepo) SaveTenantModule(ctx context.Context, tm *catalog.TenantModule) error {
	return nil
}

type stubRBACRepo struct {
	permissions []*rbac.Permission
	saved       []*rbac.Override
}

func (r *stubRBACRepo) GetRoleByName(ctx context.Context, name string) (*rbac.Role, error) {
	return nil, nil
}
func (r *stubRBACRepo) ListRolesForUser(ctx context.Context, userID uint) ([]*rbac.Role, error) {
	return nil, nil
}
func (r *stubRBACRepo) ListModulePermissions(ctx context.Context, moduleID uint) ([]*rbac.Permission, error) {
	return r.permissions, nil
}
func (r *stubRBACRepo) ListRolePermissions(ctx context.Context, roleID, moduleID uint) ([]rbac.PermissionName, error) {
	return nil, nil
}
func (r *stubRBACRepo) ListOverrides(ctx context.Context, userID, moduleID uint) ([]*rbac.Override, error) {
	return r.saved, nil
}
func (r *stubRBACRepo) SaveOverride(ctx context.Context, override *rbac.Override) error {
	if err := override.SetID(uint(len(r.saved) + 1)); err != nil {
		return err
	}
	r.saved = append(r.saved, override)
	return nil
}
func (r *stubRBACRepo) DeleteOverride(ctx context.Context, id uint) error { return nil }

func fixtureUseCase(t *testing.T) (*RecordOverrideUseCase, *stubRBACRepo) {
	t.Helper()

	now := time.Now()
	tenantID := uint(1)

	u, err := user.ReconstructUser(10, "member@acme.test", "Member", "hash", &tenantID,
		[]string{rbac.RoleUser}, user.StatusActive, now, now)
	require.NoError(t, err)

	module, err := catalog.ReconstructModule(5, catalog.CodeTaxi, "Taxi", "car", "/taxi",
		30, true, nil, now, now)
	require.NoError(t, err)

	view, err := rbac.ReconstructPermission(1, "taxi.view", 5, "", now, now)
	require.NoError(t, err)
	manage, err := rbac.ReconstructPermission(2, "taxi.manage", 5, "", now, now)
	require.NoError(t, err)

	rbacRepo := &stubRBACRepo{permissions: []*rbac.Permission{view, manage}}
	uc := NewRecordOverrideUseCase(
		&stubUserRepo{user: u},
		&stubCatalogRepo{module: module},
		rbacRepo,
		logger.NewLogger(),
	)

	return uc, rbacRepo
}

func TestRecordOverride(t *testing.T) {
	uc, rbacRepo := fixtureUseCase(t)

	result, err := uc.Execute(context.Background(), dto.RecordOverrideRequest{
		UserID:     10,
		ModuleCode: "TAXI",
		Permission: "taxi.manage",
		Granted:    true,
	})
	require.NoError(t, err)

	assert.NotZero(t, result.ID)
	assert.Equal(t, "taxi.manage", result.Permission)
	assert.True(t, result.Granted)
	assert.Len(t, rbacRepo.saved, 1)
}

func TestRecordOverrideRejectsPermissionOutsideCatalog(t *testing.T) {
	uc, rbacRepo := fixtureUseCase(t)

	_, err := uc.Execute(context.Background(), dto.RecordOverrideRequest{
		UserID:     10,
		ModuleCode: "TAXI",
		Permission: "finance.view",
		Granted:    true,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Empty(t, rbacRepo.saved)
}

func TestRecordOverrideRejectsUnknownModule(t *testing.T) {
	uc, _ := fixtureUseCase(t)

	_, err := uc.Execute(context.Background(), dto.RecordOverrideRequest{
		UserID:     10,
		ModuleCode: "FINANCE",
		Permission: "finance.view",
		Granted:    true,
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRecordOverrideRejectsUnknownUser(t *testing.T) {
	uc, _ := fixtureUseCase(t)

	_, err := uc.Execute(context.Background(), dto.RecordOverrideRequest{
		UserID:     99,
		ModuleCode: "TAXI",
		Permission: "taxi.view",
		Granted:    false,
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
