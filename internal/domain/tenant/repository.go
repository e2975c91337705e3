package tenant

import "context"

// Repository defines the persistence contract for tenants.
// Implementations return (nil, nil) when the tenant does not exist;
// callers decide whether that is a not-found fault.
type Repository interface {
	Create(ctx context.Context, tenant *Tenant) error
	GetByID(ctx context.Context, id uint) (*Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*Tenant, error)
	List(ctx context.Context, page, pageSize int) ([]*Tenant, int64, error)
	Update(ctx context.Context, tenant *Tenant) error
}
