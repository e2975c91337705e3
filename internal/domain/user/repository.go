package user

import "context"

// Repository defines the persistence contract for users. Loaded users
// always carry their role names.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ListByTenant(ctx context.Context, tenantID uint, page, pageSize int) ([]*User, int64, error)
	Update(ctx context.Context, user *User) error
}
