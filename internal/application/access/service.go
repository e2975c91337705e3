// Package access exposes the access decision engine and navigation
// builder to callers that hold only identifiers. The service loads a
// fresh entitlement snapshot for every call and delegates to the pure
// domain engine; nothing is cached across requests.
package access

import (
	"context"
	"time"

	"github.com/atriumhq/atrium/internal/application/access/dto"
	"github.com/atriumhq/atrium/internal/domain/access"
	"github.com/atriumhq/atrium/internal/domain/catalog"
	"github.com/atriumhq/atrium/internal/shared/logger"
)

type Service struct {
	loader access.Loader
	now    func() time.Time
	logger logger.Interface
}

func NewService(loader access.Loader, log logger.Interface) *Service {
	return &Service{
		loader: loader,
		now:    time.Now,
		logger: log,
	}
}

// Decide evaluates one (user, module, action) triple against current
// entitlement state. Loader faults (missing user, missing tenant,
// storage errors) surface as errors; a deny is a value.
func (s *Service) Decide(ctx context.Context, userID uint, moduleCode, action string) (*dto.DecisionResponse, error) {
	snap, err := s.loader.LoadForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	d := access.Decide(snap, catalog.Code(moduleCode), action, s.now())
	if !d.Allowed {
		s.logger.Debugw("access denied",
			"user_id", userID, "module", moduleCode, "action", action, "reason", d.Reason)
	}

	return dto.NewDecisionResponse(d), nil
}

// DecideInTenant evaluates a decision for a user acting inside an
// explicit tenant context. Super admins operating on behalf of a
// tenant go through here so the tenant's subscription gate applies.
func (s *Service) DecideInTenant(ctx context.Context, userID, tenantID uint, moduleCode, action string) (*dto.DecisionResponse, error) {
	snap, err := s.loader.LoadForUserInTenant(ctx, userID, tenantID)
	if err != nil {
		return nil, err
	}

	d := access.Decide(snap, catalog.Code(moduleCode), action, s.now())
	return dto.NewDecisionResponse(d), nil
}

// DecideAnonymous evaluates a decision for an unauthenticated request
// under the ANONYMOUS role.
func (s *Service) DecideAnonymous(ctx context.Context, tenantID uint, moduleCode, action string) (*dto.DecisionResponse, error) {
	snap, err := s.loader.LoadAnonymous(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	d := access.Decide(snap, catalog.Code(moduleCode), action, s.now())
	return dto.NewDecisionResponse(d), nil
}

// BuildMenu computes the navigation menu for a user from current
// entitlement state.
func (s *Service) BuildMenu(ctx context.Context, userID uint) (*dto.MenuResponse, error) {
	snap, err := s.loader.LoadForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.MenuResponse{Entries: access.BuildMenu(snap, s.now())}, nil
}
