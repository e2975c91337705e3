// Package auth handles credential verification and token issuance.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/atriumhq/atrium/internal/application/auth/dto"
	appuser "github.com/atriumhq/atrium/internal/application/user"
	"github.com/atriumhq/atrium/internal/domain/user"
	"github.com/atriumhq/atrium/internal/shared/errors"
	"github.com/atriumhq/atrium/internal/shared/logger"
	"github.com/atriumhq/atrium/internal/shared/utils"
)

// TokenIssuer issues signed access tokens for authenticated users
type TokenIssuer interface {
	Issue(userID uint, tenantID *uint, roles []string) (token string, expiresIn time.Duration, err error)
}

type Service struct {
	userRepo user.Repository
	hasher   appuser.PasswordHasher
	issuer   TokenIssuer
	logger   logger.Interface
}

func NewService(userRepo user.Repository, hasher appuser.PasswordHasher, issuer TokenIssuer, log logger.Interface) *Service {
	return &Service{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		logger:   log,
	}
}

// Login verifies credentials and issues an access token. Invalid email,
// wrong password and disabled accounts all return the same error so the
// response does not reveal which accounts exist.
func (s *Service) Login(ctx context.Context, request dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	entity, err := s.userRepo.GetByEmail(ctx, request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if entity == nil || entity.Status() != user.StatusActive {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if !s.hasher.Verify(entity.PasswordHash(), request.Password) {
		s.logger.Warnw("failed login attempt", "email", request.Email)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, expiresIn, err := s.issuer.Issue(entity.ID(), entity.TenantID(), entity.RoleNames())
	if err != nil {
		s.logger.Errorw("failed to issue token", "error", err, "user_id", entity.ID())
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Infow("user logged in", "user_id", entity.ID())
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(expiresIn.Seconds()),
		UserID:    entity.ID(),
		TenantID:  entity.TenantID(),
	}, nil
}
