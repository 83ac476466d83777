package usecases

import (
	"context"
	"time"

	"traindesk/internal/domain/user"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      user.Snapshot
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	issuer   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, hasher PasswordHasher, issuer TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil || u == nil || u.IsDeleted() {
		// Same answer for unknown email and bad password.
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := uc.hasher.Compare(u.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("failed login attempt", "email", cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, expiresAt, err := uc.issuer.Generate(u.ID(), u.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      u.Snapshot(),
	}, nil
}
