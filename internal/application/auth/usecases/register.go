// Package usecases implements account registration and login.
package usecases

import (
	"context"
	"time"

	"traindesk/internal/domain/user"
	vo "traindesk/internal/domain/user/valueobjects"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/logger"
)

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	Generate(userID uint, role string) (string, time.Time, error)
}

type RegisterCommand struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type RegisterResult struct {
	UserID uint
	Email  string
	Role   string
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	uc.logger.Infow("executing register use case", "email", cmd.Email)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	role := vo.RoleTrainee
	if cmd.Role != "" {
		parsed, err := vo.NewRole(cmd.Role)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		role = parsed
	}

	if existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email); err == nil && existing != nil {
		return nil, errors.NewConflictError("email is already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to register user")
	}

	u, err := user.NewUser(cmd.Name, cmd.Email, hash, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		uc.logger.Errorw("failed to save user", "email", cmd.Email, "error", err)
		return nil, errors.NewInternalError("failed to register user")
	}

	uc.logger.Infow("user registered", "user_id", u.ID(), "role", role)

	return &RegisterResult{
		UserID: u.ID(),
		Email:  u.Email(),
		Role:   u.Role().String(),
	}, nil
}

func (uc *RegisterUseCase) validateCommand(cmd RegisterCommand) error {
	if cmd.Name == "" {
		return errors.NewValidationError("name is required")
	}
	if cmd.Email == "" {
		return errors.NewValidationError("email is required")
	}
	if len(cmd.Password) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	return nil
}
