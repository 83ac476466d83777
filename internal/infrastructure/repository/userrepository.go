// Package repository provides gorm-backed implementations of the domain
// repository interfaces. Every method resolves the ambient transaction from
// the context so workflow operations share a single transaction.
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"traindesk/internal/domain/user"
	"traindesk/internal/infrastructure/persistence/mappers"
	"traindesk/internal/infrastructure/persistence/models"
	"traindesk/internal/shared/db"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{db: database}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	model := mappers.UserToModel(u)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return err
	}
	return u.SetID(model.ID)
}

// GetByID returns the user even when soft-deleted; callers decide whether a
// deleted account is visible for their operation.
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	err := db.GetTxFromContext(ctx, r.db).Unscoped().First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user not found")
		}
		return nil, err
	}
	return mappers.UserToDomain(&model)
}

func (r *UserRepository) GetByIDForUpdate(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	err := db.GetTxFromContext(ctx, r.db).
		Unscoped().
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user not found")
		}
		return nil, err
	}
	return mappers.UserToDomain(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	err := db.GetTxFromContext(ctx, r.db).
		Unscoped().
		Where("email = ?", email).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user not found")
		}
		return nil, err
	}
	return mappers.UserToDomain(&model)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := mappers.UserToModel(u)
	return db.GetTxFromContext(ctx, r.db).Unscoped().Save(model).Error
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	return db.GetTxFromContext(ctx, r.db).Delete(&models.UserModel{}, id).Error
}

func (r *UserRepository) List(ctx context.Context, offset, limit int) ([]*user.User, error) {
	var userModels []models.UserModel
	err := db.GetTxFromContext(ctx, r.db).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&userModels).Error
	if err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(userModels))
	for i := range userModels {
		u, err := mappers.UserToDomain(&userModels[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Count(&count).Error
	return count, err
}
