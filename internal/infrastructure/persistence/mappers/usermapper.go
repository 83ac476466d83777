// Package mappers converts between domain aggregates and gorm persistence
// models. Mapping to the domain goes through the Reconstruct constructors so
// invalid rows surface as errors instead of half-built aggregates.
package mappers

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"traindesk/internal/domain/user"
	uservo "traindesk/internal/domain/user/valueobjects"
	"traindesk/internal/infrastructure/persistence/models"
)

func UserToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		Avatar:       u.Avatar(),
		TotalCredits: u.TotalCredits(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
		DeletedAt:    toGormDeletedAt(u.DeletedAt()),
	}
}

func UserToDomain(m *models.UserModel) (*user.User, error) {
	role, err := uservo.NewRole(m.Role)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", m.ID, err)
	}
	return user.ReconstructUser(
		m.ID,
		m.Name,
		m.Email,
		m.PasswordHash,
		role,
		m.Avatar,
		m.TotalCredits,
		m.CreatedAt,
		m.UpdatedAt,
		fromGormDeletedAt(m.DeletedAt),
	)
}

func toGormDeletedAt(t *time.Time) gorm.DeletedAt {
	if t == nil {
		return gorm.DeletedAt{}
	}
	return gorm.DeletedAt{Time: *t, Valid: true}
}

func fromGormDeletedAt(d gorm.DeletedAt) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}
