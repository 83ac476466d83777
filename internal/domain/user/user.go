// Package user contains the user aggregate: identity, role, and the running
// credit balance mutated only through the credit ledger.
package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	vo "traindesk/internal/domain/user/valueobjects"
)

var (
	// ErrInsufficientCredits is returned when a deduction exceeds the balance.
	ErrInsufficientCredits = errors.New("insufficient credits")
)

type User struct {
	id           uint
	name         string
	email        string
	passwordHash string
	role         vo.Role
	avatar       string
	totalCredits int
	createdAt    time.Time
	updatedAt    time.Time
	deletedAt    *time.Time
}

func NewUser(name, email, passwordHash string, role vo.Role) (*User, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(email) == 0 || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("valid email is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role")
	}

	now := time.Now().UTC()
	return &User{
		name:         name,
		email:        strings.ToLower(email),
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	name string,
	email string,
	passwordHash string,
	role vo.Role,
	avatar string,
	totalCredits int,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role")
	}
	if totalCredits < 0 {
		return nil, fmt.Errorf("credit balance cannot be negative")
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		avatar:       avatar,
		totalCredits: totalCredits,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		deletedAt:    deletedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() vo.Role {
	return u.role
}

func (u *User) Avatar() string {
	return u.avatar
}

func (u *User) TotalCredits() int {
	return u.totalCredits
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) DeletedAt() *time.Time {
	return u.deletedAt
}

func (u *User) IsDeleted() bool {
	return u.deletedAt != nil
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// AddCredits increments the balance. Only the credit ledger calls this,
// inside the workflow's transaction with the user row locked.
func (u *User) AddCredits(amount int) error {
	if amount < 0 {
		return fmt.Errorf("credit amount cannot be negative")
	}
	u.totalCredits += amount
	u.updatedAt = time.Now().UTC()
	return nil
}

// DeductCredits decrements the balance, failing if it would go negative.
func (u *User) DeductCredits(amount int) error {
	if amount < 0 {
		return fmt.Errorf("credit amount cannot be negative")
	}
	if u.totalCredits < amount {
		return ErrInsufficientCredits
	}
	u.totalCredits -= amount
	u.updatedAt = time.Now().UTC()
	return nil
}

func (u *User) ChangeAvatar(avatar string) {
	u.avatar = avatar
	u.updatedAt = time.Now().UTC()
}

// MarkDeleted records the soft-deletion timestamp on the aggregate.
func (u *User) MarkDeleted() {
	if u.deletedAt != nil {
		return
	}
	now := time.Now().UTC()
	u.deletedAt = &now
	u.updatedAt = now
}

// Snapshot is the externally visible view of a user, carried on domain events
// and API responses. The password hash is never included.
type Snapshot struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	Avatar       string     `json:"avatar,omitempty"`
	TotalCredits int        `json:"total_credits"`
	CreatedAt    time.Time  `json:"created_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

func (u *User) Snapshot() Snapshot {
	return Snapshot{
		ID:           u.id,
		Name:         u.name,
		Email:        u.email,
		Role:         u.role.String(),
		Avatar:       u.avatar,
		TotalCredits: u.totalCredits,
		CreatedAt:    u.createdAt,
		DeletedAt:    u.deletedAt,
	}
}
