package user

import "context"

// Repository defines persistence operations for the user aggregate.
// GetByIDForUpdate must acquire a row lock and is only meaningful inside a
// transaction started through the transaction manager.
type Repository interface {
	Save(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByIDForUpdate(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*User, error)
	Count(ctx context.Context) (int64, error)
}
