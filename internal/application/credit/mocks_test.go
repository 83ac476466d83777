package credit

import (
	"context"

	"traindesk/internal/domain/coupon"
	"traindesk/internal/domain/shared/events"
	"traindesk/internal/domain/user"
	"traindesk/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc             func(ctx context.Context, u *user.User) error
	GetByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc       func(ctx context.Context, email string) (*user.User, error)
	UpdateFunc           func(ctx context.Context, u *user.User) error
	DeleteFunc           func(ctx context.Context, id uint) error
	ListFunc             func(ctx context.Context, offset, limit int) ([]*user.User, error)
	CountFunc            func(ctx context.Context) (int64, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByIDForUpdate(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) List(ctx context.Context, offset, limit int) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockCouponRepository struct {
	SaveFunc       func(ctx context.Context, c *coupon.Coupon) error
	GetByIDFunc    func(ctx context.Context, id uint) (*coupon.Coupon, error)
	GetByCodeFunc  func(ctx context.Context, code string) (*coupon.Coupon, error)
	UpdateFunc     func(ctx context.Context, c *coupon.Coupon) error
	ListByUserFunc func(ctx context.Context, userID uint) ([]*coupon.Coupon, error)
}

func (m *mockCouponRepository) Save(ctx context.Context, c *coupon.Coupon) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCouponRepository) GetByID(ctx context.Context, id uint) (*coupon.Coupon, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCouponRepository) GetByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockCouponRepository) Update(ctx context.Context, c *coupon.Coupon) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCouponRepository) ListByUser(ctx context.Context, userID uint) ([]*coupon.Coupon, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

// mockTxManager runs the function inline, mirroring a committed transaction.
type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockCodeGenerator struct {
	GenerateFunc func() (string, error)
}

func (m *mockCodeGenerator) GenerateCouponCode() (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return "RWD-TESTCODE", nil
}

type mockPublisher struct {
	Published []events.DomainEvent
}

func (m *mockPublisher) Publish(event events.DomainEvent) error {
	m.Published = append(m.Published, event)
	return nil
}

func (m *mockPublisher) PublishAll(evts []events.DomainEvent) error {
	m.Published = append(m.Published, evts...)
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any)           {}
func (noopLogger) Info(string, ...any)            {}
func (noopLogger) Warn(string, ...any)            {}
func (noopLogger) Error(string, ...any)           {}
func (l noopLogger) With(...any) logger.Interface { return l }
func (l noopLogger) Named(string) logger.Interface {
	return l
}
func (noopLogger) Debugw(string, ...interface{}) {}
func (noopLogger) Infow(string, ...interface{})  {}
func (noopLogger) Warnw(string, ...interface{})  {}
func (noopLogger) Errorw(string, ...interface{}) {}
