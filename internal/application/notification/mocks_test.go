package notification

import (
	"context"

	notificationdomain "traindesk/internal/domain/notification"
	"traindesk/internal/domain/shared/events"
	"traindesk/internal/domain/user"
	"traindesk/internal/shared/logger"
)

type mockDispatcher struct {
	Published  []events.DomainEvent
	Subscribed []string
}

func (m *mockDispatcher) Publish(event events.DomainEvent) error {
	m.Published = append(m.Published, event)
	return nil
}

func (m *mockDispatcher) PublishAll(evts []events.DomainEvent) error {
	m.Published = append(m.Published, evts...)
	return nil
}

func (m *mockDispatcher) Subscribe(eventType string, handler events.EventHandler) error {
	m.Subscribed = append(m.Subscribed, eventType)
	return nil
}

func (m *mockDispatcher) Unsubscribe(eventType string, handler events.EventHandler) error {
	return nil
}

func (m *mockDispatcher) Start() error { return nil }
func (m *mockDispatcher) Stop() error  { return nil }

type mockNotificationRepository struct {
	SaveFunc        func(ctx context.Context, n *notificationdomain.Notification) error
	GetByIDFunc     func(ctx context.Context, id uint) (*notificationdomain.Notification, error)
	ListByUserFunc  func(ctx context.Context, userID uint, offset, limit int) ([]*notificationdomain.Notification, int64, error)
	MarkReadFunc    func(ctx context.Context, id uint) error
	MarkAllReadFunc func(ctx context.Context, userID uint) error
	CountUnreadFunc func(ctx context.Context, userID uint) (int64, error)
}

func (m *mockNotificationRepository) Save(ctx context.Context, n *notificationdomain.Notification) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*notificationdomain.Notification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationRepository) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*notificationdomain.Notification, int64, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockNotificationRepository) MarkRead(ctx context.Context, id uint) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, id)
	}
	return nil
}

func (m *mockNotificationRepository) MarkAllRead(ctx context.Context, userID uint) error {
	if m.MarkAllReadFunc != nil {
		return m.MarkAllReadFunc(ctx, userID)
	}
	return nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, userID)
	}
	return 0, nil
}

type mockUserRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByIDForUpdate(ctx context.Context, id uint) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) Delete(ctx context.Context, id uint) error      { return nil }

func (m *mockUserRepository) List(ctx context.Context, offset, limit int) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) { return 0, nil }

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                     {}
func (noopLogger) Info(msg string, args ...any)                      {}
func (noopLogger) Warn(msg string, args ...any)                      {}
func (noopLogger) Error(msg string, args ...any)                     {}
func (n noopLogger) With(args ...any) logger.Interface               { return n }
func (n noopLogger) Named(name string) logger.Interface              { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{})   {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})    {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})    {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{})   {}
