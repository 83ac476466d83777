package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	notificationdomain "traindesk/internal/domain/notification"
	"traindesk/internal/shared/errors"
)

func storedNotification(t *testing.T, id, userID uint, read bool) *notificationdomain.Notification {
	t.Helper()
	n, err := notificationdomain.ReconstructNotification(id, userID, "ticket_redeemed", "picked up", nil, read, time.Now().UTC())
	require.NoError(t, err)
	return n
}

func TestListNotifications(t *testing.T) {
	repo := &mockNotificationRepository{
		ListByUserFunc: func(ctx context.Context, userID uint, offset, limit int) ([]*notificationdomain.Notification, int64, error) {
			assert.Equal(t, defaultPageSize, limit)
			return []*notificationdomain.Notification{
				storedNotification(t, 1, userID, false),
				storedNotification(t, 2, userID, true),
			}, 2, nil
		},
		CountUnreadFunc: func(ctx context.Context, userID uint) (int64, error) {
			return 1, nil
		},
	}
	uc := NewListNotificationsUseCase(repo, noopLogger{})

	result, err := uc.Execute(context.Background(), ListNotificationsCommand{UserID: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
	assert.Equal(t, int64(1), result.Unread)
	require.Len(t, result.Notifications, 2)
	assert.False(t, result.Notifications[0].Read)
}

func TestMarkRead(t *testing.T) {
	t.Run("marks own notification", func(t *testing.T) {
		marked := false
		repo := &mockNotificationRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*notificationdomain.Notification, error) {
				return storedNotification(t, id, 3, false), nil
			},
			MarkReadFunc: func(ctx context.Context, id uint) error {
				marked = true
				return nil
			},
		}
		uc := NewMarkReadUseCase(repo, noopLogger{})

		err := uc.Execute(context.Background(), MarkReadCommand{NotificationID: 1, UserID: 3})
		require.NoError(t, err)
		assert.True(t, marked)
	})

	t.Run("rejects another user's notification", func(t *testing.T) {
		repo := &mockNotificationRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*notificationdomain.Notification, error) {
				return storedNotification(t, id, 99, false), nil
			},
		}
		uc := NewMarkReadUseCase(repo, noopLogger{})

		err := uc.Execute(context.Background(), MarkReadCommand{NotificationID: 1, UserID: 3})
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("mark all delegates to repository", func(t *testing.T) {
		var markedAllFor uint
		repo := &mockNotificationRepository{
			MarkAllReadFunc: func(ctx context.Context, userID uint) error {
				markedAllFor = userID
				return nil
			},
		}
		uc := NewMarkReadUseCase(repo, noopLogger{})

		err := uc.Execute(context.Background(), MarkReadCommand{UserID: 3, All: true})
		require.NoError(t, err)
		assert.Equal(t, uint(3), markedAllFor)
	})
}
