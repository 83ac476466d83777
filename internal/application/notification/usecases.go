package notification

import (
	"context"
	"time"

	notificationdomain "traindesk/internal/domain/notification"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/logger"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// NotificationDTO is the API view of a stored notification.
type NotificationDTO struct {
	ID        uint      `json:"id"`
	EventType string    `json:"event_type"`
	Title     string    `json:"title"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type ListNotificationsCommand struct {
	UserID uint
	Offset int
	Limit  int
}

type ListNotificationsResult struct {
	Notifications []NotificationDTO
	Total         int64
	Unread        int64
}

type ListNotificationsUseCase struct {
	notificationRepo notificationdomain.Repository
	logger           logger.Interface
}

func NewListNotificationsUseCase(notificationRepo notificationdomain.Repository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{notificationRepo: notificationRepo, logger: logger}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, cmd ListNotificationsCommand) (*ListNotificationsResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.Limit <= 0 {
		cmd.Limit = defaultPageSize
	}
	if cmd.Limit > maxPageSize {
		cmd.Limit = maxPageSize
	}
	if cmd.Offset < 0 {
		cmd.Offset = 0
	}

	items, total, err := uc.notificationRepo.ListByUser(ctx, cmd.UserID, cmd.Offset, cmd.Limit)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list notifications")
	}

	unread, err := uc.notificationRepo.CountUnread(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list notifications")
	}

	dtos := make([]NotificationDTO, 0, len(items))
	for _, n := range items {
		dtos = append(dtos, NotificationDTO{
			ID:        n.ID(),
			EventType: n.EventType(),
			Title:     n.Title(),
			Read:      n.IsRead(),
			CreatedAt: n.CreatedAt(),
		})
	}

	return &ListNotificationsResult{
		Notifications: dtos,
		Total:         total,
		Unread:        unread,
	}, nil
}

type MarkReadCommand struct {
	NotificationID uint
	UserID         uint
	All            bool
}

type MarkReadUseCase struct {
	notificationRepo notificationdomain.Repository
	logger           logger.Interface
}

func NewMarkReadUseCase(notificationRepo notificationdomain.Repository, logger logger.Interface) *MarkReadUseCase {
	return &MarkReadUseCase{notificationRepo: notificationRepo, logger: logger}
}

func (uc *MarkReadUseCase) Execute(ctx context.Context, cmd MarkReadCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	if cmd.All {
		if err := uc.notificationRepo.MarkAllRead(ctx, cmd.UserID); err != nil {
			uc.logger.Errorw("failed to mark all notifications read", "user_id", cmd.UserID, "error", err)
			return errors.NewInternalError("failed to mark notifications read")
		}
		return nil
	}

	if cmd.NotificationID == 0 {
		return errors.NewValidationError("notification ID is required")
	}

	n, err := uc.notificationRepo.GetByID(ctx, cmd.NotificationID)
	if err != nil {
		return errors.NewNotFoundError("notification not found")
	}
	if n.UserID() != cmd.UserID {
		return errors.NewForbiddenError("notification belongs to another user")
	}

	if err := uc.notificationRepo.MarkRead(ctx, cmd.NotificationID); err != nil {
		uc.logger.Errorw("failed to mark notification read", "notification_id", cmd.NotificationID, "error", err)
		return errors.NewInternalError("failed to mark notification read")
	}
	return nil
}
