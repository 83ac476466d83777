package notification

import "context"

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, cmd ListNotificationsCommand) (*ListNotificationsResult, error)
}

type MarkReadExecutor interface {
	Execute(ctx context.Context, cmd MarkReadCommand) error
}
