package usecases

import "context"

type GetStatsExecutor interface {
	Execute(ctx context.Context, query GetStatsQuery) (*GetStatsResult, error)
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, cmd DeleteUserCommand) (*DeleteUserResult, error)
}
