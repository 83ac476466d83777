package usecases

import (
	"context"

	"traindesk/internal/application/ticket/dto"
)

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type RedeemTicketExecutor interface {
	Execute(ctx context.Context, cmd RedeemTicketCommand) (*RedeemTicketResult, error)
}

type ResolveTicketExecutor interface {
	Execute(ctx context.Context, cmd ResolveTicketCommand) (*ResolveTicketResult, error)
}

type ResolveWithExistingExecutor interface {
	Execute(ctx context.Context, cmd ResolveWithExistingCommand) (*ResolveWithExistingResult, error)
}

type ReviewSolutionExecutor interface {
	Execute(ctx context.Context, cmd ReviewSolutionCommand) (*ReviewSolutionResult, error)
}

type ReopenTicketExecutor interface {
	Execute(ctx context.Context, cmd ReopenTicketCommand) (*ReopenTicketResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}
