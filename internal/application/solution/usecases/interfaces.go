package usecases

import (
	"context"

	"traindesk/internal/application/solution/dto"
)

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type SearchSolutionsExecutor interface {
	Execute(ctx context.Context, query SearchSolutionsQuery) (*SearchSolutionsResult, error)
}

type RecentSolutionsExecutor interface {
	Execute(ctx context.Context, query RecentSolutionsQuery) ([]*dto.KnowledgeEntryDTO, error)
}

type GetSolutionExecutor interface {
	Execute(ctx context.Context, query GetSolutionQuery) (*dto.KnowledgeEntryDTO, error)
}

type PendingSolutionsExecutor interface {
	Execute(ctx context.Context, query PendingSolutionsQuery) (*PendingSolutionsResult, error)
}

type DisableSolutionExecutor interface {
	Execute(ctx context.Context, cmd DisableSolutionCommand) error
}
