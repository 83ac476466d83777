package solution

import "context"

// SearchFilter narrows knowledge base searches. Query matches the write-up
// fields and the owning ticket's title and description; Tag filters on the
// solution's own tags.
type SearchFilter struct {
	Query  string
	Tag    string
	Offset int
	Limit  int
}

// Repository defines persistence operations for the solution aggregate.
// GetByIDForUpdate acquires a row lock and must run inside a transaction.
type Repository interface {
	Save(ctx context.Context, s *Solution) error
	GetByID(ctx context.Context, id uint) (*Solution, error)
	GetByIDForUpdate(ctx context.Context, id uint) (*Solution, error)
	GetByTicketID(ctx context.Context, ticketID uint) (*Solution, error)
	Update(ctx context.Context, s *Solution) error
	Delete(ctx context.Context, id uint) error

	// Search returns approved, active solutions matching the filter.
	Search(ctx context.Context, filter SearchFilter) ([]*Solution, int64, error)

	// ListRecent returns the most recently approved solutions.
	ListRecent(ctx context.Context, limit int) ([]*Solution, error)

	// ListPending returns solutions awaiting review, oldest first.
	ListPending(ctx context.Context, offset, limit int) ([]*Solution, int64, error)

	// ListByAuthor returns the user's solutions, including inactive ones.
	ListByAuthor(ctx context.Context, authorID uint) ([]*Solution, error)

	CountByStatus(ctx context.Context, status string) (int64, error)
}
