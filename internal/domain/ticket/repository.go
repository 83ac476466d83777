package ticket

import (
	"context"

	vo "traindesk/internal/domain/ticket/valueobjects"
)

// ListFilter narrows ticket listings. Zero values mean "no filter".
// IncludeDeletedFor surfaces soft-deleted tickets belonging to that user in
// addition to all live tickets.
type ListFilter struct {
	Status            vo.TicketStatus
	CreatedBy         uint
	RedeemedBy        uint
	IncludeDeletedFor uint
	Offset            int
	Limit             int
}

// Repository defines persistence operations for the ticket aggregate.
// GetByIDForUpdate acquires a row lock and must run inside a transaction.
type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	GetByIDForUpdate(ctx context.Context, id uint) (*Ticket, error)
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]*Ticket, int64, error)

	// ListByRedeemer returns live tickets currently held by the user.
	ListByRedeemer(ctx context.Context, userID uint) ([]*Ticket, error)

	// ListByCreator returns the user's own tickets, including soft-deleted ones.
	ListByCreator(ctx context.Context, userID uint) ([]*Ticket, error)

	CountByStatus(ctx context.Context, status vo.TicketStatus) (int64, error)
}
