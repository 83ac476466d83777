package usecases

import (
	"context"

	"traindesk/internal/application/ticket/dto"
	"traindesk/internal/domain/ticket"
	vo "traindesk/internal/domain/ticket/valueobjects"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/logger"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ListTicketsQuery struct {
	Status      string
	CreatedBy   uint
	RedeemedBy  uint
	Page        int
	PageSize    int
	RequesterID uint
}

type ListTicketsResult struct {
	Tickets  []*dto.TicketDTO
	Total    int64
	Page     int
	PageSize int
}

// ListTicketsUseCase lists live tickets plus the requester's own soft-deleted
// ones. Solution content is never attached here; the detail view handles
// redaction.
type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	filter := ticket.ListFilter{
		CreatedBy:         query.CreatedBy,
		RedeemedBy:        query.RedeemedBy,
		IncludeDeletedFor: query.RequesterID,
		Offset:            (page - 1) * pageSize,
		Limit:             pageSize,
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = status
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	dtos := make([]*dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, dto.FromTicket(t))
	}

	return &ListTicketsResult{
		Tickets:  dtos,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
