package usecases

import (
	"context"

	"traindesk/internal/domain/shared/events"
	"traindesk/internal/domain/ticket"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	Attachments []string
	CreatedBy   uint
}

type CreateTicketResult struct {
	TicketID uint
	Status   string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "created_by", cmd.CreatedBy)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	t, err := ticket.NewTicket(cmd.Title, cmd.Description, cmd.Attachments, cmd.CreatedBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "created_by", cmd.CreatedBy, "error", err)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	if err := uc.publisher.Publish(ticket.NewTicketCreatedEvent(t)); err != nil {
		uc.logger.Warnw("failed to publish ticket created event", "ticket_id", t.ID(), "error", err)
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "created_by", cmd.CreatedBy)

	return &CreateTicketResult{
		TicketID: t.ID(),
		Status:   t.Status().String(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if cmd.Title == "" {
		return errors.NewValidationError("title is required")
	}
	if cmd.Description == "" {
		return errors.NewValidationError("description is required")
	}
	if cmd.CreatedBy == 0 {
		return errors.NewValidationError("creator user ID is required")
	}
	return nil
}
