package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"traindesk/internal/domain/ticket"
	ticketvo "traindesk/internal/domain/ticket/valueobjects"
	"traindesk/internal/infrastructure/persistence/mappers"
	"traindesk/internal/infrastructure/persistence/models"
	"traindesk/internal/shared/db"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(database *gorm.DB) *TicketRepository {
	return &TicketRepository{db: database}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := mappers.TicketToModel(t)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return err
	}
	return t.SetID(model.ID)
}

// GetByID returns the ticket even when soft-deleted; visibility of deleted
// tickets is decided by the use case, not the repository.
func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	err := db.GetTxFromContext(ctx, r.db).Unscoped().First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("ticket not found")
		}
		return nil, err
	}
	return mappers.TicketToDomain(&model)
}

func (r *TicketRepository) GetByIDForUpdate(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	err := db.GetTxFromContext(ctx, r.db).
		Unscoped().
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("ticket not found")
		}
		return nil, err
	}
	return mappers.TicketToDomain(&model)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := mappers.TicketToModel(t)
	return db.GetTxFromContext(ctx, r.db).Unscoped().Save(model).Error
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	return db.GetTxFromContext(ctx, r.db).Delete(&models.TicketModel{}, id).Error
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{})

	if filter.IncludeDeletedFor > 0 {
		query = query.Unscoped().
			Where("deleted_at IS NULL OR created_by = ?", filter.IncludeDeletedFor)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CreatedBy > 0 {
		query = query.Where("created_by = ?", filter.CreatedBy)
	}
	if filter.RedeemedBy > 0 {
		query = query.Where("redeemed_by = ?", filter.RedeemedBy)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ticketModels []models.TicketModel
	err := query.
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&ticketModels).Error
	if err != nil {
		return nil, 0, err
	}

	tickets, err := ticketModelsToDomain(ticketModels)
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

func (r *TicketRepository) ListByRedeemer(ctx context.Context, userID uint) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("redeemed_by = ?", userID).
		Order("updated_at DESC").
		Find(&ticketModels).Error
	if err != nil {
		return nil, err
	}
	return ticketModelsToDomain(ticketModels)
}

func (r *TicketRepository) ListByCreator(ctx context.Context, userID uint) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel
	err := db.GetTxFromContext(ctx, r.db).
		Unscoped().
		Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&ticketModels).Error
	if err != nil {
		return nil, err
	}
	return ticketModelsToDomain(ticketModels)
}

func (r *TicketRepository) CountByStatus(ctx context.Context, status ticketvo.TicketStatus) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Where("status = ?", status.String()).
		Count(&count).Error
	return count, err
}

func ticketModelsToDomain(ticketModels []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for i := range ticketModels {
		t, err := mappers.TicketToDomain(&ticketModels[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}
