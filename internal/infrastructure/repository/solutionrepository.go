package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"traindesk/internal/domain/solution"
	solutionvo "traindesk/internal/domain/solution/valueobjects"
	"traindesk/internal/infrastructure/persistence/mappers"
	"traindesk/internal/infrastructure/persistence/models"
	"traindesk/internal/shared/db"
)

type SolutionRepository struct {
	db *gorm.DB
}

func NewSolutionRepository(database *gorm.DB) *SolutionRepository {
	return &SolutionRepository{db: database}
}

func (r *SolutionRepository) Save(ctx context.Context, s *solution.Solution) error {
	model := mappers.SolutionToModel(s)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return err
	}
	return s.SetID(model.ID)
}

func (r *SolutionRepository) GetByID(ctx context.Context, id uint) (*solution.Solution, error) {
	var model models.SolutionModel
	err := db.GetTxFromContext(ctx, r.db).Unscoped().First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("solution not found")
		}
		return nil, err
	}
	return mappers.SolutionToDomain(&model)
}

func (r *SolutionRepository) GetByIDForUpdate(ctx context.Context, id uint) (*solution.Solution, error) {
	var model models.SolutionModel
	err := db.GetTxFromContext(ctx, r.db).
		Unscoped().
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("solution not found")
		}
		return nil, err
	}
	return mappers.SolutionToDomain(&model)
}

// GetByTicketID returns the latest solution written for the ticket. A ticket
// resolved multiple times across reopen cycles keeps one row per attempt.
func (r *SolutionRepository) GetByTicketID(ctx context.Context, ticketID uint) (*solution.Solution, error) {
	var model models.SolutionModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id = ?", ticketID).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("solution not found")
		}
		return nil, err
	}
	return mappers.SolutionToDomain(&model)
}

func (r *SolutionRepository) Update(ctx context.Context, s *solution.Solution) error {
	model := mappers.SolutionToModel(s)
	return db.GetTxFromContext(ctx, r.db).Unscoped().Save(model).Error
}

func (r *SolutionRepository) Delete(ctx context.Context, id uint) error {
	return db.GetTxFromContext(ctx, r.db).Delete(&models.SolutionModel{}, id).Error
}

func (r *SolutionRepository) Search(ctx context.Context, filter solution.SearchFilter) ([]*solution.Solution, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.SolutionModel{}).
		Select("solutions.*").
		Joins("JOIN tickets ON tickets.id = solutions.ticket_id").
		Where("solutions.status = ?", solutionvo.StatusApproved.String()).
		Where("solutions.is_active = ?", true)

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where(
			"solutions.root_cause LIKE ? OR solutions.fix_steps LIKE ? OR solutions.prevention_notes LIKE ?"+
				" OR solutions.tags LIKE ? OR tickets.title LIKE ? OR tickets.description LIKE ?",
			pattern, pattern, pattern, pattern, pattern, pattern)
	}
	if filter.Tag != "" {
		query = query.Where("solutions.tags LIKE ?", fmt.Sprintf("%%%q%%", filter.Tag))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var solutionModels []models.SolutionModel
	err := query.
		Order("solutions.reuse_count DESC, solutions.created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&solutionModels).Error
	if err != nil {
		return nil, 0, err
	}

	solutions, err := solutionModelsToDomain(solutionModels)
	if err != nil {
		return nil, 0, err
	}
	return solutions, total, nil
}

func (r *SolutionRepository) ListRecent(ctx context.Context, limit int) ([]*solution.Solution, error) {
	var solutionModels []models.SolutionModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("status = ?", solutionvo.StatusApproved.String()).
		Where("is_active = ?", true).
		Order("reviewed_at DESC").
		Limit(limit).
		Find(&solutionModels).Error
	if err != nil {
		return nil, err
	}
	return solutionModelsToDomain(solutionModels)
}

func (r *SolutionRepository) ListPending(ctx context.Context, offset, limit int) ([]*solution.Solution, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.SolutionModel{}).
		Where("status = ?", solutionvo.StatusPending.String())

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var solutionModels []models.SolutionModel
	err := query.
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&solutionModels).Error
	if err != nil {
		return nil, 0, err
	}

	solutions, err := solutionModelsToDomain(solutionModels)
	if err != nil {
		return nil, 0, err
	}
	return solutions, total, nil
}

func (r *SolutionRepository) ListByAuthor(ctx context.Context, authorID uint) ([]*solution.Solution, error) {
	var solutionModels []models.SolutionModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&solutionModels).Error
	if err != nil {
		return nil, err
	}
	return solutionModelsToDomain(solutionModels)
}

func (r *SolutionRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SolutionModel{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func solutionModelsToDomain(solutionModels []models.SolutionModel) ([]*solution.Solution, error) {
	solutions := make([]*solution.Solution, 0, len(solutionModels))
	for i := range solutionModels {
		s, err := mappers.SolutionToDomain(&solutionModels[i])
		if err != nil {
			return nil, err
		}
		solutions = append(solutions, s)
	}
	return solutions, nil
}
