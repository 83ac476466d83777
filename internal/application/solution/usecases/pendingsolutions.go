package usecases

import (
	"context"

	"traindesk/internal/application/solution/dto"
	"traindesk/internal/domain/solution"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/logger"
)

type PendingSolutionsQuery struct {
	Page     int
	PageSize int
}

type PendingSolutionsResult struct {
	Solutions []*dto.KnowledgeEntryDTO
	Total     int64
	Page      int
	PageSize  int
}

// PendingSolutionsUseCase lists the admin review queue, oldest first.
type PendingSolutionsUseCase struct {
	solutionRepo solution.Repository
	logger       logger.Interface
}

func NewPendingSolutionsUseCase(solutionRepo solution.Repository, logger logger.Interface) *PendingSolutionsUseCase {
	return &PendingSolutionsUseCase{
		solutionRepo: solutionRepo,
		logger:       logger,
	}
}

func (uc *PendingSolutionsUseCase) Execute(ctx context.Context, query PendingSolutionsQuery) (*PendingSolutionsResult, error) {
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

	solutions, total, err := uc.solutionRepo.ListPending(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list pending solutions", "error", err)
		return nil, errors.NewInternalError("failed to list pending solutions")
	}

	entries := make([]*dto.KnowledgeEntryDTO, 0, len(solutions))
	for _, s := range solutions {
		entries = append(entries, dto.FromSolution(s))
	}

	return &PendingSolutionsResult{
		Solutions: entries,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}
