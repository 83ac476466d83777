package usecases

import (
	"context"
	"fmt"

	"traindesk/internal/application/solution/dto"
	"traindesk/internal/domain/solution"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/logger"
	"traindesk/internal/shared/services/markdown"
)

const defaultRecentLimit = 10

type RecentSolutionsQuery struct {
	Limit int
}

// RecentSolutionsUseCase returns the latest approved solutions for the
// knowledge base landing view.
type RecentSolutionsUseCase struct {
	solutionRepo solution.Repository
	logger       logger.Interface
}

func NewRecentSolutionsUseCase(solutionRepo solution.Repository, logger logger.Interface) *RecentSolutionsUseCase {
	return &RecentSolutionsUseCase{
		solutionRepo: solutionRepo,
		logger:       logger,
	}
}

func (uc *RecentSolutionsUseCase) Execute(ctx context.Context, query RecentSolutionsQuery) ([]*dto.KnowledgeEntryDTO, error) {
	limit := query.Limit
	if limit < 1 {
		limit = defaultRecentLimit
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	solutions, err := uc.solutionRepo.ListRecent(ctx, limit)
	if err != nil {
		uc.logger.Errorw("failed to list recent solutions", "error", err)
		return nil, errors.NewInternalError("failed to list recent solutions")
	}

	entries := make([]*dto.KnowledgeEntryDTO, 0, len(solutions))
	for _, s := range solutions {
		entries = append(entries, dto.FromSolution(s))
	}
	return entries, nil
}

type GetSolutionQuery struct {
	SolutionID uint
	RenderHTML bool
}

// GetSolutionUseCase loads a single approved solution with rendered fix
// steps. Unapproved solutions are not served here; they are only reachable
// through their ticket, where the redaction policy applies.
type GetSolutionUseCase struct {
	solutionRepo solution.Repository
	renderer     markdown.MarkdownService
	logger       logger.Interface
}

func NewGetSolutionUseCase(
	solutionRepo solution.Repository,
	renderer markdown.MarkdownService,
	logger logger.Interface,
) *GetSolutionUseCase {
	return &GetSolutionUseCase{
		solutionRepo: solutionRepo,
		renderer:     renderer,
		logger:       logger,
	}
}

func (uc *GetSolutionUseCase) Execute(ctx context.Context, query GetSolutionQuery) (*dto.KnowledgeEntryDTO, error) {
	if query.SolutionID == 0 {
		return nil, errors.NewValidationError("solution ID is required")
	}

	s, err := uc.solutionRepo.GetByID(ctx, query.SolutionID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("solution %d not found", query.SolutionID))
	}
	if !s.Status().IsApproved() || s.IsDeleted() {
		return nil, errors.NewNotFoundError(fmt.Sprintf("solution %d not found", query.SolutionID))
	}

	entry := dto.FromSolution(s)
	if query.RenderHTML {
		if rendered, err := uc.renderer.ToHTMLSanitized(s.FixSteps()); err == nil {
			entry.FixStepsHTML = rendered
		}
	}
	return entry, nil
}
