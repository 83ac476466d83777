// Package usecases implements the knowledge base operations: searching and
// browsing approved solutions and the admin review queue.
package usecases

import (
	"context"

	"traindesk/internal/application/solution/dto"
	"traindesk/internal/domain/solution"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/logger"
	"traindesk/internal/shared/services/markdown"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type SearchSolutionsQuery struct {
	Query      string
	Tag        string
	Page       int
	PageSize   int
	RenderHTML bool
}

type SearchSolutionsResult struct {
	Solutions []*dto.KnowledgeEntryDTO
	Total     int64
	Page      int
	PageSize  int
}

// SearchSolutionsUseCase searches approved, active solutions. Only knowledge
// base content is searchable; pending and rejected solutions never appear.
type SearchSolutionsUseCase struct {
	solutionRepo solution.Repository
	renderer     markdown.MarkdownService
	logger       logger.Interface
}

func NewSearchSolutionsUseCase(
	solutionRepo solution.Repository,
	renderer markdown.MarkdownService,
	logger logger.Interface,
) *SearchSolutionsUseCase {
	return &SearchSolutionsUseCase{
		solutionRepo: solutionRepo,
		renderer:     renderer,
		logger:       logger,
	}
}

func (uc *SearchSolutionsUseCase) Execute(ctx context.Context, query SearchSolutionsQuery) (*SearchSolutionsResult, error) {
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

	solutions, total, err := uc.solutionRepo.Search(ctx, solution.SearchFilter{
		Query:  query.Query,
		Tag:    query.Tag,
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to search solutions", "query", query.Query, "error", err)
		return nil, errors.NewInternalError("failed to search solutions")
	}

	entries := make([]*dto.KnowledgeEntryDTO, 0, len(solutions))
	for _, s := range solutions {
		entry := dto.FromSolution(s)
		if query.RenderHTML {
			if rendered, err := uc.renderer.ToHTMLSanitized(s.FixSteps()); err == nil {
				entry.FixStepsHTML = rendered
			}
		}
		entries = append(entries, entry)
	}

	return &SearchSolutionsResult{
		Solutions: entries,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}
