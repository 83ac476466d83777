package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traindesk/internal/domain/solution"
	vo "traindesk/internal/domain/solution/valueobjects"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/services/markdown"
)

func approvedSolution(t *testing.T, id uint) *solution.Solution {
	t.Helper()
	now := time.Now().UTC()
	reviewer := uint(3)
	s, err := solution.ReconstructSolution(id, id, 7, "stale DNS cache", "1. open a shell\n2. run `ipconfig /flushdns`", "",
		[]string{"network", "dns"}, nil, vo.StatusApproved, true, 2, &reviewer, &now, now, now, nil)
	require.NoError(t, err)
	return s
}

func TestSearchSolutions(t *testing.T) {
	var captured solution.SearchFilter
	repo := &mockSolutionRepository{
		SearchFunc: func(ctx context.Context, filter solution.SearchFilter) ([]*solution.Solution, int64, error) {
			captured = filter
			return []*solution.Solution{approvedSolution(t, 1)}, 1, nil
		},
	}

	uc := NewSearchSolutionsUseCase(repo, markdown.NewMarkdownService(), noopLogger{})
	result, err := uc.Execute(context.Background(), SearchSolutionsQuery{Query: "dns", Tag: "network", Page: 2, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, "dns", captured.Query)
	assert.Equal(t, "network", captured.Tag)
	assert.Equal(t, 5, captured.Offset)
	assert.Equal(t, 5, captured.Limit)
	require.Len(t, result.Solutions, 1)
	assert.Empty(t, result.Solutions[0].FixStepsHTML, "no rendering unless requested")
}

func TestSearchSolutions_RendersHTML(t *testing.T) {
	repo := &mockSolutionRepository{
		SearchFunc: func(ctx context.Context, filter solution.SearchFilter) ([]*solution.Solution, int64, error) {
			return []*solution.Solution{approvedSolution(t, 1)}, 1, nil
		},
	}

	uc := NewSearchSolutionsUseCase(repo, markdown.NewMarkdownService(), noopLogger{})
	result, err := uc.Execute(context.Background(), SearchSolutionsQuery{Query: "dns", RenderHTML: true})
	require.NoError(t, err)
	require.Len(t, result.Solutions, 1)
	assert.Contains(t, result.Solutions[0].FixStepsHTML, "<code>")
}

func TestSearchSolutions_ClampsPageSize(t *testing.T) {
	var captured solution.SearchFilter
	repo := &mockSolutionRepository{
		SearchFunc: func(ctx context.Context, filter solution.SearchFilter) ([]*solution.Solution, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}

	uc := NewSearchSolutionsUseCase(repo, markdown.NewMarkdownService(), noopLogger{})
	_, err := uc.Execute(context.Background(), SearchSolutionsQuery{PageSize: 10000})
	require.NoError(t, err)
	assert.Equal(t, maxPageSize, captured.Limit)
}

func TestRecentSolutions(t *testing.T) {
	repo := &mockSolutionRepository{
		ListRecentFunc: func(ctx context.Context, limit int) ([]*solution.Solution, error) {
			assert.Equal(t, defaultRecentLimit, limit)
			return []*solution.Solution{approvedSolution(t, 1), approvedSolution(t, 2)}, nil
		},
	}

	uc := NewRecentSolutionsUseCase(repo, noopLogger{})
	entries, err := uc.Execute(context.Background(), RecentSolutionsQuery{})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestGetSolution_HidesUnapproved(t *testing.T) {
	now := time.Now().UTC()
	pending, err := solution.ReconstructSolution(5, 5, 7, "rc", "fs", "", nil, nil, vo.StatusPending, true, 0, nil, nil, now, now, nil)
	require.NoError(t, err)

	repo := &mockSolutionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*solution.Solution, error) {
			return pending, nil
		},
	}

	uc := NewGetSolutionUseCase(repo, markdown.NewMarkdownService(), noopLogger{})
	_, err = uc.Execute(context.Background(), GetSolutionQuery{SolutionID: 5})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestPendingSolutions(t *testing.T) {
	now := time.Now().UTC()
	pending, err := solution.ReconstructSolution(5, 5, 7, "rc", "fs", "", nil, nil, vo.StatusPending, true, 0, nil, nil, now, now, nil)
	require.NoError(t, err)

	repo := &mockSolutionRepository{
		ListPendingFunc: func(ctx context.Context, offset, limit int) ([]*solution.Solution, int64, error) {
			return []*solution.Solution{pending}, 1, nil
		},
	}

	uc := NewPendingSolutionsUseCase(repo, noopLogger{})
	result, err := uc.Execute(context.Background(), PendingSolutionsQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Solutions, 1)
	assert.Equal(t, "pending", result.Solutions[0].Status)
}

func TestDisableSolution(t *testing.T) {
	s := approvedSolution(t, 1)
	var updated *solution.Solution
	repo := &mockSolutionRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*solution.Solution, error) {
			return s, nil
		},
		UpdateFunc: func(ctx context.Context, s *solution.Solution) error {
			updated = s
			return nil
		},
	}

	uc := NewDisableSolutionUseCase(&mockTxManager{}, repo, noopLogger{})
	require.NoError(t, uc.Execute(context.Background(), DisableSolutionCommand{SolutionID: 1, AdminID: 99}))
	require.NotNil(t, updated)
	assert.False(t, updated.IsActive())
	assert.Equal(t, 2, updated.ReuseCount(), "reuse history is preserved")

	err := uc.Execute(context.Background(), DisableSolutionCommand{SolutionID: 1, AdminID: 99})
	assert.True(t, errors.IsInvalidStateError(err), "already disabled")
}
