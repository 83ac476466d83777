package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traindesk/internal/domain/solution"
	solutionvo "traindesk/internal/domain/solution/valueobjects"
	"traindesk/internal/domain/ticket"
	ticketvo "traindesk/internal/domain/ticket/valueobjects"
	"traindesk/internal/domain/user"
	uservo "traindesk/internal/domain/user/valueobjects"
	"traindesk/internal/shared/errors"
)

func TestDeleteUser(t *testing.T) {
	now := time.Now().UTC()
	target, err := user.ReconstructUser(7, "Asha", "asha@example.com", "hashed", uservo.RoleTrainee, "", 30, now, now, nil)
	require.NoError(t, err)

	ownTicket, err := ticket.ReconstructTicket(1, "t1", "d", nil, ticketvo.StatusOpen, 7, nil, nil, now, now, nil)
	require.NoError(t, err)
	redeemer := uint(7)
	heldTicket, err := ticket.ReconstructTicket(2, "t2", "d", nil, ticketvo.StatusInProgress, 3, &redeemer, nil, now, now, nil)
	require.NoError(t, err)

	sol, err := solution.ReconstructSolution(10, 5, 7, "rc", "fs", "", nil, nil, solutionvo.StatusApproved, true, 1, nil, nil, now, now, nil)
	require.NoError(t, err)

	deletedTickets := map[uint]bool{}
	deletedSolutions := map[uint]bool{}
	var releasedTicket *ticket.Ticket
	userDeleted := false

	userRepo := &mockUserRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return target, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			userDeleted = true
			return nil
		},
	}
	ticketRepo := &mockTicketRepository{
		ListByCreatorFunc: func(ctx context.Context, userID uint) ([]*ticket.Ticket, error) {
			return []*ticket.Ticket{ownTicket}, nil
		},
		ListByRedeemerFunc: func(ctx context.Context, userID uint) ([]*ticket.Ticket, error) {
			return []*ticket.Ticket{heldTicket}, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deletedTickets[id] = true
			return nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			releasedTicket = tk
			return nil
		},
	}
	solutionRepo := &mockSolutionRepository{
		ListByAuthorFunc: func(ctx context.Context, authorID uint) ([]*solution.Solution, error) {
			return []*solution.Solution{sol}, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deletedSolutions[id] = true
			return nil
		},
	}

	uc := NewDeleteUserUseCase(&mockTxManager{}, userRepo, ticketRepo, solutionRepo, noopLogger{})
	result, err := uc.Execute(context.Background(), DeleteUserCommand{UserID: 7, AdminID: 99})
	require.NoError(t, err)

	assert.Equal(t, 1, result.TicketsDeleted)
	assert.Equal(t, 1, result.SolutionsDeleted)
	assert.Equal(t, 1, result.TicketsReleased)
	assert.True(t, deletedTickets[1])
	assert.True(t, deletedSolutions[10])
	assert.True(t, userDeleted)
	require.NotNil(t, releasedTicket)
	assert.Nil(t, releasedTicket.RedeemedBy(), "held ticket is released for others")
}

func TestDeleteUser_SelfDeleteRejected(t *testing.T) {
	uc := NewDeleteUserUseCase(&mockTxManager{}, &mockUserRepository{}, &mockTicketRepository{}, &mockSolutionRepository{}, noopLogger{})
	_, err := uc.Execute(context.Background(), DeleteUserCommand{UserID: 99, AdminID: 99})
	assert.True(t, errors.IsValidationError(err))
}

func TestDeleteUser_AlreadyDeleted(t *testing.T) {
	now := time.Now().UTC()
	deletedAt := now.Add(-time.Hour)
	target, err := user.ReconstructUser(7, "Asha", "asha@example.com", "hashed", uservo.RoleTrainee, "", 0, now, now, &deletedAt)
	require.NoError(t, err)

	userRepo := &mockUserRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return target, nil
		},
	}

	uc := NewDeleteUserUseCase(&mockTxManager{}, userRepo, &mockTicketRepository{}, &mockSolutionRepository{}, noopLogger{})
	_, err = uc.Execute(context.Background(), DeleteUserCommand{UserID: 7, AdminID: 99})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetStats(t *testing.T) {
	userRepo := &mockUserRepository{
		CountFunc: func(ctx context.Context) (int64, error) { return 12, nil },
	}
	ticketRepo := &mockTicketRepository{
		CountByStatusFunc: func(ctx context.Context, status ticketvo.TicketStatus) (int64, error) {
			if status == ticketvo.StatusOpen {
				return 4, nil
			}
			return 1, nil
		},
	}
	solutionRepo := &mockSolutionRepository{
		CountByStatusFunc: func(ctx context.Context, status string) (int64, error) {
			switch status {
			case "pending":
				return 2, nil
			case "approved":
				return 9, nil
			default:
				return 1, nil
			}
		},
	}

	uc := NewGetStatsUseCase(userRepo, ticketRepo, solutionRepo, noopLogger{})
	stats, err := uc.Execute(context.Background(), GetStatsQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.Users)
	assert.Equal(t, int64(4), stats.TicketsByStatus["open"])
	assert.Equal(t, int64(2), stats.PendingSolutions)
	assert.Equal(t, int64(9), stats.ApprovedSolutions)
	assert.Equal(t, int64(1), stats.RejectedSolutions)
}
