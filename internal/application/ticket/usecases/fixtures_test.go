package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"traindesk/internal/domain/solution"
	solutionvo "traindesk/internal/domain/solution/valueobjects"
	"traindesk/internal/domain/ticket"
	ticketvo "traindesk/internal/domain/ticket/valueobjects"
	"traindesk/internal/domain/user"
	uservo "traindesk/internal/domain/user/valueobjects"
)

const (
	creatorID  = uint(3)
	redeemerID = uint(7)
	authorID   = uint(11)
	adminID    = uint(99)
)

func fixtureTicket(t *testing.T, status ticketvo.TicketStatus, redeemedBy *uint) *ticket.Ticket {
	t.Helper()
	now := time.Now().UTC()
	tk, err := ticket.ReconstructTicket(1, "VPN drops", "VPN disconnects every few minutes", []string{"network"},
		status, creatorID, redeemedBy, nil, now, now, nil)
	require.NoError(t, err)
	return tk
}

func fixtureSolution(t *testing.T, id uint, status solutionvo.ReviewStatus, active bool) *solution.Solution {
	t.Helper()
	now := time.Now().UTC()
	s, err := solution.ReconstructSolution(id, 2, authorID, "stale DNS cache", "flush the resolver cache", "",
		nil, nil, status, active, 0, nil, nil, now, now, nil)
	require.NoError(t, err)
	return s
}

func fixturePendingSolution(t *testing.T, ticketID uint) *solution.Solution {
	t.Helper()
	now := time.Now().UTC()
	s, err := solution.ReconstructSolution(10, ticketID, redeemerID, "stale DNS cache", "flush the resolver cache", "",
		nil, nil, solutionvo.StatusPending, true, 0, nil, nil, now, now, nil)
	require.NoError(t, err)
	return s
}

func fixtureUser(t *testing.T, id uint, role uservo.Role, credits int) *user.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := user.ReconstructUser(id, "Asha", "asha@example.com", "hashed", role, "", credits, now, now, nil)
	require.NoError(t, err)
	return u
}

func ptr(v uint) *uint {
	return &v
}
