package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traindesk/internal/application/solution/dto"
	solutionusecases "traindesk/internal/application/solution/usecases"
	userusecases "traindesk/internal/application/user/usecases"
	"traindesk/internal/interfaces/http/handlers/testutil"
	"traindesk/internal/shared/constants"
	"traindesk/internal/shared/errors"
)

type mockStatsUC struct {
	result *userusecases.GetStatsResult
	err    error
}

func (m *mockStatsUC) Execute(_ context.Context, _ userusecases.GetStatsQuery) (*userusecases.GetStatsResult, error) {
	return m.result, m.err
}

type mockDeleteUserUC struct {
	result *userusecases.DeleteUserResult
	err    error
	gotCmd userusecases.DeleteUserCommand
}

func (m *mockDeleteUserUC) Execute(_ context.Context, cmd userusecases.DeleteUserCommand) (*userusecases.DeleteUserResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockPendingUC struct {
	result *solutionusecases.PendingSolutionsResult
	err    error
}

func (m *mockPendingUC) Execute(_ context.Context, _ solutionusecases.PendingSolutionsQuery) (*solutionusecases.PendingSolutionsResult, error) {
	return m.result, m.err
}

type mockDisableUC struct {
	err    error
	gotCmd solutionusecases.DisableSolutionCommand
}

func (m *mockDisableUC) Execute(_ context.Context, cmd solutionusecases.DisableSolutionCommand) error {
	m.gotCmd = cmd
	return m.err
}

func newTestHandler() (*AdminHandler, *mockStatsUC, *mockDeleteUserUC, *mockPendingUC, *mockDisableUC) {
	stats := &mockStatsUC{}
	deleteUser := &mockDeleteUserUC{}
	pending := &mockPendingUC{}
	disable := &mockDisableUC{}
	return NewAdminHandler(stats, deleteUser, pending, disable), stats, deleteUser, pending, disable
}

func TestGetStats(t *testing.T) {
	h, stats, _, _, _ := newTestHandler()
	stats.result = &userusecases.GetStatsResult{
		Users:             12,
		TicketsByStatus:   map[string]int64{"open": 3, "resolved": 9},
		PendingSolutions:  2,
		ApprovedSolutions: 7,
	}

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/stats", nil)
	testutil.SetAuthContext(c, 1, constants.RoleAdmin)

	h.GetStats(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var result userusecases.GetStatsResult
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.Equal(t, int64(12), result.Users)
	assert.Equal(t, int64(3), result.TicketsByStatus["open"])
}

func TestPendingSolutions(t *testing.T) {
	h, _, _, pending, _ := newTestHandler()
	pending.result = &solutionusecases.PendingSolutionsResult{
		Solutions: []*dto.KnowledgeEntryDTO{{ID: 5, Status: "pending"}},
		Total:     1,
		Page:      1,
		PageSize:  20,
	}

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/solutions/pending", nil)
	testutil.SetAuthContext(c, 1, constants.RoleAdmin)

	h.PendingSolutions(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDisableSolution(t *testing.T) {
	t.Run("disables by id", func(t *testing.T) {
		h, _, _, _, disable := newTestHandler()

		c, w := testutil.NewTestContext(http.MethodPost, "/admin/solutions/5/disable", nil)
		testutil.SetAuthContext(c, 1, constants.RoleAdmin)
		testutil.SetURLParam(c, "id", "5")

		h.DisableSolution(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, solutionusecases.DisableSolutionCommand{SolutionID: 5, AdminID: 1}, disable.gotCmd)
	})

	t.Run("maps not found", func(t *testing.T) {
		h, _, _, _, disable := newTestHandler()
		disable.err = errors.NewNotFoundError("solution 5 not found")

		c, w := testutil.NewTestContext(http.MethodPost, "/admin/solutions/5/disable", nil)
		testutil.SetAuthContext(c, 1, constants.RoleAdmin)
		testutil.SetURLParam(c, "id", "5")

		h.DisableSolution(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("reports cleanup counts", func(t *testing.T) {
		h, _, deleteUser, _, _ := newTestHandler()
		deleteUser.result = &userusecases.DeleteUserResult{
			UserID:          9,
			TicketsDeleted:  2,
			TicketsReleased: 1,
		}

		c, w := testutil.NewTestContext(http.MethodDelete, "/admin/users/9", nil)
		testutil.SetAuthContext(c, 1, constants.RoleAdmin)
		testutil.SetURLParam(c, "id", "9")

		h.DeleteUser(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userusecases.DeleteUserCommand{UserID: 9, AdminID: 1}, deleteUser.gotCmd)
	})

	t.Run("maps self-deletion to forbidden", func(t *testing.T) {
		h, _, deleteUser, _, _ := newTestHandler()
		deleteUser.err = errors.NewForbiddenError("admins cannot delete their own account")

		c, w := testutil.NewTestContext(http.MethodDelete, "/admin/users/1", nil)
		testutil.SetAuthContext(c, 1, constants.RoleAdmin)
		testutil.SetURLParam(c, "id", "1")

		h.DeleteUser(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
