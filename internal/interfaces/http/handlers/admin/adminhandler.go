// Package admin exposes the review queue and administrative operations.
// Every route here sits behind the admin middleware.
package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	solutionusecases "traindesk/internal/application/solution/usecases"
	userusecases "traindesk/internal/application/user/usecases"
	"traindesk/internal/shared/constants"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/logger"
	"traindesk/internal/shared/utils"
)

type AdminHandler struct {
	statsUC           userusecases.GetStatsExecutor
	deleteUserUC      userusecases.DeleteUserExecutor
	pendingSolutionsUC solutionusecases.PendingSolutionsExecutor
	disableSolutionUC solutionusecases.DisableSolutionExecutor
	logger            logger.Interface
}

func NewAdminHandler(
	statsUC userusecases.GetStatsExecutor,
	deleteUserUC userusecases.DeleteUserExecutor,
	pendingSolutionsUC solutionusecases.PendingSolutionsExecutor,
	disableSolutionUC solutionusecases.DisableSolutionExecutor,
) *AdminHandler {
	return &AdminHandler{
		statsUC:           statsUC,
		deleteUserUC:      deleteUserUC,
		pendingSolutionsUC: pendingSolutionsUC,
		disableSolutionUC: disableSolutionUC,
		logger:            logger.NewLogger(),
	}
}

func adminID(c *gin.Context) uint {
	userID, _ := c.Get(constants.ContextKeyUserID)
	id, _ := userID.(uint)
	return id
}

// GetStats handles GET /admin/stats
func (h *AdminHandler) GetStats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context(), userusecases.GetStatsQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// PendingSolutions handles GET /admin/solutions/pending
func (h *AdminHandler) PendingSolutions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	query := solutionusecases.PendingSolutionsQuery{Page: page, PageSize: pageSize}

	result, err := h.pendingSolutionsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Solutions, result.Total, result.Page, result.PageSize)
}

// DisableSolution handles POST /admin/solutions/:id/disable
func (h *AdminHandler) DisableSolution(c *gin.Context) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid solution ID"))
		return
	}

	cmd := solutionusecases.DisableSolutionCommand{
		SolutionID: uint(id),
		AdminID:    adminID(c),
	}

	if err := h.disableSolutionUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Solution disabled", nil)
}

// DeleteUser handles DELETE /admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid user ID"))
		return
	}

	cmd := userusecases.DeleteUserCommand{
		UserID:  uint(id),
		AdminID: adminID(c),
	}

	result, err := h.deleteUserUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User deleted", result)
}
