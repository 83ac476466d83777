// Package knowledge serves the searchable base of approved solutions.
package knowledge

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"traindesk/internal/application/solution/usecases"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/logger"
	"traindesk/internal/shared/utils"
)

type KnowledgeHandler struct {
	searchUC usecases.SearchSolutionsExecutor
	recentUC usecases.RecentSolutionsExecutor
	getUC    usecases.GetSolutionExecutor
	logger   logger.Interface
}

func NewKnowledgeHandler(
	searchUC usecases.SearchSolutionsExecutor,
	recentUC usecases.RecentSolutionsExecutor,
	getUC usecases.GetSolutionExecutor,
) *KnowledgeHandler {
	return &KnowledgeHandler{
		searchUC: searchUC,
		recentUC: recentUC,
		getUC:    getUC,
		logger:   logger.NewLogger(),
	}
}

// Search handles GET /knowledge
func (h *KnowledgeHandler) Search(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	query := usecases.SearchSolutionsQuery{
		Query:      c.Query("q"),
		Tag:        c.Query("tag"),
		Page:       page,
		PageSize:   pageSize,
		RenderHTML: c.Query("render") == "html",
	}

	result, err := h.searchUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Solutions, result.Total, result.Page, result.PageSize)
}

// Recent handles GET /knowledge/recent
func (h *KnowledgeHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.recentUC.Execute(c.Request.Context(), usecases.RecentSolutionsQuery{Limit: limit})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Get handles GET /knowledge/:id
func (h *KnowledgeHandler) Get(c *gin.Context) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid solution ID"))
		return
	}

	query := usecases.GetSolutionQuery{
		SolutionID: uint(id),
		RenderHTML: c.DefaultQuery("render", "html") == "html",
	}

	result, err := h.getUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
