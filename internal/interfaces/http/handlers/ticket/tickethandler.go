// Package ticket exposes the ticket lifecycle over HTTP: creation,
// redemption, resolution, review, and reopening.
package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"traindesk/internal/application/ticket/usecases"
	"traindesk/internal/shared/constants"
	"traindesk/internal/shared/logger"
	"traindesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC        usecases.CreateTicketExecutor
	redeemTicketUC        usecases.RedeemTicketExecutor
	resolveTicketUC       usecases.ResolveTicketExecutor
	resolveWithExistingUC usecases.ResolveWithExistingExecutor
	reviewSolutionUC      usecases.ReviewSolutionExecutor
	reopenTicketUC        usecases.ReopenTicketExecutor
	updateTicketUC        usecases.UpdateTicketExecutor
	deleteTicketUC        usecases.DeleteTicketExecutor
	getTicketUC           usecases.GetTicketExecutor
	listTicketsUC         usecases.ListTicketsExecutor
	logger                logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	redeemTicketUC usecases.RedeemTicketExecutor,
	resolveTicketUC usecases.ResolveTicketExecutor,
	resolveWithExistingUC usecases.ResolveWithExistingExecutor,
	reviewSolutionUC usecases.ReviewSolutionExecutor,
	reopenTicketUC usecases.ReopenTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:        createTicketUC,
		redeemTicketUC:        redeemTicketUC,
		resolveTicketUC:       resolveTicketUC,
		resolveWithExistingUC: resolveWithExistingUC,
		reviewSolutionUC:      reviewSolutionUC,
		reopenTicketUC:        reopenTicketUC,
		updateTicketUC:        updateTicketUC,
		deleteTicketUC:        deleteTicketUC,
		getTicketUC:           getTicketUC,
		listTicketsUC:         listTicketsUC,
		logger:                logger.NewLogger(),
	}
}

func requesterIdentity(c *gin.Context) (uint, bool) {
	userID, _ := c.Get(constants.ContextKeyUserID)
	role, _ := c.Get(constants.ContextKeyUserRole)
	id, _ := userID.(uint)
	return id, role == constants.RoleAdmin
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := requesterIdentity(c)
	cmd := req.ToCommand(userID)

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, isAdmin := requesterIdentity(c)
	query := usecases.GetTicketQuery{
		TicketID:    ticketID,
		RequesterID: userID,
		IsAdmin:     isAdmin,
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := requesterIdentity(c)
	query := req.ToQuery(userID)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// RedeemTicket handles POST /tickets/:id/redeem
func (h *TicketHandler) RedeemTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, isAdmin := requesterIdentity(c)
	cmd := usecases.RedeemTicketCommand{
		TicketID: ticketID,
		UserID:   userID,
		IsAdmin:  isAdmin,
	}

	result, err := h.redeemTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket redeemed successfully", result)
}

// ResolveTicket handles POST /tickets/:id/resolve
func (h *TicketHandler) ResolveTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ResolveTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for resolve ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, isAdmin := requesterIdentity(c)
	cmd := req.ToCommand(ticketID, userID, isAdmin)

	result, err := h.resolveTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket resolved successfully", result)
}

// ResolveWithExisting handles POST /tickets/:id/resolve-with-existing
func (h *TicketHandler) ResolveWithExisting(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ResolveWithExistingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for resolve with existing", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, isAdmin := requesterIdentity(c)
	cmd := usecases.ResolveWithExistingCommand{
		TicketID:   ticketID,
		SolutionID: req.SolutionID,
		ResolverID: userID,
		IsAdmin:    isAdmin,
	}

	result, err := h.resolveWithExistingUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket resolved with existing solution", result)
}

// ReviewSolution handles POST /tickets/:id/solutions/:solution_id/review
func (h *TicketHandler) ReviewSolution(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	solutionID, err := parseSolutionID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReviewSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for review solution", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, isAdmin := requesterIdentity(c)
	cmd := usecases.ReviewSolutionCommand{
		TicketID:   ticketID,
		SolutionID: solutionID,
		ReviewerID: userID,
		IsAdmin:    isAdmin,
		Approve:    req.Approve,
	}

	result, err := h.reviewSolutionUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Solution reviewed", result)
}

// ReopenTicket handles POST /tickets/:id/reopen
func (h *TicketHandler) ReopenTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := requesterIdentity(c)
	cmd := usecases.ReopenTicketCommand{
		TicketID: ticketID,
		UserID:   userID,
	}

	result, err := h.reopenTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket reopened", result)
}

// UpdateTicket handles PUT /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, isAdmin := requesterIdentity(c)
	cmd := req.ToCommand(ticketID, userID, isAdmin)

	result, err := h.updateTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated", result)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, isAdmin := requesterIdentity(c)
	cmd := usecases.DeleteTicketCommand{
		TicketID: ticketID,
		UserID:   userID,
		IsAdmin:  isAdmin,
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
