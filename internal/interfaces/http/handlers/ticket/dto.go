package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"traindesk/internal/application/ticket/usecases"
	ticketvo "traindesk/internal/domain/ticket/valueobjects"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/utils"
)

func init() {
	_ = utils.RegisterValidation("ticketstatus", func(fl validator.FieldLevel) bool {
		_, err := ticketvo.NewTicketStatus(fl.Field().String())
		return err == nil
	})
}

type CreateTicketRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"required,max=5000"`
	Attachments []string `json:"attachments,omitempty" binding:"omitempty,max=10,dive,max=500"`
}

func (r *CreateTicketRequest) ToCommand(creatorID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Attachments: r.Attachments,
		CreatedBy:   creatorID,
	}
}

type UpdateTicketRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"required,max=5000"`
	Attachments []string `json:"attachments,omitempty" binding:"omitempty,max=10,dive,max=500"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID, userID uint, isAdmin bool) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		UserID:      userID,
		IsAdmin:     isAdmin,
		Title:       r.Title,
		Description: r.Description,
		Attachments: r.Attachments,
	}
}

type ResolveTicketRequest struct {
	RootCause       string   `json:"root_cause" binding:"required,max=5000"`
	FixSteps        string   `json:"fix_steps" binding:"required,max=20000"`
	PreventionNotes string   `json:"prevention_notes,omitempty" binding:"omitempty,max=5000"`
	Tags            []string `json:"tags,omitempty" binding:"omitempty,max=10,dive,max=50"`
	Attachments     []string `json:"attachments,omitempty" binding:"omitempty,max=10,dive,max=500"`
}

func (r *ResolveTicketRequest) ToCommand(ticketID, resolverID uint, isAdmin bool) usecases.ResolveTicketCommand {
	return usecases.ResolveTicketCommand{
		TicketID:        ticketID,
		ResolverID:      resolverID,
		IsAdmin:         isAdmin,
		RootCause:       r.RootCause,
		FixSteps:        r.FixSteps,
		PreventionNotes: r.PreventionNotes,
		Tags:            r.Tags,
		Attachments:     r.Attachments,
	}
}

type ResolveWithExistingRequest struct {
	SolutionID uint `json:"solution_id" binding:"required"`
}

type ReviewSolutionRequest struct {
	Approve bool `json:"approve"`
}

type ListTicketsRequest struct {
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	Status     string `json:"status" validate:"omitempty,ticketstatus"`
	CreatedBy  uint   `json:"created_by"`
	RedeemedBy uint   `json:"redeemed_by"`
}

func (r *ListTicketsRequest) ToQuery(requesterID uint) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Status:      r.Status,
		CreatedBy:   r.CreatedBy,
		RedeemedBy:  r.RedeemedBy,
		Page:        r.Page,
		PageSize:    r.PageSize,
		RequesterID: requesterID,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListTicketsRequest{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
	}

	if raw := c.Query("created_by"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid created_by parameter")
		}
		req.CreatedBy = uint(id)
	}

	if raw := c.Query("redeemed_by"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid redeemed_by parameter")
		}
		req.RedeemedBy = uint(id)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	return req, nil
}

func parseTicketID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ticket ID")
	}
	return uint(id), nil
}

func parseSolutionID(c *gin.Context) (uint, error) {
	raw := c.Param("solution_id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid solution ID")
	}
	return uint(id), nil
}
