// Package credit exposes the credit balance and coupon exchange over HTTP.
package credit

import (
	"net/http"

	"github.com/gin-gonic/gin"

	creditapp "traindesk/internal/application/credit"
	"traindesk/internal/shared/constants"
	"traindesk/internal/shared/logger"
	"traindesk/internal/shared/utils"
)

type CreditHandler struct {
	convertUC creditapp.ConvertCreditsExecutor
	couponsUC creditapp.ListCouponsExecutor
	balanceUC creditapp.GetBalanceExecutor
	logger    logger.Interface
}

func NewCreditHandler(
	convertUC creditapp.ConvertCreditsExecutor,
	couponsUC creditapp.ListCouponsExecutor,
	balanceUC creditapp.GetBalanceExecutor,
) *CreditHandler {
	return &CreditHandler{
		convertUC: convertUC,
		couponsUC: couponsUC,
		balanceUC: balanceUC,
		logger:    logger.NewLogger(),
	}
}

func currentUserID(c *gin.Context) uint {
	userID, _ := c.Get(constants.ContextKeyUserID)
	id, _ := userID.(uint)
	return id
}

// GetBalance handles GET /credits/balance
func (h *CreditHandler) GetBalance(c *gin.Context) {
	query := creditapp.GetBalanceQuery{UserID: currentUserID(c)}

	result, err := h.balanceUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Convert handles POST /credits/convert
func (h *CreditHandler) Convert(c *gin.Context) {
	cmd := creditapp.ConvertCreditsCommand{UserID: currentUserID(c)}

	result, err := h.convertUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Credits converted to coupon")
}

// ListCoupons handles GET /credits/coupons
func (h *CreditHandler) ListCoupons(c *gin.Context) {
	query := creditapp.ListCouponsQuery{UserID: currentUserID(c)}

	result, err := h.couponsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Coupons)
}
