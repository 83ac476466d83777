// Package notification exposes the in-app notification inbox over HTTP.
package notification

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	notificationapp "traindesk/internal/application/notification"
	"traindesk/internal/shared/constants"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/logger"
	"traindesk/internal/shared/utils"
)

type NotificationHandler struct {
	listUC     notificationapp.ListNotificationsExecutor
	markReadUC notificationapp.MarkReadExecutor
	logger     logger.Interface
}

func NewNotificationHandler(
	listUC notificationapp.ListNotificationsExecutor,
	markReadUC notificationapp.MarkReadExecutor,
) *NotificationHandler {
	return &NotificationHandler{
		listUC:     listUC,
		markReadUC: markReadUC,
		logger:     logger.NewLogger(),
	}
}

func currentUserID(c *gin.Context) uint {
	userID, _ := c.Get(constants.ContextKeyUserID)
	id, _ := userID.(uint)
	return id
}

// List handles GET /notifications
func (h *NotificationHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	cmd := notificationapp.ListNotificationsCommand{
		UserID: currentUserID(c),
		Limit:  limit,
		Offset: offset,
	}

	result, err := h.listUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"notifications": result.Notifications,
		"total":         result.Total,
		"unread":        result.Unread,
	})
}

// MarkRead handles POST /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid notification ID"))
		return
	}

	cmd := notificationapp.MarkReadCommand{
		NotificationID: uint(id),
		UserID:         currentUserID(c),
	}

	if err := h.markReadUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllRead handles POST /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	cmd := notificationapp.MarkReadCommand{
		UserID: currentUserID(c),
		All:    true,
	}

	if err := h.markReadUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", nil)
}
