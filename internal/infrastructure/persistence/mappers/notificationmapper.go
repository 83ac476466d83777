package mappers

import (
	"gorm.io/datatypes"

	"traindesk/internal/domain/notification"
	"traindesk/internal/infrastructure/persistence/models"
)

func NotificationToModel(n *notification.Notification) *models.NotificationModel {
	var payload datatypes.JSON
	if len(n.Payload()) > 0 {
		payload = datatypes.JSON(n.Payload())
	}
	return &models.NotificationModel{
		ID:        n.ID(),
		UserID:    n.UserID(),
		EventType: n.EventType(),
		Title:     n.Title(),
		Payload:   payload,
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt(),
	}
}

func NotificationToDomain(m *models.NotificationModel) (*notification.Notification, error) {
	return notification.ReconstructNotification(
		m.ID,
		m.UserID,
		m.EventType,
		m.Title,
		[]byte(m.Payload),
		m.IsRead,
		m.CreatedAt,
	)
}
