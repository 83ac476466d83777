package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"traindesk/internal/domain/ticket"
	ticketvo "traindesk/internal/domain/ticket/valueobjects"
	"traindesk/internal/infrastructure/persistence/models"
)

func TicketToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:               t.ID(),
		Title:            t.Title(),
		Description:      t.Description(),
		Attachments:      stringsToJSON(t.Attachments()),
		Status:           t.Status().String(),
		CreatedBy:        t.CreatedBy(),
		RedeemedBy:       t.RedeemedBy(),
		ReusedSolutionID: t.ReusedSolutionID(),
		CreatedAt:        t.CreatedAt(),
		UpdatedAt:        t.UpdatedAt(),
		DeletedAt:        toGormDeletedAt(t.DeletedAt()),
	}
}

func TicketToDomain(m *models.TicketModel) (*ticket.Ticket, error) {
	status, err := ticketvo.NewTicketStatus(m.Status)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", m.ID, err)
	}
	attachments, err := jsonToStrings(m.Attachments)
	if err != nil {
		return nil, fmt.Errorf("ticket %d attachments: %w", m.ID, err)
	}
	return ticket.ReconstructTicket(
		m.ID,
		m.Title,
		m.Description,
		attachments,
		status,
		m.CreatedBy,
		m.RedeemedBy,
		m.ReusedSolutionID,
		m.CreatedAt,
		m.UpdatedAt,
		fromGormDeletedAt(m.DeletedAt),
	)
}

func stringsToJSON(values []string) datatypes.JSON {
	if len(values) == 0 {
		return datatypes.JSON("[]")
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}

func jsonToStrings(raw datatypes.JSON) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, err
	}
	return values, nil
}
