// Package ticket contains the help ticket aggregate. A ticket is raised by a
// trainee, redeemed by a peer, and closed either through a fresh resolution
// that goes through review or by reusing an approved solution.
package ticket

import (
	"errors"
	"fmt"
	"time"

	vo "traindesk/internal/domain/ticket/valueobjects"
)

var (
	// ErrNotRedeemable is returned when the ticket is not open or reopened.
	ErrNotRedeemable = errors.New("ticket cannot be redeemed in its current status")

	// ErrRedeemedByOther is returned when a different peer already holds the ticket.
	ErrRedeemedByOther = errors.New("ticket is already redeemed by another user")

	// ErrAlreadyResolved is returned when resolving a ticket that is resolved.
	ErrAlreadyResolved = errors.New("ticket is already resolved")

	// ErrInvalidTransition is returned for any other forbidden status change.
	ErrInvalidTransition = errors.New("invalid ticket status transition")

	// ErrNotRedeemer is returned when the actor does not hold the ticket.
	ErrNotRedeemer = errors.New("ticket is not redeemed by this user")

	// ErrNotCreator is returned when an action is reserved for the ticket creator.
	ErrNotCreator = errors.New("only the ticket creator may perform this action")
)

type Ticket struct {
	id               uint
	title            string
	description      string
	attachments      []string
	status           vo.TicketStatus
	createdBy        uint
	redeemedBy       *uint
	reusedSolutionID *uint
	createdAt        time.Time
	updatedAt        time.Time
	deletedAt        *time.Time
}

func NewTicket(title, description string, attachments []string, createdBy uint) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now().UTC()
	return &Ticket{
		title:       title,
		description: description,
		attachments: append([]string(nil), attachments...),
		status:      vo.StatusOpen,
		createdBy:   createdBy,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	attachments []string,
	status vo.TicketStatus,
	createdBy uint,
	redeemedBy *uint,
	reusedSolutionID *uint,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid ticket status: %s", status)
	}

	return &Ticket{
		id:               id,
		title:            title,
		description:      description,
		attachments:      attachments,
		status:           status,
		createdBy:        createdBy,
		redeemedBy:       redeemedBy,
		reusedSolutionID: reusedSolutionID,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		deletedAt:        deletedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Attachments() []string {
	return t.attachments
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) CreatedBy() uint {
	return t.createdBy
}

func (t *Ticket) RedeemedBy() *uint {
	return t.redeemedBy
}

func (t *Ticket) ReusedSolutionID() *uint {
	return t.reusedSolutionID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) DeletedAt() *time.Time {
	return t.deletedAt
}

func (t *Ticket) IsDeleted() bool {
	return t.deletedAt != nil
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// IsRedeemedBy reports whether userID currently holds the ticket.
func (t *Ticket) IsRedeemedBy(userID uint) bool {
	return t.redeemedBy != nil && *t.redeemedBy == userID
}

// IsCreator reports whether userID raised the ticket.
func (t *Ticket) IsCreator(userID uint) bool {
	return t.createdBy == userID
}

// Redeem moves an open or reopened ticket into in-progress and records the
// redeemer. Re-redeeming by the same user is a no-op on the holder but still
// requires a redeemable status. Admins may take over a ticket held by someone
// else.
func (t *Ticket) Redeem(userID uint, isAdmin bool) error {
	if !t.status.IsRedeemable() {
		return ErrNotRedeemable
	}
	if t.redeemedBy != nil && *t.redeemedBy != userID && !isAdmin {
		return ErrRedeemedByOther
	}
	t.redeemedBy = &userID
	t.status = vo.StatusInProgress
	t.updatedAt = time.Now().UTC()
	return nil
}

// MarkResolved closes an in-progress ticket. reusedSolutionID is non-nil only
// when the ticket was closed by reusing an approved solution.
func (t *Ticket) MarkResolved(reusedSolutionID *uint) error {
	if t.status == vo.StatusResolved {
		return ErrAlreadyResolved
	}
	if !t.status.CanTransitionTo(vo.StatusResolved) {
		return ErrInvalidTransition
	}
	t.status = vo.StatusResolved
	t.reusedSolutionID = reusedSolutionID
	t.updatedAt = time.Now().UTC()
	return nil
}

// MarkRejected records that the ticket's pending solution was rejected.
// The ticket lands in rejected regardless of who rejected the solution; the
// creator can reopen it from there.
func (t *Ticket) MarkRejected() error {
	if !t.status.CanTransitionTo(vo.StatusRejected) {
		return ErrInvalidTransition
	}
	t.status = vo.StatusRejected
	t.updatedAt = time.Now().UTC()
	return nil
}

// Reopen puts a rejected or resolved ticket back into circulation and clears
// the redeemer so any peer may pick it up again.
func (t *Ticket) Reopen(userID uint) error {
	if !t.IsCreator(userID) {
		return ErrNotCreator
	}
	if !t.status.CanTransitionTo(vo.StatusReopened) {
		return ErrInvalidTransition
	}
	t.status = vo.StatusReopened
	t.redeemedBy = nil
	t.reusedSolutionID = nil
	t.updatedAt = time.Now().UTC()
	return nil
}

// UpdateDetails edits the ticket content. Only allowed while the ticket has
// not been resolved.
func (t *Ticket) UpdateDetails(title, description string, attachments []string) error {
	if t.status == vo.StatusResolved {
		return ErrAlreadyResolved
	}
	if len(title) > 0 {
		t.title = title
	}
	if len(description) > 0 {
		t.description = description
	}
	if attachments != nil {
		t.attachments = append([]string(nil), attachments...)
	}
	t.updatedAt = time.Now().UTC()
	return nil
}

// ClearRedeemer detaches the current holder without touching the status.
// Used when the redeemer's account is deleted.
func (t *Ticket) ClearRedeemer() {
	t.redeemedBy = nil
	t.updatedAt = time.Now().UTC()
}

// MarkDeleted records the soft-deletion timestamp on the aggregate.
func (t *Ticket) MarkDeleted() {
	if t.deletedAt != nil {
		return
	}
	now := time.Now().UTC()
	t.deletedAt = &now
	t.updatedAt = now
}

// Snapshot is the event and API view of a ticket.
type Snapshot struct {
	ID               uint       `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Attachments      []string   `json:"attachments,omitempty"`
	Status           string     `json:"status"`
	CreatedBy        uint       `json:"created_by"`
	RedeemedBy       *uint      `json:"redeemed_by,omitempty"`
	ReusedSolutionID *uint      `json:"reused_solution_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty"`
}

func (t *Ticket) Snapshot() Snapshot {
	return Snapshot{
		ID:               t.id,
		Title:            t.title,
		Description:      t.description,
		Attachments:      t.attachments,
		Status:           t.status.String(),
		CreatedBy:        t.createdBy,
		RedeemedBy:       t.redeemedBy,
		ReusedSolutionID: t.reusedSolutionID,
		CreatedAt:        t.createdAt,
		UpdatedAt:        t.updatedAt,
		DeletedAt:        t.deletedAt,
	}
}
