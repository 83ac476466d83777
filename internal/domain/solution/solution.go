// Package solution contains the reusable solution aggregate. A solution is
// written against one ticket; once approved it joins the knowledge base and
// can close later tickets by reuse.
package solution

import (
	"errors"
	"fmt"
	"time"

	vo "traindesk/internal/domain/solution/valueobjects"
)

var (
	// ErrNotPending is returned when reviewing a solution that already has a verdict.
	ErrNotPending = errors.New("solution is not pending review")

	// ErrNotReusable is returned when reusing a solution that is not approved and active.
	ErrNotReusable = errors.New("solution is not approved and active")

	// ErrWrongTicket is returned when a review targets a solution from another ticket.
	ErrWrongTicket = errors.New("solution does not belong to this ticket")
)

type Solution struct {
	id              uint
	ticketID        uint
	authorID        uint
	rootCause       string
	fixSteps        string
	preventionNotes string
	tags            []string
	attachments     []string
	status          vo.ReviewStatus
	isActive        bool
	reuseCount      int
	reviewedBy      *uint
	reviewedAt      *time.Time
	createdAt       time.Time
	updatedAt       time.Time
	deletedAt       *time.Time
}

func NewSolution(ticketID, authorID uint, rootCause, fixSteps, preventionNotes string, tags, attachments []string) (*Solution, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(rootCause) == 0 {
		return nil, fmt.Errorf("root cause is required")
	}
	if len(fixSteps) == 0 {
		return nil, fmt.Errorf("fix steps are required")
	}

	now := time.Now().UTC()
	return &Solution{
		ticketID:        ticketID,
		authorID:        authorID,
		rootCause:       rootCause,
		fixSteps:        fixSteps,
		preventionNotes: preventionNotes,
		tags:            append([]string(nil), tags...),
		attachments:     append([]string(nil), attachments...),
		status:          vo.StatusPending,
		isActive:        true,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructSolution(
	id uint,
	ticketID uint,
	authorID uint,
	rootCause string,
	fixSteps string,
	preventionNotes string,
	tags []string,
	attachments []string,
	status vo.ReviewStatus,
	isActive bool,
	reuseCount int,
	reviewedBy *uint,
	reviewedAt *time.Time,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) (*Solution, error) {
	if id == 0 {
		return nil, fmt.Errorf("solution ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid review status: %s", status)
	}
	if reuseCount < 0 {
		return nil, fmt.Errorf("reuse count cannot be negative")
	}

	return &Solution{
		id:              id,
		ticketID:        ticketID,
		authorID:        authorID,
		rootCause:       rootCause,
		fixSteps:        fixSteps,
		preventionNotes: preventionNotes,
		tags:            tags,
		attachments:     attachments,
		status:          status,
		isActive:        isActive,
		reuseCount:      reuseCount,
		reviewedBy:      reviewedBy,
		reviewedAt:      reviewedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		deletedAt:       deletedAt,
	}, nil
}

func (s *Solution) ID() uint {
	return s.id
}

func (s *Solution) TicketID() uint {
	return s.ticketID
}

func (s *Solution) AuthorID() uint {
	return s.authorID
}

func (s *Solution) RootCause() string {
	return s.rootCause
}

func (s *Solution) FixSteps() string {
	return s.fixSteps
}

func (s *Solution) PreventionNotes() string {
	return s.preventionNotes
}

func (s *Solution) Tags() []string {
	return s.tags
}

func (s *Solution) Attachments() []string {
	return s.attachments
}

func (s *Solution) Status() vo.ReviewStatus {
	return s.status
}

func (s *Solution) IsActive() bool {
	return s.isActive
}

func (s *Solution) ReuseCount() int {
	return s.reuseCount
}

func (s *Solution) ReviewedBy() *uint {
	return s.reviewedBy
}

func (s *Solution) ReviewedAt() *time.Time {
	return s.reviewedAt
}

func (s *Solution) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Solution) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *Solution) DeletedAt() *time.Time {
	return s.deletedAt
}

func (s *Solution) IsDeleted() bool {
	return s.deletedAt != nil
}

func (s *Solution) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("solution ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("solution ID cannot be zero")
	}
	s.id = id
	return nil
}

// BelongsToTicket reports whether the solution was written for ticketID.
func (s *Solution) BelongsToTicket(ticketID uint) bool {
	return s.ticketID == ticketID
}

// IsReusable reports whether the solution may close another ticket.
func (s *Solution) IsReusable() bool {
	return s.status.IsApproved() && s.isActive && !s.IsDeleted()
}

// Approve accepts a pending solution into the knowledge base.
func (s *Solution) Approve(reviewerID uint) error {
	if !s.status.IsPending() {
		return ErrNotPending
	}
	now := time.Now().UTC()
	s.status = vo.StatusApproved
	s.reviewedBy = &reviewerID
	s.reviewedAt = &now
	s.updatedAt = now
	return nil
}

// AutoApprove marks a self-solved solution approved without a reviewer.
func (s *Solution) AutoApprove() error {
	if !s.status.IsPending() {
		return ErrNotPending
	}
	now := time.Now().UTC()
	s.status = vo.StatusApproved
	s.reviewedAt = &now
	s.updatedAt = now
	return nil
}

// Reject turns down a pending solution and retires it from reuse.
func (s *Solution) Reject(reviewerID uint) error {
	if !s.status.IsPending() {
		return ErrNotPending
	}
	now := time.Now().UTC()
	s.status = vo.StatusRejected
	s.isActive = false
	s.reviewedBy = &reviewerID
	s.reviewedAt = &now
	s.updatedAt = now
	return nil
}

// RecordReuse bumps the reuse counter on a reusable solution.
func (s *Solution) RecordReuse() error {
	if !s.IsReusable() {
		return ErrNotReusable
	}
	s.reuseCount++
	s.updatedAt = time.Now().UTC()
	return nil
}

// Disable takes the solution out of reuse rotation without deleting it.
func (s *Solution) Disable() {
	s.isActive = false
	s.updatedAt = time.Now().UTC()
}

// MarkDeleted records the soft-deletion timestamp on the aggregate.
func (s *Solution) MarkDeleted() {
	if s.deletedAt != nil {
		return
	}
	now := time.Now().UTC()
	s.deletedAt = &now
	s.updatedAt = now
}

// Snapshot is the unredacted view of a solution, used on events and for
// viewers allowed to see the full content. Read handlers apply redaction
// before returning it to other users.
type Snapshot struct {
	ID              uint       `json:"id"`
	TicketID        uint       `json:"ticket_id"`
	AuthorID        uint       `json:"author_id"`
	RootCause       string     `json:"root_cause,omitempty"`
	FixSteps        string     `json:"fix_steps,omitempty"`
	PreventionNotes string     `json:"prevention_notes,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
	Attachments     []string   `json:"attachments,omitempty"`
	Status          string     `json:"status"`
	IsActive        bool       `json:"is_active"`
	ReuseCount      int        `json:"reuse_count"`
	ReviewedBy      *uint      `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (s *Solution) Snapshot() Snapshot {
	return Snapshot{
		ID:              s.id,
		TicketID:        s.ticketID,
		AuthorID:        s.authorID,
		RootCause:       s.rootCause,
		FixSteps:        s.fixSteps,
		PreventionNotes: s.preventionNotes,
		Tags:            s.tags,
		Attachments:     s.attachments,
		Status:          s.status.String(),
		IsActive:        s.isActive,
		ReuseCount:      s.reuseCount,
		ReviewedBy:      s.reviewedBy,
		ReviewedAt:      s.reviewedAt,
		CreatedAt:       s.createdAt,
		UpdatedAt:       s.updatedAt,
	}
}
