// Package valueobjects contains value objects for the solution domain.
package valueobjects

import "fmt"

// ReviewStatus is the review state of a submitted solution.
type ReviewStatus string

const (
	StatusPending  ReviewStatus = "pending"
	StatusApproved ReviewStatus = "approved"
	StatusRejected ReviewStatus = "rejected"
)

var validStatuses = map[ReviewStatus]bool{
	StatusPending:  true,
	StatusApproved: true,
	StatusRejected: true,
}

func (s ReviewStatus) String() string {
	return string(s)
}

func (s ReviewStatus) IsValid() bool {
	return validStatuses[s]
}

func (s ReviewStatus) IsPending() bool {
	return s == StatusPending
}

func (s ReviewStatus) IsApproved() bool {
	return s == StatusApproved
}

func NewReviewStatus(s string) (ReviewStatus, error) {
	status := ReviewStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid review status: %s", s)
	}
	return status, nil
}
