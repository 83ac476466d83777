// Package constants defines shared context keys used across HTTP middleware
// and handlers.
package constants

const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

const (
	RoleAdmin   = "admin"
	RoleTrainee = "trainee"
)
