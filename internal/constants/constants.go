package constants

import "time"

const (
	// ContextKeyUserID is the Gin context key holding the authenticated user ID.
	ContextKeyUserID = "user_id"

	// DefaultTokenTTL is the bearer token lifetime.
	DefaultTokenTTL = time.Hour

	// DefaultBcryptCost is used when no cost is configured.
	DefaultBcryptCost = 10
)
