package constants

import "time"

// Field limits enforced at write time
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 255
	MinPasswordLength    = 8
	MinUsernameLength    = 3
	MaxUsernameLength    = 50
)

// Token lifetime for issued bearer tokens
const TokenTTL = time.Hour

// Context keys set by the auth middleware
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
)
