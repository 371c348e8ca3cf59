package constants

// Session
const (
	SessionCookieName = "food_donation_session"

	// Session / context keys for the authenticated principal
	ContextKeyUserID   = "user_id"
	ContextKeyUserType = "user_type"
	ContextKeyAdminID  = "admin_id"
)

// Authentication
const (
	MinPasswordLength = 8
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Uploads
const (
	// MaxProofFileSize limits proof-of-need uploads (50 MB).
	MaxProofFileSize = 50 << 20
)
