package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderUserAgent     = "User-Agent"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"

	// Context keys
	ContextKeyUserID      = "user_id"
	ContextKeyUserRole    = "user_role"
	ContextKeySeekerToken = "seeker_token"
	ContextKeyRequestID   = "request_id"

	// Database table names
	TableDilemmas          = "dilemmas"
	TableDilemmaSupports   = "dilemma_supports"
	TableHelpers           = "helpers"
	TableSessions          = "sessions"
	TableReflections       = "reflections"
	TableModerationActions = "moderation_actions"
	TableUserStatuses      = "user_statuses"
	TableUserBlocks        = "user_blocks"

	// Presence
	PresenceTTLSeconds = 90
)
