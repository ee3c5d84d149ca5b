package consts

// AuthorizationKey Authorization header key
const AuthorizationKey string = "Authorization"

// BearerKey Bearer token prefix
const BearerKey string = "Bearer "

// RequestIDKey request id header, reused as trace id when present
const RequestIDKey string = "X-Request-Id"

// GinContextKey gin context key
const GinContextKey = "gin-context"

// UserKey global user id
const UserKey string = "x-md-uid"

// TokenKey global token
const TokenKey string = "x-md-token"

// TraceIDKey global trace id
const TraceIDKey string = "trace_id"

// DefaultTimezone used when no timezone is configured
const DefaultTimezone = "Local"
