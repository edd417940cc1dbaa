package constants

import "time"

type ContextKey string

const (
	AuthorizationHeaderKey  ContextKey = "authorization"
	AuthorizationTypeBearer ContextKey = "bearer"
	AuthorizationPayloadKey ContextKey = "authorization_payload"
	RequestIDKey            ContextKey = "request_id"
)

const (
	AccessTokenDuration = 24 * time.Hour
)
