package util

import (
	"context"

	"github.com/MateuszRostek/book-store/internal/constants"
	"github.com/MateuszRostek/book-store/internal/token"
)

func GetTokenPayloadFromContext[T any](ctx context.Context) *token.Payload[T] {
	var tokenPayload *token.Payload[T]

	if v := ctx.Value(constants.AuthorizationPayloadKey); v != nil {
		tokenPayload = v.(*token.Payload[T])
	}

	return tokenPayload
}

func GetRequestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(constants.RequestIDKey); v != nil {
		return v.(string)
	}
	return "unknown"
}
