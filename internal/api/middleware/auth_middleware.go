package middleware

import (
	"net/http"

	"github.com/MateuszRostek/book-store/internal/constants"
	"github.com/MateuszRostek/book-store/internal/token"
	"github.com/MateuszRostek/book-store/pkg/api"
)

// 驗證ctx是否有token payload
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.Context().Value(constants.AuthorizationPayloadKey).(*token.Payload[uint])
		if !ok {
			api.ErrorJSON(w, http.StatusUnauthorized, nil, "unauthenticated")
			return
		}
		next.ServeHTTP(w, r)
	})
}
