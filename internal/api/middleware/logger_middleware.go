package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/MateuszRostek/book-store/internal/constants"
	"github.com/MateuszRostek/book-store/internal/token"
	"github.com/MateuszRostek/book-store/internal/util"
	"github.com/rs/zerolog"
)

type StatusRecoder struct {
	http.ResponseWriter
	status int
}

func (w *StatusRecoder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *StatusRecoder) Status() int {
	return w.status
}

func getRequestID(r *http.Request) string {
	requestId := "unknown"
	if v := r.Context().Value(constants.RequestIDKey); v != nil {
		requestId = v.(string)
	}
	return requestId
}

func getPayload(r *http.Request) *token.Payload[uint] {
	ctx := r.Context()
	payload := util.GetTokenPayloadFromContext[uint](ctx)
	if payload == nil {
		return &token.Payload[uint]{
			UPN:    "unknown",
			UserId: 0,
		}
	}
	return payload
}

// 記錄request 請求
// 有一起處理recover
func LoggerMiddleware(logger *zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recoder := &StatusRecoder{
				ResponseWriter: w,
			}

			if logger == nil {
				temp := zerolog.New(os.Stdout).With().Timestamp().Logger()
				logger = &temp
			}

			defer func() {
				if err := recover(); err != nil {
					requestId := getRequestID(r)
					payload := getPayload(r)

					var errMsg string
					if e, ok := err.(error); ok {
						errMsg = e.Error()
					} else {
						errMsg = fmt.Sprintf("%v", err)
					}
					logger.Error().
						Str("request_id", requestId).
						Str("upn", payload.UPN).
						Uint("user_id", payload.UserId).
						Str("method", r.Method).
						Str("url", r.URL.String()).
						Str("error", errMsg).
						Msg("request panicked")

					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{
						"error": "Internal Server Error",
					})
				}
			}()

			next.ServeHTTP(recoder, r)

			requestId := getRequestID(r)
			payload := getPayload(r)

			logger.Info().
				Str("request_id", requestId).
				Str("upn", payload.UPN).
				Uint("user_id", payload.UserId).
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Int("status", recoder.Status()).
				Msg("request completed")
		})
	}
}
