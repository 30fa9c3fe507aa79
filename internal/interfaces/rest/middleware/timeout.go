package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/DanielPopoola/ficmart-payments-service/internal/application"
	"github.com/DanielPopoola/ficmart-payments-service/internal/interfaces/rest"
)

var timeoutBody = mustEncodeTimeoutBody()

func mustEncodeTimeoutBody() string {
	body, err := json.Marshal(rest.ErrorResponse{
		Success: false,
		Error: rest.ErrorDetail{
			Code:    application.ErrCodeTimeout,
			Message: "Request timeout",
		},
	})
	if err != nil {
		panic(err)
	}
	return string(body)
}

// Timeout cancels the request context and cuts the response off with a JSON
// error body once the deadline passes.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)

			timeoutHandler := http.TimeoutHandler(next, timeout, timeoutBody)
			timeoutHandler.ServeHTTP(w, r)
		})
	}
}
