package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"parceldesk/internal/generated/dto"
	"parceldesk/internal/handlers/rest/response"
	"parceldesk/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

// Middleware отклоняет новые запросы с 503, когда ongoingCtx отменён и сервис
// помечен как останавливающийся.
func Middleware(log handlerLogger, isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ongoingCtx.Err() != nil && isShuttingDown.Load() {
				w.Header().Set("Connection", "close")
				response.JSON(w, log, http.StatusServiceUnavailable, dto.ErrorResponse{
					Error:   "shutting_down",
					Message: "Service is shutting down",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
