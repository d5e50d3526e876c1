package rate_limiter

import (
	"net/http"
	"strconv"

	"golang.org/x/time/rate"
	"parceldesk/internal/generated/dto"
	"parceldesk/internal/handlers/rest/response"
	"parceldesk/internal/pkg/middlewares/metrics"
	"parceldesk/pkg/logger"
)

// NewLimiter - общий на сервис token bucket: qps пополнение в секунду, burst ёмкость.
func NewLimiter(qps, burst int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(qps), burst)
}

func Middleware(log handlerLogger, rateLimiterQPS int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteTemplate(r)

			log.Warn("rate limit exceeded",
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			)

			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rateLimiterQPS))
			w.Header().Set("Retry-After", "1")
			response.JSON(w, log, http.StatusTooManyRequests, dto.ErrorResponse{
				Error:   "rate_limited",
				Message: "Rate limit exceeded. Try again later.",
			})
		})
	}
}
