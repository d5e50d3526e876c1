package rate_limiter

import "parceldesk/pkg/logger"

// Limiter реализуется *rate.Limiter.
type Limiter interface {
	Allow() bool
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
