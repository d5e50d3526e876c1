package metrics

import "parceldesk/pkg/logger"

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
}
