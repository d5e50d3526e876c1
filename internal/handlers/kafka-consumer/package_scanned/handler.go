package package_scanned

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"parceldesk/internal/service/parcel"
	"parceldesk/pkg/logger"
)

type Handler struct {
	service                  Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, service Service, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "package.scanned"))

	return &Handler{
		service:                  service,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("package.scanned: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// ребаланс или остановка consumer group
			h.log.Info("package.scanned: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение.
// Возвращает true, если нужно прервать ConsumeClaim: сообщение не помечено
// и будет прочитано повторно.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event scannedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.Error("package.scanned: bad message",
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		)
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("tracking_number", event.trackingNumber()),
		logger.NewField("partition", message.Partition),
		logger.NewField("offset", message.Offset),
	)

	created, err := h.service.CheckIn(ctx, event.toCheckIn())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.Warn("package.scanned: context cancelled, message will be reprocessed",
				logger.NewField("error", err),
			)
			return true

		case errors.Is(err, parcel.ErrAlreadyCheckedIn):
			// повторный скан той же посылки
			msgLog.Info("package.scanned: package already tracked")

		case errors.Is(err, parcel.ErrInvalidInput):
			msgLog.Warn("package.scanned: invalid scan", logger.NewField("error", err))

		default:
			msgLog.Error("package.scanned: check in failed", logger.NewField("error", err))
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("package.scanned: checked in", logger.NewField("id", created.ID))

	sess.MarkMessage(message, "")
	return false
}
