package ping_get

import (
	"net/http"

	"parceldesk/internal/generated/dto"
	"parceldesk/internal/handlers/rest/response"
	"parceldesk/pkg/logger"
)

const pong = "pong"

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(logger.NewField("handler", "ping_get")),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	message := pong
	response.JSON(w, h.log, http.StatusOK, dto.PingResponse{
		Message: &message,
	})
}
