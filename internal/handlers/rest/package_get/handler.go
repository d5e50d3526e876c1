package package_get

import (
	"net/http"

	"github.com/gorilla/mux"
	"parceldesk/internal/handlers/rest/response"
	"parceldesk/pkg/logger"
)

// PathParam - имя переменной пути, под которой роутер регистрирует хендлер.
const PathParam = "tracking_number"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "package_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	trackingNumber := mux.Vars(r)[PathParam]

	pkg, err := h.service.GetPackage(r.Context(), trackingNumber)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.Package(*pkg))
}
