package packages_search_get

import (
	"net/http"

	"parceldesk/internal/entities"
	"parceldesk/internal/handlers/rest/response"
	"parceldesk/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "packages_search_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := entities.PackageFilter{
		TrackingNumber: query.Get("tracking_number"),
		Carrier:        query.Get("carrier"),
		GuestName:      query.Get("guest_name"),
		RoomNumber:     query.Get("room_number"),
		GuestPhone:     query.Get("guest_phone"),
		Status:         entities.PackageStatusType(query.Get("status")),
	}

	packages, err := h.service.SearchPackages(r.Context(), filter)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.Packages(packages))
}
