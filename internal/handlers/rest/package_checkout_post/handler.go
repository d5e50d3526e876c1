package package_checkout_post

import (
	"encoding/json"
	"net/http"

	"parceldesk/internal/entities"
	"parceldesk/internal/generated/dto"
	"parceldesk/internal/handlers/rest/response"
	"parceldesk/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "package_checkout_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request dto.PackageCheckOutRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		response.BadRequest(w, h.log, err)
		return
	}

	checkOut := entities.PackageCheckOut{
		TrackingNumber: request.TrackingNumber,
		PickedUpBy:     request.PickedUpBy,
		Notes:          request.Notes,
	}

	updated, err := h.service.CheckOut(r.Context(), checkOut)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Info("package checked out",
		logger.NewField("tracking_number", updated.TrackingNumber),
		logger.NewField("id", updated.ID),
	)

	response.JSON(w, h.log, http.StatusOK, response.Package(*updated))
}
