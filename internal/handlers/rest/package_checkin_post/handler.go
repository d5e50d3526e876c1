package package_checkin_post

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
	handlerLog := log.With(logger.NewField("handler", "package_checkin_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request dto.PackageCheckInRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		response.BadRequest(w, h.log, err)
		return
	}

	checkIn := entities.PackageCheckIn{
		TrackingNumber: request.TrackingNumber,
		Carrier:        request.Carrier,
		GuestName:      request.GuestName,
		RoomNumber:     request.RoomNumber,
		GuestPhone:     request.GuestPhone,
		ReceivedBy:     request.ReceivedBy,
		Notes:          request.Notes,
	}

	created, err := h.service.CheckIn(r.Context(), checkIn)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Info("package checked in",
		logger.NewField("tracking_number", created.TrackingNumber),
		logger.NewField("id", created.ID),
	)

	response.JSON(w, h.log, http.StatusCreated, response.Package(*created))
}
