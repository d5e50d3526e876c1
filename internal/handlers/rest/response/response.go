package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"parceldesk/internal/entities"
	"parceldesk/internal/generated/dto"
	"parceldesk/internal/service/parcel"
	"parceldesk/pkg/logger"
)

const (
	codeBadRequest   = "bad_request"
	codeInvalidInput = "invalid_input"
	codeConflict     = "conflict"
	codeNotFound     = "not_found"
	codeStore        = "store_error"
	codeInternal     = "internal_error"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

// BadRequest - тело запроса не разобрано.
func BadRequest(w http.ResponseWriter, log errorLogger, err error) {
	JSON(w, log, http.StatusBadRequest, dto.ErrorResponse{
		Error:   codeBadRequest,
		Message: err.Error(),
	})
}

// Error переводит ошибку сервиса в HTTP статус и тело ErrorResponse.
func Error(w http.ResponseWriter, log errorLogger, err error) {
	var invalidInput *parcel.InvalidInputError

	switch {
	case errors.As(err, &invalidInput):
		fields := invalidInput.Fields
		JSON(w, log, http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:   codeInvalidInput,
			Message: invalidInput.Error(),
			Fields:  &fields,
		})
	case errors.Is(err, parcel.ErrInvalidInput),
		errors.Is(err, parcel.ErrInvalidTransition):
		JSON(w, log, http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:   codeInvalidInput,
			Message: err.Error(),
		})
	case errors.Is(err, parcel.ErrAlreadyCheckedIn):
		JSON(w, log, http.StatusConflict, dto.ErrorResponse{
			Error:   codeConflict,
			Message: err.Error(),
		})
	case errors.Is(err, parcel.ErrPackageNotFound):
		JSON(w, log, http.StatusNotFound, dto.ErrorResponse{
			Error:   codeNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, parcel.ErrStore):
		log.Error("store failure", logger.NewField("error", err))
		details := err.Error()
		JSON(w, log, http.StatusInternalServerError, dto.ErrorResponse{
			Error:   codeStore,
			Message: "package store failure",
			Details: &details,
		})
	default:
		log.Error("unexpected error", logger.NewField("error", err))
		JSON(w, log, http.StatusInternalServerError, dto.ErrorResponse{
			Error:   codeInternal,
			Message: http.StatusText(http.StatusInternalServerError),
		})
	}
}

func Package(p entities.Package) dto.Package {
	return dto.Package{
		Id:             p.ID,
		TrackingNumber: p.TrackingNumber,
		Carrier:        p.Carrier,
		GuestName:      p.GuestName,
		RoomNumber:     p.RoomNumber,
		GuestPhone:     p.GuestPhone,
		Status:         dto.PackageStatus(p.Status),
		ReceivedBy:     p.ReceivedBy,
		PickedUpBy:     p.PickedUpBy,
		ReceiveTime:    p.ReceiveTime,
		PickupTime:     p.PickupTime,
		Notes:          p.Notes,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func Packages(packages []entities.Package) []dto.Package {
	res := make([]dto.Package, 0, len(packages))
	for _, p := range packages {
		res = append(res, Package(p))
	}
	return res
}
