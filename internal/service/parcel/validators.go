package parcel

import (
	"strings"

	"parceldesk/internal/entities"
)

const (
	fieldTrackingNumber = "tracking_number"
	fieldCarrier        = "carrier"
	fieldRoomNumber     = "room_number"
	fieldGuestPhone     = "guest_phone"
	fieldReceivedBy     = "received_by"
	fieldPickedUpBy     = "picked_up_by"
)

func isPresent(value *string) bool {
	return value != nil && strings.TrimSpace(*value) != ""
}

func validateCheckIn(checkIn entities.PackageCheckIn) error {
	var fields []string

	if !isPresent(checkIn.TrackingNumber) {
		fields = append(fields, fieldTrackingNumber)
	}
	if !isPresent(checkIn.Carrier) {
		fields = append(fields, fieldCarrier)
	}
	if !isPresent(checkIn.ReceivedBy) {
		fields = append(fields, fieldReceivedBy)
	}
	// без номера комнаты и телефона гостя посылку некому отдать
	if !isPresent(checkIn.RoomNumber) && !isPresent(checkIn.GuestPhone) {
		fields = append(fields, fieldRoomNumber, fieldGuestPhone)
	}

	if len(fields) > 0 {
		return NewInvalidInputError(fields...)
	}
	return nil
}

func validateCheckOut(checkOut entities.PackageCheckOut) error {
	var fields []string

	if !isPresent(checkOut.TrackingNumber) {
		fields = append(fields, fieldTrackingNumber)
	}
	if !isPresent(checkOut.PickedUpBy) {
		fields = append(fields, fieldPickedUpBy)
	}

	if len(fields) > 0 {
		return NewInvalidInputError(fields...)
	}
	return nil
}

// normalizeCheckIn подставляет имя гостя по умолчанию и сбрасывает пустые
// необязательные поля в nil, чтобы в хранилище они попали как NULL.
func normalizeCheckIn(checkIn entities.PackageCheckIn) entities.PackageCheckIn {
	if !isPresent(checkIn.GuestName) {
		guestName := entities.DefaultGuestName
		checkIn.GuestName = &guestName
	}
	if !isPresent(checkIn.RoomNumber) {
		checkIn.RoomNumber = nil
	}
	if !isPresent(checkIn.GuestPhone) {
		checkIn.GuestPhone = nil
	}
	if checkIn.Notes != nil && *checkIn.Notes == "" {
		checkIn.Notes = nil
	}
	return checkIn
}
