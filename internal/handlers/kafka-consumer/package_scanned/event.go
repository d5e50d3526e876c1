package package_scanned

import "parceldesk/internal/entities"

// scannedEvent - сообщение сканера на стойке о поступившей посылке.
type scannedEvent struct {
	TrackingNumber *string `json:"tracking_number"`
	Carrier        *string `json:"carrier"`
	GuestName      *string `json:"guest_name"`
	RoomNumber     *string `json:"room_number"`
	GuestPhone     *string `json:"guest_phone"`
	ScannedBy      *string `json:"scanned_by"`
	Notes          *string `json:"notes"`
}

func (e scannedEvent) toCheckIn() entities.PackageCheckIn {
	return entities.PackageCheckIn{
		TrackingNumber: e.TrackingNumber,
		Carrier:        e.Carrier,
		GuestName:      e.GuestName,
		RoomNumber:     e.RoomNumber,
		GuestPhone:     e.GuestPhone,
		ReceivedBy:     e.ScannedBy,
		Notes:          e.Notes,
	}
}

func (e scannedEvent) trackingNumber() string {
	if e.TrackingNumber == nil {
		return ""
	}
	return *e.TrackingNumber
}
