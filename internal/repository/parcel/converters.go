package parcel

import (
	"parceldesk/internal/entities"
)

func ToDomain(p *PackageDB) *entities.Package {
	if p == nil {
		return nil
	}

	return &entities.Package{
		ID:             p.ID,
		TrackingNumber: p.TrackingNumber,
		Carrier:        p.Carrier,
		GuestName:      p.GuestName,
		RoomNumber:     p.RoomNumber,
		GuestPhone:     p.GuestPhone,
		Status:         entities.PackageStatusType(p.Status),
		ReceivedBy:     p.ReceivedBy,
		PickedUpBy:     p.PickedUpBy,
		ReceiveTime:    p.ReceiveTime,
		PickupTime:     p.PickupTime,
		Notes:          p.Notes,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func ToDomainList(packagesDB []PackageDB) []entities.Package {
	if len(packagesDB) == 0 {
		return []entities.Package{}
	}

	result := make([]entities.Package, len(packagesDB))
	for i := range packagesDB {
		result[i] = *ToDomain(&packagesDB[i])
	}
	return result
}

// FromDomainCheckIn ожидает уже провалидированный запрос: обязательные поля не nil.
func FromDomainCheckIn(checkIn *entities.PackageCheckIn) *PackageCheckInDB {
	if checkIn == nil {
		return nil
	}

	checkInDB := &PackageCheckInDB{
		RoomNumber: checkIn.RoomNumber,
		GuestPhone: checkIn.GuestPhone,
		Notes:      checkIn.Notes,
		Status:     entities.DefaultPackageStatus.String(),
		GuestName:  entities.DefaultGuestName,
	}

	if checkIn.TrackingNumber != nil {
		checkInDB.TrackingNumber = *checkIn.TrackingNumber
	}
	if checkIn.Carrier != nil {
		checkInDB.Carrier = *checkIn.Carrier
	}
	if checkIn.GuestName != nil {
		checkInDB.GuestName = *checkIn.GuestName
	}
	if checkIn.ReceivedBy != nil {
		checkInDB.ReceivedBy = *checkIn.ReceivedBy
	}

	return checkInDB
}
