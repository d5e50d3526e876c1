package entities

import (
	"time"
)

// DefaultGuestName подставляется, когда имя гостя не передано при приёме.
const DefaultGuestName = "unnamed"

type Package struct {
	ID             int64
	TrackingNumber string
	Carrier        string
	GuestName      string
	RoomNumber     *string
	GuestPhone     *string
	Status         PackageStatusType
	ReceivedBy     string
	PickedUpBy     *string
	ReceiveTime    time.Time
	PickupTime     *time.Time
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type PackageStatusType string

const (
	PackageReceived PackageStatusType = "RECEIVED"
	PackagePickedUp PackageStatusType = "PICKED_UP"
)

const DefaultPackageStatus = PackageReceived

func (s PackageStatusType) String() string {
	return string(s)
}

func (s PackageStatusType) IsValid() bool {
	switch s {
	case PackageReceived, PackagePickedUp:
		return true
	default:
		return false
	}
}

// CanTransitionTo: единственный переход RECEIVED -> PICKED_UP. Повторная выдача
// (PICKED_UP -> PICKED_UP) допускается и только дописывает заметки.
func (s PackageStatusType) CanTransitionTo(next PackageStatusType) bool {
	switch s {
	case PackageReceived:
		return next == PackageReceived || next == PackagePickedUp
	case PackagePickedUp:
		return next == PackagePickedUp
	default:
		return false
	}
}

// PackageCheckIn - входные данные приёма посылки на стойке.
type PackageCheckIn struct {
	TrackingNumber *string
	Carrier        *string
	GuestName      *string
	RoomNumber     *string
	GuestPhone     *string
	ReceivedBy     *string
	Notes          *string
}

// PackageCheckOut - входные данные выдачи посылки гостю.
type PackageCheckOut struct {
	TrackingNumber *string
	PickedUpBy     *string
	Notes          *string
}

// PackageFilter - открытый набор критериев поиска. Пустое поле не ограничивает выборку.
type PackageFilter struct {
	TrackingNumber string
	Carrier        string
	GuestName      string
	RoomNumber     string
	GuestPhone     string
	Status         PackageStatusType
}

func (f PackageFilter) IsEmpty() bool {
	return f == PackageFilter{}
}
