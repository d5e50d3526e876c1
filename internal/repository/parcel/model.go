package parcel

import "time"

type PackageDB struct {
	ID             int64
	TrackingNumber string
	Carrier        string
	GuestName      string
	RoomNumber     *string
	GuestPhone     *string
	Status         string
	ReceivedBy     string
	PickedUpBy     *string
	ReceiveTime    time.Time
	PickupTime     *time.Time
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type PackageCheckInDB struct {
	TrackingNumber string
	Carrier        string
	GuestName      string
	RoomNumber     *string
	GuestPhone     *string
	Status         string
	ReceivedBy     string
	Notes          *string
}

// порядок колонок совпадает с PackageDB.scanTargets
var packageColumns = []string{
	"id",
	"tracking_number",
	"carrier",
	"guest_name",
	"room_number",
	"guest_phone",
	"status",
	"received_by",
	"picked_up_by",
	"receive_time",
	"pickup_time",
	"notes",
	"created_at",
	"updated_at",
}

func (p *PackageDB) scanTargets() []any {
	return []any{
		&p.ID,
		&p.TrackingNumber,
		&p.Carrier,
		&p.GuestName,
		&p.RoomNumber,
		&p.GuestPhone,
		&p.Status,
		&p.ReceivedBy,
		&p.PickedUpBy,
		&p.ReceiveTime,
		&p.PickupTime,
		&p.Notes,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
}
