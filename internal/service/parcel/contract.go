//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"

	"parceldesk/internal/entities"
)

type Repository interface {
	Exists(ctx context.Context, trackingNumber string) (bool, error)
	Insert(ctx context.Context, checkIn entities.PackageCheckIn) (*entities.Package, error)
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Package, error)
	MarkPickedUp(ctx context.Context, checkOut entities.PackageCheckOut) (*entities.Package, error)

	Search(ctx context.Context, filter entities.PackageFilter) ([]entities.Package, error)
	ListAll(ctx context.Context) ([]entities.Package, error)
	CountByStatus(ctx context.Context) (map[entities.PackageStatusType]int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
