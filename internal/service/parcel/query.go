package parcel

import (
	"context"
	"fmt"
	"strings"

	"parceldesk/internal/entities"
)

type Query struct {
	repository Repository
}

func NewQuery(repository Repository) *Query {
	return &Query{
		repository: repository,
	}
}

// SearchPackages возвращает посылки, подходящие под все заданные критерии.
// Без критериев это то же самое, что ListPackages.
func (q *Query) SearchPackages(ctx context.Context, filter entities.PackageFilter) ([]entities.Package, error) {
	filter = trimFilter(filter)
	if filter.IsEmpty() {
		return q.ListPackages(ctx)
	}

	packages, err := q.repository.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search packages: %w", err)
	}
	return packages, nil
}

func (q *Query) ListPackages(ctx context.Context) ([]entities.Package, error) {
	packages, err := q.repository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return packages, nil
}

func (q *Query) GetPackage(ctx context.Context, trackingNumber string) (*entities.Package, error) {
	if strings.TrimSpace(trackingNumber) == "" {
		return nil, NewInvalidInputError(fieldTrackingNumber)
	}

	pkg, err := q.repository.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}
	return pkg, nil
}

func (q *Query) CountByStatus(ctx context.Context) (map[entities.PackageStatusType]int64, error) {
	counts, err := q.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count packages by status: %w", err)
	}
	return counts, nil
}

func trimFilter(filter entities.PackageFilter) entities.PackageFilter {
	return entities.PackageFilter{
		TrackingNumber: strings.TrimSpace(filter.TrackingNumber),
		Carrier:        strings.TrimSpace(filter.Carrier),
		GuestName:      strings.TrimSpace(filter.GuestName),
		RoomNumber:     strings.TrimSpace(filter.RoomNumber),
		GuestPhone:     strings.TrimSpace(filter.GuestPhone),
		Status:         entities.PackageStatusType(strings.TrimSpace(filter.Status.String())),
	}
}
