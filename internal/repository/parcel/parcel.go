package parcel

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"parceldesk/internal/entities"
	"parceldesk/internal/repository"
	service "parceldesk/internal/service/parcel"
)

const tableName = "packages"

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var returningColumns = "RETURNING " + strings.Join(packageColumns, ", ")

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Exists(ctx context.Context, trackingNumber string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM packages WHERE tracking_number = $1)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, trackingNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%w: package repository exists: %w", service.ErrStore, err)
	}
	return exists, nil
}

func (r *Repository) Insert(ctx context.Context, checkIn entities.PackageCheckIn) (*entities.Package, error) {
	checkInDB := FromDomainCheckIn(&checkIn)

	query, args, err := qb.
		Insert(tableName).
		Columns("tracking_number", "carrier", "guest_name", "room_number", "guest_phone", "status", "received_by", "notes").
		Values(
			checkInDB.TrackingNumber,
			checkInDB.Carrier,
			checkInDB.GuestName,
			checkInDB.RoomNumber,
			checkInDB.GuestPhone,
			checkInDB.Status,
			checkInDB.ReceivedBy,
			checkInDB.Notes,
		).
		Suffix(returningColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: package repository insert: %w", service.ErrStore, err)
	}

	var packageDB PackageDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(packageDB.scanTargets()...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, service.ErrAlreadyCheckedIn
		}
		if repository.IsConstraintViolation(err) {
			return nil, fmt.Errorf("%w: %w", service.ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: package repository insert: %w", service.ErrStore, err)
	}

	return ToDomain(&packageDB), nil
}

func (r *Repository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Package, error) {
	query, args, err := qb.
		Select(packageColumns...).
		From(tableName).
		Where(sq.Eq{"tracking_number": trackingNumber}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: package repository find: %w", service.ErrStore, err)
	}

	var packageDB PackageDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(packageDB.scanTargets()...)
	if err != nil {
		if repository.IsNoRows(err) {
			return nil, service.ErrPackageNotFound
		}
		return nil, fmt.Errorf("%w: package repository find: %w", service.ErrStore, err)
	}

	return ToDomain(&packageDB), nil
}

// MarkPickedUp не проверяет текущий статус: повторный вызов снова дописывает
// заметки и сдвигает pickup_time. Слияние заметок делается одним UPDATE.
func (r *Repository) MarkPickedUp(ctx context.Context, checkOut entities.PackageCheckOut) (*entities.Package, error) {
	var trackingNumber, pickedUpBy, additionalNotes string
	if checkOut.TrackingNumber != nil {
		trackingNumber = *checkOut.TrackingNumber
	}
	if checkOut.PickedUpBy != nil {
		pickedUpBy = *checkOut.PickedUpBy
	}
	if checkOut.Notes != nil {
		additionalNotes = *checkOut.Notes
	}

	query, args, err := qb.
		Update(tableName).
		Set("status", entities.PackagePickedUp.String()).
		Set("pickup_time", sq.Expr("NOW()")).
		Set("picked_up_by", pickedUpBy).
		Set("notes", sq.Expr(
			"CASE WHEN COALESCE(notes, '') = '' THEN ?::text ELSE notes || ',' || ?::text END",
			additionalNotes,
			additionalNotes,
		)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"tracking_number": trackingNumber}).
		Suffix(returningColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: package repository mark picked up: %w", service.ErrStore, err)
	}

	var packageDB PackageDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(packageDB.scanTargets()...)
	if err != nil {
		if repository.IsNoRows(err) {
			return nil, service.ErrPackageNotFound
		}
		return nil, fmt.Errorf("%w: package repository mark picked up: %w", service.ErrStore, err)
	}

	return ToDomain(&packageDB), nil
}

func (r *Repository) Search(ctx context.Context, filter entities.PackageFilter) ([]entities.Package, error) {
	builder := qb.
		Select(packageColumns...).
		From(tableName)

	builder = applyPredicates(builder, predicatesFromFilter(filter)).OrderBy("id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: package repository search: %w", service.ErrStore, err)
	}

	return r.queryPackages(ctx, "search", query, args...)
}

func (r *Repository) ListAll(ctx context.Context) ([]entities.Package, error) {
	return r.Search(ctx, entities.PackageFilter{})
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.PackageStatusType]int64, error) {
	query := `
	SELECT status, COUNT(*)
	FROM packages
	GROUP BY status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: package repository count by status: %w", service.ErrStore, err)
	}
	defer rows.Close()

	counts := map[entities.PackageStatusType]int64{
		entities.PackageReceived: 0,
		entities.PackagePickedUp: 0,
	}
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: package repository count by status: %w", service.ErrStore, err)
		}
		counts[entities.PackageStatusType(status)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: package repository count by status: %w", service.ErrStore, err)
	}

	return counts, nil
}

func (r *Repository) queryPackages(ctx context.Context, op string, query string, args ...any) ([]entities.Package, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: package repository %s: %w", service.ErrStore, op, err)
	}
	defer rows.Close()

	packageModels := make([]PackageDB, 0, 16)
	for rows.Next() {
		var packageDB PackageDB
		if err := rows.Scan(packageDB.scanTargets()...); err != nil {
			return nil, fmt.Errorf("%w: package repository %s: %w", service.ErrStore, op, err)
		}
		packageModels = append(packageModels, packageDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: package repository %s: %w", service.ErrStore, op, err)
	}

	return ToDomainList(packageModels), nil
}
