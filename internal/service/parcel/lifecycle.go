package parcel

import (
	"context"
	"fmt"

	"parceldesk/internal/entities"
)

type Lifecycle struct {
	repository Repository
	txManager  TxManager
}

func NewLifecycle(repository Repository, txManager TxManager) *Lifecycle {
	return &Lifecycle{
		repository: repository,
		txManager:  txManager,
	}
}

func (l *Lifecycle) CheckIn(ctx context.Context, checkIn entities.PackageCheckIn) (pkg *entities.Package, err error) {
	defer func() { observeOperation(operationCheckIn, err) }()

	if err := validateCheckIn(checkIn); err != nil {
		return nil, err
	}
	checkIn = normalizeCheckIn(checkIn)

	exists, err := l.repository.Exists(ctx, *checkIn.TrackingNumber)
	if err != nil {
		return nil, fmt.Errorf("check in: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("check in %s: %w", *checkIn.TrackingNumber, ErrAlreadyCheckedIn)
	}

	// между Exists и Insert есть окно гонки, его закрывает unique-констрейнт:
	// репозиторий вернёт тот же ErrAlreadyCheckedIn
	pkg, err = l.repository.Insert(ctx, checkIn)
	if err != nil {
		return nil, fmt.Errorf("check in: %w", err)
	}

	return pkg, nil
}

func (l *Lifecycle) CheckOut(ctx context.Context, checkOut entities.PackageCheckOut) (pkg *entities.Package, err error) {
	defer func() { observeOperation(operationCheckOut, err) }()

	if err := validateCheckOut(checkOut); err != nil {
		return nil, err
	}

	err = l.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := l.repository.FindByTrackingNumber(ctx, *checkOut.TrackingNumber)
		if err != nil {
			return fmt.Errorf("find package: %w", err)
		}

		if !existing.Status.CanTransitionTo(entities.PackagePickedUp) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, existing.Status, entities.PackagePickedUp)
		}

		pkg, err = l.repository.MarkPickedUp(ctx, checkOut)
		if err != nil {
			return fmt.Errorf("mark picked up: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("check out: %w", err)
	}

	return pkg, nil
}
