//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_checkout_post_test
package package_checkout_post

import (
	"context"

	"parceldesk/internal/entities"
	"parceldesk/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CheckOut(ctx context.Context, checkOut entities.PackageCheckOut) (*entities.Package, error)
}
