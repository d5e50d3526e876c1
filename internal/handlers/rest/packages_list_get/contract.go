//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=packages_list_get_test
package packages_list_get

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
	ListPackages(ctx context.Context) ([]entities.Package, error)
}
