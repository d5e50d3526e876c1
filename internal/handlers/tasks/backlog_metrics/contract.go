//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=backlog_metrics_test
package backlog_metrics

import (
	"context"

	"parceldesk/internal/entities"
)

type Service interface {
	CountByStatus(ctx context.Context) (map[entities.PackageStatusType]int64, error)
}
