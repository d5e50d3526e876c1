package backlog_metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"parceldesk/pkg/logger"
)

type taskLogger interface {
	Debug(msg string, fields ...logger.Field)
}

// BacklogMetrics периодически выгружает количество посылок по статусам в gauge.
// Посылки в RECEIVED - это то, что лежит на стойке и ждёт гостя.
type BacklogMetrics struct {
	log      taskLogger
	service  Service
	interval time.Duration
	gauge    *prometheus.GaugeVec
}

func NewBacklogMetrics(log taskLogger, service Service, interval time.Duration) *BacklogMetrics {
	return &BacklogMetrics{
		log:      log,
		service:  service,
		interval: interval,
		gauge:    PackagesByStatus,
	}
}

func (b *BacklogMetrics) TTL() time.Duration {
	return b.interval
}

func (b *BacklogMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, b.interval)
	defer cancel()

	counts, err := b.service.CountByStatus(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("backlog metrics: %w", err)
	}

	for status, count := range counts {
		b.gauge.WithLabelValues(status.String()).Set(float64(count))
	}

	b.log.Debug("backlog metrics updated", logger.NewField("counts", counts))
	return nil
}

func (b *BacklogMetrics) Info() string {
	return "backlog metrics"
}
