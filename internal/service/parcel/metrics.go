package parcel

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	operationCheckIn  = "check_in"
	operationCheckOut = "check_out"
)

var LifecycleOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "package_lifecycle_operations_total",
		Help: "Total number of package check-in/check-out operations by result",
	},
	[]string{"operation", "result"},
)

func observeOperation(operation string, err error) {
	LifecycleOperationsTotal.WithLabelValues(operation, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrAlreadyCheckedIn):
		return "conflict"
	case errors.Is(err, ErrPackageNotFound):
		return "not_found"
	default:
		return "error"
	}
}
