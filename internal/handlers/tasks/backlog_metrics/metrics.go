package backlog_metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var PackagesByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "packages_by_status",
		Help: "Number of tracked packages per lifecycle status",
	},
	[]string{"status"},
)
