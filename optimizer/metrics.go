package optimizer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	plansOptimized prometheus.Counter
	ruleRewrites   *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	return &metrics{
		plansOptimized: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "planopt",
			Subsystem: "optimizer",
			Name:      "plans_total",
			Help:      "Total number of plans passed through the optimizer.",
		}),
		ruleRewrites: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "planopt",
			Subsystem: "optimizer",
			Name:      "rule_rewrites_total",
			Help:      "Total number of rewrites made by each optimizer rule.",
		}, []string{"rule"}),
	}
}
