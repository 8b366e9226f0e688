package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var namespace = "alpaca"
var subsystem = "holidaystore"

var (
	// StartupTime stores how long loading the configuration and catalog took (in seconds)
	StartupTime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "startup_seconds",
			Help:      "Seconds taken by the startup",
		},
	)

	// CatalogRules stores the size of the last rule catalog snapshot read
	CatalogRules = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "catalog_rules",
		Help:      "Number of holiday rules in the last catalog snapshot",
	})

	// ResolutionsTotal stores the number of resolved years
	ResolutionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "year_resolutions_total",
		Help:      "Number of years resolved against the holiday catalog",
	})

	// ResolveDuration stores the processing time of every year resolution
	ResolveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "year_resolution_duration_seconds",
		Help:      "Year resolution time including the catalog read",
	})

	// HolidayChecksTotal stores the number of date checks partitioned
	// by outcome
	HolidayChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "holiday_checks_total",
		Help:      "Number of holiday checks partitioned by result",
	}, []string{"holiday"})
)
