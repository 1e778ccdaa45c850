package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CalculationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "costing_calculations_total",
		Help: "Completed product cost calculations.",
	})

	CalculationErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "costing_calculation_errors_total",
		Help: "Product cost calculations that failed.",
	})

	MaterialsSkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "costing_materials_skipped_total",
		Help: "Materials skipped during aggregation because the material or its rule was missing.",
	})
)
