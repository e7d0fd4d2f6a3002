package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const NameItemOperations = "operations_total"

// ItemOperations counts item use case calls by operation and outcome.
var ItemOperations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameItemOperations,
		Help:      "Item operations by outcome",
		Namespace: Namespace,
	},
	[]string{LabelOperation, LabelOutcome},
)
