package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const NameHTTPRequestDuration = "http_request_duration_seconds"

var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:      NameHTTPRequestDuration,
		Help:      "HTTP request latency",
		Namespace: Namespace,
		Buckets:   prometheus.DefBuckets,
	},
	[]string{LabelMethod, LabelRoute, LabelStatus},
)
