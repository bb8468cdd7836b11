package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "eventbooking"

// Registry is the Prometheus registry served on /metrics.
var Registry = prometheus.NewRegistry()

// StoreRecords holds the record count per kind as of the last statistics call.
var StoreRecords = promauto.With(Registry).NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "store_records",
		Help:      "Number of stored records per kind at the last statistics snapshot",
	},
	[]string{"kind"},
)

// DataOperations counts data management operations by name and outcome.
var DataOperations = promauto.With(Registry).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "data_operations_total",
		Help:      "Data management operations (export, import, clear, seed) by result",
	},
	[]string{"operation", "result"},
)

// EmailsSent counts outgoing emails by template and outcome.
var EmailsSent = promauto.With(Registry).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "emails_sent_total",
		Help:      "Emails handed to the mail provider by template and result",
	},
	[]string{"template", "result"},
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Result maps an error to the "result" label value.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
