package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "budgetbuddy"

// Metrics aggregates the counters of the reconciliation pipeline.
type Metrics interface {
	SyncStarted()
	TransactionsFetched(n int)
	DuplicateVerdict(kind string)
	TransactionsImported(n int)
	TransactionsRejected(n int)
	UnmappedRejection()
}

type metrics struct {
	syncStarted       prometheus.Counter
	fetched           prometheus.Counter
	duplicateVerdicts *prometheus.CounterVec
	imported          prometheus.Counter
	rejected          prometheus.Counter
	unmapped          prometheus.Counter
}

func New() Metrics {
	m := &metrics{
		syncStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_sessions_started_total",
			Help:      "Number of sync sessions started.",
		}),
		fetched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bank_transactions_fetched_total",
			Help:      "Number of bank transactions fetched across all sessions.",
		}),
		duplicateVerdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicate_verdicts_total",
			Help:      "Duplicate detector verdicts by kind.",
		}, []string{"kind"}),
		imported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_transactions_imported_total",
			Help:      "Number of transactions written to the ledger.",
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_transactions_rejected_total",
			Help:      "Number of write requests the ledger rejected as duplicates.",
		}),
		unmapped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unmapped_rejections_total",
			Help:      "Ledger rejections that could not be mapped back to an in-flight transaction.",
		}),
	}

	prometheus.MustRegister(
		m.syncStarted,
		m.fetched,
		m.duplicateVerdicts,
		m.imported,
		m.rejected,
		m.unmapped,
	)

	return m
}

func (m *metrics) SyncStarted() {
	m.syncStarted.Inc()
}

func (m *metrics) TransactionsFetched(n int) {
	m.fetched.Add(float64(n))
}

func (m *metrics) DuplicateVerdict(kind string) {
	m.duplicateVerdicts.WithLabelValues(kind).Inc()
}

func (m *metrics) TransactionsImported(n int) {
	m.imported.Add(float64(n))
}

func (m *metrics) TransactionsRejected(n int) {
	m.rejected.Add(float64(n))
}

func (m *metrics) UnmappedRejection() {
	m.unmapped.Inc()
}
