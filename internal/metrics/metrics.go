package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	MessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "messages_total", Help: "Inbound text messages routed, by outcome"},
		[]string{"outcome"},
	)
	QuotesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "quotes_total", Help: "Jupiter quote requests issued"},
		[]string{"status"},
	)
	ForwardsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "forwards_total", Help: "Group chat forwards attempted"},
		[]string{"status"},
	)
)

// Outcome labels for MessagesTotal.
const (
	OutcomeRejected    = "rejected"
	OutcomeDuplicate   = "duplicate"
	OutcomeQuoted      = "quoted"
	OutcomeQuoteFailed = "quote_failed"
)

func init() {
	prometheus.MustRegister(MessagesTotal, QuotesTotal, ForwardsTotal)
}

func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() { _ = srv.ListenAndServe() }()
	return srv
}
