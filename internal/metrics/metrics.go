package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the chatbot's Prometheus collectors. Registered once at
// bootstrap and shared by the chat pipeline.
type Metrics struct {
	MessagesTotal    *prometheus.CounterVec
	FallbacksTotal   *prometheus.CounterVec
	ResponseDuration *prometheus.HistogramVec
	RetrievedDocs    prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		MessagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chatbot_messages_total",
			Help: "Number of chat messages processed, by detected intent.",
		}, []string{"intent"}),
		FallbacksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chatbot_fallbacks_total",
			Help: "Number of canned fallback answers served, by reason.",
		}, []string{"reason"}),
		ResponseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "chatbot_response_duration_seconds",
			Help:    "End to end chat pipeline latency.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}, []string{"intent"}),
		RetrievedDocs: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "chatbot_retrieved_documents",
			Help:    "Number of documents retained after relevance gating.",
			Buckets: []float64{0, 1, 2, 3, 5},
		}),
	}

	reg.MustRegister(m.MessagesTotal, m.FallbacksTotal, m.ResponseDuration, m.RetrievedDocs)
	return m
}
