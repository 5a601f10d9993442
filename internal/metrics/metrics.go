// Package metrics records evaluation counts for the network adapters.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/baditaflorin/go_palindrome/internal/core/domain"
)

var (
	evaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "palindrome_evaluations_total",
		Help: "Evaluations served, by verdict",
	}, []string{"source", "result"})

	inputRunes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "palindrome_input_runes",
		Help:    "Normalized rune count per evaluation",
		Buckets: []float64{0, 1, 8, 32, 128, 512, 2048, 8192},
	}, []string{"source"})

	liveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "palindrome_live_sessions",
		Help: "Open live-check sessions",
	})
)

// Source values used as the "source" label.
const (
	SourceHTTP = "http"
	SourceLive = "live"
)

// ObserveEvaluation records one evaluation served through source.
func ObserveEvaluation(source string, result domain.Result) {
	evaluationsTotal.WithLabelValues(source, strconv.FormatBool(result.Palindrome)).Inc()
	inputRunes.WithLabelValues(source).Observe(float64(result.Length))
}

// SessionOpened increments the live session gauge.
func SessionOpened() { liveSessions.Inc() }

// SessionClosed decrements the live session gauge.
func SessionClosed() { liveSessions.Dec() }
