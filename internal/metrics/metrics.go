// Package metrics exposes the engine's prometheus instruments.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Play metrics
var (
	PlaysTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlaysTotal,
			Help: HelpTextPlaysTotal,
		},
		[]string{LabelGame},
	)

	WinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWinsTotal,
			Help: HelpTextWinsTotal,
		},
		[]string{LabelGame},
	)

	InvalidBetsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInvalidBetsTotal,
			Help: HelpTextInvalidBetsTotal,
		},
		[]string{LabelGame},
	)
)

// Money flow metrics
var (
	WageredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWageredTotal,
			Help: HelpTextWageredTotal,
		},
		[]string{LabelGame},
	)

	PaidOutTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePaidOutTotal,
			Help: HelpTextPaidOutTotal,
		},
		[]string{LabelGame},
	)
)

// RecordPlay updates the play and money-flow counters for one resolved play.
func RecordPlay(game string, betAmount, winAmount float64, win bool) {
	PlaysTotal.WithLabelValues(game).Inc()
	WageredTotal.WithLabelValues(game).Add(betAmount)
	PaidOutTotal.WithLabelValues(game).Add(winAmount)
	if win {
		WinsTotal.WithLabelValues(game).Inc()
	}
}

// RecordInvalidBet counts a validation rejection.
func RecordInvalidBet(game string) {
	InvalidBetsTotal.WithLabelValues(game).Inc()
}
