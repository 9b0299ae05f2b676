package game

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gamesStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mindplay_games_started_total",
		Help: "Game sessions started, by variant.",
	}, []string{"variant"})

	gamesCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mindplay_games_completed_total",
		Help: "Game sessions finalized, by variant.",
	}, []string{"variant"})
)
