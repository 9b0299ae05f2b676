package tutor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tutorRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mindplay_tutor_requests_total",
		Help: "Tutor completion requests, by mode.",
	}, []string{"mode"})

	quizParseFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mindplay_tutor_quiz_parse_fallbacks_total",
		Help: "Quiz-mode replies that failed to parse and fell back to chat.",
	})
)
