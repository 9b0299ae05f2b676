package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mindplay_http_requests_total",
		Help: "HTTP requests by route group and status class.",
	}, []string{"route", "status"})

	activeGameSessions = promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "mindplay_active_game_sessions",
		Help: "Number of live game sessions.",
	}, func() float64 { return activeSessionsFn() })
)

// activeSessionsFn is swapped in at server construction.
var activeSessionsFn = func() float64 { return 0 }

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// countRequests records one counter increment per request.
func countRequests(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		httpRequestsTotal.WithLabelValues(route, statusClass(rec.status)).Inc()
	})
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
