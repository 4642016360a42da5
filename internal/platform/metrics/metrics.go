package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "votebar_http_requests_total",
			Help: "HTTP requests served, labeled by method, route and status.",
		},
		[]string{"method", "path", "status"},
	)
)

// Engine metrics
var (
	RoomsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "votebar_rooms_created_total",
			Help: "Voting rooms created.",
		},
	)

	RoomsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "votebar_rooms_evicted_total",
			Help: "Voting rooms removed by the expiry sweep.",
		},
	)

	VotesAccepted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "votebar_votes_accepted_total",
			Help: "Ballots that passed validation and were folded into a room.",
		},
	)

	VotesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "votebar_votes_rejected_total",
			Help: "Ballots rejected by validation, labeled by failure kind.",
		},
		[]string{"reason"},
	)
)
