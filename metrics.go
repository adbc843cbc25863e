package hraccess

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	decisionAllow    = "allow"
	decisionDeny     = "deny"
	decisionNotFound = "not_found"
	decisionError    = "error"
)

var accessDecisions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "hraccess_access_decisions_total",
		Help: "Access resolver outcomes by decision.",
	},
	[]string{"decision"},
)
