// Package metrics defines and registers all custom Prometheus metrics
// for the auth API. It is the single source of truth for metric names,
// labels, and help strings.
//
// The promauto vars register with the default registry at package init;
// the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "secureapi"

// LoginAttemptsTotal counts /login outcomes.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// BasicAuthChecksTotal counts Basic Auth gate decisions.
// Label:
//   - result: "success" or "failure"
var BasicAuthChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "basic_auth_checks_total",
		Help:      "Total number of Basic Auth gate checks, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts token gate decisions.
// Label:
//   - result: "valid", "missing", "malformed", "expired", "revoked",
//     "bad_signature", or "error"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)
