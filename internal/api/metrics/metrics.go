// Package metrics defines the custom Prometheus metrics for the users API.
// It is the single source of truth for metric names, labels, and help strings.
// All metrics register with the default registry at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "users_api"

// RegistrationsTotal counts accounts created through /auth/register.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successfully registered users.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts session verifications.
// Label:
//   - result: "success" or "unauthorized"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of session token verifications, labelled by result.",
	},
	[]string{"result"},
)
