// Package metrics defines and registers all custom Prometheus metrics for
// the admin backend. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "admin"

// SignupsTotal counts successfully registered accounts.
// Label:
//   - role: the role assigned at registration (e.g. "USER")
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful account registrations, by role.",
	},
	[]string{"role"},
)

// LoginAttemptsTotal counts login attempts.
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

// PasswordResetRequestsTotal counts accepted forgot-password requests.
// The counter does not distinguish known from unknown emails.
var PasswordResetRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_reset_requests_total",
		Help:      "Total number of accepted password reset requests.",
	},
)

// PasswordResetsTotal counts reset-token redemptions.
// Label:
//   - result: "success" or "failure"
var PasswordResetsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_resets_total",
		Help:      "Total number of password reset redemptions, by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests terminated by the access guard or
// the role gate.
// Label:
//   - reason: "missing_header", "invalid_header", "invalid_token",
//     "stale_subject", or "forbidden_role"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by authentication or authorization.",
	},
	[]string{"reason"},
)

// MailQueueDepth tracks the number of messages waiting in each outbound
// mail worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var MailQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "mail_queue_depth",
		Help:      "Current number of messages pending in each mail worker channel.",
	},
	[]string{"worker_id"},
)

// MailSendsTotal counts outbound mail deliveries.
// Label:
//   - result: "success" or "failure"
var MailSendsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mail_sends_total",
		Help:      "Total number of outbound mail delivery attempts, by result.",
	},
	[]string{"result"},
)
