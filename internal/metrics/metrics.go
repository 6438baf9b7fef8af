// Package metrics defines the custom Prometheus metrics for the library
// API. Metrics register themselves with the default registry at init; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "perpus"

// BorrowsTotal counts borrow attempts.
// Label:
//   - result: "ok", "already_borrowed", "out_of_stock", "not_found", "error"
var BorrowsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "borrows_total",
		Help:      "Total number of borrow attempts, by result.",
	},
	[]string{"result"},
)

// ReturnsTotal counts return attempts.
// Label:
//   - result: "ok", "not_found", "error"
var ReturnsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "returns_total",
		Help:      "Total number of return attempts, by result.",
	},
	[]string{"result"},
)

// OtpIssuedTotal counts verification codes generated, on registration and
// on resend.
var OtpIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_issued_total",
		Help:      "Total number of OTP codes issued.",
	},
)
