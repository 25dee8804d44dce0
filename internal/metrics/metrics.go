package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for the top-up pipeline.
var (
	TopupRequestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "topup_requests_total",
			Help: "Total number of top-up requests received",
		},
	)

	TopupAdmissionRejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "topup_admission_rejected_total",
			Help: "Top-up requests rejected at admission, by reason",
		},
		[]string{"reason"},
	)

	OrdersCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "topup_orders_created_total",
			Help: "Total number of top-up orders created",
		},
	)

	WebhookEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "topup_webhook_events_total",
			Help: "Webhook events processed, by outcome",
		},
		[]string{"outcome"},
	)

	CreditedRupiahTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "topup_credited_rupiah_total",
			Help: "Total rupiah credited to driver balances",
		},
	)

	PendingOrders = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "topup_pending_orders",
			Help: "Number of in-flight top-up orders",
		},
	)

	NotificationFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "topup_notification_failures_total",
			Help: "Outbound notifications that failed to send",
		},
	)
)

// Register registers all Prometheus metrics.
func Register() {
	prometheus.MustRegister(TopupRequestsTotal)
	prometheus.MustRegister(TopupAdmissionRejectedTotal)
	prometheus.MustRegister(OrdersCreatedTotal)
	prometheus.MustRegister(WebhookEventsTotal)
	prometheus.MustRegister(CreditedRupiahTotal)
	prometheus.MustRegister(PendingOrders)
	prometheus.MustRegister(NotificationFailuresTotal)
}
