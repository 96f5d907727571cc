package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kgym_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kgym_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	CheckinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kgym_checkins_total",
			Help: "Total number of check-in attempts",
		},
		[]string{"result"},
	)

	StudentsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kgym_students_created_total",
			Help: "Total number of student accounts created",
		},
	)

	MembershipsAssignedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kgym_memberships_assigned_total",
			Help: "Total number of plan assignments",
		},
		[]string{"plan"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kgym_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "kgym_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordCheckin(result string) {
	CheckinsTotal.WithLabelValues(result).Inc()
}

func RecordStudentCreated() {
	StudentsCreatedTotal.Inc()
}

func RecordMembershipAssigned(planName string) {
	MembershipsAssignedTotal.WithLabelValues(planName).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
