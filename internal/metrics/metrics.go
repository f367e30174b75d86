package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contact_submissions_received_total",
		Help: "Contact submissions received, before validation.",
	})

	SubmissionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_submissions_rejected_total",
		Help: "Contact submissions rejected before persistence, by reason.",
	}, []string{"reason"})

	SubmissionsPersisted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contact_submissions_persisted_total",
		Help: "Contact submissions durably stored.",
	})

	Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_notifications_total",
		Help: "Notification attempts by outcome (sent, skipped, failed).",
	}, []string{"outcome"})
)
