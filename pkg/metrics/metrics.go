package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lawncare"

// Label names
const (
	LabelType   = "type"
	LabelOp     = "op"
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
)

// Business metrics
var (
	ExpensesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expenses_created_total",
			Help:      "Expenses recorded, by expense type.",
		},
		[]string{LabelType},
	)

	TasksCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_completed_total",
			Help:      "Tasks toggled to completed, by task type.",
		},
		[]string{LabelType},
	)

	InventoryCascades = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inventory_cascades_total",
			Help:      "Linked expense updates and deletions caused by inventory changes.",
		},
		[]string{LabelOp},
	)
)

// HTTP metrics
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests served, by method, route and status.",
	},
	[]string{LabelMethod, LabelPath, LabelStatus},
)
