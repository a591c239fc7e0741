package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var createdTasksCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "stoilo_gateway_created_tasks_total",
	Help: "counter of CreateTask requests handled by the task gateway",
}, []string{"status"})

var polledTasksCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "stoilo_gateway_polled_tasks_total",
	Help: "counter of PollTask requests handled by the task gateway",
}, []string{"outcome"})
