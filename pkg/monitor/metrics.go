package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"unishare.xyz/home-monitor/pkg/models"
)

var (
	busMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "home_monitor_bus_messages_total",
		Help: "Telemetry messages consumed from the bus per metric kind",
	}, []string{"metric"})

	alarmDeliveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "home_monitor_alarm_deliveries_total",
		Help: "Alarm call delivery attempts per outcome",
	}, []string{"outcome"})

	telemetryKeysTracked = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "home_monitor_telemetry_keys",
		Help: "Number of (device, metric) pairs with a stored reading",
	})
)

// ObserveBusMessage counts one consumed telemetry message.
func ObserveBusMessage(kind models.MetricKind) {
	busMessagesTotal.WithLabelValues(string(kind)).Inc()
}
