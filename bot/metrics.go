package bot

import "github.com/prometheus/client_golang/prometheus"

// Metrics collects the bot's operational counters
type Metrics struct {
	commandsHandled *prometheus.CounterVec
	sendFailures    prometheus.Counter
	broadcastSends  prometheus.Counter
}

// NewMetrics creates the bot metrics, registered against the given
// registerer (nil skips registration, for tests)
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		commandsHandled: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cantonbot",
				Name:      "commands_handled_total",
				Help:      "Number of chat commands handled, by command",
			},
			[]string{"command"},
		),
		sendFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "cantonbot",
				Name:      "send_failures_total",
				Help:      "Number of failed message deliveries",
			},
		),
		broadcastSends: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "cantonbot",
				Name:      "broadcast_sends_total",
				Help:      "Number of price messages broadcast to the channel",
			},
		),
	}

	if reg != nil {
		reg.MustRegister(m.commandsHandled, m.sendFailures, m.broadcastSends)
	}

	return m
}

func (m *Metrics) commandHandled(command string) {
	m.commandsHandled.WithLabelValues(command).Inc()
}
