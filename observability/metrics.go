package observability

import (
	"context"
	"messenger-lab/domain/event"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts lifecycle events. It is an event sink.
type Metrics struct {
	published       *prometheus.CounterVec
	delivered       prometheus.Counter
	read            prometheus.Counter
	presenceChanges *prometheus.CounterVec
	bufferUsage     *prometheus.GaugeVec
}

// NewMetrics registers the collectors on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		published: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "messenger_messages_published_total",
				Help: "Total number of messages accepted by the delivery pipeline.",
			},
			[]string{"kind", "encrypted"},
		),
		delivered: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "messenger_messages_delivered_total",
				Help: "Total number of (message, recipient) pairs that reached DELIVERED.",
			},
		),
		read: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "messenger_messages_read_total",
				Help: "Total number of (message, recipient) pairs that reached READ.",
			},
		),
		presenceChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "messenger_presence_changes_total",
				Help: "Total number of presence updates.",
			},
			[]string{"online"},
		),
		bufferUsage: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "messenger_buffer_usage_ratio",
				Help: "Fill ratio of internal channels, between 0 and 1.",
			},
			[]string{"channel"},
		),
	}
	reg.MustRegister(m.published, m.delivered, m.read, m.presenceChanges, m.bufferUsage)
	return m
}

func (m *Metrics) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.MessagePublished:
		m.published.WithLabelValues(evt.Message.Kind.String(), strconv.FormatBool(evt.Message.Encrypted)).Inc()
	case event.MessageDelivered:
		m.delivered.Inc()
	case event.MessageRead:
		m.read.Inc()
	case event.PresenceChanged:
		m.presenceChanges.WithLabelValues(strconv.FormatBool(evt.Online)).Inc()
	}
	return nil
}

// ObserveCapacity records how full a buffered channel is.
func (m *Metrics) ObserveCapacity(name string, capacity, length int) {
	if capacity == 0 {
		return
	}
	m.bufferUsage.WithLabelValues(name).Set(float64(length) / float64(capacity))
}
