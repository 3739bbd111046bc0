package workers

import (
	"context"
	"log/slog"
	"reflect"
	"time"
)

type NamedChannel struct {
	Name    string
	Channel any
}

type CapacityObserver interface {
	ObserveCapacity(name string, capacity, length int)
}

// ChannelCapacityWorker periodically samples the length and capacity of buffered channels.
// Reading len(channel) and cap(channel) is non-blocking, so this won't interfere
// with the goroutines using them. A full event buffer means events are being dropped.
type ChannelCapacityWorker struct {
	log            *slog.Logger
	channels       []NamedChannel
	observer       CapacityObserver
	sampleInterval time.Duration
}

func NewChannelCapacityWorker(log *slog.Logger, observer CapacityObserver,
	sampleInterval time.Duration, channels ...NamedChannel) *ChannelCapacityWorker {
	return &ChannelCapacityWorker{
		log:            log,
		channels:       channels,
		observer:       observer,
		sampleInterval: sampleInterval,
	}
}

func (w ChannelCapacityWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.sampleInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping capacity sampling")
			return nil
		case <-ticker.C:
			w.Sample()
		}
	}
}

func (w ChannelCapacityWorker) Sample() {
	for _, nc := range w.channels {
		v := reflect.ValueOf(nc.Channel)
		// Verify if this is a channel
		if v.Kind() != reflect.Chan {
			w.log.Error("Provided object is not a channel", "name", nc.Name)
			continue
		}
		capacity, length := v.Cap(), v.Len()
		if capacity > 0 && length == capacity {
			w.log.Warn("Channel is full", "name", nc.Name, "capacity", capacity)
		}
		w.observer.ObserveCapacity(nc.Name, capacity, length)
	}
}
