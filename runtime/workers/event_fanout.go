package workers

import (
	"context"
	"fmt"
	"log/slog"
	"messenger-lab/contract"
	"messenger-lab/domain/event"
	"sync"
	"time"
)

// EventFanout forwards domain events to in-process sinks (audit, metrics, projections).
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// durability, or retries. EventFanout is not a message broker: message
// delivery state lives in the store and never depends on a sink.
//
// Each sink call runs with its own timeout so one slow sink can't hold the others.
type EventFanout struct {
	log         *slog.Logger
	events      <-chan event.DomainEvent
	sinks       []contract.EventSink
	sinkTimeout time.Duration
}

func NewEventFanout(log *slog.Logger, events <-chan event.DomainEvent, sinkTimeout time.Duration, sinks ...contract.EventSink) *EventFanout {
	return &EventFanout{log: log, events: events, sinks: sinks, sinkTimeout: sinkTimeout}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt, ok := <-w.events:
			if !ok {
				w.log.Debug("Event channel closed, stopping fanout")
				return nil
			}
			w.Fanout(ctx, evt)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping fanout")
			return nil
		}
	}
}

// Fanout hands the event to every sink concurrently and waits for all of them.
func (w *EventFanout) Fanout(ctx context.Context, evt event.DomainEvent) {
	var wg sync.WaitGroup
	for _, sink := range w.sinks {
		wg.Add(1)
		go func(s contract.EventSink) {
			defer wg.Done()
			sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
			defer cancel()
			if err := s.Consume(sinkCtx, evt); err != nil {
				w.log.Warn(fmt.Sprintf("Sink %T failed on %T", s, evt), "error", err)
			}
		}(sink)
	}
	wg.Wait()
}
