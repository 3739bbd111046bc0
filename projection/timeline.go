// Package projection builds local read models from observed events.
// It does not emit events and never feeds back into delivery state.
package projection

import (
	"context"
	"messenger-lab/domain/event"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry is one line of the lifecycle history.
type Entry struct {
	At          time.Time
	MessageID   uuid.UUID
	Participant string
	Transition  string
}

// Timeline holds the lifecycle history in the order events were observed.
type Timeline struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewTimeline() *Timeline {
	return &Timeline{}
}

func (t *Timeline) Consume(_ context.Context, e event.DomainEvent) error {
	var entry Entry
	switch evt := e.(type) {
	case event.MessagePublished:
		entry = Entry{At: evt.At, MessageID: evt.Message.ID, Participant: evt.Message.SenderID, Transition: "SENT"}
	case event.MessageDelivered:
		entry = Entry{At: evt.At, MessageID: evt.Record.MessageID, Participant: evt.Record.RecipientID, Transition: "DELIVERED"}
	case event.MessageRead:
		entry = Entry{At: evt.At, MessageID: evt.Record.MessageID, Participant: evt.Record.RecipientID, Transition: "READ"}
	case event.PresenceChanged:
		transition := "OFFLINE"
		if evt.Online {
			transition = "ONLINE"
		}
		entry = Entry{At: evt.At, Participant: evt.ParticipantID, Transition: transition}
	default:
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, entry)
	return nil
}

// Entries returns a copy of the history.
func (t *Timeline) Entries() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]Entry(nil), t.entries...)
}
