package event

import (
	"messenger-lab/domain"
	"time"
)

// DomainEvent is emitted by the delivery pipeline after a state change
// has been applied to the message store.
type DomainEvent interface {
	OccurredAt() time.Time
}

type MessagePublished struct {
	Message domain.Message
	At      time.Time
}

func (m MessagePublished) OccurredAt() time.Time { return m.At }

// MessageDelivered carries a snapshot of the record right after delivery.
type MessageDelivered struct {
	Record domain.DeliveryRecord
	At     time.Time
}

func (m MessageDelivered) OccurredAt() time.Time { return m.At }

type MessageRead struct {
	Record domain.DeliveryRecord
	At     time.Time
}

func (m MessageRead) OccurredAt() time.Time { return m.At }

type PresenceChanged struct {
	ParticipantID string
	Online        bool
	At            time.Time
}

func (p PresenceChanged) OccurredAt() time.Time { return p.At }
