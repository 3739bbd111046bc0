package domain

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryState is the lifecycle stage of a (message, recipient) pair.
// States only move forward: Created -> Sent -> Delivered -> Read.
type DeliveryState int

const (
	StateCreated DeliveryState = iota
	StateSent
	StateDelivered
	StateRead
)

func (s DeliveryState) String() string {
	switch s {
	case StateCreated:
		return "CREATED"
	case StateSent:
		return "SENT"
	case StateDelivered:
		return "DELIVERED"
	case StateRead:
		return "READ"
	default:
		return "UNKNOWN"
	}
}

// DeliveryRecord tracks one recipient of one message.
// Read implies Delivered.
type DeliveryRecord struct {
	MessageID   uuid.UUID
	RecipientID string
	State       DeliveryState
	SentAt      time.Time
	DeliveredAt time.Time
	ReadAt      time.Time
}

func NewDeliveryRecord(messageID uuid.UUID, recipientID string) DeliveryRecord {
	return DeliveryRecord{MessageID: messageID, RecipientID: recipientID, State: StateCreated}
}

func (r DeliveryRecord) Delivered() bool { return r.State >= StateDelivered }

func (r DeliveryRecord) Read() bool { return r.State >= StateRead }

// Advance moves the record forward to the target state, stamping every
// intermediate stage it passes through with the same instant.
// It reports false and leaves the record untouched when the record is
// already at or past the target.
func (r *DeliveryRecord) Advance(to DeliveryState, at time.Time) bool {
	if to <= r.State {
		return false
	}
	for s := r.State + 1; s <= to; s++ {
		switch s {
		case StateSent:
			r.SentAt = at
		case StateDelivered:
			r.DeliveredAt = at
		case StateRead:
			r.ReadAt = at
		}
	}
	r.State = to
	return true
}
