package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDeliveryRecord_Advance_IsMonotonic(t *testing.T) {
	req := require.New(t)
	record := NewDeliveryRecord(uuid.New(), "bob")
	sentAt := time.Now()
	deliveredAt := sentAt.Add(time.Second)

	// Given a record that was sent then delivered
	req.True(record.Advance(StateSent, sentAt))
	req.True(record.Advance(StateDelivered, deliveredAt))
	req.True(record.Delivered())
	req.False(record.Read())

	// When the same or an older transition is applied again
	req.False(record.Advance(StateDelivered, deliveredAt.Add(time.Hour)))
	req.False(record.Advance(StateSent, deliveredAt.Add(time.Hour)))

	// Then nothing moved
	req.Equal(StateDelivered, record.State)
	req.Equal(sentAt, record.SentAt)
	req.Equal(deliveredAt, record.DeliveredAt)
}

func TestDeliveryRecord_Read_Implies_Delivered(t *testing.T) {
	req := require.New(t)
	record := NewDeliveryRecord(uuid.New(), "alice")
	at := time.Now()

	// When a created record is read right away
	req.True(record.Advance(StateRead, at))

	// Then every intermediate stage is stamped
	req.True(record.Delivered())
	req.True(record.Read())
	req.Equal(at, record.SentAt)
	req.Equal(at, record.DeliveredAt)
	req.Equal(at, record.ReadAt)
}

func TestDeliveryState_String(t *testing.T) {
	req := require.New(t)
	req.Equal("CREATED", StateCreated.String())
	req.Equal("SENT", StateSent.String())
	req.Equal("DELIVERED", StateDelivered.String())
	req.Equal("READ", StateRead.String())
	req.Equal("UNKNOWN", DeliveryState(42).String())
}

func TestMessage_Clone_DoesNotShareRecipients(t *testing.T) {
	req := require.New(t)
	message := NewChannelMessage("alice", "general", []string{"bob"}, "hello", false, time.Now())

	clone := message.Clone()
	clone.Recipients[0] = "mallory"

	req.Equal("bob", message.Recipients[0])
	req.Equal(KindChannel, message.Kind)
	req.Equal(StateCreated, message.State)
}
