package projection

import (
	"context"
	"messenger-lab/domain"
	"messenger-lab/domain/event"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimeline_Consume_Lifecycle(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline()
	ctx := context.Background()
	now := time.Now()

	message := domain.NewChannelMessage("alice", "general", []string{"bob"}, "hello world", false, now)
	record := domain.NewDeliveryRecord(message.ID, "bob")

	events := []event.DomainEvent{
		event.MessagePublished{Message: message, At: now},
		event.MessageDelivered{Record: record, At: now.Add(time.Second)},
		event.MessageRead{Record: record, At: now.Add(2 * time.Second)},
		event.PresenceChanged{ParticipantID: "bob", Online: false, At: now.Add(3 * time.Second)},
	}
	for _, evt := range events {
		req.NoError(timeline.Consume(ctx, evt))
	}

	entries := timeline.Entries()
	req.Len(entries, 4)
	req.Equal("alice", entries[0].Participant)
	req.Equal("SENT", entries[0].Transition)
	req.Equal("bob", entries[1].Participant)
	req.Equal("DELIVERED", entries[1].Transition)
	req.Equal(message.ID, entries[2].MessageID)
	req.Equal("READ", entries[2].Transition)
	req.Equal("OFFLINE", entries[3].Transition)
}
