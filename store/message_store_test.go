package store

import (
	"messenger-lab/domain"
	"messenger-lab/errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestMessageStore_Append_CreatesOneRecordPerRecipient(t *testing.T) {
	req := require.New(t)
	s := NewMessageStore()
	message := domain.NewChannelMessage("alice", "general", []string{"bob", "clara", "bob"}, "hello", false, time.Now())

	// When the message is appended with a duplicated recipient
	req.NoError(s.Append(message))

	// Then each recipient gets exactly one CREATED record, in first-seen order
	records, err := s.Records(message.ID)
	req.NoError(err)
	req.Len(records, 2)
	req.Equal("bob", records[0].RecipientID)
	req.Equal("clara", records[1].RecipientID)
	for _, record := range records {
		req.Equal(domain.StateCreated, record.State)
	}

	stored, err := s.Message(message.ID)
	req.NoError(err)
	req.Equal([]string{"bob", "clara"}, stored.Recipients)
}

func TestMessageStore_Append_Duplicate(t *testing.T) {
	req := require.New(t)
	s := NewMessageStore()
	message := domain.NewDirectMessage("alice", []string{"bob"}, "hi", false, time.Now())

	req.NoError(s.Append(message))
	err := s.Append(message)

	req.ErrorIs(err, errors.ErrDuplicateMessage)
	req.ErrorIs(err, errors.ErrInvalidState)
}

func TestMessageStore_Accept_AdvancesEveryRecord(t *testing.T) {
	req := require.New(t)
	s := NewMessageStore()
	message := domain.NewChannelMessage("alice", "general", []string{"bob", "clara"}, "hello", false, time.Now())
	req.NoError(s.Append(message))
	at := time.Now()

	accepted, err := s.Accept(message.ID, at)
	req.NoError(err)
	req.Equal(domain.StateSent, accepted.State)

	records, err := s.Records(message.ID)
	req.NoError(err)
	for _, record := range records {
		req.Equal(domain.StateSent, record.State)
		req.Equal(at, record.SentAt)
	}
	req.Equal([]uuid.UUID{message.ID}, s.Pending("bob"))

	_, err = s.Accept(uuid.New(), at)
	req.ErrorIs(err, errors.ErrMessageNotFound)
}

func TestMessageStore_Advance(t *testing.T) {
	req := require.New(t)
	s := NewMessageStore()
	message := domain.NewDirectMessage("alice", []string{"bob"}, "hi", false, time.Now())
	req.NoError(s.Append(message))
	_, err := s.Accept(message.ID, time.Now())
	req.NoError(err)

	// When the record is delivered twice
	previous, record, err := s.Advance(message.ID, "bob", domain.StateDelivered, time.Now())
	req.NoError(err)
	req.Equal(domain.StateSent, previous)
	req.Equal(domain.StateDelivered, record.State)
	deliveredAt := record.DeliveredAt

	previous, record, err = s.Advance(message.ID, "bob", domain.StateDelivered, time.Now().Add(time.Hour))

	// Then the second call changes nothing
	req.NoError(err)
	req.Equal(domain.StateDelivered, previous)
	req.Equal(deliveredAt, record.DeliveredAt)
	req.Empty(s.Pending("bob"))
}

func TestMessageStore_Advance_NotFound(t *testing.T) {
	req := require.New(t)
	s := NewMessageStore()
	message := domain.NewDirectMessage("alice", []string{"bob"}, "hi", false, time.Now())
	req.NoError(s.Append(message))

	_, _, err := s.Advance(uuid.New(), "bob", domain.StateRead, time.Now())
	req.ErrorIs(err, errors.ErrMessageNotFound)
	req.ErrorIs(err, errors.ErrNotFound)

	_, _, err = s.Advance(message.ID, "mallory", domain.StateRead, time.Now())
	req.ErrorIs(err, errors.ErrRecipientNotFound)
	req.ErrorIs(err, errors.ErrNotFound)

	_, err = s.Record(message.ID, "alice")
	req.ErrorIs(err, errors.ErrRecipientNotFound)
}

func TestMessageStore_Views(t *testing.T) {
	req := require.New(t)
	s := NewMessageStore()
	first := domain.NewChannelMessage("alice", "general", []string{"bob"}, "one", false, time.Now())
	second := domain.NewDirectMessage("clara", []string{"bob"}, "two", false, time.Now())
	third := domain.NewChannelMessage("alice", "random", []string{"clara"}, "three", false, time.Now())
	req.NoError(s.Append(first))
	req.NoError(s.Append(second))
	req.NoError(s.Append(third))

	inbox := s.Inbox("bob")
	req.Len(inbox, 2)
	req.Equal(first.ID, inbox[0].ID)
	req.Equal(second.ID, inbox[1].ID)

	sent := s.Sent("alice")
	req.Len(sent, 2)
	req.Equal(third.ID, sent[1].ID)

	history := s.ChannelHistory("general")
	req.Len(history, 1)
	req.Equal("one", history[0].Content)

	req.Empty(s.Inbox("nobody"))
	req.Empty(s.ChannelHistory("nowhere"))
}

func TestMessageStore_ReturnsCopies(t *testing.T) {
	req := require.New(t)
	s := NewMessageStore()
	message := domain.NewChannelMessage("alice", "general", []string{"bob"}, "hello", false, time.Now())
	req.NoError(s.Append(message))

	got, err := s.Message(message.ID)
	req.NoError(err)
	got.Content = "tampered"
	got.Recipients[0] = "mallory"

	again, err := s.Message(message.ID)
	req.NoError(err)
	req.Equal("hello", again.Content)
	req.Equal([]string{"bob"}, again.Recipients)
}

func TestMessageStore_Append_AssignsReceiptSequence(t *testing.T) {
	req := require.New(t)
	s := NewMessageStore()

	// Given messages appended from many goroutines
	const count = 50
	errs := make(chan error, count)
	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.Append(domain.NewDirectMessage("alice", []string{"bob"}, "hi", false, time.Now()))
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		req.NoError(err)
	}

	// Then the inbox is strictly ordered by sequence, without gaps
	inbox := s.Inbox("bob")
	req.Len(inbox, count)
	for i, message := range inbox {
		req.Equal(uint64(i+1), message.Sequence)
	}
}

func TestMessageStore_MessageStateStopsAtSent(t *testing.T) {
	req := require.New(t)
	s := NewMessageStore()
	message := domain.NewChannelMessage("alice", "general", []string{"bob"}, "hello", false, time.Now())
	req.NoError(s.Append(message))

	// Given an appended message, still CREATED on the sender side
	stored, err := s.Message(message.ID)
	req.NoError(err)
	req.Equal(domain.StateCreated, stored.State)

	// When it is accepted and then read by its recipient
	_, err = s.Accept(message.ID, time.Now())
	req.NoError(err)
	_, _, err = s.Advance(message.ID, "bob", domain.StateRead, time.Now())
	req.NoError(err)

	// Then the message keeps the sender-side SENT state
	stored, err = s.Message(message.ID)
	req.NoError(err)
	req.Equal(domain.StateSent, stored.State)

	// And the recipient progress lives on the record
	record, err := s.Record(message.ID, "bob")
	req.NoError(err)
	req.Equal(domain.StateRead, record.State)
}
