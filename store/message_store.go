// Package store keeps the canonical, append-only record of messages and
// their per-recipient delivery state.
package store

import (
	"messenger-lab/domain"
	"messenger-lab/errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// MessageStore is safe for concurrent use. Messages and records are never
// deleted; only the lifecycle fields of records move forward.
// Every read returns copies so callers can't mutate the canonical state.
type MessageStore struct {
	mu       sync.RWMutex
	messages map[uuid.UUID]*domain.Message
	records  map[uuid.UUID]map[string]*domain.DeliveryRecord
	inbox    map[string][]uuid.UUID // recipient -> messages in receipt order
	outbox   map[string][]uuid.UUID // sender -> messages in publish order
	history  map[domain.ChannelID][]uuid.UUID
	sequence uint64
}

func NewMessageStore() *MessageStore {
	return &MessageStore{
		messages: make(map[uuid.UUID]*domain.Message),
		records:  make(map[uuid.UUID]map[string]*domain.DeliveryRecord),
		inbox:    make(map[string][]uuid.UUID),
		outbox:   make(map[string][]uuid.UUID),
		history:  make(map[domain.ChannelID][]uuid.UUID),
	}
}

// Append stores a new message and creates one CREATED record per distinct recipient.
// The stored message gets the next receipt sequence, so inbox order and
// sequence order are the same.
func (s *MessageStore) Append(message domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.messages[message.ID]; ok {
		return errors.ErrDuplicateMessage
	}
	s.sequence++
	stored := message.Clone()
	stored.Recipients = lo.Uniq(stored.Recipients)
	stored.Sequence = s.sequence
	s.messages[stored.ID] = &stored

	records := make(map[string]*domain.DeliveryRecord, len(stored.Recipients))
	for _, recipientID := range stored.Recipients {
		record := domain.NewDeliveryRecord(stored.ID, recipientID)
		records[recipientID] = &record
		s.inbox[recipientID] = append(s.inbox[recipientID], stored.ID)
	}
	s.records[stored.ID] = records
	s.outbox[stored.SenderID] = append(s.outbox[stored.SenderID], stored.ID)
	if stored.Kind == domain.KindChannel {
		s.history[stored.Channel] = append(s.history[stored.Channel], stored.ID)
	}
	return nil
}

// Accept marks the message and all its records as SENT.
// The message state stays at SENT from then on.
func (s *MessageStore) Accept(messageID uuid.UUID, at time.Time) (domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	message, ok := s.messages[messageID]
	if !ok {
		return domain.Message{}, errors.ErrMessageNotFound
	}
	if message.State < domain.StateSent {
		message.State = domain.StateSent
	}
	for _, record := range s.records[messageID] {
		record.Advance(domain.StateSent, at)
	}
	return message.Clone(), nil
}

// Advance moves a record forward and returns the state it had before the call
// together with the updated record. Moving to a state already reached is a no-op.
func (s *MessageStore) Advance(messageID uuid.UUID, recipientID string, to domain.DeliveryState, at time.Time) (domain.DeliveryState, domain.DeliveryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.lookup(messageID, recipientID)
	if err != nil {
		return 0, domain.DeliveryRecord{}, err
	}
	previous := record.State
	record.Advance(to, at)
	return previous, *record, nil
}

func (s *MessageStore) Message(messageID uuid.UUID) (domain.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	message, ok := s.messages[messageID]
	if !ok {
		return domain.Message{}, errors.ErrMessageNotFound
	}
	return message.Clone(), nil
}

func (s *MessageStore) Record(messageID uuid.UUID, recipientID string) (domain.DeliveryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, err := s.lookup(messageID, recipientID)
	if err != nil {
		return domain.DeliveryRecord{}, err
	}
	return *record, nil
}

// Records returns the records of a message in delivery attempt order.
func (s *MessageStore) Records(messageID uuid.UUID) ([]domain.DeliveryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	message, ok := s.messages[messageID]
	if !ok {
		return nil, errors.ErrMessageNotFound
	}
	records := s.records[messageID]
	return lo.Map(message.Recipients, func(recipientID string, _ int) domain.DeliveryRecord {
		return *records[recipientID]
	}), nil
}

// Inbox returns the messages addressed to a participant in receipt order.
func (s *MessageStore) Inbox(participantID string) []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolve(s.inbox[participantID])
}

// Sent returns the messages published by a participant in publish order.
func (s *MessageStore) Sent(senderID string) []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolve(s.outbox[senderID])
}

func (s *MessageStore) ChannelHistory(channel domain.ChannelID) []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolve(s.history[channel])
}

// Pending returns, in receipt order, the messages whose record for this
// participant was sent but not delivered yet.
func (s *MessageStore) Pending(participantID string) []uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Filter(s.inbox[participantID], func(messageID uuid.UUID, _ int) bool {
		return s.records[messageID][participantID].State == domain.StateSent
	})
}

func (s *MessageStore) lookup(messageID uuid.UUID, recipientID string) (*domain.DeliveryRecord, error) {
	records, ok := s.records[messageID]
	if !ok {
		return nil, errors.ErrMessageNotFound
	}
	record, ok := records[recipientID]
	if !ok {
		return nil, errors.ErrRecipientNotFound
	}
	return record, nil
}

func (s *MessageStore) resolve(ids []uuid.UUID) []domain.Message {
	return lo.Map(ids, func(id uuid.UUID, _ int) domain.Message {
		return s.messages[id].Clone()
	})
}
