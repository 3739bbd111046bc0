// Package runtime routes published messages to their recipients.
// It orchestrates the directory, presence, store and index without owning their state.
package runtime

import (
	"fmt"
	"log/slog"
	"messenger-lab/contract"
	"messenger-lab/domain"
	"messenger-lab/domain/event"
	"messenger-lab/transform"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// MessageStore is the part of the store the pipeline writes to.
type MessageStore interface {
	Append(message domain.Message) error
	Accept(messageID uuid.UUID, at time.Time) (domain.Message, error)
	Advance(messageID uuid.UUID, recipientID string, to domain.DeliveryState, at time.Time) (domain.DeliveryState, domain.DeliveryRecord, error)
	Message(messageID uuid.UUID) (domain.Message, error)
	Pending(participantID string) []uuid.UUID
}

// Indexer is fed with every accepted message.
type Indexer interface {
	Add(message domain.Message) error
}

type Option func(*Pipeline)

func WithOfflinePolicy(policy OfflinePolicy) Option {
	return func(p *Pipeline) { p.policy = policy }
}

// WithEvents makes the pipeline emit domain events on the given channel.
// Emission never blocks: when the channel is full the event is dropped.
func WithEvents(events chan<- event.DomainEvent) Option {
	return func(p *Pipeline) { p.events = events }
}

func WithRenderer(renderer transform.Renderer) Option {
	return func(p *Pipeline) { p.renderer = renderer }
}

func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// Pipeline accepts messages, fans them out to a snapshot of the recipients
// and moves delivery records forward. Every call completes all its state
// changes before returning.
type Pipeline struct {
	log       *slog.Logger
	directory contract.IChannelDirectory
	presence  contract.IPresenceRegistry
	store     MessageStore
	index     Indexer
	policy    OfflinePolicy
	renderer  transform.Renderer
	events    chan<- event.DomainEvent
	now       func() time.Time
}

func NewPipeline(log *slog.Logger, directory contract.IChannelDirectory, presence contract.IPresenceRegistry,
	store MessageStore, index Indexer, opts ...Option) *Pipeline {
	p := &Pipeline{
		log:       log,
		directory: directory,
		presence:  presence,
		store:     store,
		index:     index,
		policy:    PushOnReconnect,
		renderer:  transform.NewRenderer(nil),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Pipeline) Policy() OfflinePolicy { return p.policy }

// Publish broadcasts to the channel subscribers as they are at call time, the sender excluded.
// Offline subscribers keep a SENT record; what happens next depends on the offline policy.
func (p *Pipeline) Publish(cmd domain.PublishCommand) (domain.Message, error) {
	recipients := lo.Without(p.directory.Subscribers(cmd.Channel), cmd.SenderID)
	message := domain.NewChannelMessage(cmd.SenderID, cmd.Channel, recipients, cmd.Content, cmd.Encrypted, p.now())
	return p.dispatch(message, true)
}

// AppendDirect sends to explicit recipients. Presence is not evaluated.
func (p *Pipeline) AppendDirect(cmd domain.DirectCommand) (domain.Message, error) {
	message := domain.NewDirectMessage(cmd.SenderID, lo.Uniq(cmd.RecipientIDs), cmd.Content, cmd.Encrypted, p.now())
	return p.dispatch(message, false)
}

func (p *Pipeline) dispatch(message domain.Message, checkPresence bool) (domain.Message, error) {
	if err := p.store.Append(message); err != nil {
		return domain.Message{}, fmt.Errorf("appending message %s: %w", message.ID, err)
	}
	// Records exist before presence is checked: a recipient coming online
	// in between is caught by the reconnect flush.
	accepted, err := p.store.Accept(message.ID, p.now())
	if err != nil {
		return domain.Message{}, fmt.Errorf("accepting message %s: %w", message.ID, err)
	}
	if err = p.index.Add(accepted); err != nil {
		p.log.Warn("Message not indexed", "message", accepted.ID, "error", err)
	}
	p.emit(event.MessagePublished{Message: accepted, At: p.now()})

	for _, recipientID := range accepted.Recipients {
		if checkPresence && !p.presence.IsOnline(recipientID) {
			p.log.Debug("Recipient offline, delivery deferred",
				"message", accepted.ID, "recipient", recipientID, "policy", p.policy)
			continue
		}
		if err = p.MarkDelivered(accepted.ID, recipientID); err != nil {
			return accepted, err
		}
	}
	return accepted, nil
}

// MarkDelivered moves the record to DELIVERED. It is a no-op once delivered or read.
func (p *Pipeline) MarkDelivered(messageID uuid.UUID, recipientID string) error {
	_, err := p.deliver(messageID, recipientID)
	return err
}

// deliver reports whether this call is the one that moved the record to DELIVERED.
func (p *Pipeline) deliver(messageID uuid.UUID, recipientID string) (bool, error) {
	at := p.now()
	previous, record, err := p.store.Advance(messageID, recipientID, domain.StateDelivered, at)
	if err != nil {
		return false, fmt.Errorf("marking %s delivered to %s: %w", messageID, recipientID, err)
	}
	if previous >= domain.StateDelivered {
		p.log.Debug("Already delivered", "message", messageID, "recipient", recipientID, "state", previous)
		return false, nil
	}
	p.emit(event.MessageDelivered{Record: record, At: at})
	return true, nil
}

// MarkRead moves the record to READ, passing through DELIVERED when needed
// so that a read record is always a delivered one.
func (p *Pipeline) MarkRead(messageID uuid.UUID, recipientID string) error {
	at := p.now()
	previous, record, err := p.store.Advance(messageID, recipientID, domain.StateRead, at)
	if err != nil {
		return fmt.Errorf("marking %s read by %s: %w", messageID, recipientID, err)
	}
	if previous >= domain.StateRead {
		return nil
	}
	if previous < domain.StateDelivered {
		p.emit(event.MessageDelivered{Record: record, At: at})
	}
	p.emit(event.MessageRead{Record: record, At: at})
	return nil
}

// Flush delivers every SENT record of the participant and returns how many
// records this call moved to DELIVERED. Records delivered or read concurrently
// are not counted. Under the Drop policy nothing is delivered.
func (p *Pipeline) Flush(participantID string) int {
	if p.policy == Drop {
		return 0
	}
	delivered := 0
	for _, messageID := range p.store.Pending(participantID) {
		moved, err := p.deliver(messageID, participantID)
		if err != nil {
			p.log.Warn("Pending delivery failed", "message", messageID, "recipient", participantID, "error", err)
			continue
		}
		if moved {
			delivered++
		}
	}
	if delivered > 0 {
		p.log.Debug("Pending messages flushed", "recipient", participantID, "count", delivered)
	}
	return delivered
}

// OnPresenceChange makes the pipeline a presence observer.
func (p *Pipeline) OnPresenceChange(participantID string, online bool) {
	p.emit(event.PresenceChanged{ParticipantID: participantID, Online: online, At: p.now()})
	if online {
		p.Flush(participantID)
	}
}

// View renders the message for a reader. The stored message is never modified.
func (p *Pipeline) View(messageID uuid.UUID) (transform.View, error) {
	message, err := p.store.Message(messageID)
	if err != nil {
		return transform.View{}, err
	}
	return p.renderer.Render(message), nil
}

func (p *Pipeline) emit(evt event.DomainEvent) {
	if p.events == nil {
		return
	}
	select {
	case p.events <- evt:
	default:
		p.log.Warn(fmt.Sprintf("Event channel full, dropping %T", evt))
	}
}
