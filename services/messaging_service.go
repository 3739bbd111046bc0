package services

import (
	"context"
	"fmt"
	"log/slog"
	"messenger-lab/domain"
	"messenger-lab/domain/event"
	"messenger-lab/errors"
	"messenger-lab/presence"
	"messenger-lab/runtime"
	"messenger-lab/search"
	"messenger-lab/store"
	"messenger-lab/transform"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type IMessagingService interface {
	Join(participant domain.Participant) error
	Participant(participantID string) (domain.Participant, bool)

	Publish(cmd domain.PublishCommand) (domain.Message, error)
	AppendDirect(cmd domain.DirectCommand) (domain.Message, error)
	Subscribe(participantID string, channel domain.ChannelID) error
	Unsubscribe(participantID string, channel domain.ChannelID) error
	Subscribers(channel domain.ChannelID) []string

	SetPresence(participantID string, online bool) error
	IsOnline(participantID string) bool
	Presence(participantID string) domain.PresenceState

	MarkDelivered(messageID uuid.UUID, recipientID string) error
	MarkRead(messageID uuid.UUID, recipientID string) error
	Flush(participantID string) int

	Search(ctx context.Context, participantID, keyword string) ([]domain.Message, error)
	View(messageID uuid.UUID) (transform.View, error)
	Records(messageID uuid.UUID) ([]domain.DeliveryRecord, error)
	Record(messageID uuid.UUID, recipientID string) (domain.DeliveryRecord, error)
	Inbox(participantID string) []domain.Message
	Outbox(participantID string) []domain.Message
	History(channel domain.ChannelID) []domain.Message
}

// MessagingService is the single entry point of the engine.
// It validates arguments and delegates; it holds no state of its own.
type MessagingService struct {
	log       *slog.Logger
	validate  *validator.Validate
	presence  *presence.Registry
	directory *runtime.Directory
	store     *store.MessageStore
	pipeline  *runtime.Pipeline
	index     *search.Index
}

// Options are fixed for the lifetime of the service.
type Options struct {
	SearchStrategy search.Strategy
	OfflinePolicy  runtime.OfflinePolicy
	// Encryption renders encrypted messages; nil means transform.Reverse.
	Encryption transform.Stage
	// ReadStages run on every view, before encryption.
	ReadStages []transform.Stage
	// Events receives lifecycle events when set.
	Events chan<- event.DomainEvent
}

// New builds every component, wires the pipeline as a presence observer
// and returns the facade over them.
func New(log *slog.Logger, opts Options) (*MessagingService, error) {
	index, err := search.NewIndex(opts.SearchStrategy, log)
	if err != nil {
		return nil, fmt.Errorf("building search index: %w", err)
	}
	registry := presence.NewRegistry(log)
	directory := runtime.NewDirectory()
	messageStore := store.NewMessageStore()

	pipelineOpts := []runtime.Option{
		runtime.WithOfflinePolicy(opts.OfflinePolicy),
		runtime.WithRenderer(transform.NewRenderer(opts.Encryption, opts.ReadStages...)),
	}
	if opts.Events != nil {
		pipelineOpts = append(pipelineOpts, runtime.WithEvents(opts.Events))
	}
	pipeline := runtime.NewPipeline(log, directory, registry, messageStore, index, pipelineOpts...)
	registry.Subscribe(pipeline)

	log.Info("Messaging service ready", "search", opts.SearchStrategy, "offline_policy", opts.OfflinePolicy)
	return NewMessagingService(log, registry, directory, messageStore, pipeline, index), nil
}

func NewMessagingService(log *slog.Logger, presence *presence.Registry, directory *runtime.Directory,
	store *store.MessageStore, pipeline *runtime.Pipeline, index *search.Index) *MessagingService {
	return &MessagingService{
		log:       log,
		validate:  validator.New(),
		presence:  presence,
		directory: directory,
		store:     store,
		pipeline:  pipeline,
		index:     index,
	}
}

func (s *MessagingService) Join(participant domain.Participant) error {
	if err := s.check(participant); err != nil {
		return err
	}
	s.directory.Join(participant)
	return nil
}

func (s *MessagingService) Participant(participantID string) (domain.Participant, bool) {
	return s.directory.Participant(participantID)
}

func (s *MessagingService) Publish(cmd domain.PublishCommand) (domain.Message, error) {
	if err := s.check(cmd); err != nil {
		return domain.Message{}, err
	}
	return s.pipeline.Publish(cmd)
}

func (s *MessagingService) AppendDirect(cmd domain.DirectCommand) (domain.Message, error) {
	if err := s.check(cmd); err != nil {
		return domain.Message{}, err
	}
	return s.pipeline.AppendDirect(cmd)
}

func (s *MessagingService) Subscribe(participantID string, channel domain.ChannelID) error {
	if err := s.checkMembership(participantID, channel); err != nil {
		return err
	}
	s.directory.Subscribe(participantID, channel)
	return nil
}

func (s *MessagingService) Unsubscribe(participantID string, channel domain.ChannelID) error {
	if err := s.checkMembership(participantID, channel); err != nil {
		return err
	}
	s.directory.Unsubscribe(participantID, channel)
	return nil
}

func (s *MessagingService) Subscribers(channel domain.ChannelID) []string {
	return s.directory.Subscribers(channel)
}

func (s *MessagingService) SetPresence(participantID string, online bool) error {
	if err := s.checkVar(participantID, "participantID"); err != nil {
		return err
	}
	s.presence.SetPresence(participantID, online)
	return nil
}

func (s *MessagingService) IsOnline(participantID string) bool {
	return s.presence.IsOnline(participantID)
}

func (s *MessagingService) Presence(participantID string) domain.PresenceState {
	return s.presence.Presence(participantID)
}

func (s *MessagingService) MarkDelivered(messageID uuid.UUID, recipientID string) error {
	return s.pipeline.MarkDelivered(messageID, recipientID)
}

func (s *MessagingService) MarkRead(messageID uuid.UUID, recipientID string) error {
	return s.pipeline.MarkRead(messageID, recipientID)
}

func (s *MessagingService) Flush(participantID string) int {
	return s.pipeline.Flush(participantID)
}

// Search fails with ErrSearchStrategyNotSet when no strategy was configured.
func (s *MessagingService) Search(ctx context.Context, participantID, keyword string) ([]domain.Message, error) {
	if s.index == nil {
		return nil, errors.ErrSearchStrategyNotSet
	}
	return s.index.Search(ctx, participantID, keyword)
}

func (s *MessagingService) View(messageID uuid.UUID) (transform.View, error) {
	return s.pipeline.View(messageID)
}

func (s *MessagingService) Records(messageID uuid.UUID) ([]domain.DeliveryRecord, error) {
	return s.store.Records(messageID)
}

func (s *MessagingService) Record(messageID uuid.UUID, recipientID string) (domain.DeliveryRecord, error) {
	return s.store.Record(messageID, recipientID)
}

func (s *MessagingService) Inbox(participantID string) []domain.Message {
	return s.store.Inbox(participantID)
}

func (s *MessagingService) Outbox(participantID string) []domain.Message {
	return s.store.Sent(participantID)
}

func (s *MessagingService) History(channel domain.ChannelID) []domain.Message {
	return s.store.ChannelHistory(channel)
}

// Close detaches the pipeline from presence updates and releases the search index.
func (s *MessagingService) Close() error {
	s.presence.Unsubscribe(s.pipeline)
	if s.index == nil {
		return nil
	}
	return s.index.Close()
}

func (s *MessagingService) check(value any) error {
	if err := s.validate.Struct(value); err != nil {
		s.log.Debug("Invalid argument", "type", fmt.Sprintf("%T", value), "error", err)
		return fmt.Errorf("%w: %w", errors.ErrInvalidArgument, err)
	}
	return nil
}

func (s *MessagingService) checkVar(value, name string) error {
	if err := s.validate.Var(value, "required"); err != nil {
		return fmt.Errorf("%w: %s: %w", errors.ErrInvalidArgument, name, err)
	}
	return nil
}

func (s *MessagingService) checkMembership(participantID string, channel domain.ChannelID) error {
	if err := s.checkVar(participantID, "participantID"); err != nil {
		return err
	}
	return s.checkVar(string(channel), "channel")
}
