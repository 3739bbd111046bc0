// Package search answers keyword queries over the messages a participant received.
package search

import (
	"context"
	"log/slog"
	"messenger-lab/domain"
	"messenger-lab/errors"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// matcher finds, among candidate messages, the ones matching a keyword.
// Candidates are given in receipt order and the result must keep that order.
type matcher interface {
	add(message domain.Message) error
	match(ctx context.Context, candidates []domain.Message, keyword string) ([]domain.Message, error)
	close() error
}

// Index keeps, per participant, the messages received in receipt order.
// Receipt order is the message sequence, whatever the order Add is called in.
// It is updated incrementally at publish time and can be queried any number of times.
type Index struct {
	mu       sync.RWMutex
	log      *slog.Logger
	strategy Strategy
	matcher  matcher
	received map[string][]domain.Message
	known    map[uuid.UUID]struct{}
}

func NewIndex(strategy Strategy, log *slog.Logger) (*Index, error) {
	index := &Index{
		log:      log,
		strategy: strategy,
		received: make(map[string][]domain.Message),
		known:    make(map[uuid.UUID]struct{}),
	}
	switch strategy {
	case StrategyKeyword:
		index.matcher = keywordMatcher{}
	case StrategyFullText:
		m, err := newFullTextMatcher()
		if err != nil {
			return nil, err
		}
		index.matcher = m
	}
	return index, nil
}

func (i *Index) Strategy() Strategy { return i.strategy }

// Add indexes a message for each of its recipients. Adding the same message twice is a no-op.
func (i *Index) Add(message domain.Message) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if _, ok := i.known[message.ID]; ok {
		return nil
	}
	i.known[message.ID] = struct{}{}
	for _, recipientID := range lo.Uniq(message.Recipients) {
		i.received[recipientID] = insertByReceipt(i.received[recipientID], message.Clone())
	}
	if i.matcher == nil {
		return nil
	}
	return i.matcher.add(message)
}

// Search returns the messages received by the participant whose canonical content
// matches the keyword, in receipt order. An empty keyword matches nothing.
func (i *Index) Search(ctx context.Context, participantID, keyword string) ([]domain.Message, error) {
	if i.matcher == nil {
		return nil, errors.ErrSearchStrategyNotSet
	}
	if keyword == "" {
		return []domain.Message{}, nil
	}

	i.mu.RLock()
	candidates := lo.Map(i.received[participantID], func(m domain.Message, _ int) domain.Message {
		return m.Clone()
	})
	i.mu.RUnlock()

	if len(candidates) == 0 {
		return []domain.Message{}, nil
	}
	found, err := i.matcher.match(ctx, candidates, keyword)
	if err != nil {
		return nil, err
	}
	i.log.Debug("Search done", "participant", participantID, "strategy", i.strategy, "hits", len(found))
	return found, nil
}

// insertByReceipt keeps the list sorted by sequence. Equal sequences keep
// their insertion order.
func insertByReceipt(list []domain.Message, message domain.Message) []domain.Message {
	at := len(list)
	for at > 0 && list[at-1].Sequence > message.Sequence {
		at--
	}
	return slices.Insert(list, at, message)
}

func (i *Index) Close() error {
	if i.matcher == nil {
		return nil
	}
	return i.matcher.close()
}

type keywordMatcher struct{}

func (keywordMatcher) add(domain.Message) error { return nil }

func (keywordMatcher) match(_ context.Context, candidates []domain.Message, keyword string) ([]domain.Message, error) {
	return lo.Filter(candidates, func(m domain.Message, _ int) bool {
		return strings.Contains(m.Content, keyword)
	}), nil
}

func (keywordMatcher) close() error { return nil }
