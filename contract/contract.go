//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"messenger-lab/domain"
	"messenger-lab/domain/event"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// PresenceObserver is notified synchronously on every presence update.
// Observers are identified by ==, or by value when their type is not comparable.
type PresenceObserver interface {
	OnPresenceChange(participantID string, online bool)
}

type IPresenceRegistry interface {
	SetPresence(participantID string, online bool)
	IsOnline(participantID string) bool
	Presence(participantID string) domain.PresenceState
	Subscribe(observer PresenceObserver)
	Unsubscribe(observer PresenceObserver)
}

type IChannelDirectory interface {
	Subscribe(participantID string, channel domain.ChannelID)
	Unsubscribe(participantID string, channel domain.ChannelID)
	Subscribers(channel domain.ChannelID) []string
}
