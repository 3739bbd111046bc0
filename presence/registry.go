// Package presence tracks whether participants are online and tells
// registered observers about every change.
package presence

import (
	"log/slog"
	"messenger-lab/contract"
	"messenger-lab/domain"
	"reflect"
	"slices"
	"sync"
	"time"

	"github.com/samber/lo"
)

type Registry struct {
	mu        sync.RWMutex
	log       *slog.Logger
	states    map[string]domain.PresenceState
	observers []contract.PresenceObserver
	now       func() time.Time
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		log:    log,
		states: make(map[string]domain.PresenceState),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// SetPresence replaces the participant state as a whole and then notifies
// every observer registered at the time of the call, outside the lock.
// Observers subscribing or unsubscribing during notification do not
// affect the current round.
func (r *Registry) SetPresence(participantID string, online bool) {
	r.mu.Lock()
	r.states[participantID] = domain.PresenceState{
		ParticipantID: participantID,
		Online:        online,
		LastSeen:      r.now(),
	}
	observers := slices.Clone(r.observers)
	r.mu.Unlock()

	r.log.Debug("Presence updated", "participant", participantID, "online", online)
	for _, observer := range observers {
		observer.OnPresenceChange(participantID, online)
	}
}

// IsOnline is false for unknown participants.
func (r *Registry) IsOnline(participantID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.states[participantID].Online
}

func (r *Registry) Presence(participantID string) domain.PresenceState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	state, ok := r.states[participantID]
	if !ok {
		return domain.PresenceState{ParticipantID: participantID}
	}
	return state
}

// Online returns the IDs of every participant currently online, in no particular order.
func (r *Registry) Online() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.FilterMap(lo.Values(r.states), func(s domain.PresenceState, _ int) (string, bool) {
		return s.ParticipantID, s.Online
	})
}

// Subscribe registers the observer once; subscribing it again is a no-op.
func (r *Registry) Subscribe(observer contract.PresenceObserver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(observer) < 0 {
		r.observers = append(r.observers, observer)
	}
}

func (r *Registry) Unsubscribe(observer contract.PresenceObserver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if at := r.indexOf(observer); at >= 0 {
		r.observers = slices.Delete(r.observers, at, at+1)
	}
}

func (r *Registry) indexOf(observer contract.PresenceObserver) int {
	return slices.IndexFunc(r.observers, func(o contract.PresenceObserver) bool {
		return sameObserver(o, observer)
	})
}

// sameObserver compares comparable observers with == and the others by value,
// so that a struct holding a map or a slice never makes the registry panic.
// Func observers are never equal to anything.
func sameObserver(a, b contract.PresenceObserver) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta != nil && !ta.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}
