package runtime

import (
	"messenger-lab/domain"
	"slices"
	"sync"

	"github.com/samber/lo"
)

// Directory maps channels to the participants subscribed to them and keeps
// the identities of participants that joined the engine.
type Directory struct {
	mu             sync.RWMutex
	participants   map[string]domain.Participant
	channelMembers map[domain.ChannelID]domain.Set
}

func NewDirectory() *Directory {
	return &Directory{
		participants:   make(map[string]domain.Participant),
		channelMembers: make(map[domain.ChannelID]domain.Set),
	}
}

// Join records a participant identity. Joining twice with the same ID keeps the first identity.
func (d *Directory) Join(participant domain.Participant) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.participants[participant.ID]; ok {
		return
	}
	d.participants[participant.ID] = participant
}

func (d *Directory) Participant(participantID string) (domain.Participant, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	p, ok := d.participants[participantID]
	return p, ok
}

// Subscribe adds a participant to a channel, creating the channel on the fly.
// Subscribing twice has no further effect.
func (d *Directory) Subscribe(participantID string, channel domain.ChannelID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.channelMembers[channel]; !ok {
		d.channelMembers[channel] = make(domain.Set)
	}
	d.channelMembers[channel][participantID] = struct{}{}
}

// Unsubscribe removes a participant from a channel.
// Empty channels are dropped so the map doesn't grow forever.
func (d *Directory) Unsubscribe(participantID string, channel domain.ChannelID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if members, ok := d.channelMembers[channel]; ok {
		delete(members, participantID)

		if len(members) == 0 {
			delete(d.channelMembers, channel)
		}
	}
}

// Subscribers returns a sorted snapshot of the channel members.
// The snapshot is detached from the directory: later (un)subscriptions don't change it.
// An unknown channel yields an empty slice.
func (d *Directory) Subscribers(channel domain.ChannelID) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	members := lo.Keys(d.channelMembers[channel])
	slices.Sort(members)
	return members
}

// Channels lists the channels a participant is subscribed to, sorted.
func (d *Directory) Channels(participantID string) []domain.ChannelID {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var channels []domain.ChannelID
	for channel, members := range d.channelMembers {
		if _, ok := members[participantID]; ok {
			channels = append(channels, channel)
		}
	}
	slices.Sort(channels)
	return channels
}
