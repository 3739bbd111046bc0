package domain

import "time"

// PresenceState is the current presence of a participant.
// The zero value stands for an unknown participant, which is offline.
type PresenceState struct {
	ParticipantID string
	Online        bool
	LastSeen      time.Time
}
