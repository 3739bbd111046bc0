package runtime

import (
	"fmt"
	"messenger-lab/errors"
	"strings"
)

// OfflinePolicy decides what happens to channel broadcasts addressed to an offline recipient.
// Direct messages are delivered whatever the policy.
type OfflinePolicy int

const (
	// PushOnReconnect keeps the record at SENT and delivers it as soon as the recipient comes online.
	PushOnReconnect OfflinePolicy = iota
	// Drop keeps the record at SENT; reconnecting doesn't deliver it.
	Drop
)

func (p OfflinePolicy) String() string {
	switch p {
	case PushOnReconnect:
		return "push-on-reconnect"
	case Drop:
		return "drop"
	default:
		return "unknown"
	}
}

func ParseOfflinePolicy(value string) (OfflinePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "push-on-reconnect", "push":
		return PushOnReconnect, nil
	case "drop":
		return Drop, nil
	default:
		return PushOnReconnect, fmt.Errorf("%w: %q", errors.ErrUnknownOfflinePolicy, value)
	}
}
