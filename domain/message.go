// Package domain contains core concepts of the messaging engine.
// This file defines Message records and their kinds.
// Content is immutable once a message has been created.
package domain

import (
	"time"

	"github.com/google/uuid"
)

type MessageKind int

const (
	// KindChannel is a message broadcast to the subscribers of a channel.
	KindChannel MessageKind = iota
	// KindDirect is a message addressed to explicit recipients.
	KindDirect
)

func (k MessageKind) String() string {
	switch k {
	case KindChannel:
		return "channel"
	case KindDirect:
		return "direct"
	default:
		return "unknown"
	}
}

// Message represents a published chat message.
// Recipients are kept in delivery attempt order.
//
// State is the sender-side state: CREATED until the pipeline accepts the
// message, SENT afterwards. It never moves past SENT; delivery and read
// progress is tracked per recipient by DeliveryRecord.
type Message struct {
	ID         uuid.UUID // unique identifier
	Kind       MessageKind
	Channel    ChannelID // empty for direct messages
	SenderID   string
	Recipients []string
	Content    string
	CreatedAt  time.Time
	State      DeliveryState
	Encrypted  bool
	Sequence   uint64 // receipt order, assigned by the store on append
}

func NewChannelMessage(senderID string, channel ChannelID, recipients []string, content string, encrypted bool, at time.Time) Message {
	return Message{
		ID:         uuid.New(),
		Kind:       KindChannel,
		Channel:    channel,
		SenderID:   senderID,
		Recipients: recipients,
		Content:    content,
		CreatedAt:  at,
		State:      StateCreated,
		Encrypted:  encrypted,
	}
}

func NewDirectMessage(senderID string, recipients []string, content string, encrypted bool, at time.Time) Message {
	return Message{
		ID:         uuid.New(),
		Kind:       KindDirect,
		SenderID:   senderID,
		Recipients: recipients,
		Content:    content,
		CreatedAt:  at,
		State:      StateCreated,
		Encrypted:  encrypted,
	}
}

// Clone returns a copy that does not share the recipients slice.
func (m Message) Clone() Message {
	c := m
	c.Recipients = append([]string(nil), m.Recipients...)
	return c
}
