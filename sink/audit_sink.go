package sink

import (
	"context"
	"fmt"
	"log/slog"
	"messenger-lab/domain"
	"messenger-lab/domain/event"
	"messenger-lab/repositories"
)

// AuditSink copies lifecycle events into the audit repository.
type AuditSink struct {
	repository repositories.IMessageRepository
	log        *slog.Logger
}

func NewAuditSink(repository repositories.IMessageRepository, log *slog.Logger) AuditSink {
	return AuditSink{repository: repository, log: log}
}

func (a AuditSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.MessagePublished:
		if err := a.repository.StoreMessage(toDiskMessage(evt.Message)); err != nil {
			return fmt.Errorf("auditing message %s: %w", evt.Message.ID, err)
		}
		for _, recipientID := range evt.Message.Recipients {
			record := domain.NewDeliveryRecord(evt.Message.ID, recipientID)
			record.Advance(evt.Message.State, evt.At)
			if err := a.repository.StoreRecord(toDiskRecord(record)); err != nil {
				return err
			}
		}
		return nil
	case event.MessageDelivered:
		return a.repository.StoreRecord(toDiskRecord(evt.Record))
	case event.MessageRead:
		return a.repository.StoreRecord(toDiskRecord(evt.Record))
	default:
		a.log.Debug(fmt.Sprintf("Not audited event : %T", evt))
		return nil
	}
}

// Scope groups audited messages: the channel for broadcasts, "@sender" for direct messages.
func Scope(message domain.Message) string {
	if message.Kind == domain.KindDirect {
		return "@" + message.SenderID
	}
	return string(message.Channel)
}

func toDiskMessage(message domain.Message) repositories.DiskMessage {
	return repositories.DiskMessage{
		ID:         message.ID,
		Scope:      Scope(message),
		Author:     message.SenderID,
		Recipients: message.Recipients,
		Content:    message.Content,
		Encrypted:  message.Encrypted,
		At:         message.CreatedAt,
	}
}

func toDiskRecord(record domain.DeliveryRecord) repositories.DiskRecord {
	return repositories.DiskRecord{
		MessageID:   record.MessageID,
		RecipientID: record.RecipientID,
		State:       record.State.String(),
		SentAt:      record.SentAt,
		DeliveredAt: record.DeliveredAt,
		ReadAt:      record.ReadAt,
	}
}
