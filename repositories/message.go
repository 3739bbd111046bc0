//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// IMessageRepository is the audit log of published messages and of the
// latest delivery state of each (message, recipient) pair.
type IMessageRepository interface {
	StoreMessage(message DiskMessage) error
	StoreRecord(record DiskRecord) error
	GetMessages(scope string, cursor *string) ([]DiskMessage, *string, error)
	GetRecords(messageID uuid.UUID) ([]DiskRecord, error)
}

type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
	enc           cbor.EncMode
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) (MessageRepository, error) {
	enc, err := cbor.EncOptions{Time: cbor.TimeRFC3339Nano}.EncMode()
	if err != nil {
		return MessageRepository{}, err
	}
	return MessageRepository{db: db, log: log, limitMessages: limitMessages, enc: enc}, nil
}

// DiskMessage is the audit representation of a message.
// Scope is the channel name for broadcasts and "@" + sender for direct messages.
type DiskMessage struct {
	ID         uuid.UUID
	Scope      string
	Author     string
	Recipients []string
	Content    string
	Encrypted  bool
	At         time.Time
}

type DiskRecord struct {
	MessageID   uuid.UUID
	RecipientID string
	State       string
	SentAt      time.Time
	DeliveredAt time.Time
	ReadAt      time.Time
}

type diskMessage struct {
	ID         string    `cbor:"1,keyasint"`
	Scope      string    `cbor:"2,keyasint"`
	Author     string    `cbor:"3,keyasint"`
	Recipients []string  `cbor:"4,keyasint,omitempty"`
	Content    string    `cbor:"5,keyasint"`
	Encrypted  bool      `cbor:"6,keyasint,omitempty"`
	At         time.Time `cbor:"7,keyasint"`
}

type diskRecord struct {
	MessageID   string    `cbor:"1,keyasint"`
	RecipientID string    `cbor:"2,keyasint"`
	State       string    `cbor:"3,keyasint"`
	SentAt      time.Time `cbor:"4,keyasint"`
	DeliveredAt time.Time `cbor:"5,keyasint"`
	ReadAt      time.Time `cbor:"6,keyasint"`
}

// StoreMessage persists a message.
// The key is formatted as "msg:{scope}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two messages
//     arrive at the same nanosecond.
//
// The scope is URL-escaped so a ':' in a channel name can't break prefix scans.
func (m MessageRepository) StoreMessage(message DiskMessage) error {
	key := fmt.Sprintf("%s%019d:%s", messagePrefix(message.Scope), message.At.UnixNano(), message.ID)
	bytes, err := m.enc.Marshal(lo.ToPtr(fromDiskMessage(message)))
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// StoreRecord overwrites the latest known state of a (message, recipient) pair.
func (m MessageRepository) StoreRecord(record DiskRecord) error {
	key := recordPrefix(record.MessageID) + url.QueryEscape(record.RecipientID)
	bytes, err := m.enc.Marshal(lo.ToPtr(fromDiskRecord(record)))
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetMessages retrieves the messages of a scope, newest first, using a reverse prefix scan.
// The returned cursor is the key suffix of the last message read; passing it back continues
// with older messages. It stops collecting messages once limitMessages is reached.
func (m MessageRepository) GetMessages(scope string, cursor *string) ([]DiskMessage, *string, error) {
	var byteMessages [][]byte
	var lastKey string
	err := m.db.View(func(txn *badger.Txn) error {
		prefixStr := messagePrefix(scope)
		prefix := []byte(prefixStr)
		prefixLen := len(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Highest possible timestamp, then walk back in time
			seekKey = append([]byte(prefixStr), []byte("9999999999999999999")...)
		default:
			seekKey = append([]byte(prefixStr), []byte(*cursor)...)
		}

		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if m.limitMessages != nil && len(byteMessages) == *m.limitMessages {
				m.log.Debug(fmt.Sprintf("Maximum of %d message reached", *m.limitMessages))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[prefixLen:])
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			byteMessages = append(byteMessages, value)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	diskMessages := make([]DiskMessage, 0, len(byteMessages))
	for _, b := range byteMessages {
		var dm diskMessage
		if err = cbor.Unmarshal(b, &dm); err != nil {
			return nil, nil, err
		}
		message, err := toDiskMessage(dm)
		if err != nil {
			return nil, nil, err
		}
		diskMessages = append(diskMessages, message)
	}
	return diskMessages, &lastKey, nil
}

// GetRecords returns the records of a message ordered by recipient ID.
func (m MessageRepository) GetRecords(messageID uuid.UUID) ([]DiskRecord, error) {
	var records []DiskRecord
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(recordPrefix(messageID))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var dr diskRecord
				if err := cbor.Unmarshal(value, &dr); err != nil {
					return err
				}
				record, err := toDiskRecord(dr)
				if err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return records, err
}

func messagePrefix(scope string) string {
	return fmt.Sprintf("msg:%s:", url.QueryEscape(scope))
}

func recordPrefix(messageID uuid.UUID) string {
	return fmt.Sprintf("rcpt:%s:", messageID)
}

func fromDiskMessage(message DiskMessage) diskMessage {
	return diskMessage{
		ID:         message.ID.String(),
		Scope:      message.Scope,
		Author:     message.Author,
		Recipients: message.Recipients,
		Content:    message.Content,
		Encrypted:  message.Encrypted,
		At:         message.At.UTC(),
	}
}

func toDiskMessage(dm diskMessage) (DiskMessage, error) {
	parsedID, err := uuid.Parse(dm.ID)
	if err != nil {
		return DiskMessage{}, err
	}
	return DiskMessage{
		ID:         parsedID,
		Scope:      dm.Scope,
		Author:     dm.Author,
		Recipients: dm.Recipients,
		Content:    dm.Content,
		Encrypted:  dm.Encrypted,
		At:         dm.At.UTC(),
	}, nil
}

func fromDiskRecord(record DiskRecord) diskRecord {
	return diskRecord{
		MessageID:   record.MessageID.String(),
		RecipientID: record.RecipientID,
		State:       record.State,
		SentAt:      record.SentAt.UTC(),
		DeliveredAt: record.DeliveredAt.UTC(),
		ReadAt:      record.ReadAt.UTC(),
	}
}

func toDiskRecord(dr diskRecord) (DiskRecord, error) {
	parsedID, err := uuid.Parse(dr.MessageID)
	if err != nil {
		return DiskRecord{}, err
	}
	return DiskRecord{
		MessageID:   parsedID,
		RecipientID: dr.RecipientID,
		State:       dr.State,
		SentAt:      dr.SentAt.UTC(),
		DeliveredAt: dr.DeliveredAt.UTC(),
		ReadAt:      dr.ReadAt.UTC(),
	}, nil
}
