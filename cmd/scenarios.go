package main

import (
	"context"
	"fmt"
	"messenger-lab/domain"
	"messenger-lab/services"
	"messenger-lab/sink"

	"github.com/samber/lo"
)

const (
	alice   = "alice"
	bob     = "bob"
	general = domain.ChannelID("general")
)

type step struct {
	scenario string
	action   string
	outcome  string
}

type report struct {
	steps    []step
	messages []domain.Message
}

func (r *report) add(scenario, action, outcome string) {
	r.steps = append(r.steps, step{scenario: scenario, action: action, outcome: outcome})
}

// scopes lists the audit scopes touched by the published messages.
func (r *report) scopes() []string {
	return lo.Uniq(lo.Map(r.messages, func(m domain.Message, _ int) string {
		return sink.Scope(m)
	}))
}

func play(ctx context.Context, service services.IMessagingService) (report, error) {
	var r report
	for _, p := range []domain.Participant{{ID: alice, DisplayName: "Alice"}, {ID: bob, DisplayName: "Bob"}} {
		if err := service.Join(p); err != nil {
			return r, err
		}
	}
	for _, scenario := range []func(context.Context, services.IMessagingService, *report) error{
		channelBroadcast, encryptedDirect, offlineRecipient,
	} {
		if err := scenario(ctx, service, &r); err != nil {
			return r, err
		}
	}
	return r, nil
}

func channelBroadcast(ctx context.Context, service services.IMessagingService, r *report) error {
	const name = "channel broadcast"
	for _, id := range []string{alice, bob} {
		if err := service.Subscribe(id, general); err != nil {
			return err
		}
		if err := service.SetPresence(id, true); err != nil {
			return err
		}
	}
	message, err := service.Publish(domain.PublishCommand{SenderID: alice, Channel: general, Content: "Hello, world!"})
	if err != nil {
		return err
	}
	r.messages = append(r.messages, message)
	r.add(name, "alice publishes on #general", fmt.Sprintf("recipients %v", message.Recipients))
	r.add(name, "bob record", recordState(service, message, bob))
	r.add(name, "alice record", recordState(service, message, alice))

	found, err := service.Search(ctx, bob, "world")
	if err != nil {
		return err
	}
	r.add(name, `bob searches "world"`, fmt.Sprintf("%d hit(s)", len(found)))
	return nil
}

func encryptedDirect(ctx context.Context, service services.IMessagingService, r *report) error {
	const name = "encrypted direct"
	if err := service.SetPresence(alice, false); err != nil {
		return err
	}
	message, err := service.AppendDirect(domain.DirectCommand{
		SenderID:     bob,
		RecipientIDs: []string{alice},
		Content:      "Hi Alice, how are you?",
		Encrypted:    true,
	})
	if err != nil {
		return err
	}
	r.messages = append(r.messages, message)
	r.add(name, "bob writes to offline alice", recordState(service, message, alice))

	view, err := service.View(message.ID)
	if err != nil {
		return err
	}
	r.add(name, "alice view", view.Content)

	found, err := service.Search(ctx, alice, "Alice")
	if err != nil {
		return err
	}
	r.add(name, `alice searches "Alice"`, fmt.Sprintf("%d hit(s)", len(found)))
	if err = service.MarkRead(message.ID, alice); err != nil {
		return err
	}
	r.add(name, "alice reads", recordState(service, message, alice))
	return nil
}

func offlineRecipient(_ context.Context, service services.IMessagingService, r *report) error {
	const name = "offline recipient"
	if err := service.SetPresence(bob, false); err != nil {
		return err
	}
	message, err := service.Publish(domain.PublishCommand{SenderID: alice, Channel: general, Content: "Are you there?"})
	if err != nil {
		return err
	}
	r.messages = append(r.messages, message)
	r.add(name, "alice publishes, bob offline", recordState(service, message, bob))

	if err = service.SetPresence(bob, true); err != nil {
		return err
	}
	r.add(name, "bob reconnects", recordState(service, message, bob))
	return nil
}

func recordState(service services.IMessagingService, message domain.Message, recipientID string) string {
	record, err := service.Record(message.ID, recipientID)
	if err != nil {
		return fmt.Sprintf("no record (%v)", err)
	}
	return record.State.String()
}
