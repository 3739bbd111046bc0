package workers

import (
	"context"
	"fmt"
	"log/slog"
	"messenger-lab/contract"
	"messenger-lab/domain/event"
	"messenger-lab/mocks"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventFanout_Fanout(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	first := mocks.NewMockEventSink(ctrl)
	second := mocks.NewMockEventSink(ctrl)
	evt := event.PresenceChanged{ParticipantID: "bob", Online: true, At: time.Now()}

	// Then both sinks consume the event once, the failing one not blocking the other
	first.EXPECT().Consume(gomock.Any(), evt).Return(nil).Times(1)
	second.EXPECT().Consume(gomock.Any(), evt).Return(fmt.Errorf("disk full")).Times(1)

	fanout := NewEventFanout(log, nil, time.Second, first, second)

	// When an event is fanned out
	fanout.Fanout(context.Background(), evt)
}

func TestEventFanout_SinkTimeout(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	slow := mocks.NewMockEventSink(ctrl)

	// Given a sink honoring its context
	slow.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ event.DomainEvent) error {
			<-ctx.Done()
			return ctx.Err()
		}).Times(1)

	fanout := NewEventFanout(log, nil, 50*time.Millisecond, slow)

	// When the sink is slower than the timeout
	start := time.Now()
	fanout.Fanout(context.Background(), event.PresenceChanged{ParticipantID: "bob"})

	// Then the fanout gives up after the timeout
	req.Less(time.Since(start), time.Second)
}

func TestEventFanout_Run_StopsWhenChannelCloses(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sink := mocks.NewMockEventSink(ctrl)
	events := make(chan event.DomainEvent, 2)

	sink.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	events <- event.PresenceChanged{ParticipantID: "alice", Online: true}
	events <- event.PresenceChanged{ParticipantID: "alice", Online: false}
	close(events)

	var sinks []contract.EventSink
	sinks = append(sinks, sink)
	err := NewEventFanout(slog.Default(), events, time.Second, sinks...).Run(context.Background())

	req.NoError(err)
}

func TestEventFanout_Run_StopsOnContextDone(t *testing.T) {
	req := require.New(t)
	events := make(chan event.DomainEvent)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewEventFanout(slog.Default(), events, time.Second).Run(ctx)

	req.NoError(err)
}
