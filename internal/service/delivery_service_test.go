package service

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"skillswap-be/internal/dto"
	"skillswap-be/internal/pkg/logger"
	"skillswap-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type capturedSend struct {
	userId  uuid.UUID
	payload []byte
}

// recordingDelivery stands in for the WebSocket hub.
type recordingDelivery struct {
	sends chan capturedSend
}

func (r *recordingDelivery) Send(userID uuid.UUID, payload []byte) {
	r.sends <- capturedSend{userId: userID, payload: payload}
}

func TestCommittedTransitionReachesDelivery(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	publisher := NewPublisherService("NOTIFICATION_EVENTS", pubSub)
	sessions := NewSessionService(f.factory, publisher, f.clk, nil)

	sink := &recordingDelivery{sends: make(chan capturedSend, 8)}
	log := logger.NewZapLogger(filepath.Join(t.TempDir(), "app.log"), true)
	delivery := NewDeliveryService(pubSub, "NOTIFICATION_EVENTS", sink, nil, nil, log)
	require.NoError(t, delivery.Consume(ctx))

	_, err := sessions.Create(ctx, f.requester, &dto.CreateSessionRequestRequest{
		SkillId: f.skill.Id,
		Message: "hi",
	})
	require.NoError(t, err)

	select {
	case got := <-sink.sends:
		require.Equal(t, f.provider.UserId, got.userId)

		var event events.BaseEvent
		require.NoError(t, json.Unmarshal(got.payload, &event))
		require.Equal(t, "session_requested", event.Type)
		require.Equal(t, f.provider.UserId.String(), event.Data["user_id"])
		require.NotEmpty(t, event.Data["notification_id"])
	case <-time.After(5 * time.Second):
		t.Fatal("no delivery within deadline")
	}
}

func TestStreamEventRoutesToRecipient(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})

	sink := &recordingDelivery{sends: make(chan capturedSend, 1)}
	log := logger.NewZapLogger(filepath.Join(t.TempDir(), "app.log"), true)
	delivery := NewDeliveryService(pubSub, "NOTIFICATION_EVENTS", sink, nil, nil, log).(*deliveryService)

	// Events arriving off the stream carry the subject as their type.
	userId := uuid.New()
	incoming := events.NewEvent("events.session_accepted", map[string]interface{}{
		"user_id":         userId.String(),
		"notification_id": uuid.New().String(),
	}, time.Now().UTC())

	require.NoError(t, delivery.handleNatsEvent(context.Background(), incoming))

	select {
	case got := <-sink.sends:
		require.Equal(t, userId, got.userId)

		var event events.BaseEvent
		require.NoError(t, json.Unmarshal(got.payload, &event))
		require.Equal(t, "session_accepted", event.Type)
		require.Equal(t, userId.String(), event.Data["user_id"])
	case <-time.After(5 * time.Second):
		t.Fatal("no delivery within deadline")
	}
}

func TestDeliverySkipsMalformedEvents(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})

	sink := &recordingDelivery{sends: make(chan capturedSend, 1)}
	log := logger.NewZapLogger(filepath.Join(t.TempDir(), "app.log"), true)
	delivery := NewDeliveryService(pubSub, "NOTIFICATION_EVENTS", sink, nil, nil, log)
	require.NoError(t, delivery.Consume(context.Background()))

	raw := message.NewMessage(watermill.NewUUID(), []byte("not json"))
	require.NoError(t, pubSub.Publish("NOTIFICATION_EVENTS", raw))

	// A well-formed event published afterwards still arrives, so the consumer
	// survived the malformed one.
	userId := uuid.New()
	publisher := NewPublisherService("NOTIFICATION_EVENTS", pubSub)
	err := publisher.Publish(context.Background(), events.NewEvent("session_requested", map[string]interface{}{
		"user_id": userId.String(),
	}, time.Now().UTC()))
	require.NoError(t, err)

	select {
	case got := <-sink.sends:
		require.Equal(t, userId, got.userId)
	case <-time.After(5 * time.Second):
		t.Fatal("no delivery within deadline")
	}
}
