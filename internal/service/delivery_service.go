package service

import (
	"context"
	"encoding/json"
	"strings"

	"skillswap-be/internal/pkg/logger"
	"skillswap-be/pkg/events"
	pktNats "skillswap-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// RealtimeDelivery pushes an event payload to a connected user. Implemented
// by the WebSocket hub.
type RealtimeDelivery interface {
	Send(userID uuid.UUID, payload []byte)
}

const natsDeliveryDurable = "delivery-worker"

type IDeliveryService interface {
	Consume(ctx context.Context) error
}

// deliveryService drains the in-process event bus and fans committed
// notification events out to WebSocket clients. When NATS is configured the
// local consumer hands each event off to the EVENTS stream instead of pushing
// directly; a shared durable consumer then delivers it exactly once across
// instances. Losing an event here loses a push, never the notification row.
type deliveryService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	delivery  RealtimeDelivery
	natsPub   *pktNats.Publisher
	natsSub   *pktNats.Subscriber
	logger    logger.ILogger
}

func NewDeliveryService(
	pubSub *gochannel.GoChannel,
	topicName string,
	delivery RealtimeDelivery,
	natsPub *pktNats.Publisher,
	natsSub *pktNats.Subscriber,
	log logger.ILogger,
) IDeliveryService {
	return &deliveryService{
		pubSub:    pubSub,
		topicName: topicName,
		delivery:  delivery,
		natsPub:   natsPub,
		natsSub:   natsSub,
		logger:    log,
	}
}

func (s *deliveryService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	if s.natsSub != nil {
		if err := s.natsSub.Subscribe("events.>", natsDeliveryDurable, s.handleNatsEvent); err != nil {
			return err
		}
	}

	return nil
}

func (s *deliveryService) processMessage(ctx context.Context, msg *message.Message) {
	var event events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		s.logger.Error("DeliveryService", "failed to unmarshal event", map[string]interface{}{"error": err.Error()})
		msg.Ack()
		return
	}

	if s.natsPub != nil && s.natsSub != nil {
		// Hand off to the stream; the durable consumer pushes, so a direct
		// push here would reach the user twice.
		if err := s.natsPub.Publish(ctx, event); err != nil {
			s.logger.Warn("DeliveryService", "failed to publish event to NATS, pushing locally", map[string]interface{}{
				"error": err.Error(),
				"type":  event.Type,
			})
			s.push(event.Data, msg.Payload)
		}
		msg.Ack()
		return
	}

	s.push(event.Data, msg.Payload)

	if s.natsPub != nil {
		if err := s.natsPub.Publish(ctx, event); err != nil {
			s.logger.Warn("DeliveryService", "failed to mirror event to NATS", map[string]interface{}{
				"error": err.Error(),
				"type":  event.Type,
			})
		}
	}

	msg.Ack()
}

// handleNatsEvent receives events from the EVENTS stream. The subject carries
// the "events." prefix; strip it so WebSocket clients see the same type as a
// locally pushed event.
func (s *deliveryService) handleNatsEvent(_ context.Context, event events.Event) error {
	normalized := events.NewEvent(
		strings.TrimPrefix(event.EventType(), "events."),
		event.Payload(),
		event.Timestamp(),
	)

	payload, err := json.Marshal(normalized)
	if err != nil {
		s.logger.Error("DeliveryService", "failed to marshal event", map[string]interface{}{"error": err.Error()})
		return err
	}

	s.push(normalized.Data, payload)
	return nil
}

func (s *deliveryService) push(data map[string]interface{}, payload []byte) {
	if s.delivery == nil {
		return
	}
	if uidStr, ok := data["user_id"].(string); ok {
		if uid, err := uuid.Parse(uidStr); err == nil {
			s.delivery.Send(uid, payload)
		}
	}
}
