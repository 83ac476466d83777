// Package pubsub relays committed domain events across instances over Redis.
// Each instance publishes the events it commits and receives the events of its
// peers, so connected clients see activity regardless of which instance
// handled the request.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"traindesk/internal/domain/notification"
	"traindesk/internal/domain/shared/events"
	"traindesk/internal/domain/solution"
	"traindesk/internal/domain/ticket"
	"traindesk/internal/domain/user"
	"traindesk/internal/shared/goroutine"
	"traindesk/internal/shared/logger"
)

const eventChannel = "traindesk:events"

// Envelope is the wire format for relayed events.
type Envelope struct {
	EventID     string          `json:"event_id"`
	EventType   string          `json:"event_type"`
	AggregateID string          `json:"aggregate_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Payload     json.RawMessage `json:"payload"`
	InstanceID  string          `json:"instance_id"`
}

// relayedEventTypes lists the events worth broadcasting to other instances.
var relayedEventTypes = []string{
	ticket.TicketCreatedEventType,
	ticket.TicketRedeemedEventType,
	ticket.TicketResolvedEventType,
	ticket.TicketUpdatedEventType,
	ticket.TicketReopenedEventType,
	ticket.TicketDeletedEventType,
	solution.SolutionApprovedEventType,
	solution.SolutionRejectedEventType,
	user.CreditUpdatedEventType,
	notification.ReceivedEventType,
}

// RedisEventRelay publishes local domain events to Redis and hands remote
// ones to a subscriber callback. The instance ID guards against
// self-delivery.
type RedisEventRelay struct {
	client     *redis.Client
	logger     logger.Interface
	instanceID string
}

func NewRedisEventRelay(client *redis.Client, log logger.Interface) *RedisEventRelay {
	return &RedisEventRelay{
		client:     client,
		logger:     log.Named("event-relay"),
		instanceID: uuid.NewString(),
	}
}

// Register subscribes the relay on the local dispatcher for every relayed
// event type.
func (r *RedisEventRelay) Register(subscriber events.EventSubscriber) error {
	for _, eventType := range relayedEventTypes {
		if err := subscriber.Subscribe(eventType, events.NewSimpleEventHandler(eventType, r.relay)); err != nil {
			return fmt.Errorf("failed to subscribe relay to %s: %w", eventType, err)
		}
	}
	return nil
}

func (r *RedisEventRelay) relay(event events.DomainEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	envelope := Envelope{
		EventID:     event.GetEventID(),
		EventType:   event.GetEventType(),
		AggregateID: event.GetAggregateID(),
		OccurredAt:  event.GetOccurredAt(),
		Payload:     payload,
		InstanceID:  r.instanceID,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal event envelope: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.client.Publish(ctx, eventChannel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish event to redis: %w", err)
	}

	r.logger.Debugw("event relayed",
		"event_type", envelope.EventType,
		"event_id", envelope.EventID,
	)
	return nil
}

// SubscribeEvents consumes envelopes from peers until ctx is cancelled.
// Events published by this instance are skipped.
func (r *RedisEventRelay) SubscribeEvents(ctx context.Context, handler func(Envelope)) error {
	sub := r.client.Subscribe(ctx, eventChannel)
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", eventChannel, err)
	}

	ch := sub.Channel()
	goroutine.SafeGo(r.logger, "redis-event-subscriber", func() {
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var envelope Envelope
				if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
					r.logger.Warnw("failed to decode relayed event", "error", err)
					continue
				}
				if envelope.InstanceID == r.instanceID {
					continue
				}
				handler(envelope)
			}
		}
	})
	return nil
}
