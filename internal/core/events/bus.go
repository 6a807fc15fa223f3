package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

type Event interface {
	EventType() string
	EventID() string
	OccurredAt() time.Time
	Payload() interface{}
}

type BaseEvent struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

func (e BaseEvent) EventType() string { return e.Type }

func (e BaseEvent) EventID() string { return e.ID }

func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }

func (e BaseEvent) Payload() interface{} { return e.Data }

type Handler func(ctx context.Context, event Event) error

// EventBus is an in-process publish/subscribe fan-out keyed by event type.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	logger   *slog.Logger
}

func NewEventBus(logger *slog.Logger) *EventBus {
	return &EventBus{
		handlers: map[string][]Handler{},
		logger:   logger,
	}
}

func (b *EventBus) Subscribe(eventType string, h Handler) {
	b.mu.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], h)
	count := len(b.handlers[eventType])
	b.mu.Unlock()

	b.logger.Info("subscribed event handler",
		"event_type", eventType,
		"handlers", count)
}

func (b *EventBus) subscribers(eventType string) []Handler {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.handlers[eventType]
}

// Publish fans the event out to its subscribers, each on its own goroutine.
// A failing handler is logged and never propagates to the publisher.
func (b *EventBus) Publish(ctx context.Context, event Event) error {
	hs := b.subscribers(event.EventType())
	if len(hs) == 0 {
		b.logger.Debug("event has no subscribers", "event_type", event.EventType())
		return nil
	}

	b.logger.Info("publishing event",
		"event_type", event.EventType(),
		"event_id", event.EventID(),
		"subscribers", len(hs))

	for _, h := range hs {
		go func(h Handler) {
			if err := h(ctx, event); err != nil {
				b.logger.Error("event handler failed",
					"event_type", event.EventType(),
					"event_id", event.EventID(),
					"error", err)
			}
		}(h)
	}

	return nil
}

// PublishSync runs subscribers in registration order and stops at the first
// failure.
func (b *EventBus) PublishSync(ctx context.Context, event Event) error {
	hs := b.subscribers(event.EventType())
	if len(hs) == 0 {
		b.logger.Debug("event has no subscribers", "event_type", event.EventType())
		return nil
	}

	for _, h := range hs {
		if err := h(ctx, event); err != nil {
			b.logger.Error("event handler failed",
				"event_type", event.EventType(),
				"event_id", event.EventID(),
				"error", err)
			return fmt.Errorf("handler failed for event %s: %w", event.EventType(), err)
		}
	}

	return nil
}
