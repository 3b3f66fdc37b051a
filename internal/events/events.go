// Package events provides in-process pub/sub for booking lifecycle events.
package events

import (
	"sync"
	"time"

	"villabook/internal/models"
)

// Event types published by the booking service.
const (
	TypeBookingCreated = "booking.created"
	TypeBookingUpdated = "booking.updated"
	TypeBookingDeleted = "booking.deleted"
)

// Event carries the booking as it looked when the lifecycle change happened.
type Event struct {
	Type      string
	Booking   models.Booking
	CreatedAt time.Time
}

// Handler consumes one event. Errors are the handler's problem; the bus does
// not retry or propagate them.
type Handler func(event Event) error

// EventBus fans booking events out to registered handlers, in process, in
// registration order, on the publisher's goroutine.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[string][]Handler)}
}

// Subscribe registers a handler for one event type.
func (b *EventBus) Subscribe(eventType string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], h)
}

// Publish stamps the event (when the caller did not) and invokes every
// handler registered for its type before returning.
func (b *EventBus) Publish(event Event) {
	b.mu.RLock()
	subscribed := make([]Handler, len(b.handlers[event.Type]))
	copy(subscribed, b.handlers[event.Type])
	b.mu.RUnlock()

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	for _, h := range subscribed {
		_ = h(event)
	}
}
