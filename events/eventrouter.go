package events

import (
	"sync"
)

// EventRouter fans supply events out to bus subscribers. It exists as a
// seam between the ledger packages (which only publish) and consumers
// like the audit journal (which only subscribe).
type EventRouter struct {
	eventBus *EventBus
	mu       sync.RWMutex
}

// NewEventRouter creates a new EventRouter instance
func NewEventRouter(eventBus *EventBus) *EventRouter {
	return &EventRouter{
		eventBus: eventBus,
	}
}

// PublishSupplyEvent publishes a supply mutation or control transition
func (er *EventRouter) PublishSupplyEvent(event SupplyEvent) {
	er.mu.RLock()
	defer er.mu.RUnlock()

	er.eventBus.Publish(event)
}

// Subscribe subscribes to all supply events
func (er *EventRouter) Subscribe() (SubscriberID, chan SupplyEvent) {
	return er.eventBus.Subscribe()
}

// Unsubscribe removes a subscription
func (er *EventRouter) Unsubscribe(id SubscriberID) bool {
	return er.eventBus.Unsubscribe(id)
}
