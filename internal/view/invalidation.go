package view

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Topic identifies a class of data-change events on the bus.
type Topic string

// Topics published by mutations.
const (
	// TopicSubscriptionsChanged fires after a successful subscribe or
	// cancel; views derived from the user's subscriptions refetch on it.
	TopicSubscriptionsChanged Topic = "subscriptions.changed"
)

// Handler reacts to a published topic.
type Handler func(ctx context.Context)

// Bus is a small in-process invalidation bus. Mutations publish that data
// changed; interested views subscribe and refetch. Message-passing only —
// publishers never touch subscriber state.
type Bus struct {
	mu     sync.Mutex
	subs   map[Topic][]Handler
	logger *zap.Logger
}

// NewBus creates an empty invalidation bus.
func NewBus(logger *zap.Logger) *Bus {
	return &Bus{
		subs:   make(map[Topic][]Handler),
		logger: logger,
	}
}

// Subscribe registers a handler for a topic.
func (b *Bus) Subscribe(topic Topic, fn Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[topic] = append(b.subs[topic], fn)
}

// Publish invokes every handler subscribed to the topic, in registration
// order, exactly once each.
func (b *Bus) Publish(ctx context.Context, topic Topic) {
	b.mu.Lock()
	handlers := make([]Handler, len(b.subs[topic]))
	copy(handlers, b.subs[topic])
	b.mu.Unlock()

	b.logger.Debug("invalidation published",
		zap.String("topic", string(topic)),
		zap.Int("subscribers", len(handlers)),
	)

	for _, fn := range handlers {
		fn(ctx)
	}
}
