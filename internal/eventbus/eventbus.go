package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"trucktrack/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventNotification        = domain.EventNotification
	EventNavigationRequested = domain.EventNavigationRequested
	EventViewResolved        = domain.EventViewResolved
	EventFilterChanged       = domain.EventFilterChanged
	EventSearchSubmitted     = domain.EventSearchSubmitted
	EventCatalogLoaded       = domain.EventCatalogLoaded
	EventConfigLoaded        = domain.EventConfigLoaded
	EventConfigSaved         = domain.EventConfigSaved
	EventSortChanged         = domain.EventSortChanged
)

// Re-export domain event types
type NotificationEvent = domain.NotificationEvent
type NavigationRequestedEvent = domain.NavigationRequestedEvent
type ViewResolvedEvent = domain.ViewResolvedEvent
type FilterChangedEvent = domain.FilterChangedEvent
type SearchSubmittedEvent = domain.SearchSubmittedEvent
type CatalogLoadedEvent = domain.CatalogLoadedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type SortChangedEvent = domain.SortChangedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64

	eventChan chan DomainEvent
	quit      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
	logger    *zap.Logger
}

// Option configures the bus
type Option func(*bus)

// WithLogger routes bus diagnostics to logger
func WithLogger(logger *zap.Logger) Option {
	return func(b *bus) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithBuffer sets the capacity of the pending event queue
func WithBuffer(size int) Option {
	return func(b *bus) {
		if size > 0 {
			b.eventChan = make(chan DomainEvent, size)
		}
	}
}

// New creates a new event bus and starts its dispatcher
func New(opts ...Option) EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for delivery. It never blocks: when the queue is
// full or the bus is closed the event is dropped.
func (b *bus) Publish(event DomainEvent) {
	select {
	case <-b.quit:
		b.logger.Debug("event bus closed, dropping event", zap.String("event", string(event.Type())))
		return
	default:
	}

	select {
	case b.eventChan <- event:
		b.logger.Debug("event published", zap.String("event", string(event.Type())))
	default:
		b.logger.Warn("event bus channel full, dropping event", zap.String("event", string(event.Type())))
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher and waits for it to exit. Pending events are
// discarded. Close is safe to call more than once.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch delivers events to subscribers in publish order
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, s := range subs {
				b.deliver(s.handler, event)
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

func (b *bus) deliver(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panic",
				zap.String("event", string(event.Type())),
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))
		}
	}()
	h(event)
}
