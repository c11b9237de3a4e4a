package eventbus

import (
	"runtime/debug"
	"sync"

	"github.com/charmbracelet/log"

	"fxpick/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventLookupRequested  = domain.EventLookupRequested
	EventSuggestionsReady = domain.EventSuggestionsReady
	EventError            = domain.EventError
	EventConfigLoaded     = domain.EventConfigLoaded
	EventConfigSaved      = domain.EventConfigSaved
	EventConfigChanged    = domain.EventConfigChanged
)

// Re-export domain event types
type LookupRequestedEvent = domain.LookupRequestedEvent
type SuggestionsReadyEvent = domain.SuggestionsReadyEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ConfigChangedEvent = domain.ConfigChangedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]EventHandler
	ids       map[EventType][]int
	nextID    int
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]EventHandler),
		ids:       make(map[EventType][]int),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	select {
	case b.eventChan <- event:
	default:
		// Channel full, log and drop
		log.Warn("event bus channel full, dropping event", "type", event.Type())
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.ids[eventType] = append(b.ids[eventType], id)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		for i, hid := range b.ids[eventType] {
			if hid == id {
				b.handlers[eventType] = append(b.handlers[eventType][:i], b.handlers[eventType][i+1:]...)
				b.ids[eventType] = append(b.ids[eventType][:i], b.ids[eventType][i+1:]...)
				break
			}
		}
	}
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			handlers := b.handlers[event.Type()]
			// Copy so handlers can (un)subscribe without holding the lock
			handlersCopy := make([]EventHandler, len(handlers))
			copy(handlersCopy, handlers)
			b.mu.RUnlock()

			for _, handler := range handlersCopy {
				go func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							log.Error("event handler panic", "type", eventType, "panic", r, "stack", string(debug.Stack()))
						}
					}()
					h(event)
				}(handler, event.Type())
			}

		case <-b.quit:
			// Drain remaining events
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
