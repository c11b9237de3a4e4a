package suggest

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"fxpick/internal/domain"
	"fxpick/internal/eventbus"
)

// Service answers LookupRequested events on the bus. A failed fetch is
// logged once and settles as an empty result set; subscribers never see the
// error itself.
type Service struct {
	bus     eventbus.EventBus
	source  Source
	timeout time.Duration
}

// NewService creates the suggestion service and subscribes it to the bus.
func NewService(bus eventbus.EventBus, source Source, timeout time.Duration) *Service {
	s := &Service{
		bus:     bus,
		source:  source,
		timeout: timeout,
	}

	bus.Subscribe(eventbus.EventLookupRequested, s.handleLookup)

	return s
}

func (s *Service) handleLookup(e eventbus.DomainEvent) {
	ev, ok := e.(eventbus.LookupRequestedEvent)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	suggestions, err := s.source.Fetch(ctx, ev.Query)
	if err != nil {
		log.Warn("suggestion lookup failed", "query", ev.Query, "err", err)
		suggestions = []domain.Suggestion{}
	}

	s.bus.Publish(eventbus.SuggestionsReadyEvent{
		Query:       ev.Query,
		Seq:         ev.Seq,
		Suggestions: suggestions,
	})
}
