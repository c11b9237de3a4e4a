package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventLookupRequested  EventType = "LookupRequested"
	EventSuggestionsReady EventType = "SuggestionsReady"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventConfigChanged    EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// LookupRequestedEvent is emitted when the widget wants suggestions for a
// query. Seq increases monotonically; responses carry it back so that only
// the most recently issued request is applied.
type LookupRequestedEvent struct {
	Query string
	Seq   int
}

func (e LookupRequestedEvent) Type() EventType { return EventLookupRequested }

// SuggestionsReadyEvent is emitted when a lookup settles. A failed fetch
// settles too, with an empty suggestion list; the failure itself is logged
// by the suggestion service, never surfaced here.
type SuggestionsReadyEvent struct {
	Query       string
	Seq         int
	Suggestions []Suggestion
}

func (e SuggestionsReadyEvent) Type() EventType { return EventSuggestionsReady }

// ErrorEvent is emitted when an error occurs outside a lookup cycle
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Endpoint string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when configuration changes at runtime
type ConfigChangedEvent struct {
	Endpoint   string
	DebounceMS int
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }
