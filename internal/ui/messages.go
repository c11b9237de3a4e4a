package ui

import "fxpick/internal/domain"

// EventMsg wraps a domain event forwarded from the bus to the UI
type EventMsg struct {
	Event domain.DomainEvent
}

// debounceMsg is a debounce tick; seq ties it to the keystroke that armed it
type debounceMsg struct {
	seq int
}

// browseDoneMsg reports the dataset browser closing
type browseDoneMsg struct {
	err error
}
