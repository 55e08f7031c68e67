package ui

import (
	"sync/atomic"

	"vlist/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// deferredMsg runs an engine callback on the update goroutine
type deferredMsg struct {
	task *deferredTask
}

type deferredTask struct {
	fn        func()
	cancelled atomic.Bool
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}
