package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventRangeUpdated    EventType = "RangeUpdated"
	EventScrollStatus    EventType = "ScrollStatus"
	EventSizeModeChanged EventType = "SizeModeChanged"
	EventItemsLoaded     EventType = "ItemsLoaded"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// RangeUpdatedEvent is emitted when the live window changes
type RangeUpdatedEvent struct {
	Range Range
}

func (e RangeUpdatedEvent) Type() EventType { return EventRangeUpdated }

// ScrollStatusEvent carries a scroll sample
type ScrollStatusEvent struct {
	Status ScrollStatus
}

func (e ScrollStatusEvent) Type() EventType { return EventScrollStatus }

// SizeModeChangedEvent is emitted when the size ledger changes mode
type SizeModeChangedEvent struct {
	From SizeMode
	To   SizeMode
}

func (e SizeModeChangedEvent) Type() EventType { return EventSizeModeChanged }

// ItemsLoadedEvent is emitted when a new key sequence has been loaded
type ItemsLoadedEvent struct {
	Source string
	Count  int
}

func (e ItemsLoadedEvent) Type() EventType { return EventItemsLoaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path  string
	Keeps int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
