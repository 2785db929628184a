package websocket

import (
	"encoding/json"
	"time"

	"github.com/luci18530/GastX/internal/domain"
)

// EventType names a server to client event
type EventType string

const (
	EventTypeDashboardUpdated EventType = "dashboard.updated"
	EventTypeSessionError     EventType = "session.error"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, payload, timestamp }
type Event struct {
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// SessionErrorPayload is the payload of a session.error event
type SessionErrorPayload struct {
	Detail string `json:"detail"`
}

// NewEvent creates a new event with the given type and payload
func NewEvent(eventType EventType, payload interface{}) Event {
	return Event{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// DashboardUpdated creates a dashboard.updated event
func DashboardUpdated(view *domain.DashboardView) Event {
	return NewEvent(EventTypeDashboardUpdated, view)
}

// SessionError creates a session.error event
func SessionError(detail string) Event {
	return NewEvent(EventTypeSessionError, SessionErrorPayload{Detail: detail})
}
