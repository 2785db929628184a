package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/luci18530/GastX/internal/domain"
	"github.com/luci18530/GastX/internal/service"
	"github.com/rs/zerolog/log"
)

// MessageType names a client to server message
type MessageType string

const (
	MessageTypeStatementLoad    MessageType = "statement.load"
	MessageTypeFiltersUpdate    MessageType = "filters.update"
	MessageTypeFiltersClear     MessageType = "filters.clear"
	MessageTypePageChange       MessageType = "page.change"
	MessageTypeCategoriesSelect MessageType = "categories.select"
)

// Message is a client to server message
// Format: { type, payload }
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// PageChangePayload is the payload of page.change
type PageChangePayload struct {
	Page int `json:"page"`
}

// CategoriesSelectPayload is the payload of categories.select
type CategoriesSelectPayload struct {
	Categories []string `json:"categories"`
	ShowAll    bool     `json:"showAll"`
}

// DashboardBuilder builds the dashboard view for a session state
type DashboardBuilder interface {
	Build(ctx context.Context, input service.DashboardInput) (*domain.DashboardView, error)
}

// Session holds the view state of one live dashboard. Every accepted message
// changes the state and yields a fresh view; a rejected message leaves it as is.
// A Session is not safe for concurrent use.
type Session struct {
	id      string
	builder DashboardBuilder
	loaded  bool
	state   service.DashboardInput
}

// NewSession creates an empty session
func NewSession(id string, builder DashboardBuilder) *Session {
	return &Session{
		id:      id,
		builder: builder,
	}
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Loaded reports whether a statement has been loaded
func (s *Session) Loaded() bool {
	return s.loaded
}

// State returns a copy of the current view state
func (s *Session) State() service.DashboardInput {
	return s.state
}

// Handle decodes one raw client message and returns the event to send back
func (s *Session) Handle(ctx context.Context, data []byte) Event {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return s.reject(fmt.Errorf("%w: malformed message: %v", domain.ErrInvalidInput, err))
	}
	return s.Apply(ctx, msg)
}

// Apply applies a decoded message to the session
func (s *Session) Apply(ctx context.Context, msg Message) Event {
	next, err := s.transition(msg)
	if err != nil {
		return s.reject(err)
	}

	view, err := s.builder.Build(ctx, next)
	if err != nil {
		return s.reject(err)
	}

	s.state = next
	s.loaded = true

	log.Debug().
		Str("session_id", s.id).
		Str("message_type", string(msg.Type)).
		Int("filtered", view.FilteredCount).
		Msg("Dashboard session updated")

	return DashboardUpdated(view)
}

// transition computes the next state without touching the current one
func (s *Session) transition(msg Message) (service.DashboardInput, error) {
	if msg.Type != MessageTypeStatementLoad && !s.loaded {
		return service.DashboardInput{}, fmt.Errorf("%w: %s", domain.ErrStatementNotLoaded, msg.Type)
	}

	next := s.state
	switch msg.Type {
	case MessageTypeStatementLoad:
		var stmt domain.Statement
		if err := decodePayload(msg, &stmt); err != nil {
			return next, err
		}
		next = service.DashboardInput{
			Statement: stmt,
			Criteria:  domain.DefaultFilterCriteria(),
			Page:      1,
			ShowAll:   true,
		}

	case MessageTypeFiltersUpdate:
		var criteria domain.FilterCriteria
		if err := decodePayload(msg, &criteria); err != nil {
			return next, err
		}
		next.Criteria = criteria
		next.Page = 1

	case MessageTypeFiltersClear:
		next.Criteria = domain.DefaultFilterCriteria()
		next.Page = 1

	case MessageTypePageChange:
		var payload PageChangePayload
		if err := decodePayload(msg, &payload); err != nil {
			return next, err
		}
		next.Page = payload.Page

	case MessageTypeCategoriesSelect:
		var payload CategoriesSelectPayload
		if err := decodePayload(msg, &payload); err != nil {
			return next, err
		}
		next.SelectedCategories = payload.Categories
		next.ShowAll = payload.ShowAll

	default:
		return next, fmt.Errorf("%w: %q", domain.ErrUnknownMessage, msg.Type)
	}

	return next, nil
}

func (s *Session) reject(err error) Event {
	log.Debug().Err(err).Str("session_id", s.id).Msg("Dashboard session message rejected")
	return SessionError(errorDetail(err))
}

func decodePayload(msg Message, v interface{}) error {
	if len(msg.Payload) == 0 {
		return fmt.Errorf("%w: %s requires a payload", domain.ErrInvalidInput, msg.Type)
	}
	if err := json.Unmarshal(msg.Payload, v); err != nil {
		return fmt.Errorf("%w: %s payload: %v", domain.ErrInvalidInput, msg.Type, err)
	}
	return nil
}

// errorDetail maps session errors to client facing messages
func errorDetail(err error) string {
	switch {
	case errors.Is(err, domain.ErrStatementNotLoaded):
		return "Load a statement before changing the dashboard"
	case errors.Is(err, domain.ErrUnknownMessage),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidTransactionType):
		return err.Error()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "Request cancelled"
	default:
		return "Failed to build dashboard"
	}
}
