package events

import (
	"time"

	"github.com/spec-kit/helpdesk-portal/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated   EventType = "ticket_created"
	EventAssetRegistered EventType = "asset_registered"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	TicketID   string                `json:"ticket_id"`
	Title      string                `json:"title"`
	Category   domain.TicketCategory `json:"category"`
	Priority   domain.TicketPriority `json:"priority"`
	Department string                `json:"department"`
	Email      string                `json:"email"`
}

// AssetRegisteredPayload payload.
type AssetRegisteredPayload struct {
	AssetID    string           `json:"asset_id"`
	AssetType  domain.AssetType `json:"asset_type"`
	AssignedTo string           `json:"assigned_to"`
	Department string           `json:"department"`
}
