package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen     TicketStatus = "open"
	TicketStatusResolved TicketStatus = "resolved"
)

// TicketCategory enumerates classifier output categories.
type TicketCategory string

const (
	CategorySoftware TicketCategory = "software"
	CategoryHardware TicketCategory = "hardware"
	CategoryNetwork  TicketCategory = "network"
	CategoryAccess   TicketCategory = "access"
	CategoryGeneral  TicketCategory = "general"
)

// TicketPriority enumerates classifier output priorities.
type TicketPriority string

const (
	PriorityHigh   TicketPriority = "high"
	PriorityMedium TicketPriority = "medium"
	PriorityLow    TicketPriority = "low"
)

// Ticket is the aggregate for helpdesk support requests. TicketID is the
// public application-generated identifier; ID is the store surrogate key.
type Ticket struct {
	ID          int64
	TicketID    string
	Title       string
	Description string
	Category    TicketCategory
	Priority    TicketPriority
	Status      TicketStatus
	Department  string
	StaffID     string
	StaffName   string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	ResolvedAt  *time.Time
}
