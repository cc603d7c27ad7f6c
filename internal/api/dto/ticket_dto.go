package dto

import (
	"time"

	"github.com/spec-kit/helpdesk-portal/internal/domain"
)

// CreateTicketRequest payload. Field names follow the submit form.
type CreateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Department  string `json:"department"`
	StaffID     string `json:"staffId"`
	StaffName   string `json:"staffName"`
	Email       string `json:"email"`
}

// CreateTicketResponse echoes the generated identifier and classification.
type CreateTicketResponse struct {
	Success  bool                  `json:"success"`
	TicketID string                `json:"ticketId"`
	Category domain.TicketCategory `json:"category"`
	Priority domain.TicketPriority `json:"priority"`
	Message  string                `json:"message"`
}

// TicketResponse is one stored ticket row.
type TicketResponse struct {
	ID          int64                 `json:"id"`
	TicketID    string                `json:"ticket_id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Category    domain.TicketCategory `json:"category"`
	Priority    domain.TicketPriority `json:"priority"`
	Status      domain.TicketStatus   `json:"status"`
	Department  string                `json:"department"`
	StaffID     string                `json:"staff_id"`
	StaffName   string                `json:"staff_name"`
	Email       string                `json:"email"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   *time.Time            `json:"updated_at,omitempty"`
	ResolvedAt  *time.Time            `json:"resolved_at,omitempty"`
}
