package dto

import "github.com/spec-kit/helpdesk-portal/internal/domain"

// CategoryCount is one dashboard group-by entry.
type CategoryCount struct {
	Category domain.TicketCategory `json:"category"`
	Count    int64                 `json:"count"`
}

// PriorityCount is one dashboard group-by entry.
type PriorityCount struct {
	Priority domain.TicketPriority `json:"priority"`
	Count    int64                 `json:"count"`
}

// StatsResponse is the dashboard snapshot. Categories or priorities with no
// tickets are simply absent from the lists.
type StatsResponse struct {
	TotalTickets      int64           `json:"totalTickets"`
	OpenTickets       int64           `json:"openTickets"`
	TotalAssets       int64           `json:"totalAssets"`
	ActiveAssets      int64           `json:"activeAssets"`
	TicketsByCategory []CategoryCount `json:"ticketsByCategory"`
	TicketsByPriority []PriorityCount `json:"ticketsByPriority"`
}
