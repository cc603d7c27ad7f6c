package domain

// CategoryCount is one (category, count) pair from a group-by query.
type CategoryCount struct {
	Category TicketCategory
	Count    int64
}

// PriorityCount is one (priority, count) pair from a group-by query.
type PriorityCount struct {
	Priority TicketPriority
	Count    int64
}

// StatsSnapshot is a best-effort dashboard aggregate. Categories and
// priorities with no tickets are absent, not emitted as zero.
type StatsSnapshot struct {
	TotalTickets int64
	OpenTickets  int64
	TotalAssets  int64
	ActiveAssets int64
	ByCategory   []CategoryCount
	ByPriority   []PriorityCount
}
