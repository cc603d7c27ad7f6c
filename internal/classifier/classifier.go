package classifier

import (
	"strings"

	"github.com/spec-kit/helpdesk-portal/internal/domain"
)

// categoryRule pairs a category with its trigger keywords. Rules are
// evaluated in order; the first category with a matching keyword wins.
type categoryRule struct {
	category domain.TicketCategory
	keywords []string
}

var categoryRules = []categoryRule{
	{domain.CategorySoftware, []string{"kwatos", "login", "password", "software", "system", "error", "crash", "application", "app"}},
	{domain.CategoryHardware, []string{"printer", "scanner", "computer", "laptop", "mouse", "keyboard", "screen", "monitor", "device"}},
	{domain.CategoryNetwork, []string{"internet", "wifi", "connection", "network", "lan", "ethernet", "slow", "connectivity"}},
	{domain.CategoryAccess, []string{"gate", "card", "badge", "access", "entry", "permission", "security", "door"}},
}

var (
	highPriorityKeywords = []string{"urgent", "critical", "down", "emergency"}
	lowPriorityKeywords  = []string{"minor", "low", "whenever"}
)

// Classify maps a free-text ticket description to a category and priority.
// Matching is case-insensitive substring containment. The high-priority
// keyword check takes precedence over the low-priority one; with no match
// the result is general/medium. Pure function: identical input always
// yields identical output.
func Classify(description string) (domain.TicketCategory, domain.TicketPriority) {
	lower := strings.ToLower(description)

	category := domain.CategoryGeneral
	for _, rule := range categoryRules {
		if containsAny(lower, rule.keywords) {
			category = rule.category
			break
		}
	}

	priority := domain.PriorityMedium
	if containsAny(lower, highPriorityKeywords) {
		priority = domain.PriorityHigh
	} else if containsAny(lower, lowPriorityKeywords) {
		priority = domain.PriorityLow
	}

	return category, priority
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
