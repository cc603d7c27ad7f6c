package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/helpdesk-portal/internal/domain"
)

func TestClassifyScenarios(t *testing.T) {
	tests := []struct {
		name        string
		description string
		category    domain.TicketCategory
		priority    domain.TicketPriority
	}{
		{
			name:        "kwatos login urgent",
			description: "Cannot login to Kwatos system, urgent",
			category:    domain.CategorySoftware,
			priority:    domain.PriorityHigh,
		},
		{
			name:        "printer jam",
			description: "Printer jammed in HR office",
			category:    domain.CategoryHardware,
			priority:    domain.PriorityMedium,
		},
		{
			name:        "wifi outage",
			description: "WiFi is down in Building C",
			category:    domain.CategoryNetwork,
			priority:    domain.PriorityHigh,
		},
		{
			name:        "access card replacement",
			description: "Lost my badge, need entry to the restricted area",
			category:    domain.CategoryAccess,
			priority:    domain.PriorityMedium,
		},
		{
			name:        "no keyword match",
			description: "The coffee machine on the third floor is broken",
			category:    domain.CategoryGeneral,
			priority:    domain.PriorityMedium,
		},
		{
			name:        "low priority marker",
			description: "Minor cosmetic issue, fix whenever",
			category:    domain.CategoryGeneral,
			priority:    domain.PriorityLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, priority := Classify(tt.description)
			assert.Equal(t, tt.category, category)
			assert.Equal(t, tt.priority, priority)
		})
	}
}

func TestClassifyCategoryOrderFirstMatchWins(t *testing.T) {
	// "login" (software) and "printer" (hardware) both match; software is
	// evaluated first.
	category, _ := Classify("Cannot login to the printer management page")
	assert.Equal(t, domain.CategorySoftware, category)

	// hardware before network
	category, _ = Classify("The monitor loses its wifi connection")
	assert.Equal(t, domain.CategoryHardware, category)
}

func TestClassifyHighPriorityPrecedesLow(t *testing.T) {
	_, priority := Classify("Critical outage, but feels like a minor thing")
	assert.Equal(t, domain.PriorityHigh, priority)
}

func TestClassifyCaseInsensitive(t *testing.T) {
	category, priority := Classify("URGENT: KWATOS CRASH")
	assert.Equal(t, domain.CategorySoftware, category)
	assert.Equal(t, domain.PriorityHigh, priority)
}

func TestClassifyDeterministic(t *testing.T) {
	const description = "Ethernet port dead, connectivity lost, urgent"
	firstCategory, firstPriority := Classify(description)
	for i := 0; i < 100; i++ {
		category, priority := Classify(description)
		assert.Equal(t, firstCategory, category)
		assert.Equal(t, firstPriority, priority)
	}
}

func TestClassifyEmptyDescription(t *testing.T) {
	category, priority := Classify("")
	assert.Equal(t, domain.CategoryGeneral, category)
	assert.Equal(t, domain.PriorityMedium, priority)
}
