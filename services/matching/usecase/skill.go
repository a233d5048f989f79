package usecase

import (
	"strings"

	"github.com/google/uuid"
	"github.com/kurashiworks/kurashi/internal/pkg/models"
)

// planLabels is the static service -> plan -> label-name mapping. A
// professional qualifies for an order when any of their labels intersects
// any label relevant to the ordered plan.
var planLabels = map[string]map[string][]string{
	"photo-service": {
		"real-estate": {"Real Estate Photography", "Architecture Photography"},
		"wedding":     {"Wedding Photography", "Portrait Photography"},
		"portrait":    {"Portrait Photography"},
		"product":     {"Product Photography", "Studio Photography"},
	},
	"cleaning-service": {
		"standard": {"House Cleaning"},
		"deep":     {"House Cleaning", "Deep Cleaning"},
		"move-out": {"Deep Cleaning", "Move-Out Cleaning"},
	},
	"staffing-service": {
		"event":     {"Event Staff"},
		"office":    {"Office Staff", "Reception"},
		"warehouse": {"Warehouse Staff"},
	},
}

// labelCategories assigns each known label name its category
var labelCategories = map[string]string{
	"Real Estate Photography":  "photography",
	"Architecture Photography": "photography",
	"Wedding Photography":      "photography",
	"Portrait Photography":     "photography",
	"Product Photography":      "photography",
	"Studio Photography":       "photography",
	"House Cleaning":           "cleaning",
	"Deep Cleaning":            "cleaning",
	"Move-Out Cleaning":        "cleaning",
	"Event Staff":              "staffing",
	"Office Staff":             "staffing",
	"Reception":                "staffing",
	"Warehouse Staff":          "staffing",
}

// RelevantLabels returns the labels that qualify a professional for the
// given (service, plan) pair. Unknown pairs yield an empty set.
func RelevantLabels(serviceID, planID string) []models.Label {
	plans, ok := planLabels[serviceID]
	if !ok {
		return nil
	}
	names, ok := plans[planID]
	if !ok {
		return nil
	}

	labels := make([]models.Label, 0, len(names))
	for _, name := range names {
		labels = append(labels, models.Label{
			Name:     name,
			Category: labelCategories[name],
		})
	}
	return labels
}

// labelsIntersect reports whether two labels count as the same skill.
// Rules, any one suffices: identical id, identical name, same category,
// or one name a non-empty substring of the other.
func labelsIntersect(a, b models.Label) bool {
	if a.ID != uuid.Nil && a.ID == b.ID {
		return true
	}
	if a.Name != "" && a.Name == b.Name {
		return true
	}
	if a.Category != "" && a.Category == b.Category {
		return true
	}
	if a.Name != "" && b.Name != "" {
		if strings.Contains(a.Name, b.Name) || strings.Contains(b.Name, a.Name) {
			return true
		}
	}
	return false
}

// isSkillEligible reports whether the professional's label set intersects
// the relevant label set
func isSkillEligible(relevant []models.Label, professional *models.Professional) bool {
	for _, rl := range relevant {
		for _, pl := range professional.Labels {
			if labelsIntersect(rl, pl) {
				return true
			}
		}
	}
	return false
}
