// Package bookingflow carries a user's in-progress booking selection across
// the availability and checkout screens, and drives checkout submission
// against the booking API.
package bookingflow

import (
	"github.com/farellandr/lokly/internal/models"
)

// Selection is the in-progress booking: what the availability screen
// produces and the checkout screen consumes.
type Selection struct {
	ExperienceID uint              `json:"experienceId"`
	Experience   models.Experience `json:"experience"`
	TimeSlot     models.TimeSlot   `json:"timeSlot"`
	Package      models.Package    `json:"package"`
	SelectedDate string            `json:"selectedDate"`
}

// Total applies the fixed tax and fee multiplier (28%) to a package price,
// rounding down. Prices are in the smallest currency unit.
func Total(packagePrice int) int {
	return packagePrice * 128 / 100
}
