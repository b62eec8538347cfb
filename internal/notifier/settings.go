package notifier

import "fmt"

// Settings controls reminder offsets and urgency classification.
type Settings struct {
	ReminderMinutes []int `json:"reminder_minutes"`
	UrgentThreshold int   `json:"urgent_threshold"`
	Enabled         bool  `json:"enabled"`
}

// SettingsOverride is a partial Settings; nil fields fall back to defaults.
type SettingsOverride struct {
	ReminderMinutes []int `json:"reminder_minutes,omitempty"`
	UrgentThreshold *int  `json:"urgent_threshold,omitempty"`
	Enabled         *bool `json:"enabled,omitempty"`
}

var defaultSettings = Settings{
	ReminderMinutes: []int{60, 15},
	UrgentThreshold: 15,
	Enabled:         true,
}

func (s Settings) merge(o *SettingsOverride) Settings {
	if o == nil {
		return s
	}
	if o.ReminderMinutes != nil {
		s.ReminderMinutes = o.ReminderMinutes
	}
	if o.UrgentThreshold != nil {
		s.UrgentThreshold = *o.UrgentThreshold
	}
	if o.Enabled != nil {
		s.Enabled = *o.Enabled
	}
	return s
}

// ValidationResult accumulates every violation rather than failing fast.
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// ValidateSettings checks the structural constraints: a non-empty list of
// non-negative reminder offsets and a non-negative urgent threshold.
func ValidateSettings(s Settings) ValidationResult {
	errs := []string{}

	if len(s.ReminderMinutes) == 0 {
		errs = append(errs, "reminder_minutes cannot be empty")
	}
	for i, min := range s.ReminderMinutes {
		if min < 0 {
			errs = append(errs, fmt.Sprintf("reminder_minutes[%d] must be a non-negative number", i))
		}
	}

	if s.UrgentThreshold < 0 {
		errs = append(errs, "urgent_threshold must be a non-negative number")
	}

	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
