// Package notifier formats reservation notifications and classifies their
// urgency. It only produces strings and priorities; delivery is someone
// else's job.
package notifier

import (
	"fmt"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type Type string

const (
	TypeReminder     Type = "reminder"
	TypeConfirmation Type = "confirmation"
	TypeCancellation Type = "cancellation"
	TypeUpcoming     Type = "upcoming"
)

// ReservationNotification carries the fields the templates need.
type ReservationNotification struct {
	ReservationID string    `json:"reservation_id"`
	RoomName      string    `json:"room_name"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	UserName      string    `json:"user_name"`
}

// FormatNotification renders the display string for a notification. Unknown
// types fall back to a generic "{user} - {room} at {time}" template.
func FormatNotification(n ReservationNotification, t Type) string {
	start := formatClock(n.StartTime)

	switch t {
	case TypeReminder:
		return fmt.Sprintf("Reminder: %s, your reservation for %s starts at %s", n.UserName, n.RoomName, start)
	case TypeConfirmation:
		return fmt.Sprintf("Confirmed: %s has booked %s starting at %s", n.UserName, n.RoomName, start)
	case TypeCancellation:
		return fmt.Sprintf("Cancelled: %s's reservation for %s at %s has been cancelled", n.UserName, n.RoomName, start)
	case TypeUpcoming:
		return fmt.Sprintf("Upcoming: %s's reservation for %s starts soon at %s", n.UserName, n.RoomName, start)
	default:
		return fmt.Sprintf("%s - %s at %s", n.UserName, n.RoomName, start)
	}
}

// MinutesUntil is the floor of (start - now) in whole minutes. Negative once
// the reservation has started.
func MinutesUntil(start, now time.Time) int {
	diff := start.Sub(now)
	m := diff / time.Minute
	if diff < 0 && diff%time.Minute != 0 {
		m--
	}
	return int(m)
}

// ShouldSendReminder fires once per configured threshold: true when the
// minutes until start fall in the window (threshold-1, threshold] for any
// threshold, assuming per-minute polling.
func ShouldSendReminder(start time.Time, reminderMinutes []int, now time.Time) bool {
	until := MinutesUntil(start, now)
	for _, threshold := range reminderMinutes {
		if until <= threshold && until > threshold-1 {
			return true
		}
	}
	return false
}

// Priority ordering is fixed: started, urgent, high (1h), medium (24h), low.
// An urgentThreshold above 60 absorbs the high band.
func GetNotificationPriority(start time.Time, urgentThreshold int, now time.Time) Priority {
	until := MinutesUntil(start, now)

	if until < 0 {
		return PriorityLow // already started
	}
	if until <= urgentThreshold {
		return PriorityUrgent
	}
	if until <= 60 {
		return PriorityHigh
	}
	if until <= 1440 {
		return PriorityMedium
	}
	return PriorityLow
}

// GroupByType buckets notifications by type, preserving insertion order. All
// four buckets are always present.
func GroupByType(entries []Entry) map[Type][]ReservationNotification {
	grouped := map[Type][]ReservationNotification{
		TypeReminder:     {},
		TypeConfirmation: {},
		TypeCancellation: {},
		TypeUpcoming:     {},
	}

	for _, e := range entries {
		if _, ok := grouped[e.Type]; ok {
			grouped[e.Type] = append(grouped[e.Type], e.Notification)
		}
	}
	return grouped
}

// Entry pairs a notification with its type for batch grouping.
type Entry struct {
	Notification ReservationNotification `json:"notification"`
	Type         Type                    `json:"type"`
}

// FormatTimeRemaining renders the time until start in a human-readable form:
// "Started", "Starting now", "N minute(s)", or "H hour(s) M minute(s)" with
// the minutes clause omitted when zero.
func FormatTimeRemaining(start, now time.Time) string {
	until := MinutesUntil(start, now)

	if until < 0 {
		return "Started"
	}
	if until == 0 {
		return "Starting now"
	}
	if until < 60 {
		return fmt.Sprintf("%d %s", until, plural("minute", until))
	}

	hours := until / 60
	minutes := until % 60

	if minutes == 0 {
		return fmt.Sprintf("%d %s", hours, plural("hour", hours))
	}
	return fmt.Sprintf("%d %s %d %s", hours, plural("hour", hours), minutes, plural("minute", minutes))
}

// ShouldSendUrgentNotification merges the override onto the defaults; false
// when disabled, else true iff the priority is urgent and the reservation has
// not started yet.
func ShouldSendUrgentNotification(start time.Time, override *SettingsOverride, now time.Time) bool {
	settings := defaultSettings.merge(override)

	if !settings.Enabled {
		return false
	}

	until := MinutesUntil(start, now)
	priority := GetNotificationPriority(start, settings.UrgentThreshold, now)

	return priority == PriorityUrgent && until >= 0
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

// formatClock renders a 12-hour clock with AM/PM and zero-padded minutes.
func formatClock(t time.Time) string {
	hours := t.Hour()
	ampm := "AM"
	if hours >= 12 {
		ampm = "PM"
	}
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, t.Minute(), ampm)
}
