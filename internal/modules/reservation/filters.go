package reservation

import (
	"time"

	"studyrez/internal/domain"
)

// StatusFilter tags the listing views: upcoming confirmed reservations,
// past ones, and cancelled ones.
type StatusFilter string

const (
	FilterCurrent   StatusFilter = "current"
	FilterHistory   StatusFilter = "history"
	FilterCancelled StatusFilter = "cancelled"
)

// FilterPredicate decides whether a reservation belongs to a filter's view
// at the given instant.
type FilterPredicate func(r domain.Reservation, now time.Time) bool

var filterPredicates = map[StatusFilter]FilterPredicate{
	FilterCurrent: func(r domain.Reservation, now time.Time) bool {
		return r.Status == domain.ReservationConfirmed && r.EndTime.After(now)
	},
	FilterHistory: func(r domain.Reservation, now time.Time) bool {
		return r.Status == domain.ReservationConfirmed && !r.EndTime.After(now)
	},
	FilterCancelled: func(r domain.Reservation, now time.Time) bool {
		return r.Status == domain.ReservationCancelled
	},
}

// FilterFor looks up the predicate for a filter tag.
func FilterFor(f StatusFilter) (FilterPredicate, bool) {
	p, ok := filterPredicates[f]
	return p, ok
}
