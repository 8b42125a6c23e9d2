package dashboard

import "time"

// DateRange is a possibly open-ended inclusive date interval. A nil end is
// unbounded on that side.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// IsZero reports whether both ends are unset
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

// Overlaps reports whether two inclusive ranges share at least one day.
// [a1,a2] overlaps [b1,b2] iff a1 <= b2 and b1 <= a2, with nil ends
// treated as unbounded.
func (r DateRange) Overlaps(other DateRange) bool {
	if r.From != nil && other.To != nil && r.From.After(*other.To) {
		return false
	}
	if other.From != nil && r.To != nil && other.From.After(*r.To) {
		return false
	}
	return true
}
