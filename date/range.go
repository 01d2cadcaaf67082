package date

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange returns the range covering from and to.
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Contains return true if date is included in the range (boundaries included).
// A zero From or To leaves that side of the range open.
func (r Range) Contains(d Date) bool {
	if !r.From.IsZero() && d.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && d.After(r.To) {
		return false
	}
	return true
}

// IsOpen returns true when neither boundary is set.
func (r Range) IsOpen() bool { return r.From.IsZero() && r.To.IsZero() }
