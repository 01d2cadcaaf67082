package date

import "testing"

func TestRangeContains(t *testing.T) {
	jan := New(2025, 1, 15)
	testCases := []struct {
		name string
		r    Range
		d    Date
		want bool
	}{
		{name: "open range contains everything", r: Range{}, d: jan, want: true},
		{name: "inside closed range", r: NewRange(New(2025, 1, 1), New(2025, 1, 31)), d: jan, want: true},
		{name: "on the boundaries", r: NewRange(jan, jan), d: jan, want: true},
		{name: "before the range", r: NewRange(New(2025, 2, 1), New(2025, 2, 28)), d: jan, want: false},
		{name: "after the range", r: NewRange(New(2024, 1, 1), New(2024, 12, 31)), d: jan, want: false},
		{name: "open start", r: Range{To: New(2025, 1, 31)}, d: jan, want: true},
		{name: "open end", r: Range{From: New(2025, 1, 1)}, d: jan, want: true},
		{name: "open end excludes earlier", r: Range{From: New(2025, 2, 1)}, d: jan, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Contains(tc.d); got != tc.want {
				t.Errorf("Contains(%v) = %v, want %v", tc.d, got, tc.want)
			}
		})
	}
}
