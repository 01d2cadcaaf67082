package date

import "testing"

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2025-07-31", want: "2025-07-31"},
		{in: "2025-7-3", want: "2025-07-03"}, // permissive single digits
		{in: "2025-13-01", wantErr: true},
		{in: "not-a-date", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) expected an error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("Parse(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestKeys(t *testing.T) {
	d := New(2025, 7, 3)
	if got := d.MonthKey(); got != "2025-07" {
		t.Errorf("MonthKey() = %q, want %q", got, "2025-07")
	}
	if got := d.YearKey(); got != "2025" {
		t.Errorf("YearKey() = %q, want %q", got, "2025")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	d := New(2024, 12, 1)
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error: %v", err)
	}
	if string(b) != `"2024-12-01"` {
		t.Fatalf("MarshalJSON() = %s, want %q", b, `"2024-12-01"`)
	}
	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON(%s) error: %v", b, err)
	}
	if back != d {
		t.Errorf("round trip changed the date: got %v, want %v", back, d)
	}
}

func TestIsZero(t *testing.T) {
	var zero Date
	if !zero.IsZero() {
		t.Errorf("zero value Date should be IsZero()")
	}
	if New(2025, 1, 1).IsZero() {
		t.Errorf("a real date should not be IsZero()")
	}
}
