package date

import "testing"

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{in: "monthly", want: Monthly},
		{in: "month", want: Monthly},
		{in: "Yearly", want: Yearly},
		{in: "year", want: Yearly},
		{in: "weekly", wantErr: true},
	}

	for _, tc := range testCases {
		got, err := ParsePeriod(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParsePeriod(%q) expected an error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePeriod(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPeriodKey(t *testing.T) {
	d := New(2025, 3, 15)
	if got := Monthly.Key(d); got != "2025-03" {
		t.Errorf("Monthly.Key() = %q, want %q", got, "2025-03")
	}
	if got := Yearly.Key(d); got != "2025" {
		t.Errorf("Yearly.Key() = %q, want %q", got, "2025")
	}
}
