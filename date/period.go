package date

import (
	"fmt"
	"strings"
)

// Period is a reporting bucket granularity.
type Period int

const (
	Monthly Period = iota
	Yearly
)

func (p Period) String() string {
	switch p {
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(p) {
	case "monthly", "month":
		return Monthly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Monthly, fmt.Errorf("unknown period %s", p)
	}
}

// Key returns the bucket key of d for the period ("2025-07" or "2025").
func (p Period) Key(d Date) string {
	switch p {
	case Monthly:
		return d.MonthKey()
	case Yearly:
		return d.YearKey()
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}
