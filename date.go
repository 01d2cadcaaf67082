package warehouse

import "github.com/seyda/warehouse/date"

// Date is re-exported so that callers of the warehouse package rarely need to
// import the date package directly.
type Date = date.Date

// Range is a re-export of date.Range.
type Range = date.Range

// ParseDate parses a Date from a string, accepting permissive forms like "2025-7-1".
func ParseDate(str string) (Date, error) { return date.Parse(str) }

// Today returns the current date.
func Today() Date { return date.Today() }
